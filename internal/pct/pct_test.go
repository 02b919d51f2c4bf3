package pct

import "testing"

func TestEncodeByteUnreserved(t *testing.T) {
	for _, b := range []byte("abcXYZ019-_.~") {
		got := EncodeByte(b, Userinfo)
		if len(got) != 1 || got[0] != b {
			t.Errorf("EncodeByte(%q) = %q, want unescaped", b, got)
		}
	}
}

func TestEncodeByteControlAndNonASCII(t *testing.T) {
	cases := []struct {
		b    byte
		want string
	}{
		{0x00, "%00"},
		{0x1F, "%1F"},
		{0x7F, "%7F"},
		{0xFF, "%FF"},
	}
	for _, c := range cases {
		got := EncodeByte(c.b, C0Control)
		if string(got) != c.want {
			t.Errorf("EncodeByte(%#x) = %q, want %q", c.b, got, c.want)
		}
	}
}

func TestEncodeByteSetSpecific(t *testing.T) {
	cases := []struct {
		set  Set
		b    byte
		want string
	}{
		{Fragment, ' ', "%20"},
		{Fragment, '`', "%60"},
		{Query, '#', "%23"},
		{SpecialQuery, '\'', "%27"},
		{Query, '\'', "'"}, // only escaped in special-query
		{Path, '?', "%3F"},
		{Path, '{', "%7B"},
		{Userinfo, '/', "%2F"},
		{Userinfo, '@', "%40"},
		{Component, '%', "%25"},
		{Component, ',', "%2C"},
		{Path, '!', "!"}, // not in any set, stays raw
	}
	for _, c := range cases {
		got := string(EncodeByte(c.b, c.set))
		if got != c.want {
			t.Errorf("EncodeByte(%q, %q) = %q, want %q", c.b, c.set, got, c.want)
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	in := []byte("hello%20world%2F%2f")
	out, invalid := Decode(in)
	if invalid {
		t.Fatalf("unexpected invalid escape")
	}
	if string(out) != "hello world//" {
		t.Errorf("Decode = %q, want %q", out, "hello world//")
	}
}

func TestDecodeDanglingPercent(t *testing.T) {
	out, invalid := Decode([]byte("100%done"))
	if !invalid {
		t.Fatalf("expected invalid escape to be flagged")
	}
	if string(out) != "100%done" {
		t.Errorf("Decode = %q, want literal passthrough", out)
	}
}

func TestDecodeTrailingPercent(t *testing.T) {
	out, invalid := Decode([]byte("abc%"))
	if !invalid {
		t.Fatalf("expected invalid escape to be flagged")
	}
	if string(out) != "abc%" {
		t.Errorf("Decode = %q, want %q", out, "abc%")
	}
}

func TestIsPercentEncoded(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"%2F", true},
		{"%2f", true},
		{"%2", false},
		{"%", false},
		{"%zz", false},
		{"abc", false},
	}
	for _, c := range cases {
		if got := IsPercentEncoded([]byte(c.in)); got != c.want {
			t.Errorf("IsPercentEncoded(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestEncodeString(t *testing.T) {
	got := EncodeString("a b", Query)
	if got != "a%20b" {
		t.Errorf("EncodeString = %q, want a%%20b", got)
	}
}
