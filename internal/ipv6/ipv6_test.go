package ipv6

import "testing"

func TestParseAndCanonicalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2001:0db8:0000:0000:0000:0000:1428:57ab", "2001:db8::1428:57ab"},
		{"::1", "::1"},
		{"::", "::"},
		{"1:2:3:4:5:6:7:8", "1:2:3:4:5:6:7:8"},
		{"1::8", "1::8"},
		{"1:2:3:4:5:6::", "1:2:3:4:5:6::"},
		{"::ffff:192.168.1.1", "::ffff:c0a8:101"},
		{"2001:db8::1", "2001:db8::1"},
	}
	for _, c := range cases {
		addr, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", c.in, err)
		}
		if got := addr.String(); got != c.want {
			t.Errorf("Parse(%q).String() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{
		"1:2:3:4:5:6:7:8:9", // too many pieces
		"1::2::3",           // two compressions
		":1:2:3",            // lone leading colon without second
		"1:2:3:4:5:6:7",     // too few, no compression
		"gggg::1",           // non-hex
		"::ffff:999.1.1.1",  // octet overflow
		"1:2:3:4:5:6:7::1.2.3.4", // IPv4 tail leaves no room
	}
	for _, in := range cases {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) = nil error, want error", in)
		}
	}
}

func TestParseIPv4Tail(t *testing.T) {
	addr, err := Parse("::ffff:192.168.1.1")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	want := Address{0, 0, 0, 0, 0, 0xffff, 0xc0a8, 0x0101}
	if addr != want {
		t.Errorf("Parse = %v, want %v", addr, want)
	}
}
