package host

import "testing"

func TestParseDomain(t *testing.T) {
	h, verr, err := Parse("www.example.com", false)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if verr {
		t.Errorf("unexpected validation error")
	}
	if h.Kind != KindDomain || h.String() != "www.example.com" {
		t.Errorf("Parse = %+v, want domain www.example.com", h)
	}
}

func TestParseIPv4ViaDomainBranch(t *testing.T) {
	h, _, err := Parse("198.51.100", false)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if h.Kind != KindIPv4 || h.String() != "198.51.100.0" {
		t.Errorf("Parse = %+v, want ipv4 198.51.100.0", h)
	}
}

func TestParseIPv6Bracketed(t *testing.T) {
	h, _, err := Parse("[2001:0db8:0000:0000:0000:0000:1428:57ab]", false)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if h.Kind != KindIPv6 || h.String() != "[2001:db8::1428:57ab]" {
		t.Errorf("Parse = %+v, want [2001:db8::1428:57ab]", h)
	}
}

func TestParseIPv6MissingClosingBracket(t *testing.T) {
	_, verr, err := Parse("[::1", false)
	if err == nil {
		t.Fatalf("expected error for unterminated bracket")
	}
	if !verr {
		t.Errorf("expected validation error to be flagged")
	}
}

func TestParseOpaqueHost(t *testing.T) {
	h, _, err := Parse("example.com", true)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if h.Kind != KindOpaque || h.String() != "example.com" {
		t.Errorf("Parse = %+v, want opaque example.com", h)
	}
}

func TestParseOpaqueHostForbiddenByte(t *testing.T) {
	_, _, err := Parse("exa mple.com", true)
	if err == nil {
		t.Fatalf("expected forbidden host point error")
	}
}

func TestParseOpaqueHostEncodesNonASCII(t *testing.T) {
	h, _, err := Parse("h\x7fost", true)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if h.String() != "h%7Fost" {
		t.Errorf("Parse = %+v, want h%%7Fost", h)
	}
}

func TestParseEmptyHost(t *testing.T) {
	h, verr, err := Parse("", false)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if verr {
		t.Errorf("unexpected validation error")
	}
	if h.Kind != KindEmpty || h.String() != "" {
		t.Errorf("Parse = %+v, want empty host", h)
	}
}

func TestParseDomainForbiddenByte(t *testing.T) {
	_, _, err := Parse("exa%2f", false)
	if err == nil {
		t.Fatalf("expected domain error for decoded forbidden byte")
	}
}
