package url

import "testing"

func TestParseLenient_WellFormedHasNoWarnings(t *testing.T) {
	u, warnings := ParseLenient("https://example.com/a/b")
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if u.Hostname() != "example.com" {
		t.Errorf("Hostname() = %q", u.Hostname())
	}
}

func TestParseLenient_MissingScheme(t *testing.T) {
	u, warnings := ParseLenient("example.com/a/b")
	if len(warnings) == 0 {
		t.Error("expected a warning about the missing scheme")
	}
	if u.Hostname() != "example.com" {
		t.Errorf("Hostname() = %q, want example.com", u.Hostname())
	}
	if u.Pathname() != "/a/b" {
		t.Errorf("Pathname() = %q, want /a/b", u.Pathname())
	}
}

func TestParseLenient_NeverReturnsNilURL(t *testing.T) {
	u, _ := ParseLenient("")
	if u == nil {
		t.Fatal("ParseLenient returned nil URL")
	}
}
