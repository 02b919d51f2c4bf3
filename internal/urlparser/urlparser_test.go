package urlparser

import (
	"testing"

	"github.com/shapestone/shape-url/internal/host"
)

func mustParse(t *testing.T, input string, base *URL) *URL {
	t.Helper()
	u, _, err := Parse([]byte(input), base)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", input, err)
	}
	return u
}

func TestParseBasicHTTP(t *testing.T) {
	u := mustParse(t, "https://example.com/foo/bar?q=1#frag", nil)
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q", u.Scheme)
	}
	if u.Host == nil || u.Host.String() != "example.com" {
		t.Fatalf("host = %v", u.Host)
	}
	if got := Serialize(u, false); got != "https://example.com/foo/bar?q=1#frag" {
		t.Fatalf("serialize = %q", got)
	}
}

func TestParseDefaultPortDropped(t *testing.T) {
	u := mustParse(t, "http://example.com:80/", nil)
	if u.Port != nil {
		t.Fatalf("expected default port dropped, got %v", *u.Port)
	}
	if got := Serialize(u, false); got != "http://example.com/" {
		t.Fatalf("serialize = %q", got)
	}
}

func TestParseNonDefaultPortKept(t *testing.T) {
	u := mustParse(t, "http://example.com:8080/", nil)
	if u.Port == nil || *u.Port != 8080 {
		t.Fatalf("port = %v", u.Port)
	}
}

func TestParseUserinfo(t *testing.T) {
	u := mustParse(t, "https://user:p@ss@example.com/", nil)
	if u.Username != "user" || u.Password != "p%40ss" {
		t.Fatalf("username=%q password=%q", u.Username, u.Password)
	}
}

func TestParseIPv4Host(t *testing.T) {
	u := mustParse(t, "http://198.51.100.1/", nil)
	if u.Host == nil || u.Host.String() != "198.51.100.1" {
		t.Fatalf("host = %v", u.Host)
	}
}

func TestParseIPv4ShorthandHost(t *testing.T) {
	u := mustParse(t, "http://198.51.100/", nil)
	if u.Host == nil || u.Host.String() != "198.51.100.0" {
		t.Fatalf("host = %v", u.Host)
	}
}

func TestParseIPv6Host(t *testing.T) {
	u := mustParse(t, "http://[2001:db8::1]/", nil)
	if u.Host == nil || u.Host.String() != "[2001:db8::1]" {
		t.Fatalf("host = %v", u.Host)
	}
	if got := Serialize(u, false); got != "http://[2001:db8::1]/" {
		t.Fatalf("serialize = %q", got)
	}
}

func TestParseOpaquePath(t *testing.T) {
	u := mustParse(t, "mailto:user@example.com", nil)
	if !u.CannotBeABaseURL {
		t.Fatalf("expected cannot-be-a-base-url")
	}
	if got := Serialize(u, false); got != "mailto:user@example.com" {
		t.Fatalf("serialize = %q", got)
	}
}

func TestParseRelativeResolution(t *testing.T) {
	base := mustParse(t, "https://example.com/a/b/c", nil)
	u := mustParse(t, "../d", base)
	if got := Serialize(u, false); got != "https://example.com/a/d" {
		t.Fatalf("serialize = %q", got)
	}
}

func TestParseRelativeQueryOnly(t *testing.T) {
	base := mustParse(t, "https://example.com/a/b?x=1", nil)
	u := mustParse(t, "?y=2", base)
	if got := Serialize(u, false); got != "https://example.com/a/b?y=2" {
		t.Fatalf("serialize = %q", got)
	}
}

func TestParseDotSegmentsRemoved(t *testing.T) {
	u := mustParse(t, "https://example.com/a/./b/../c", nil)
	if got := Serialize(u, false); got != "https://example.com/a/c" {
		t.Fatalf("serialize = %q", got)
	}
}

func TestParseBackslashNormalizedForSpecialScheme(t *testing.T) {
	u := mustParse(t, `https://example.com\foo\bar`, nil)
	if got := Serialize(u, false); got != "https://example.com/foo/bar" {
		t.Fatalf("serialize = %q", got)
	}
}

func TestParseFileURLWindowsDriveLetter(t *testing.T) {
	u := mustParse(t, "file:///C:/Users/test", nil)
	if got := Serialize(u, false); got != "file:///C:/Users/test" {
		t.Fatalf("serialize = %q", got)
	}
}

func TestParseFileURLNoAuthority(t *testing.T) {
	u := mustParse(t, "file:///etc/hosts", nil)
	if u.Host == nil || u.Host.String() != "" {
		t.Fatalf("host = %v", u.Host)
	}
	if got := Serialize(u, false); got != "file:///etc/hosts" {
		t.Fatalf("serialize = %q", got)
	}
}

func TestParseEmptyWithoutBaseFails(t *testing.T) {
	_, _, err := Parse([]byte(""), nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Code != ErrNotAnAbsoluteURLWithFragment {
		t.Fatalf("code = %v", perr.Code)
	}
}

func TestParseInvalidPortFails(t *testing.T) {
	_, _, err := Parse([]byte("http://example.com:bogus/"), nil)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestParsePortOutOfRangeFails(t *testing.T) {
	_, _, err := Parse([]byte("http://example.com:99999/"), nil)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestParseC0AndSpaceTrimmed(t *testing.T) {
	u, validationError, err := Parse([]byte("  \thttps://example.com/\n "), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !validationError {
		t.Fatalf("expected validationError for leading/trailing whitespace")
	}
	if got := Serialize(u, false); got != "https://example.com/" {
		t.Fatalf("serialize = %q", got)
	}
}

func TestParseFragmentExcluded(t *testing.T) {
	u := mustParse(t, "https://example.com/a#secret", nil)
	if got := Serialize(u, true); got != "https://example.com/a" {
		t.Fatalf("serialize excludeFragment = %q", got)
	}
}

func TestParseQueryPercentEncoding(t *testing.T) {
	u := mustParse(t, "https://example.com/?q=a b", nil)
	if u.Query == nil || *u.Query != "q=a%20b" {
		t.Fatalf("query = %v", u.Query)
	}
}

func TestParseNonSpecialOpaqueHost(t *testing.T) {
	u := mustParse(t, "custom://opaque-host/path", nil)
	if u.Host == nil || u.Host.Kind != host.KindOpaque {
		t.Fatalf("expected opaque host kind, got %v", u.Host)
	}
}
