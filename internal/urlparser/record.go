package urlparser

import "github.com/shapestone/shape-url/internal/host"

// URL is the parser's output record (spec.md section 3). It is exclusively
// owned by one Parse call until that call returns.
type URL struct {
	Scheme   string
	Username string
	Password string

	// Host is nil when absent (opaque non-special URLs without an
	// authority, or intermediate cannot-be-a-base-url states).
	Host *host.Host

	// Port is nil when absent: either no authority, or the parsed value
	// equalled the scheme's default and was normalised away.
	Port *uint16

	// Path holds the path segment list. When CannotBeABaseURL is true, it
	// always has exactly one element: the opaque path string.
	Path []string

	// Query is nil when there is no "?"; a non-nil empty string means "?"
	// with an empty value.
	Query *string

	// Fragment follows the same convention as Query, for "#".
	Fragment *string

	CannotBeABaseURL bool
}

// IsSpecial reports whether u's scheme is one of the seven special schemes.
func (u *URL) IsSpecial() bool { return IsSpecial(u.Scheme) }

// IncludesCredentials reports whether u has a non-empty username or password.
func (u *URL) IncludesCredentials() bool {
	return u.Username != "" || u.Password != ""
}

// HasOpaquePath reports whether u.Path should be serialised as a bare
// string rather than joined with "/". This is the spec's "single-element-
// treated-as-string" path convention for cannot-be-a-base URLs.
func (u *URL) HasOpaquePath() bool { return u.CannotBeABaseURL }

// clone returns a deep-enough copy of u for use as a base record: Path is
// copied so the parser's in-progress record can mutate it (e.g. pop the
// last segment) without mutating the caller's base URL.
func (u *URL) clone() *URL {
	if u == nil {
		return nil
	}
	cp := *u
	if u.Path != nil {
		cp.Path = append([]string(nil), u.Path...)
	}
	if u.Port != nil {
		p := *u.Port
		cp.Port = &p
	}
	if u.Host != nil {
		h := *u.Host
		cp.Host = &h
	}
	if u.Query != nil {
		q := *u.Query
		cp.Query = &q
	}
	if u.Fragment != nil {
		f := *u.Fragment
		cp.Fragment = &f
	}
	return &cp
}
