package url

import (
	"github.com/shapestone/shape-url/internal/host"
	"github.com/shapestone/shape-url/internal/pct"
	"github.com/shapestone/shape-url/internal/urlparser"
)

// cannotHaveUsernamePasswordPort reports whether u has no host, or is a
// file URL — both forbid setting credentials or a port, per spec.md
// section 6.
func cannotHaveUsernamePasswordPort(u *urlparser.URL) bool {
	return u.Host == nil || u.Host.Kind == host.KindEmpty || u.Scheme == "file"
}

// copySeed returns an independent copy of u suitable as the seed record
// for a state-override re-parse: the caller's URL must not be mutated
// when the re-parse fails partway through.
func copySeed(u *urlparser.URL) *urlparser.URL {
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

// SetProtocol replaces the scheme, re-parsing from SchemeStart with the
// rest of the record seeded in. A trailing ":" in s is accepted and
// stripped, matching the setter's tolerant input handling.
func (u *URL) SetProtocol(s string) error {
	s = trimTrailingColon(s) + ":"
	raw, _, err := urlparser.ParseWithStateOverride([]byte(s), nil, urlparser.StateSchemeStart, copySeed(u.raw))
	if err != nil {
		return wrapErr("SetProtocol", s, err)
	}
	u.raw = raw
	return nil
}

// SetUsername sets the username component directly (not through the state
// machine: spec.md section 6 defines this setter as straight percent-
// encoding, since "username" is never itself a parser state). A no-op
// against a host-less or file URL.
func (u *URL) SetUsername(s string) error {
	if cannotHaveUsernamePasswordPort(u.raw) {
		return nil
	}
	u.raw.Username = pct.EncodeString(s, pct.Userinfo)
	return nil
}

// SetPassword sets the password component directly, mirroring SetUsername.
func (u *URL) SetPassword(s string) error {
	if cannotHaveUsernamePasswordPort(u.raw) {
		return nil
	}
	u.raw.Password = pct.EncodeString(s, pct.Userinfo)
	return nil
}

// SetHost replaces host and, if present in s, port, re-parsing from the
// Host state. A no-op if u's path is opaque (cannot-be-a-base-url).
func (u *URL) SetHost(s string) error {
	if u.raw.CannotBeABaseURL {
		return nil
	}
	raw, _, err := urlparser.ParseWithStateOverride([]byte(s), nil, urlparser.StateHost, copySeed(u.raw))
	if err != nil {
		return wrapErr("SetHost", s, err)
	}
	u.raw = raw
	return nil
}

// SetHostname replaces only the host, leaving any existing port untouched,
// re-parsing from the Hostname state.
func (u *URL) SetHostname(s string) error {
	if u.raw.CannotBeABaseURL {
		return nil
	}
	raw, _, err := urlparser.ParseWithStateOverride([]byte(s), nil, urlparser.StateHostname, copySeed(u.raw))
	if err != nil {
		return wrapErr("SetHostname", s, err)
	}
	u.raw = raw
	return nil
}

// SetPort replaces the port. A no-op against a host-less URL, a file URL,
// or one whose host is empty, per cannotHaveUsernamePasswordPort.
// An empty s clears the port.
func (u *URL) SetPort(s string) error {
	if cannotHaveUsernamePasswordPort(u.raw) {
		return nil
	}
	if s == "" {
		u.raw.Port = nil
		return nil
	}
	raw, _, err := urlparser.ParseWithStateOverride([]byte(s), nil, urlparser.StatePort, copySeed(u.raw))
	if err != nil {
		return wrapErr("SetPort", s, err)
	}
	u.raw = raw
	return nil
}

// SetPathname replaces the path, re-parsing from PathStart. A no-op
// against a cannot-be-a-base-url record.
func (u *URL) SetPathname(s string) error {
	if u.raw.CannotBeABaseURL {
		return nil
	}
	seed := copySeed(u.raw)
	seed.Path = nil
	raw, _, err := urlparser.ParseWithStateOverride([]byte(s), nil, urlparser.StatePathStart, seed)
	if err != nil {
		return wrapErr("SetPathname", s, err)
	}
	u.raw = raw
	return nil
}

// SetSearch replaces the query. A leading "?" in s is accepted and
// stripped; an empty s clears the query entirely (HasQuery becomes false).
func (u *URL) SetSearch(s string) error {
	s = trimLeadingByte(s, '?')
	if s == "" {
		u.raw.Query = nil
		return nil
	}
	seed := copySeed(u.raw)
	empty := ""
	seed.Query = &empty
	raw, _, err := urlparser.ParseWithStateOverride([]byte(s), nil, urlparser.StateQuery, seed)
	if err != nil {
		return wrapErr("SetSearch", s, err)
	}
	u.raw = raw
	return nil
}

// SetHash replaces the fragment. A leading "#" in s is accepted and
// stripped; an empty s clears the fragment entirely (HasFragment becomes
// false).
func (u *URL) SetHash(s string) error {
	s = trimLeadingByte(s, '#')
	if s == "" {
		u.raw.Fragment = nil
		return nil
	}
	seed := copySeed(u.raw)
	empty := ""
	seed.Fragment = &empty
	raw, _, err := urlparser.ParseWithStateOverride([]byte(s), nil, urlparser.StateFragment, seed)
	if err != nil {
		return wrapErr("SetHash", s, err)
	}
	u.raw = raw
	return nil
}

func trimTrailingColon(s string) string {
	if len(s) > 0 && s[len(s)-1] == ':' {
		return s[:len(s)-1]
	}
	return s
}

func trimLeadingByte(s string, b byte) string {
	if len(s) > 0 && s[0] == b {
		return s[1:]
	}
	return s
}
