// Package url provides WHATWG URL Standard parsing and serialization.
//
// This package implements the living-standard "basic URL parser" and its
// component setters, plus percent-encoding helpers for building query
// strings and path segments by hand.
//
// # Parsing APIs
//
// The package provides multiple parsing paths:
//
//   - Parse/ParseReference - strict parsing, errors on malformed input
//   - ParseLenient - best-effort parsing with warnings, never errors
//   - NewDecoder - streaming io.Reader-based parsing, one URL per line
package url

import (
	"strconv"

	"github.com/shapestone/shape-url/internal/urlparser"
)

// URL is a parsed, normalised URL record. Construct one with Parse,
// ParseReference, or ParseLenient — never directly.
type URL struct {
	raw *urlparser.URL
}

func wrap(raw *urlparser.URL) *URL { return &URL{raw: raw} }

// Scheme returns the URL's scheme, lower-cased and without the trailing ":".
func (u *URL) Scheme() string { return u.raw.Scheme }

// Username returns the percent-encoded username, or "" if absent.
func (u *URL) Username() string { return u.raw.Username }

// Password returns the percent-encoded password, or "" if absent.
func (u *URL) Password() string { return u.raw.Password }

// Hostname returns the host serialised without a port, or "" if the URL
// has no host (opaque-path URLs such as "mailto:a@b.com").
func (u *URL) Hostname() string {
	if u.raw.Host == nil {
		return ""
	}
	return u.raw.Host.String()
}

// Port returns the URL's port and whether one is present. A present port
// is always non-default: the parser drops a port equal to the scheme's
// default at parse time, per spec.md section 4.5.
func (u *URL) Port() (uint16, bool) {
	if u.raw.Port == nil {
		return 0, false
	}
	return *u.raw.Port, true
}

// Host returns "hostname" or "hostname:port", matching the conventional
// net/url Host field shape.
func (u *URL) Host() string {
	h := u.Hostname()
	if port, ok := u.Port(); ok {
		return h + ":" + strconv.FormatUint(uint64(port), 10)
	}
	return h
}

// Pathname returns the path: a single opaque string for cannot-be-a-
// base-URL records (e.g. "mailto:" URLs), or the "/"-joined segment list
// otherwise.
func (u *URL) Pathname() string {
	if u.raw.HasOpaquePath() {
		if len(u.raw.Path) == 0 {
			return ""
		}
		return u.raw.Path[0]
	}
	var out string
	for _, seg := range u.raw.Path {
		out += "/" + seg
	}
	return out
}

// PathSegments returns the decomposed path segment list. It is empty for
// cannot-be-a-base-URL records; use Pathname for those.
func (u *URL) PathSegments() []string {
	if u.raw.HasOpaquePath() {
		return nil
	}
	out := make([]string, len(u.raw.Path))
	copy(out, u.raw.Path)
	return out
}

// Search returns the query string including its leading "?", or "" if
// there is no query.
func (u *URL) Search() string {
	if u.raw.Query == nil {
		return ""
	}
	return "?" + *u.raw.Query
}

// RawQuery returns the query string without its leading "?". Distinguish
// "no query" from "empty query" with HasQuery.
func (u *URL) RawQuery() string {
	if u.raw.Query == nil {
		return ""
	}
	return *u.raw.Query
}

// HasQuery reports whether the URL has a "?", even an empty one.
func (u *URL) HasQuery() bool { return u.raw.Query != nil }

// Hash returns the fragment including its leading "#", or "" if there is
// no fragment.
func (u *URL) Hash() string {
	if u.raw.Fragment == nil {
		return ""
	}
	return "#" + *u.raw.Fragment
}

// RawFragment returns the fragment without its leading "#".
func (u *URL) RawFragment() string {
	if u.raw.Fragment == nil {
		return ""
	}
	return *u.raw.Fragment
}

// HasFragment reports whether the URL has a "#", even an empty one.
func (u *URL) HasFragment() bool { return u.raw.Fragment != nil }

// IsSpecial reports whether the scheme is one of the seven special
// schemes (ftp, file, gopher, http, https, ws, wss).
func (u *URL) IsSpecial() bool { return u.raw.IsSpecial() }

// CannotBeABaseURL reports whether the URL has an opaque path (e.g.
// "mailto:", "data:") rather than a "/"-delimited one.
func (u *URL) CannotBeABaseURL() bool { return u.raw.CannotBeABaseURL }

// String returns the URL's serialization per spec.md section 6.
func (u *URL) String() string { return urlparser.Serialize(u.raw, false) }

// WithoutFragment returns the serialization with any fragment omitted,
// the form used for things like HTTP Referer headers.
func (u *URL) WithoutFragment() string { return urlparser.Serialize(u.raw, true) }

// Clone returns an independent copy of u.
func (u *URL) Clone() *URL {
	cp := *u.raw
	return wrap(&cp)
}
