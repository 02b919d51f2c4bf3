package url

import "github.com/shapestone/shape-url/internal/urlparser"

// Parse parses an absolute URL string per spec.md section 4.5. It fails
// if s has no scheme or is otherwise not an absolute URL; use
// ParseReference to resolve against a base.
func Parse(s string) (*URL, error) {
	raw, _, err := urlparser.Parse([]byte(s), nil)
	if err != nil {
		return nil, wrapErr("parse", s, err)
	}
	return wrap(raw), nil
}

// ParseReference parses s, resolving it against base when s carries no
// scheme of its own (e.g. "../b", "?q=1", "#frag"). base itself is left
// untouched.
func ParseReference(s string, base *URL) (*URL, error) {
	var baseRaw *urlparser.URL
	if base != nil {
		baseRaw = base.raw
	}
	raw, _, err := urlparser.Parse([]byte(s), baseRaw)
	if err != nil {
		return nil, wrapErr("parse", s, err)
	}
	return wrap(raw), nil
}

// MustParse is like Parse but panics on error. It exists for package-level
// var initialisation of well-known URLs, not for handling user input.
func MustParse(s string) *URL {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}
