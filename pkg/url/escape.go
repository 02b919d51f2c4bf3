package url

import "github.com/shapestone/shape-url/internal/pct"

// PathEscape percent-encodes s for safe inclusion as a single path
// segment, using the component percent-encode set of spec.md's
// supplemented-features list.
func PathEscape(s string) string { return pct.EncodeString(s, pct.Component) }

// QueryEscape percent-encodes s for safe inclusion in a query string.
func QueryEscape(s string) string { return pct.EncodeString(s, pct.Component) }

// PathUnescape percent-decodes s. A malformed "%" escape is passed
// through literally, matching pct.Decode's non-fatal handling.
func PathUnescape(s string) (string, error) {
	out, _ := pct.Decode([]byte(s))
	return string(out), nil
}

// QueryUnescape percent-decodes s, additionally turning "+" into a space,
// matching the conventional application/x-www-form-urlencoded convention
// for query strings.
func QueryUnescape(s string) (string, error) {
	out, _ := pct.Decode([]byte(plusToSpace(s)))
	return string(out), nil
}

func plusToSpace(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c == '+' {
			b[i] = ' '
		}
	}
	return string(b)
}
