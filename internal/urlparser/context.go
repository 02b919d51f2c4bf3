package urlparser

import (
	"strconv"
	"strings"

	"github.com/shapestone/shape-url/internal/host"
)

// context bundles the transient parser state of spec.md section 3: buffer,
// flags, cursor, and the working record, owned exclusively by one Parse call.
type context struct {
	input   []byte
	pointer int

	url  *URL
	base *URL

	state         State
	stateOverride *State

	buffer                string
	atFlag                bool
	squareBracesFlag      bool
	passwordTokenSeenFlag bool

	validationError bool
}

func isASCIIAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool { return c >= '0' && c <= '9' }

func isASCIIAlnum(c byte) bool { return isASCIIAlpha(c) || isASCIIDigit(c) }

func toLowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// isC0OrSpace reports whether c is a C0 control or U+0020 SPACE, the class
// trimmed from the start/end of input before parsing begins.
func isC0OrSpace(c byte) bool { return c <= 0x20 }

// isURLCodePoint is a pragmatic ASCII approximation of the WHATWG URL code
// point set used to flag (non-fatally) unexpected bytes in path/query/
// fragment. Non-ASCII bytes are accepted without complaint: this package
// only ever sees bytes the caller has already UTF-8 validated, per spec.md
// section 1's scope boundary.
func isURLCodePoint(c byte) bool {
	if c >= 0x80 {
		return true
	}
	if isASCIIAlnum(c) {
		return true
	}
	return strings.IndexByte("!$&'()*+,-./:;=?@_~", c) >= 0
}

func isWindowsDriveLetter(s string) bool {
	if len(s) < 2 {
		return false
	}
	if !isASCIIAlpha(s[0]) {
		return false
	}
	return s[1] == ':' || s[1] == '|'
}

// isWindowsDriveLetterAt reports whether the bytes at/after pos in input
// form a Windows drive letter per spec.md's GLOSSARY definition: alpha,
// then ':' or '|', optionally followed by '/', '\\', '?', or '#'.
func isWindowsDriveLetterAt(input []byte, pos int) bool {
	if pos+1 >= len(input) {
		return false
	}
	if !isASCIIAlpha(input[pos]) {
		return false
	}
	if input[pos+1] != ':' && input[pos+1] != '|' {
		return false
	}
	if pos+2 < len(input) {
		c := input[pos+2]
		if c != '/' && c != '\\' && c != '?' && c != '#' {
			return false
		}
	}
	return true
}

func isSingleDotPathSegment(s string) bool {
	lower := strings.ToLower(s)
	return lower == "." || lower == "%2e"
}

func isDoubleDotPathSegment(s string) bool {
	lower := strings.ToLower(s)
	return lower == ".." || lower == ".%2e" || lower == "%2e." || lower == "%2e%2e"
}

func shortenPath(scheme string, path []string) []string {
	if len(path) == 0 {
		return path
	}
	if scheme == "file" && len(path) == 1 && isWindowsDriveLetter(path[0]) {
		return path
	}
	return path[:len(path)-1]
}

// sanitize trims leading/trailing C0-control-or-space and strips embedded
// TAB/CR/LF, per spec.md section 4.5. It reports whether anything was
// removed (a non-fatal validation error either way).
func sanitize(input []byte) ([]byte, bool) {
	removed := false

	start := 0
	for start < len(input) && isC0OrSpace(input[start]) {
		start++
	}
	end := len(input)
	for end > start && isC0OrSpace(input[end-1]) {
		end--
	}
	if start != 0 || end != len(input) {
		removed = true
	}
	input = input[start:end]

	out := make([]byte, 0, len(input))
	for _, c := range input {
		if c == '\t' || c == '\r' || c == '\n' {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out, removed
}

func (ctx *context) peek() (c byte, eof bool) {
	if ctx.pointer >= len(ctx.input) {
		return 0, true
	}
	return ctx.input[ctx.pointer], false
}

func (ctx *context) restFrom(pos int) []byte {
	if pos >= len(ctx.input) {
		return nil
	}
	return ctx.input[pos:]
}

func (ctx *context) hasPrefixAt(pos int, prefix string) bool {
	rest := ctx.restFrom(pos)
	return len(rest) >= len(prefix) && string(rest[:len(prefix)]) == prefix
}

func isValidPortString(s string) (uint16, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n >= 1<<16 {
		return 0, false
	}
	return uint16(n), true
}

// encodedHost is an alias for host.Host; the state functions use host.Host directly.
type encodedHost = host.Host
