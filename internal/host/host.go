// Package host implements the WHATWG host dispatcher: bracket-stripped
// IPv6 literals, opaque hosts for non-special schemes, and domain/IPv4
// hosts for special schemes.
package host

import (
	"strings"

	"golang.org/x/net/idna"

	"github.com/shapestone/shape-url/internal/ipv4"
	"github.com/shapestone/shape-url/internal/ipv6"
	"github.com/shapestone/shape-url/internal/pct"
)

// Kind discriminates the tagged union a Host value holds.
type Kind int

const (
	// KindEmpty is the host of a completed file URL with no authority, e.g. "file:///etc".
	KindEmpty Kind = iota
	KindDomain
	KindIPv4
	KindIPv6
	KindOpaque
)

// Host is the tagged host union spec.md's design notes call for: exactly
// one of Domain/IPv4/IPv6/Opaque is meaningful, selected by Kind.
type Host struct {
	Kind   Kind
	Domain string
	IPv4   ipv4.Address
	IPv6   ipv6.Address
	Opaque string
}

// String renders the host in canonical serialised form.
func (h Host) String() string {
	switch h.Kind {
	case KindEmpty:
		return ""
	case KindDomain:
		return h.Domain
	case KindIPv4:
		return h.IPv4.String()
	case KindIPv6:
		return "[" + h.IPv6.String() + "]"
	case KindOpaque:
		return h.Opaque
	default:
		return ""
	}
}

// ErrCode enumerates the host parser's fatal error taxonomy (spec section 7).
type ErrCode int

const (
	ErrForbiddenHostPoint ErrCode = iota + 1
	ErrCannotDecodeHostPoint
	ErrDomainError
	ErrInvalidIPv4Address
	ErrInvalidIPv6Address
)

// Error wraps an ErrCode as an error value.
type Error struct{ Code ErrCode }

func (e *Error) Error() string {
	switch e.Code {
	case ErrForbiddenHostPoint:
		return "host: forbidden host code point"
	case ErrCannotDecodeHostPoint:
		return "host: cannot percent-decode host"
	case ErrDomainError:
		return "host: domain error"
	case ErrInvalidIPv4Address:
		return "host: invalid IPv4 address"
	case ErrInvalidIPv6Address:
		return "host: invalid IPv6 address"
	default:
		return "host: error"
	}
}

func fail(c ErrCode) (Host, error) { return Host{}, &Error{Code: c} }

const forbiddenHostBytes = "\x00\t\n\r #/:?@[\\]"

func isForbiddenHostPoint(b byte) bool {
	return strings.IndexByte(forbiddenHostBytes, b) >= 0
}

// domainToASCII is the domain_to_ascii external collaborator spec.md §1
// names. It delegates to golang.org/x/net/idna's non-transitional,
// STD3-enforcing profile, matching the WHATWG URL standard's ToASCII call.
func domainToASCII(domain string) (string, error) {
	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return "", err
	}
	return ascii, nil
}

func parseOpaque(input string) (Host, error) {
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c != '%' && isForbiddenHostPoint(c) {
			return fail(ErrForbiddenHostPoint)
		}
	}
	var sb strings.Builder
	for i := 0; i < len(input); i++ {
		sb.Write(pct.EncodeByte(input[i], pct.C0Control))
	}
	return Host{Kind: KindOpaque, Opaque: sb.String()}, nil
}

// Parse dispatches host parsing per spec §4.4. notSpecial indicates the
// enclosing scheme is not one of the special schemes.
func Parse(input string, notSpecial bool) (Host, bool /*validationError*/, error) {
	if len(input) == 0 {
		return Host{Kind: KindEmpty}, false, nil
	}

	if input[0] == '[' {
		if input[len(input)-1] != ']' {
			h, err := fail(ErrInvalidIPv6Address)
			return h, true, err
		}
		addr, err := ipv6.Parse(input[1 : len(input)-1])
		if err != nil {
			h, ferr := fail(ErrInvalidIPv6Address)
			return h, true, ferr
		}
		return Host{Kind: KindIPv6, IPv6: addr}, false, nil
	}

	if notSpecial {
		h, err := parseOpaque(input)
		return h, false, err
	}

	domain, invalidEscape := pct.Decode([]byte(input))
	_ = invalidEscape // percent_decode never fails per spec §4.1; escape leniency is non-fatal

	ascii, err := domainToASCII(string(domain))
	if err != nil {
		h, ferr := fail(ErrDomainError)
		return h, true, ferr
	}

	for i := 0; i < len(ascii); i++ {
		if isForbiddenHostPoint(ascii[i]) {
			h, ferr := fail(ErrDomainError)
			return h, true, ferr
		}
	}

	addr, validationError, ipv4Err := ipv4.Parse(ascii)
	if ipv4Err != nil {
		if ipv4.Is(ipv4Err, ipv4.ErrValidationError) {
			h, ferr := fail(ErrInvalidIPv4Address)
			return h, true, ferr
		}
		// Any other ipv4 failure means "this isn't IPv4 shaped", fall back to domain.
		return Host{Kind: KindDomain, Domain: ascii}, false, nil
	}

	return Host{Kind: KindIPv4, IPv4: addr}, validationError, nil
}
