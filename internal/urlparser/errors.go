package urlparser

import "fmt"

// Code enumerates the fatal error taxonomy of spec.md section 7.
type Code int

const (
	ErrInvalidScheme Code = iota + 1
	ErrNotAnAbsoluteURLWithFragment
	ErrEmptyHostname
	ErrForbiddenHostPoint
	ErrCannotDecodeHostPoint
	ErrDomainError
	ErrInvalidIPv4Address
	ErrInvalidIPv6Address
	ErrInvalidPort
)

func (c Code) String() string {
	switch c {
	case ErrInvalidScheme:
		return "invalid_scheme"
	case ErrNotAnAbsoluteURLWithFragment:
		return "not_an_absolute_url_with_fragment"
	case ErrEmptyHostname:
		return "empty_hostname"
	case ErrForbiddenHostPoint:
		return "forbidden_host_point"
	case ErrCannotDecodeHostPoint:
		return "cannot_decode_host_point"
	case ErrDomainError:
		return "domain_error"
	case ErrInvalidIPv4Address:
		return "invalid_ipv4_address"
	case ErrInvalidIPv6Address:
		return "invalid_ipv6_address"
	case ErrInvalidPort:
		return "invalid_port"
	default:
		return "unknown"
	}
}

// ParseError is the single typed error the parser returns. Pos is the byte
// offset into the sanitised input where the error was detected.
type ParseError struct {
	Code Code
	Pos  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("url: parse error at byte %d: %s", e.Pos, e.Code.String())
}

func (ctx *context) errorf(code Code) error {
	return &ParseError{Code: code, Pos: ctx.pointer}
}
