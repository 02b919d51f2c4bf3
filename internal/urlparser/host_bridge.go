package urlparser

import (
	"errors"

	"github.com/shapestone/shape-url/internal/host"
)

// emptyHost is the zero-value Host record, used where spec.md calls for
// "the empty string" as a host (e.g. a file URL with no authority).
func emptyHost() host.Host { return host.Host{} }

// parseHost delegates to the host dispatcher and adapts its value-typed
// result to the pointer convention URL.Host uses.
func parseHost(buffer string, notSpecial bool) (*host.Host, bool, error) {
	h, validationError, err := host.Parse(buffer, notSpecial)
	if err != nil {
		return nil, validationError, err
	}
	return &h, validationError, nil
}

// hostError translates a host package error into this package's ParseError
// taxonomy, preserving the byte offset of the failure.
func (ctx *context) hostError(err error) error {
	var herr *host.Error
	if errors.As(err, &herr) {
		switch herr.Code {
		case host.ErrForbiddenHostPoint:
			return ctx.errorf(ErrForbiddenHostPoint)
		case host.ErrCannotDecodeHostPoint:
			return ctx.errorf(ErrCannotDecodeHostPoint)
		case host.ErrDomainError:
			return ctx.errorf(ErrDomainError)
		case host.ErrInvalidIPv4Address:
			return ctx.errorf(ErrInvalidIPv4Address)
		case host.ErrInvalidIPv6Address:
			return ctx.errorf(ErrInvalidIPv6Address)
		}
	}
	return ctx.errorf(ErrDomainError)
}
