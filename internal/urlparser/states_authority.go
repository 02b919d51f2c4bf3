package urlparser

import (
	"github.com/shapestone/shape-url/internal/pct"
)

const userinfoEncodeSet = pct.Userinfo

func (ctx *context) stateAuthority(c byte, eof bool) (action, error) {
	switch {
	case !eof && c == '@':
		ctx.validationError = true
		if ctx.atFlag {
			ctx.buffer = "%40" + ctx.buffer
		}
		ctx.atFlag = true

		passwordSeen := ctx.passwordTokenSeenFlag
		for i := 0; i < len(ctx.buffer); i++ {
			b := ctx.buffer[i]
			if b == ':' && !passwordSeen {
				passwordSeen = true
				continue
			}
			encoded := string(pct.EncodeByte(b, userinfoEncodeSet))
			if passwordSeen {
				ctx.url.Password += encoded
			} else {
				ctx.url.Username += encoded
			}
		}
		ctx.passwordTokenSeenFlag = passwordSeen
		ctx.buffer = ""
	case eof || c == '/' || c == '?' || c == '#' || (ctx.url.IsSpecial() && c == '\\'):
		if ctx.atFlag && ctx.buffer == "" {
			ctx.validationError = true
			return actionIncrement, ctx.errorf(ErrEmptyHostname)
		}
		ctx.pointer -= len(ctx.buffer)
		ctx.buffer = ""
		ctx.state = StateHost
		return actionContinue, nil
	default:
		ctx.buffer += string(c)
	}
	return actionIncrement, nil
}

// stateHost handles both the "host" and "hostname" states of spec.md
// section 4.5: they differ only in how a state override short-circuits.
func (ctx *context) stateHost(c byte, eof bool) (action, error) {
	if ctx.stateOverride != nil && ctx.url.Scheme == "file" {
		ctx.state = StateFileHost
		return actionContinue, nil
	}

	if !eof && c == ':' && !ctx.squareBracesFlag {
		if ctx.buffer == "" {
			ctx.validationError = true
			return actionIncrement, ctx.errorf(ErrEmptyHostname)
		}
		h, verr, err := parseHost(ctx.buffer, !ctx.url.IsSpecial())
		if verr {
			ctx.validationError = true
		}
		if err != nil {
			return actionIncrement, ctx.hostError(err)
		}
		ctx.url.Host = h
		ctx.buffer = ""
		ctx.state = StatePort

		if ctx.stateOverride != nil && *ctx.stateOverride == StateHostname {
			return actionSuccess, nil
		}
		return actionIncrement, nil
	}

	if eof || c == '/' || c == '?' || c == '#' || (ctx.url.IsSpecial() && c == '\\') {
		if ctx.url.IsSpecial() && ctx.buffer == "" {
			ctx.validationError = true
			return actionIncrement, ctx.errorf(ErrEmptyHostname)
		}
		if ctx.stateOverride != nil && ctx.buffer == "" &&
			(ctx.url.IncludesCredentials() || ctx.url.Port != nil) {
			ctx.validationError = true
			return actionIncrement, nil
		}

		h, verr, err := parseHost(ctx.buffer, !ctx.url.IsSpecial())
		if verr {
			ctx.validationError = true
		}
		if err != nil {
			return actionIncrement, ctx.hostError(err)
		}
		ctx.url.Host = h
		ctx.buffer = ""
		ctx.state = StatePathStart

		if ctx.stateOverride != nil {
			return actionSuccess, nil
		}
		return actionContinue, nil
	}

	if c == '[' {
		ctx.squareBracesFlag = true
	} else if c == ']' {
		ctx.squareBracesFlag = false
	}
	ctx.buffer += string(c)
	return actionIncrement, nil
}

func (ctx *context) statePort(c byte, eof bool) (action, error) {
	switch {
	case !eof && isASCIIDigit(c):
		ctx.buffer += string(c)
	case eof || c == '/' || c == '?' || c == '#' || (ctx.url.IsSpecial() && c == '\\') || ctx.stateOverride != nil:
		if ctx.buffer != "" {
			port, ok := isValidPortString(ctx.buffer)
			if !ok {
				ctx.validationError = true
				return actionIncrement, ctx.errorf(ErrInvalidPort)
			}
			if def, hasDef := DefaultPort(ctx.url.Scheme); hasDef && def == port {
				ctx.url.Port = nil
			} else {
				p := port
				ctx.url.Port = &p
			}
			ctx.buffer = ""
		}
		if ctx.stateOverride != nil {
			return actionSuccess, nil
		}
		ctx.state = StatePathStart
		return actionContinue, nil
	default:
		ctx.validationError = true
		return actionIncrement, ctx.errorf(ErrInvalidPort)
	}
	return actionIncrement, nil
}
