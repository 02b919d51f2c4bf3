package urlparser

// dispatch routes the current state to its handling function. Every state
// function receives the byte at the cursor (0 when eof is true) and reports
// what the driver loop in Parse should do next.
func (ctx *context) dispatch(c byte, eof bool) (action, error) {
	switch ctx.state {
	case StateSchemeStart:
		return ctx.stateSchemeStart(c, eof)
	case StateScheme:
		return ctx.stateScheme(c, eof)
	case StateNoScheme:
		return ctx.stateNoScheme(c, eof)
	case StateSpecialRelativeOrAuthority:
		return ctx.stateSpecialRelativeOrAuthority(c, eof)
	case StatePathOrAuthority:
		return ctx.statePathOrAuthority(c, eof)
	case StateRelative:
		return ctx.stateRelative(c, eof)
	case StateRelativeSlash:
		return ctx.stateRelativeSlash(c, eof)
	case StateSpecialAuthoritySlashes:
		return ctx.stateSpecialAuthoritySlashes(c, eof)
	case StateSpecialAuthorityIgnoreSlashes:
		return ctx.stateSpecialAuthorityIgnoreSlashes(c, eof)
	case StateAuthority:
		return ctx.stateAuthority(c, eof)
	case StateHost, StateHostname:
		return ctx.stateHost(c, eof)
	case StatePort:
		return ctx.statePort(c, eof)
	case StateFile:
		return ctx.stateFile(c, eof)
	case StateFileSlash:
		return ctx.stateFileSlash(c, eof)
	case StateFileHost:
		return ctx.stateFileHost(c, eof)
	case StatePathStart:
		return ctx.statePathStart(c, eof)
	case StatePath:
		return ctx.statePath(c, eof)
	case StateCannotBeABaseURLPath:
		return ctx.stateCannotBeABaseURLPath(c, eof)
	case StateQuery:
		return ctx.stateQuery(c, eof)
	case StateFragment:
		return ctx.stateFragment(c, eof)
	}
	panic("urlparser: unhandled state")
}

// Parse runs the basic URL parser of spec.md section 4.5 over input,
// resolving against base when input does not carry its own scheme. It
// reports a fatal error only for conditions spec.md marks non-recoverable;
// anything else is folded into the validationError return, matching the
// living-standard distinction between a parse failure and a mere
// validation error.
func Parse(input []byte, base *URL) (*URL, bool, error) {
	return parse(input, base, nil, nil)
}

// ParseWithStateOverride re-parses a single URL component in place, the
// mechanism spec.md's component setters (SetHost, SetPort, ...) build on.
// seed carries the URL being mutated; override pins the state the parser
// starts in and exits on success rather than running the full state
// machine to completion.
func ParseWithStateOverride(input []byte, base *URL, override State, seed *URL) (*URL, bool, error) {
	return parse(input, base, &override, seed)
}

func parse(raw []byte, base *URL, stateOverride *State, seed *URL) (*URL, bool, error) {
	input, removed := sanitize(raw)

	u := seed
	if u == nil {
		u = &URL{}
	}

	startState := StateSchemeStart
	if stateOverride != nil {
		startState = *stateOverride
	}

	ctx := &context{
		input:           input,
		url:             u,
		base:            base,
		state:           startState,
		stateOverride:   stateOverride,
		validationError: removed,
	}

	for {
		c, eof := ctx.peek()
		act, err := ctx.dispatch(c, eof)
		if err != nil {
			return nil, true, err
		}
		if act == actionSuccess {
			return ctx.url, ctx.validationError, nil
		}
		if act == actionIncrement {
			ctx.pointer++
			if eof {
				break
			}
		}
	}
	return ctx.url, ctx.validationError, nil
}
