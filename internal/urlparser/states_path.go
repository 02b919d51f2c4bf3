package urlparser

import "github.com/shapestone/shape-url/internal/pct"

func (ctx *context) statePathStart(c byte, eof bool) (action, error) {
	if ctx.url.IsSpecial() {
		if c == '\\' {
			ctx.validationError = true
		}
		ctx.state = StatePath
		if c != '/' && c != '\\' {
			return actionContinue, nil
		}
		return actionIncrement, nil
	}

	if ctx.stateOverride == nil && c == '?' {
		empty := ""
		ctx.url.Query = &empty
		ctx.state = StateQuery
		return actionIncrement, nil
	}
	if ctx.stateOverride == nil && c == '#' {
		empty := ""
		ctx.url.Fragment = &empty
		ctx.state = StateFragment
		return actionIncrement, nil
	}
	if !eof {
		ctx.state = StatePath
		if c != '/' {
			return actionContinue, nil
		}
	}
	return actionIncrement, nil
}

func (ctx *context) statePath(c byte, eof bool) (action, error) {
	isTerminator := eof || c == '/' ||
		(ctx.url.IsSpecial() && c == '\\') ||
		(ctx.stateOverride == nil && (c == '?' || c == '#'))

	if isTerminator {
		if ctx.url.IsSpecial() && c == '\\' {
			ctx.validationError = true
		}

		consumesSlash := c == '/' || (ctx.url.IsSpecial() && c == '\\')

		switch {
		case isDoubleDotPathSegment(ctx.buffer):
			ctx.url.Path = shortenPath(ctx.url.Scheme, ctx.url.Path)
			if !consumesSlash {
				ctx.url.Path = append(ctx.url.Path, "")
			}
		case isSingleDotPathSegment(ctx.buffer) && !consumesSlash:
			ctx.url.Path = append(ctx.url.Path, "")
		case !isSingleDotPathSegment(ctx.buffer):
			if ctx.url.Scheme == "file" && len(ctx.url.Path) == 0 && isWindowsDriveLetter(ctx.buffer) {
				if ctx.url.Host == nil || ctx.url.Host.String() != "" {
					ctx.validationError = true
					empty := emptyHost()
					ctx.url.Host = &empty
				}
				b := []byte(ctx.buffer)
				b[1] = ':'
				ctx.buffer = string(b)
			}
			ctx.url.Path = append(ctx.url.Path, ctx.buffer)
		}
		ctx.buffer = ""

		if ctx.url.Scheme == "file" && (eof || c == '?' || c == '#') {
			for len(ctx.url.Path) > 1 && ctx.url.Path[0] == "" {
				ctx.validationError = true
				ctx.url.Path = ctx.url.Path[1:]
			}
		}

		if c == '?' {
			empty := ""
			ctx.url.Query = &empty
			ctx.state = StateQuery
		}
		if c == '#' {
			empty := ""
			ctx.url.Fragment = &empty
			ctx.state = StateFragment
		}
		return actionIncrement, nil
	}

	if !isURLCodePoint(c) && c != '%' {
		ctx.validationError = true
	}
	ctx.buffer += string(pct.EncodeByte(c, pct.Path))
	return actionIncrement, nil
}

func (ctx *context) stateCannotBeABaseURLPath(c byte, eof bool) (action, error) {
	switch c {
	case '?':
		if !eof {
			empty := ""
			ctx.url.Query = &empty
			ctx.state = StateQuery
			return actionIncrement, nil
		}
	case '#':
		if !eof {
			empty := ""
			ctx.url.Fragment = &empty
			ctx.state = StateFragment
			return actionIncrement, nil
		}
	}

	if !eof && !isURLCodePoint(c) && c != '%' {
		ctx.validationError = true
	} else if !eof && c == '%' && !pct.IsPercentEncoded(ctx.restFrom(ctx.pointer)) {
		ctx.validationError = true
	}
	if !eof {
		ctx.url.Path[0] += string(pct.EncodeByte(c, pct.C0Control))
	}
	return actionIncrement, nil
}

func (ctx *context) stateQuery(c byte, eof bool) (action, error) {
	if ctx.stateOverride == nil && c == '#' {
		empty := ""
		ctx.url.Fragment = &empty
		ctx.state = StateFragment
		return actionIncrement, nil
	}
	if !eof {
		set := pct.Query
		if ctx.url.IsSpecial() {
			set = pct.SpecialQuery
		}
		*ctx.url.Query += string(pct.EncodeByte(c, set))
	}
	return actionIncrement, nil
}

func (ctx *context) stateFragment(c byte, eof bool) (action, error) {
	if eof {
		return actionIncrement, nil
	}
	if c == 0 {
		ctx.validationError = true
	} else {
		*ctx.url.Fragment += string(pct.EncodeByte(c, pct.Fragment))
	}
	return actionIncrement, nil
}
