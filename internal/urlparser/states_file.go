package urlparser

func (ctx *context) stateFile(c byte, eof bool) (action, error) {
	ctx.url.Scheme = "file"

	switch {
	case c == '/' || c == '\\':
		if c == '\\' {
			ctx.validationError = true
		}
		ctx.state = StateFileSlash
	case ctx.base != nil && ctx.base.Scheme == "file":
		switch {
		case eof:
			ctx.url.Host = ctx.base.Host
			ctx.url.Path = append([]string(nil), ctx.base.Path...)
			ctx.url.Query = ctx.base.Query
		case c == '?':
			ctx.url.Host = ctx.base.Host
			ctx.url.Path = append([]string(nil), ctx.base.Path...)
			empty := ""
			ctx.url.Query = &empty
			ctx.state = StateQuery
		case c == '#':
			ctx.url.Host = ctx.base.Host
			ctx.url.Path = append([]string(nil), ctx.base.Path...)
			ctx.url.Query = ctx.base.Query
			empty := ""
			ctx.url.Fragment = &empty
			ctx.state = StateFragment
		default:
			if !isWindowsDriveLetterAt(ctx.input, ctx.pointer) {
				ctx.url.Host = ctx.base.Host
				ctx.url.Path = append([]string(nil), ctx.base.Path...)
				ctx.url.Path = shortenPath(ctx.url.Scheme, ctx.url.Path)
			} else {
				ctx.validationError = true
			}
			ctx.state = StatePath
			return actionContinue, nil
		}
	default:
		ctx.state = StatePath
		return actionContinue, nil
	}
	return actionIncrement, nil
}

func (ctx *context) stateFileSlash(c byte, eof bool) (action, error) {
	if c == '/' || c == '\\' {
		if c == '\\' {
			ctx.validationError = true
		}
		ctx.state = StateFileHost
		return actionIncrement, nil
	}

	if ctx.base != nil && ctx.base.Scheme == "file" && !isWindowsDriveLetterAt(ctx.input, ctx.pointer) {
		if len(ctx.base.Path) > 0 && isWindowsDriveLetter(ctx.base.Path[0]) {
			ctx.url.Path = append(ctx.url.Path, ctx.base.Path[0])
		} else {
			ctx.url.Host = ctx.base.Host
		}
	}
	ctx.state = StatePath
	return actionContinue, nil
}

func (ctx *context) stateFileHost(c byte, eof bool) (action, error) {
	if eof || c == '/' || c == '\\' || c == '?' || c == '#' {
		if ctx.stateOverride == nil && isWindowsDriveLetter(ctx.buffer) {
			ctx.validationError = true
			ctx.state = StatePath
			return actionContinue, nil
		}
		if ctx.buffer == "" {
			empty := emptyHost()
			ctx.url.Host = &empty
			if ctx.stateOverride != nil {
				return actionSuccess, nil
			}
			ctx.state = StatePathStart
			return actionContinue, nil
		}

		h, verr, err := parseHost(ctx.buffer, !ctx.url.IsSpecial())
		if verr {
			ctx.validationError = true
		}
		if err != nil {
			return actionIncrement, ctx.hostError(err)
		}
		if h.String() == "localhost" {
			empty := emptyHost()
			h = &empty
		}
		ctx.url.Host = h

		if ctx.stateOverride != nil {
			return actionSuccess, nil
		}
		ctx.buffer = ""
		ctx.state = StatePathStart
		return actionContinue, nil
	}

	ctx.buffer += string(c)
	return actionIncrement, nil
}
