package urlparser

// stateSchemeStart is the entry state: the first byte of a URL must be an
// ASCII alpha to have any chance of being a scheme.
func (ctx *context) stateSchemeStart(c byte, eof bool) (action, error) {
	if !eof && isASCIIAlpha(c) {
		ctx.buffer += string(toLowerByte(c))
		ctx.state = StateScheme
		return actionIncrement, nil
	}
	if ctx.stateOverride == nil {
		ctx.state = StateNoScheme
		ctx.pointer = 0
		return actionContinue, nil
	}
	ctx.validationError = true
	return actionIncrement, ctx.errorf(ErrInvalidScheme)
}

func (ctx *context) stateScheme(c byte, eof bool) (action, error) {
	if !eof && (isASCIIAlnum(c) || c == '+' || c == '-' || c == '.') {
		ctx.buffer += string(toLowerByte(c))
		return actionIncrement, nil
	}
	if !eof && c == ':' {
		if ctx.stateOverride != nil {
			wasSpecial := ctx.url.IsSpecial()
			willBeSpecial := IsSpecial(ctx.buffer)
			if wasSpecial != willBeSpecial {
				return actionIncrement, ctx.errorf(ErrInvalidScheme)
			}
			if (ctx.url.IncludesCredentials() || ctx.url.Port != nil) && ctx.buffer == "file" {
				return actionIncrement, ctx.errorf(ErrInvalidScheme)
			}
			if ctx.url.Scheme == "file" && ctx.url.Host != nil && ctx.url.Host.String() == "" {
				return actionIncrement, ctx.errorf(ErrInvalidScheme)
			}
			ctx.url.Scheme = ctx.buffer
			if def, ok := DefaultPort(ctx.url.Scheme); ok && ctx.url.Port != nil && *ctx.url.Port == def {
				ctx.url.Port = nil
			}
			return actionSuccess, nil
		}

		ctx.url.Scheme = ctx.buffer
		ctx.buffer = ""

		switch {
		case ctx.url.Scheme == "file":
			if !ctx.hasPrefixAt(ctx.pointer+1, "//") {
				ctx.validationError = true
			}
			ctx.state = StateFile
		case ctx.url.IsSpecial() && ctx.base != nil && ctx.base.Scheme == ctx.url.Scheme:
			ctx.state = StateSpecialRelativeOrAuthority
		case ctx.url.IsSpecial():
			ctx.state = StateSpecialAuthoritySlashes
		case ctx.hasPrefixAt(ctx.pointer+1, "/"):
			ctx.state = StatePathOrAuthority
			ctx.pointer++
		default:
			ctx.url.CannotBeABaseURL = true
			ctx.url.Path = append(ctx.url.Path, "")
			ctx.state = StateCannotBeABaseURLPath
		}
		return actionIncrement, nil
	}
	if ctx.stateOverride == nil {
		ctx.buffer = ""
		ctx.state = StateNoScheme
		ctx.pointer = 0
		return actionContinue, nil
	}
	return actionIncrement, ctx.errorf(ErrInvalidScheme)
}

func (ctx *context) stateNoScheme(c byte, eof bool) (action, error) {
	if ctx.base == nil || (ctx.base.CannotBeABaseURL && c != '#') {
		ctx.validationError = true
		return actionIncrement, ctx.errorf(ErrNotAnAbsoluteURLWithFragment)
	}
	if ctx.base.CannotBeABaseURL && c == '#' {
		ctx.url.Scheme = ctx.base.Scheme
		ctx.url.Path = append([]string(nil), ctx.base.Path...)
		ctx.url.Query = ctx.base.Query
		empty := ""
		ctx.url.Fragment = &empty
		ctx.url.CannotBeABaseURL = true
		ctx.state = StateFragment
		return actionIncrement, nil
	}
	if ctx.base.Scheme != "file" {
		ctx.state = StateRelative
	} else {
		ctx.state = StateFile
	}
	ctx.pointer = 0
	return actionContinue, nil
}

func (ctx *context) stateSpecialRelativeOrAuthority(c byte, eof bool) (action, error) {
	if !eof && c == '/' && ctx.hasPrefixAt(ctx.pointer+1, "/") {
		ctx.pointer++
		ctx.state = StateSpecialAuthorityIgnoreSlashes
		return actionIncrement, nil
	}
	ctx.validationError = true
	ctx.state = StateRelative
	return actionContinue, nil
}

func (ctx *context) statePathOrAuthority(c byte, eof bool) (action, error) {
	if !eof && c == '/' {
		ctx.state = StateAuthority
		return actionIncrement, nil
	}
	ctx.state = StatePath
	return actionContinue, nil
}

func (ctx *context) stateRelative(c byte, eof bool) (action, error) {
	ctx.url.Scheme = ctx.base.Scheme

	switch {
	case eof:
		ctx.url.Username = ctx.base.Username
		ctx.url.Password = ctx.base.Password
		ctx.url.Host = ctx.base.Host
		ctx.url.Port = ctx.base.Port
		ctx.url.Path = append([]string(nil), ctx.base.Path...)
		ctx.url.Query = ctx.base.Query
	case c == '/':
		ctx.state = StateRelativeSlash
	case c == '?':
		ctx.url.Username = ctx.base.Username
		ctx.url.Password = ctx.base.Password
		ctx.url.Host = ctx.base.Host
		ctx.url.Port = ctx.base.Port
		ctx.url.Path = append([]string(nil), ctx.base.Path...)
		empty := ""
		ctx.url.Query = &empty
		ctx.state = StateQuery
	case c == '#':
		ctx.url.Username = ctx.base.Username
		ctx.url.Password = ctx.base.Password
		ctx.url.Host = ctx.base.Host
		ctx.url.Port = ctx.base.Port
		ctx.url.Path = append([]string(nil), ctx.base.Path...)
		ctx.url.Query = ctx.base.Query
		empty := ""
		ctx.url.Fragment = &empty
		ctx.state = StateFragment
	case ctx.url.IsSpecial() && c == '\\':
		ctx.validationError = true
		ctx.state = StateRelativeSlash
	default:
		ctx.url.Username = ctx.base.Username
		ctx.url.Password = ctx.base.Password
		ctx.url.Host = ctx.base.Host
		ctx.url.Port = ctx.base.Port
		ctx.url.Path = append([]string(nil), ctx.base.Path...)
		if len(ctx.url.Path) > 0 {
			ctx.url.Path = ctx.url.Path[:len(ctx.url.Path)-1]
		}
		ctx.state = StatePath
		return actionContinue, nil
	}
	return actionIncrement, nil
}

func (ctx *context) stateRelativeSlash(c byte, eof bool) (action, error) {
	switch {
	case ctx.url.IsSpecial() && (c == '/' || c == '\\'):
		if c == '\\' {
			ctx.validationError = true
		}
		ctx.state = StateSpecialAuthorityIgnoreSlashes
	case c == '/':
		ctx.state = StateAuthority
	default:
		ctx.url.Username = ctx.base.Username
		ctx.url.Password = ctx.base.Password
		ctx.url.Host = ctx.base.Host
		ctx.url.Port = ctx.base.Port
		ctx.state = StatePath
		return actionContinue, nil
	}
	return actionIncrement, nil
}

func (ctx *context) stateSpecialAuthoritySlashes(c byte, eof bool) (action, error) {
	if !eof && c == '/' && ctx.hasPrefixAt(ctx.pointer+1, "/") {
		ctx.pointer++
		ctx.state = StateSpecialAuthorityIgnoreSlashes
		return actionIncrement, nil
	}
	ctx.validationError = true
	ctx.state = StateSpecialAuthorityIgnoreSlashes
	return actionContinue, nil
}

func (ctx *context) stateSpecialAuthorityIgnoreSlashes(c byte, eof bool) (action, error) {
	if eof || (c != '/' && c != '\\') {
		ctx.state = StateAuthority
		return actionContinue, nil
	}
	ctx.validationError = true
	return actionIncrement, nil
}
