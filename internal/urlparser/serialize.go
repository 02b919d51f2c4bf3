package urlparser

import "strconv"

// Serialize implements the URL serializer of spec.md section 6. excludeFragment
// lets callers (e.g. a Referer header builder) drop the fragment without a
// second traversal of the record.
func Serialize(u *URL, excludeFragment bool) string {
	var out []byte
	out = append(out, u.Scheme...)
	out = append(out, ':')

	if u.Host != nil {
		out = append(out, '/', '/')
		if u.IncludesCredentials() {
			out = append(out, u.Username...)
			if u.Password != "" {
				out = append(out, ':')
				out = append(out, u.Password...)
			}
			out = append(out, '@')
		}
		out = append(out, u.Host.String()...)
		if u.Port != nil {
			out = append(out, ':')
			out = strconv.AppendUint(out, uint64(*u.Port), 10)
		}
	} else if u.Scheme == "file" {
		out = append(out, '/', '/')
	}

	switch {
	case u.CannotBeABaseURL:
		if len(u.Path) > 0 {
			out = append(out, u.Path[0]...)
		}
	default:
		if u.Host == nil && len(u.Path) > 1 && u.Path[0] == "" {
			// A host-less, multi-segment path whose first segment is empty
			// would otherwise round-trip into an authority slash; spec.md's
			// serializer inserts the "/." guard the living standard uses
			// for this case.
			out = append(out, '/', '.')
		}
		for _, seg := range u.Path {
			out = append(out, '/')
			out = append(out, seg...)
		}
	}

	if u.Query != nil {
		out = append(out, '?')
		out = append(out, *u.Query...)
	}
	if !excludeFragment && u.Fragment != nil {
		out = append(out, '#')
		out = append(out, *u.Fragment...)
	}

	return string(out)
}
