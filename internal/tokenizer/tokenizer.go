package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for the coarse URL delimiter grammar.
// Unlike HTTP, a URL isn't line- or space-oriented, so the matcher list
// is built from the handful of ASCII bytes the basic URL parser's state
// machine treats as structural:
//  1. "//" (authority marker) or a lone "/", both from SlashSlashMatcher
//  2. ":" (scheme/port separator)
//  3. "@" (userinfo separator)
//  4. "[" / "]" (IPv6 literal brackets)
//  5. "?" (query marker)
//  6. "#" (fragment marker)
//  7. Generic text (scheme names, host labels, path segments, ...)
//
// Note: like the HTTP tokenizer this is built without the default
// whitespace skipper, because URLs carry no insignificant whitespace —
// every byte belongs to some token.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		SlashSlashMatcher(),
		tokenizer.StringMatcherFunc(TokenColon, ":"),
		tokenizer.StringMatcherFunc(TokenAt, "@"),
		tokenizer.StringMatcherFunc(TokenLBracket, "["),
		tokenizer.StringMatcherFunc(TokenRBracket, "]"),
		tokenizer.StringMatcherFunc(TokenQuestion, "?"),
		tokenizer.StringMatcherFunc(TokenHash, "#"),
		TextMatcher(),
	)
}

// NewTokenizerWithStream creates a URL tokenizer using a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// SlashSlashMatcher matches "//" as a single token so a bare authority
// marker is never split into two misleading Slash tokens.
func SlashSlashMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '/' {
			return nil
		}

		// Peek two characters ahead without consuming on a miss: shape-core's
		// Stream only exposes PeekChar/NextChar, so the lookahead has to
		// consume-then-compare, same trick the teacher's VersionMatcher uses
		// for its literal-prefix match.
		stream.NextChar()
		r2, ok2 := stream.PeekChar()
		if ok2 && r2 == '/' {
			stream.NextChar()
			return tokenizer.NewToken(TokenSlashSlash, []rune{'/', '/'})
		}

		// Not a second slash: this matcher already consumed the first one,
		// so it reports it as the lone-slash token itself; no other matcher
		// in NewTokenizer handles "/".
		return tokenizer.NewToken(TokenSlash, []rune{'/'})
	}
}

// TextMatcher matches any run of bytes that isn't one of the structural
// delimiters above. This covers scheme names, userinfo, host labels,
// path segments, query strings and fragments alike — the tokenizer
// doesn't attempt to distinguish them; that's internal/urlparser's job.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if r == '/' || r == ':' || r == '@' || r == '[' || r == ']' || r == '?' || r == '#' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenText, value)
	}
}
