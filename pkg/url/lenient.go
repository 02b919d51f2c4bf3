package url

import (
	"strings"

	"github.com/shapestone/shape-url/internal/tokenizer"
	"github.com/shapestone/shape-url/internal/urlparser"
)

// ParseLenient performs best-effort parsing of a URL string. It never
// returns an error: malformed input is recovered from where possible and
// every recovery step is recorded in the returned warnings, mirroring the
// package's degrade-gracefully-and-explain-yourself lenient pattern.
func ParseLenient(s string) (*URL, []string) {
	if raw, validationError, err := urlparser.Parse([]byte(s), nil); err == nil {
		if validationError {
			return wrap(raw), []string{"input has non-fatal validation errors; parsed through them"}
		}
		return wrap(raw), nil
	}

	var warnings []string
	candidate := s

	tok := tokenizer.NewTokenizer()
	tok.Initialize(candidate)
	tokens, _ := tok.Tokenize()

	hasScheme := false
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Kind() == tokenizer.TokenText && tokens[i+1].Kind() == tokenizer.TokenColon {
			hasScheme = true
			break
		}
	}

	if !hasScheme {
		warnings = append(warnings, "input has no scheme; assuming \"http://\"")
		candidate = "http://" + strings.TrimPrefix(candidate, "//")
		if raw, _, err := urlparser.Parse([]byte(candidate), nil); err == nil {
			return wrap(raw), warnings
		}
	}

	// Last resort: strip bytes the tokenizer couldn't place as scheme/
	// authority/path text and retry once more with a synthesized scheme.
	var rebuilt strings.Builder
	for _, tk := range tokens {
		rebuilt.WriteString(tk.ValueString())
	}
	candidate = rebuilt.String()
	if !strings.Contains(candidate, "://") {
		candidate = "http://" + candidate
	}
	raw, _, err := urlparser.Parse([]byte(candidate), nil)
	if err != nil {
		warnings = append(warnings, "could not recover a usable URL from input: "+err.Error())
		return wrap(&urlparser.URL{}), warnings
	}
	warnings = append(warnings, "input required reconstruction from its lexical tokens")
	return wrap(raw), warnings
}
