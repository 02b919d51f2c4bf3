package url

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-url/internal/urlparser"
)

// Error is the public error type returned by the strict parsing entry
// points. It wraps the internal parser's typed error with the component
// name the caller was trying to set, when applicable.
type Error struct {
	// Op names the operation that failed: "parse", "SetHost", "SetPort", ...
	Op string
	// Code mirrors the failure taxonomy of spec.md section 7.
	Code string
	// Input is the raw string that failed to parse.
	Input string

	err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("url: %s %q: %s", e.Op, e.Input, e.Code)
}

func (e *Error) Unwrap() error { return e.err }

func wrapErr(op, input string, err error) *Error {
	if err == nil {
		return nil
	}
	code := "unknown"
	var pe *urlparser.ParseError
	if errors.As(err, &pe) {
		code = pe.Code.String()
	}
	return &Error{Op: op, Code: code, Input: input, err: err}
}
