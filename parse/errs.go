package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/litview/format"
	"github.com/signadot/litview/token"
)

var (
	ErrEmptyInput = errors.New("empty input")
	ErrSyntax     = errors.New("syntax error")

	// ErrUnsupported marks dict-literal constructs that the dialect
	// deliberately does not accept.
	ErrUnsupported = fmt.Errorf("%w: unsupported construct", ErrSyntax)
)

// SyntaxError is a grammar violation at a byte offset of the input text.
// Err, when set, is the underlying cause.
type SyntaxError struct {
	Dialect format.Dialect
	Msg     string
	Offset  int
	Err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s %s: %s at offset %d", e.Dialect, ErrSyntax, e.Msg, e.Offset)
}

func (e *SyntaxError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrSyntax, e.Err}
	}
	return []error{ErrSyntax}
}

// Locate returns the 1-based line and column of the error in text, which
// must be the text that was parsed.
func (e *SyntaxError) Locate(text []byte) (line, col int) {
	return token.Locate(text, e.Offset)
}
