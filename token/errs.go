package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8           = errors.New("bad utf8")
	ErrUnterminated      = errors.New("unterminated")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrNumber            = errors.New("malformed number")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode escape")
	ErrUnicodeControl    = errors.New("unicode control character in string")
	ErrSingleQuote       = errors.New("single-quoted strings are not allowed")
	ErrComment           = errors.New("comments are not allowed")
	ErrTemplate          = errors.New("template literals are not supported")
	ErrUnexpected        = errors.New("unexpected character")
)

// TokenizeErr is a scan failure at a byte offset of the scanned text.
type TokenizeErr struct {
	Err error
	Off int
	Msg string
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, off int) *TokenizeErr {
	return &TokenizeErr{Err: e, Off: off}
}

func (e *TokenizeErr) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s at offset %d", e.Err.Error(), e.Msg, e.Off)
	}
	return fmt.Sprintf("%s at offset %d", e.Err.Error(), e.Off)
}

func ExpectedErr(what string, off int) error {
	return &TokenizeErr{Err: ErrUnexpected, Off: off, Msg: "expected " + what}
}

func UnexpectedErr(what string, off int) error {
	return &TokenizeErr{Err: ErrUnexpected, Off: off, Msg: fmt.Sprintf("%q", what)}
}

func LeadingZeroErr(off int) error {
	return NewTokenizeErr(ErrNumberLeadingZero, off)
}
