package token

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is wrapped by every error reported while reading a document.
	ErrParse = errors.New("parse error")

	ErrEmptyDoc      = errors.New("empty document")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	ErrEmptyToken    = errors.New("empty token")
	ErrTrailing      = errors.New("trailing content")
)

// Err is a parse failure at a position in the input.
type Err struct {
	Err error
	Pos Pos
}

func NewErr(e error, p Pos) *Err {
	return &Err{Err: e, Pos: p}
}

func (e *Err) Error() string {
	return fmt.Sprintf("%s: %s at %s", ErrParse, e.Err.Error(), e.Pos.String())
}

func (e *Err) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
