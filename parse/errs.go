package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/jsontree/token"
)

var (
	ErrParse                 = errors.New("parse error")
	ErrNoInput               = fmt.Errorf("%w: no input", ErrParse)
	ErrValue                 = fmt.Errorf("%w: invalid value", ErrParse)
	ErrUnterminatedContainer = fmt.Errorf("%w: unterminated container", ErrParse)
	ErrTrailing              = fmt.Errorf("%w: trailing garbage", ErrParse)
)

// ParseError reports a failure and the first offending byte.
type ParseError struct {
	Err error
	Pos token.Pos
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
