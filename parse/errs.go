package parse

import (
	"errors"
	"fmt"
)

var (
	errInternal = errors.New("internal parse error")

	ErrParse          = errors.New("parse error")
	ErrHeader         = fmt.Errorf("%w: bad header", ErrParse)
	ErrVersion        = fmt.Errorf("%w: unsupported version", ErrParse)
	ErrExpected       = fmt.Errorf("%w: expected", ErrParse)
	ErrNumber         = fmt.Errorf("%w: bad number", ErrParse)
	ErrUnknownCommand = fmt.Errorf("%w: unknown command", ErrParse)
	ErrUnknownGlue    = fmt.Errorf("%w: unknown glue", ErrParse)
	ErrUnexpected     = fmt.Errorf("%w: unexpected", ErrParse)
	ErrUnexpectedEOF  = fmt.Errorf("%w: unexpected end of input", ErrParse)
	ErrTrailing       = fmt.Errorf("%w: trailing content", ErrParse)
	ErrNamedContent   = fmt.Errorf("%w: bad named content", ErrParse)
	ErrTooDeep        = fmt.Errorf("%w: nesting too deep", ErrParse)
	ErrInvalid        = fmt.Errorf("%w: invalid node", ErrParse)
)

// Error is a parse error at a position in the input.
type Error struct {
	Pos *Pos
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Err, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// VersionError reports a header version other than the supported one.
type VersionError struct {
	Got, Want int
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%s: got %d, want %d", ErrVersion, e.Got, e.Want)
}

func (e *VersionError) Unwrap() error {
	return ErrVersion
}
