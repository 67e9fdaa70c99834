package si

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates malformed textual input.
	ErrParse = errors.New("si: parse error")
	// ErrExponentRange reports an exponent that does not fit in int8.
	ErrExponentRange = errors.New("si: exponent out of range")
)

// ParseError describes where a textual unit or quantity failed to parse.
type ParseError struct {
	Input  string
	Pos    int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%v: %q at offset %d: %s", ErrParse, e.Input, e.Pos, e.Reason)
	}
	return fmt.Sprintf("%v: %q: %s", ErrParse, e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}
