package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch indicates operands of different lengths.
	ErrSizeMismatch = errors.New("storage: size mismatch")

	// ErrShapeMismatch indicates matrix operands of different shapes.
	ErrShapeMismatch = fmt.Errorf("%w (matrix shape)", ErrSizeMismatch)

	// ErrEmptyInput indicates missing values where at least one is required.
	ErrEmptyInput = errors.New("storage: nil or empty input")

	// ErrNormalization indicates normalizing values whose sum is exactly zero.
	ErrNormalization = errors.New("storage: cannot normalize, sum is zero")

	// ErrIndexOutOfRange indicates an element index outside the logical length.
	ErrIndexOutOfRange = errors.New("storage: index out of range")
)

// SizeError reports the lengths involved in a size mismatch.
type SizeError struct {
	Op          string
	Left, Right int
	Wrapped     error
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%v: %s %d vs %d", e.Wrapped, e.Op, e.Left, e.Right)
}

func (e *SizeError) Unwrap() error {
	return e.Wrapped
}
