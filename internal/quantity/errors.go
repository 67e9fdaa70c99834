package quantity

import (
	"errors"
	"fmt"

	"github.com/san-kum/siunits/internal/si"
	"github.com/san-kum/siunits/internal/storage"
	"github.com/san-kum/siunits/internal/unit"
)

var (
	// ErrDimensionMismatch indicates operands or a cast target with different
	// dimension vectors.
	ErrDimensionMismatch = unit.ErrDimensionMismatch

	// ErrAbsolute indicates an operation that is not defined for absolute
	// quantities, such as adding two points in time.
	ErrAbsolute = errors.New("quantity: operation not defined for absolute quantities")

	// ErrKindMismatch indicates a conversion between an absolute and a
	// relative unit.
	ErrKindMismatch = errors.New("quantity: absolute/relative kind mismatch")

	// ErrImmutable indicates an in-place operation on an immutable vector or matrix.
	ErrImmutable = errors.New("quantity: immutable value")

	// ErrNoRegistry indicates a unit whose family is not registered, so no
	// result unit can be derived.
	ErrNoRegistry = errors.New("quantity: unit has no registry")

	ErrSizeMismatch    = storage.ErrSizeMismatch
	ErrShapeMismatch   = storage.ErrShapeMismatch
	ErrEmptyInput      = storage.ErrEmptyInput
	ErrNormalization   = storage.ErrNormalization
	ErrIndexOutOfRange = storage.ErrIndexOutOfRange
)

// DimensionError reports the dimension vectors of a failed operation.
type DimensionError struct {
	Op          string
	Left, Right si.Dimensions
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v: %s [%v] and [%v]", ErrDimensionMismatch, e.Op, e.Left, e.Right)
}

func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}
