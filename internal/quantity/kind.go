package quantity

import (
	"fmt"

	"github.com/san-kum/siunits/internal/si"
	"github.com/san-kum/siunits/internal/unit"
)

// sumUnit returns the display unit of a + b.
func sumUnit(a, b *unit.Unit) (*unit.Unit, error) {
	if a.Dimensions() != b.Dimensions() {
		return nil, &DimensionError{Op: "plus", Left: a.Dimensions(), Right: b.Dimensions()}
	}
	switch {
	case a.Kind() == unit.Absolute && b.Kind() == unit.Absolute:
		return nil, fmt.Errorf("%w: %s + %s", ErrAbsolute, a.Family().Name(), b.Family().Name())
	case b.Kind() == unit.Absolute:
		return b, nil
	}
	return a, nil
}

// differenceUnit returns the display unit of a - b.
func differenceUnit(a, b *unit.Unit) (*unit.Unit, error) {
	if a.Dimensions() != b.Dimensions() {
		return nil, &DimensionError{Op: "minus", Left: a.Dimensions(), Right: b.Dimensions()}
	}
	switch {
	case a.Kind() == unit.Absolute && b.Kind() == unit.Absolute:
		return a.Relative(), nil
	case b.Kind() == unit.Absolute:
		return nil, fmt.Errorf("%w: %s - %s", ErrAbsolute, a.Family().Name(), b.Family().Name())
	}
	return a, nil
}

// productUnit derives the standard unit of a op b from the registry of a or
// b. op is one of "times", "divide" or "reciprocal"; b is nil for the last.
func productUnit(op string, a, b *unit.Unit) (*unit.Unit, error) {
	if a.Kind() == unit.Absolute || (b != nil && b.Kind() == unit.Absolute) {
		return nil, fmt.Errorf("%w: %s", ErrAbsolute, op)
	}
	var (
		dims si.Dimensions
		err  error
	)
	switch op {
	case "times":
		dims, err = a.Dimensions().Plus(b.Dimensions())
	case "divide":
		dims, err = a.Dimensions().Minus(b.Dimensions())
	case "reciprocal":
		dims, err = a.Dimensions().Negate()
	default:
		panic("quantity: unknown product op " + op)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return derivedUnit(a, b, dims)
}

// powerUnit derives the standard unit of a raised to n.
func powerUnit(op string, a *unit.Unit, n int) (*unit.Unit, error) {
	if a.Kind() == unit.Absolute {
		return nil, fmt.Errorf("%w: %s", ErrAbsolute, op)
	}
	dims, err := a.Dimensions().Pow(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return derivedUnit(a, nil, dims)
}

func derivedUnit(a, b *unit.Unit, dims si.Dimensions) (*unit.Unit, error) {
	reg := a.Family().Registry()
	if reg == nil && b != nil {
		reg = b.Family().Registry()
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoRegistry, a.Family().Name())
	}
	return reg.LookupOrCreate(dims), nil
}

// checkTarget verifies that values in from may be expressed in to.
func checkTarget(op string, from, to *unit.Unit) error {
	if from.Dimensions() != to.Dimensions() {
		return &DimensionError{Op: op, Left: from.Dimensions(), Right: to.Dimensions()}
	}
	if from.Kind() != to.Kind() {
		return fmt.Errorf("%w: %s %s (%v) to %s (%v)", ErrKindMismatch, op, from, from.Kind(), to, to.Kind())
	}
	return nil
}
