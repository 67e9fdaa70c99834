package quantity

import (
	"math"

	"github.com/san-kum/siunits/internal/si"
	"github.com/san-kum/siunits/internal/storage"
	"github.com/san-kum/siunits/internal/unit"
)

// Scalar is a single value with a display unit. The zero Scalar has no unit
// and is not usable.
type Scalar[T storage.Float] struct {
	value T // in the standard unit of u's family
	u     *unit.Unit
}

// New creates a scalar from a value expressed in u.
func New[T storage.Float](value T, u *unit.Unit) Scalar[T] {
	return Scalar[T]{value: T(u.ToStandard(float64(value))), u: u}
}

// FromSI creates a scalar from a value in the standard unit, displayed in u.
func FromSI[T storage.Float](value T, u *unit.Unit) Scalar[T] {
	return Scalar[T]{value: value, u: u}
}

// Instantiate creates a scalar for a value in the standard unit of dims,
// resolving the unit through reg. Dimension vectors without a named family
// get the registry's anonymous unit.
func Instantiate[T storage.Float](value T, dims si.Dimensions, reg *unit.Registry) Scalar[T] {
	return Scalar[T]{value: value, u: reg.LookupOrCreate(dims)}
}

func (s Scalar[T]) Unit() *unit.Unit                { return s.u }
func (s Scalar[T]) Kind() unit.Kind                 { return s.u.Kind() }
func (s Scalar[T]) Dimensions() si.Dimensions       { return s.u.Dimensions() }
func (s Scalar[T]) SI() T                           { return s.value }
func (s Scalar[T]) Base() Scalar[T]                 { return s }
func (Scalar[T]) Instantiate(s Scalar[T]) Scalar[T] { return s }

// Value returns the value in the display unit.
func (s Scalar[T]) Value() T {
	return T(s.u.FromStandard(float64(s.value)))
}

// In returns the value expressed in u.
func (s Scalar[T]) In(u *unit.Unit) (T, error) {
	if err := checkTarget("convert", s.u, u); err != nil {
		return 0, err
	}
	return T(u.FromStandard(float64(s.value))), nil
}

// InUnit returns the same quantity displayed in u.
func (s Scalar[T]) InUnit(u *unit.Unit) (Scalar[T], error) {
	if err := checkTarget("convert", s.u, u); err != nil {
		return Scalar[T]{}, err
	}
	return Scalar[T]{value: s.value, u: u}, nil
}

// As casts s to target, which may be any unit with the same dimension
// vector and kind. This is how the anonymous result of a product becomes a
// named quantity again.
func (s Scalar[T]) As(target *unit.Unit) (Scalar[T], error) {
	if err := checkTarget("as", s.u, target); err != nil {
		return Scalar[T]{}, err
	}
	return Scalar[T]{value: s.value, u: target}, nil
}

// Plus returns s + o in the display unit given by the kind rules.
func (s Scalar[T]) Plus(o Scalar[T]) (Scalar[T], error) {
	u, err := sumUnit(s.u, o.u)
	if err != nil {
		return Scalar[T]{}, err
	}
	return Scalar[T]{value: s.value + o.value, u: u}, nil
}

// Minus returns s - o. The difference of two absolute quantities is relative.
func (s Scalar[T]) Minus(o Scalar[T]) (Scalar[T], error) {
	u, err := differenceUnit(s.u, o.u)
	if err != nil {
		return Scalar[T]{}, err
	}
	return Scalar[T]{value: s.value - o.value, u: u}, nil
}

// Times returns s * o in the standard unit for the summed dimension vector.
func (s Scalar[T]) Times(o Scalar[T]) (Scalar[T], error) {
	u, err := productUnit("times", s.u, o.u)
	if err != nil {
		return Scalar[T]{}, err
	}
	return Scalar[T]{value: s.value * o.value, u: u}, nil
}

// Divide returns s / o in the standard unit for the dimension difference.
func (s Scalar[T]) Divide(o Scalar[T]) (Scalar[T], error) {
	u, err := productUnit("divide", s.u, o.u)
	if err != nil {
		return Scalar[T]{}, err
	}
	return Scalar[T]{value: s.value / o.value, u: u}, nil
}

// Reciprocal returns 1 / s.
func (s Scalar[T]) Reciprocal() (Scalar[T], error) {
	u, err := productUnit("reciprocal", s.u, nil)
	if err != nil {
		return Scalar[T]{}, err
	}
	return Scalar[T]{value: 1 / s.value, u: u}, nil
}

// MultiplyBy scales the value by a dimensionless factor.
func (s Scalar[T]) MultiplyBy(f T) Scalar[T] { return Scalar[T]{value: s.value * f, u: s.u} }

// DivideBy divides the value by a dimensionless factor.
func (s Scalar[T]) DivideBy(f T) Scalar[T] { return Scalar[T]{value: s.value / f, u: s.u} }

func (s Scalar[T]) Neg() Scalar[T] { return Scalar[T]{value: -s.value, u: s.u} }

func (s Scalar[T]) Abs() Scalar[T] {
	return Scalar[T]{value: T(math.Abs(float64(s.value))), u: s.u}
}

// Interpolate returns s*(1-ratio) + o*ratio evaluated in s's display unit.
// The ratio is not limited to [0, 1].
func (s Scalar[T]) Interpolate(o Scalar[T], ratio float64) (Scalar[T], error) {
	if err := checkTarget("interpolate", s.u, o.u); err != nil {
		return Scalar[T]{}, err
	}
	return s.interpolate(o, ratio), nil
}

func (s Scalar[T]) interpolate(o Scalar[T], ratio float64) Scalar[T] {
	zero := s.u.FromStandard(float64(s.value))
	one := s.u.FromStandard(float64(o.value))
	return New(T(zero*(1-ratio)+one*ratio), s.u)
}

// Compare orders s and o by their standard-unit values.
func (s Scalar[T]) Compare(o Scalar[T]) (int, error) {
	if s.Dimensions() != o.Dimensions() {
		return 0, &DimensionError{Op: "compare", Left: s.Dimensions(), Right: o.Dimensions()}
	}
	return compare(s.value, o.value), nil
}

func compare[T storage.Float](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal reports whether s and o have the same dimensions and standard-unit
// value, regardless of display unit.
func (s Scalar[T]) Equal(o Scalar[T]) bool {
	return s.Dimensions() == o.Dimensions() && s.value == o.value
}

// Approx reports whether s and o have the same dimensions and standard-unit
// values within relative tolerance tol.
func (s Scalar[T]) Approx(o Scalar[T], tol float64) bool {
	if s.Dimensions() != o.Dimensions() {
		return false
	}
	a, b := float64(s.value), float64(o.value)
	return a == b || math.Abs(a-b) <= tol*math.Max(math.Abs(a), math.Abs(b))
}

func (s Scalar[T]) String() string { return Format(s) }
