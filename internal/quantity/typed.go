package quantity

import (
	"fmt"

	"github.com/san-kum/siunits/internal/storage"
	"github.com/san-kum/siunits/internal/unit"
)

// Typed is implemented by quantity types built on Scalar[float64]. Base
// exposes the underlying scalar and Instantiate rebuilds the concrete type
// from one, so the generic helpers below return Length for Length operands.
type Typed[Q any] interface {
	Base() Scalar[float64]
	Instantiate(Scalar[float64]) Q
}

// Named is a Typed quantity bound to a registered unit family.
type Named[Q any] interface {
	Typed[Q]
	FamilyName() string
}

// TypedVector is the vector counterpart of Typed.
type TypedVector[Q any] interface {
	Base() *Vector[float64]
	Instantiate(*Vector[float64]) Q
}

// NamedVector is a TypedVector bound to a registered unit family.
type NamedVector[Q any] interface {
	TypedVector[Q]
	FamilyName() string
}

func family(name string, u *unit.Unit) (*unit.Family, error) {
	reg := u.Family().Registry()
	if reg == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoRegistry, u.Family().Name())
	}
	return reg.Family(name)
}

// accepts checks that u can carry values of the named family.
func accepts(op, name string, u *unit.Unit) error {
	f, err := family(name, u)
	if err != nil {
		return err
	}
	if f.Dimensions() != u.Dimensions() {
		return &DimensionError{Op: op + " " + name, Left: u.Dimensions(), Right: f.Dimensions()}
	}
	if f.Kind() != u.Kind() {
		return fmt.Errorf("%w: %s %s is %v, %s is %v", ErrKindMismatch, op, u, u.Kind(), name, f.Kind())
	}
	return nil
}

// Make creates a named quantity from a value expressed in u.
func Make[Q Named[Q]](value float64, u *unit.Unit) (Q, error) {
	var q Q
	if err := accepts("make", q.FamilyName(), u); err != nil {
		return q, err
	}
	return q.Instantiate(New(value, u)), nil
}

// MakeIn creates a named quantity from a value and a unit abbreviation or id
// looked up in the quantity's family.
func MakeIn[Q Named[Q]](reg *unit.Registry, value float64, abbrev string) (Q, error) {
	var q Q
	u, err := reg.UnitIn(q.FamilyName(), abbrev)
	if err != nil {
		return q, err
	}
	return q.Instantiate(New(value, u)), nil
}

// As casts s to target and returns it as Q. The target may be any unit
// whose dimensions and kind match both s and Q's family.
func As[Q Named[Q]](s Scalar[float64], target *unit.Unit) (Q, error) {
	var q Q
	if err := accepts("as", q.FamilyName(), target); err != nil {
		return q, err
	}
	cast, err := s.As(target)
	if err != nil {
		return q, err
	}
	return q.Instantiate(cast), nil
}

// AsStandard casts s to the standard unit of Q's family.
func AsStandard[Q Named[Q]](s Scalar[float64]) (Q, error) {
	var q Q
	f, err := family(q.FamilyName(), s.Unit())
	if err != nil {
		return q, err
	}
	return As[Q](s, f.Standard())
}

// Plus returns a + b as Q.
func Plus[Q Typed[Q]](a, b Q) (Q, error) {
	s, err := a.Base().Plus(b.Base())
	if err != nil {
		var zero Q
		return zero, err
	}
	return a.Instantiate(s), nil
}

// Minus returns a - b as Q. For absolute quantities the difference is
// relative and has a different type; use Between.
func Minus[Q Typed[Q]](a, b Q) (Q, error) {
	var zero Q
	s, err := a.Base().Minus(b.Base())
	if err != nil {
		return zero, err
	}
	if s.Kind() != a.Base().Kind() {
		return zero, fmt.Errorf("%w: difference of absolute %s values is relative", ErrKindMismatch, a.Base().Unit().Family().Name())
	}
	return a.Instantiate(s), nil
}

// Shift returns the absolute quantity a moved by the relative quantity d.
func Shift[A Typed[A], R Typed[R]](a A, d R) (A, error) {
	var zero A
	if a.Base().Kind() != unit.Absolute || d.Base().Kind() != unit.Relative {
		return zero, fmt.Errorf("%w: shift needs absolute + relative, got %v + %v", ErrKindMismatch, a.Base().Kind(), d.Base().Kind())
	}
	s, err := a.Base().Plus(d.Base())
	if err != nil {
		return zero, err
	}
	return a.Instantiate(s), nil
}

// Between returns a - b, two absolute quantities, as the relative type R.
func Between[R Named[R], A Typed[A]](a, b A) (R, error) {
	var r R
	s, err := a.Base().Minus(b.Base())
	if err != nil {
		return r, err
	}
	if err := accepts("between", r.FamilyName(), s.Unit()); err != nil {
		return r, err
	}
	return r.Instantiate(s), nil
}

// Interpolate returns zero*(1-ratio) + one*ratio as Q, evaluated in zero's
// display unit.
func Interpolate[Q Typed[Q]](zero, one Q, ratio float64) (Q, error) {
	s, err := zero.Base().Interpolate(one.Base(), ratio)
	if err != nil {
		var q Q
		return q, err
	}
	return zero.Instantiate(s), nil
}

// Min returns the smallest of the arguments by standard-unit value.
func Min[Q Typed[Q]](first Q, rest ...Q) (Q, error) {
	return pick(-1, first, rest)
}

// Max returns the largest of the arguments by standard-unit value.
func Max[Q Typed[Q]](first Q, rest ...Q) (Q, error) {
	return pick(1, first, rest)
}

func pick[Q Typed[Q]](want int, first Q, rest []Q) (Q, error) {
	best := first
	for _, q := range rest {
		c, err := q.Base().Compare(best.Base())
		if err != nil {
			var zero Q
			return zero, err
		}
		if c == want {
			best = q
		}
	}
	return best, nil
}

// PlusVector returns a + b as Q.
func PlusVector[Q TypedVector[Q]](a, b Q) (Q, error) {
	v, err := a.Base().Plus(b.Base())
	if err != nil {
		var zero Q
		return zero, err
	}
	return a.Instantiate(v), nil
}

// MinusVector returns a - b as Q.
func MinusVector[Q TypedVector[Q]](a, b Q) (Q, error) {
	var zero Q
	v, err := a.Base().Minus(b.Base())
	if err != nil {
		return zero, err
	}
	if v.Kind() != a.Base().Kind() {
		return zero, fmt.Errorf("%w: difference of absolute vectors is relative", ErrKindMismatch)
	}
	return a.Instantiate(v), nil
}

// InterpolateVector interpolates elementwise and returns Q.
func InterpolateVector[Q TypedVector[Q]](zero, one Q, ratio float64) (Q, error) {
	v, err := zero.Base().Interpolate(one.Base(), ratio)
	if err != nil {
		var q Q
		return q, err
	}
	return zero.Instantiate(v), nil
}

// MakeVector creates a named vector from values expressed in u.
func MakeVector[Q NamedVector[Q]](values []float64, u *unit.Unit, layout storage.Layout) (Q, error) {
	var q Q
	if err := accepts("make", q.FamilyName(), u); err != nil {
		return q, err
	}
	v, err := NewVector(values, u, layout)
	if err != nil {
		return q, err
	}
	return q.Instantiate(v), nil
}

// AsVector casts v to target and returns it as Q.
func AsVector[Q NamedVector[Q]](v *Vector[float64], target *unit.Unit) (Q, error) {
	var q Q
	if err := accepts("as", q.FamilyName(), target); err != nil {
		return q, err
	}
	cast, err := v.As(target)
	if err != nil {
		return q, err
	}
	return q.Instantiate(cast), nil
}
