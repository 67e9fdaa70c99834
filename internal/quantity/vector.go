package quantity

import (
	"fmt"
	"math"

	"github.com/san-kum/siunits/internal/si"
	"github.com/san-kum/siunits/internal/storage"
	"github.com/san-kum/siunits/internal/unit"
)

// Vector is a sequence of values with one display unit. Immutable vectors
// return new vectors from every operation; a view obtained with Mutable also
// supports the in-place methods and copies the shared storage on its first
// write.
type Vector[T storage.Float] struct {
	data    *storage.Shared[*storage.Vector[T]]
	u       *unit.Unit
	mutable bool
}

// NewVector creates a vector from values expressed in u. Each value is
// converted to the standard unit once.
func NewVector[T storage.Float](values []T, u *unit.Unit, layout storage.Layout) (*Vector[T], error) {
	data, err := storage.NewVector(values, u.Scale(), layout)
	if err != nil {
		return nil, err
	}
	return wrap(data, u), nil
}

// NewSparseVector creates a sparse vector of the given length from
// index/value pairs expressed in u. Absent indices are zero in the standard
// unit.
func NewSparseVector[T storage.Float](entries map[int]T, length int, u *unit.Unit) (*Vector[T], error) {
	if entries == nil {
		return nil, ErrEmptyInput
	}
	std := make(map[int]T, len(entries))
	for i, x := range entries {
		std[i] = T(u.ToStandard(float64(x)))
	}
	data, err := storage.NewSparse(std, length)
	if err != nil {
		return nil, err
	}
	return wrap(data, u), nil
}

// VectorFromSI wraps storage holding standard-unit values. The vector takes
// ownership of data.
func VectorFromSI[T storage.Float](data *storage.Vector[T], u *unit.Unit) (*Vector[T], error) {
	if data == nil {
		return nil, ErrEmptyInput
	}
	return wrap(data, u), nil
}

// InstantiateVector wraps standard-unit storage in the unit reg resolves for dims.
func InstantiateVector[T storage.Float](data *storage.Vector[T], dims si.Dimensions, reg *unit.Registry) (*Vector[T], error) {
	return VectorFromSI(data, reg.LookupOrCreate(dims))
}

func wrap[T storage.Float](data *storage.Vector[T], u *unit.Unit) *Vector[T] {
	return &Vector[T]{data: storage.NewShared(data), u: u}
}

func (v *Vector[T]) derive(data *storage.Vector[T], u *unit.Unit) *Vector[T] {
	return wrap(data, u)
}

func (v *Vector[T]) Unit() *unit.Unit                    { return v.u }
func (v *Vector[T]) Kind() unit.Kind                     { return v.u.Kind() }
func (v *Vector[T]) Dimensions() si.Dimensions           { return v.u.Dimensions() }
func (v *Vector[T]) Len() int                            { return v.data.Read().Len() }
func (v *Vector[T]) Layout() storage.Layout              { return v.data.Read().Layout() }
func (v *Vector[T]) IsMutable() bool                     { return v.mutable }
func (v *Vector[T]) Cardinality() int                    { return v.data.Read().Cardinality() }
func (v *Vector[T]) Base() *Vector[T]                    { return v }
func (v *Vector[T]) Instantiate(o *Vector[T]) *Vector[T] { return o }

// Storage returns a copy of the standard-unit values in v's layout. Writes to
// it never reach v or the views sharing its storage.
func (v *Vector[T]) Storage() *storage.Vector[T] { return v.data.Read().Clone() }

// Mutable returns a mutable view sharing v's storage.
func (v *Vector[T]) Mutable() *Vector[T] {
	return &Vector[T]{data: v.data.Share(), u: v.u, mutable: true}
}

// Immutable returns an immutable view sharing v's storage.
func (v *Vector[T]) Immutable() *Vector[T] {
	if !v.mutable {
		return v
	}
	return &Vector[T]{data: v.data.Share(), u: v.u}
}

// At returns element i in the display unit.
func (v *Vector[T]) At(i int) (T, error) {
	x, err := v.data.Read().At(i)
	if err != nil {
		return 0, err
	}
	return T(v.u.FromStandard(float64(x))), nil
}

// SIAt returns element i in the standard unit.
func (v *Vector[T]) SIAt(i int) (T, error) {
	return v.data.Read().At(i)
}

// Get returns element i as a scalar.
func (v *Vector[T]) Get(i int) (Scalar[T], error) {
	x, err := v.data.Read().At(i)
	if err != nil {
		return Scalar[T]{}, err
	}
	return FromSI(x, v.u), nil
}

// Values returns all elements in the display unit.
func (v *Vector[T]) Values() []T {
	out := v.data.Read().Values()
	if v.u.Scale().IsStandard() {
		return out
	}
	for i, x := range out {
		out[i] = T(v.u.FromStandard(float64(x)))
	}
	return out
}

// SI returns all elements in the standard unit.
func (v *Vector[T]) SI() []T { return v.data.Read().Values() }

// Sum returns the sum of a relative vector.
func (v *Vector[T]) Sum() (Scalar[T], error) {
	if v.Kind() == unit.Absolute {
		return Scalar[T]{}, fmt.Errorf("%w: sum", ErrAbsolute)
	}
	return FromSI(v.data.Read().Sum(), v.u), nil
}

// ToDense returns an immutable dense copy.
func (v *Vector[T]) ToDense() *Vector[T] { return v.derive(v.data.Read().ToDense(), v.u) }

// ToSparse returns an immutable sparse copy.
func (v *Vector[T]) ToSparse() *Vector[T] { return v.derive(v.data.Read().ToSparse(), v.u) }

// InUnit returns an immutable view of the same values displayed in u.
func (v *Vector[T]) InUnit(u *unit.Unit) (*Vector[T], error) {
	if err := checkTarget("convert", v.u, u); err != nil {
		return nil, err
	}
	return &Vector[T]{data: v.data.Share(), u: u}, nil
}

// As casts v to target, any unit with the same dimensions and kind.
func (v *Vector[T]) As(target *unit.Unit) (*Vector[T], error) {
	if err := checkTarget("as", v.u, target); err != nil {
		return nil, err
	}
	return &Vector[T]{data: v.data.Share(), u: target}, nil
}

// Equal reports whether v and o have the same dimensions and standard-unit
// values, regardless of display unit and layout.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	return v.Dimensions() == o.Dimensions() && v.data.Read().Equal(o.data.Read())
}

// Plus returns v + o elementwise, following the kind rules.
func (v *Vector[T]) Plus(o *Vector[T]) (*Vector[T], error) {
	u, err := sumUnit(v.u, o.u)
	if err != nil {
		return nil, err
	}
	return v.elementwise(storage.OpPlus, o, u)
}

// Minus returns v - o elementwise, following the kind rules.
func (v *Vector[T]) Minus(o *Vector[T]) (*Vector[T], error) {
	u, err := differenceUnit(v.u, o.u)
	if err != nil {
		return nil, err
	}
	return v.elementwise(storage.OpMinus, o, u)
}

// Times returns v * o elementwise in the derived unit.
func (v *Vector[T]) Times(o *Vector[T]) (*Vector[T], error) {
	u, err := productUnit("times", v.u, o.u)
	if err != nil {
		return nil, err
	}
	return v.elementwise(storage.OpTimes, o, u)
}

// Divide returns v / o elementwise in the derived unit.
func (v *Vector[T]) Divide(o *Vector[T]) (*Vector[T], error) {
	u, err := productUnit("divide", v.u, o.u)
	if err != nil {
		return nil, err
	}
	return v.elementwise(storage.OpDivide, o, u)
}

func (v *Vector[T]) elementwise(op storage.Op, o *Vector[T], u *unit.Unit) (*Vector[T], error) {
	data, err := storage.Elementwise(op, v.data.Read(), o.data.Read())
	if err != nil {
		return nil, err
	}
	return v.derive(data, u), nil
}

// TimesScalar multiplies every element by s.
func (v *Vector[T]) TimesScalar(s Scalar[T]) (*Vector[T], error) {
	u, err := productUnit("times", v.u, s.u)
	if err != nil {
		return nil, err
	}
	data := v.data.Read().Clone()
	data.Scale(s.value)
	return v.derive(data, u), nil
}

// DivideScalar divides every element by s.
func (v *Vector[T]) DivideScalar(s Scalar[T]) (*Vector[T], error) {
	u, err := productUnit("divide", v.u, s.u)
	if err != nil {
		return nil, err
	}
	data := v.data.Read().Clone()
	data.Scale(1 / s.value)
	return v.derive(data, u), nil
}

// Interpolate returns v*(1-ratio) + o*ratio elementwise, evaluated in v's
// display unit.
func (v *Vector[T]) Interpolate(o *Vector[T], ratio float64) (*Vector[T], error) {
	if err := checkTarget("interpolate", v.u, o.u); err != nil {
		return nil, err
	}
	if v.Len() != o.Len() {
		return nil, &storage.SizeError{Op: "interpolate", Left: v.Len(), Right: o.Len(), Wrapped: ErrSizeMismatch}
	}
	zero, one := v.Values(), v.displayOf(o)
	for i := range zero {
		zero[i] = T(float64(zero[i])*(1-ratio) + float64(one[i])*ratio)
	}
	data, err := storage.NewVector(zero, v.u.Scale(), v.Layout())
	if err != nil {
		return nil, err
	}
	return v.derive(data, v.u), nil
}

// displayOf returns o's values in v's display unit.
func (v *Vector[T]) displayOf(o *Vector[T]) []T {
	out := o.data.Read().Values()
	for i, x := range out {
		out[i] = T(v.u.FromStandard(float64(x)))
	}
	return out
}

// writable returns storage v may modify, or ErrImmutable.
func (v *Vector[T]) writable() (*storage.Vector[T], error) {
	if !v.mutable {
		return nil, ErrImmutable
	}
	return v.data.Writable(), nil
}

// SetAt stores x, expressed in the display unit, at index i.
func (v *Vector[T]) SetAt(i int, x T) error {
	data, err := v.writable()
	if err != nil {
		return err
	}
	return data.Set(i, T(v.u.ToStandard(float64(x))))
}

// SetSI stores x, in the standard unit, at index i.
func (v *Vector[T]) SetSI(i int, x T) error {
	data, err := v.writable()
	if err != nil {
		return err
	}
	return data.Set(i, x)
}

// Set stores s at index i.
func (v *Vector[T]) Set(i int, s Scalar[T]) error {
	if err := checkTarget("set", s.u, v.u); err != nil {
		return err
	}
	return v.SetSI(i, s.value)
}

// IncrementBy adds the relative scalar s to every element.
func (v *Vector[T]) IncrementBy(s Scalar[T]) error {
	return v.shift("increment", s, 1)
}

// DecrementBy subtracts the relative scalar s from every element.
func (v *Vector[T]) DecrementBy(s Scalar[T]) error {
	return v.shift("decrement", s, -1)
}

func (v *Vector[T]) shift(op string, s Scalar[T], sign T) error {
	if s.Dimensions() != v.Dimensions() {
		return &DimensionError{Op: op, Left: v.Dimensions(), Right: s.Dimensions()}
	}
	if s.Kind() == unit.Absolute {
		return fmt.Errorf("%w: %s by %s", ErrAbsolute, op, s.u.Family().Name())
	}
	data, err := v.writable()
	if err != nil {
		return err
	}
	data.Shift(sign * s.value)
	return nil
}

// MultiplyBy scales every element by a dimensionless factor in place.
func (v *Vector[T]) MultiplyBy(f T) error {
	return v.Apply(func(x T) T { return x * f })
}

// DivideBy divides every element by a dimensionless factor in place.
func (v *Vector[T]) DivideBy(f T) error {
	return v.Apply(func(x T) T { return x / f })
}

// Apply replaces every standard-unit value x with fn(x) in place.
func (v *Vector[T]) Apply(fn func(T) T) error {
	data, err := v.writable()
	if err != nil {
		return err
	}
	data.Apply(fn)
	return nil
}

// Abs, Neg, Ceil, Floor and Round work in place on the standard-unit values.
func (v *Vector[T]) Abs() error   { return v.Apply(mathFunc[T](math.Abs)) }
func (v *Vector[T]) Neg() error   { return v.Apply(func(x T) T { return -x }) }
func (v *Vector[T]) Ceil() error  { return v.Apply(mathFunc[T](math.Ceil)) }
func (v *Vector[T]) Floor() error { return v.Apply(mathFunc[T](math.Floor)) }
func (v *Vector[T]) Round() error { return v.Apply(mathFunc[T](math.Round)) }

func mathFunc[T storage.Float](fn func(float64) float64) func(T) T {
	return func(x T) T { return T(fn(float64(x))) }
}

// Normalize scales a dimensionless vector in place so that it sums to one.
func (v *Vector[T]) Normalize() error {
	if !v.Dimensions().IsDimensionless() {
		return &DimensionError{Op: "normalize", Left: v.Dimensions(), Right: si.Dimensionless}
	}
	data, err := v.writable()
	if err != nil {
		return err
	}
	return data.Normalize()
}

func (v *Vector[T]) String() string { return FormatVector(v) }
