package quantity

import (
	"fmt"

	"github.com/san-kum/siunits/internal/si"
	"github.com/san-kum/siunits/internal/storage"
	"github.com/san-kum/siunits/internal/unit"
)

// Matrix is a grid of values with one display unit, shared copy-on-write
// between views like Vector.
type Matrix[T storage.Float] struct {
	data    *storage.Shared[*storage.Matrix[T]]
	u       *unit.Unit
	mutable bool
}

// NewMatrix creates a matrix from rows expressed in u.
func NewMatrix[T storage.Float](rows [][]T, u *unit.Unit, layout storage.Layout) (*Matrix[T], error) {
	m, err := storage.NewDenseMatrix(rows)
	if err != nil {
		return nil, err
	}
	if !u.Scale().IsStandard() {
		m.Apply(func(x T) T { return T(u.ToStandard(float64(x))) })
	}
	return wrapMatrix(m.As(layout), u), nil
}

// NewSparseMatrix creates a sparse matrix from cell values expressed in u.
func NewSparseMatrix[T storage.Float](entries map[storage.Cell]T, rows, cols int, u *unit.Unit) (*Matrix[T], error) {
	if entries == nil {
		return nil, ErrEmptyInput
	}
	std := make(map[storage.Cell]T, len(entries))
	for c, x := range entries {
		std[c] = T(u.ToStandard(float64(x)))
	}
	m, err := storage.NewSparseMatrix(std, rows, cols)
	if err != nil {
		return nil, err
	}
	return wrapMatrix(m, u), nil
}

func wrapMatrix[T storage.Float](m *storage.Matrix[T], u *unit.Unit) *Matrix[T] {
	return &Matrix[T]{data: storage.NewShared(m), u: u}
}

func (m *Matrix[T]) Unit() *unit.Unit          { return m.u }
func (m *Matrix[T]) Kind() unit.Kind           { return m.u.Kind() }
func (m *Matrix[T]) Dimensions() si.Dimensions { return m.u.Dimensions() }
func (m *Matrix[T]) Rows() int                 { return m.data.Read().Rows() }
func (m *Matrix[T]) Cols() int                 { return m.data.Read().Cols() }
func (m *Matrix[T]) Layout() storage.Layout    { return m.data.Read().Layout() }
func (m *Matrix[T]) Cardinality() int          { return m.data.Read().Cardinality() }

// Mutable returns a mutable view sharing m's storage.
func (m *Matrix[T]) Mutable() *Matrix[T] {
	return &Matrix[T]{data: m.data.Share(), u: m.u, mutable: true}
}

// Immutable returns an immutable view sharing m's storage.
func (m *Matrix[T]) Immutable() *Matrix[T] {
	if !m.mutable {
		return m
	}
	return &Matrix[T]{data: m.data.Share(), u: m.u}
}

// At returns the element at row r, column c in the display unit.
func (m *Matrix[T]) At(r, c int) (T, error) {
	x, err := m.data.Read().At(r, c)
	if err != nil {
		return 0, err
	}
	return T(m.u.FromStandard(float64(x))), nil
}

// SetAt stores x, expressed in the display unit, at row r, column c.
func (m *Matrix[T]) SetAt(r, c int, x T) error {
	if !m.mutable {
		return ErrImmutable
	}
	return m.data.Writable().Set(r, c, T(m.u.ToStandard(float64(x))))
}

// Row returns row r as an immutable vector.
func (m *Matrix[T]) Row(r int) (*Vector[T], error) {
	row, err := m.data.Read().Row(r)
	if err != nil {
		return nil, err
	}
	return wrap(row, m.u), nil
}

// Column returns column c as an immutable vector.
func (m *Matrix[T]) Column(c int) (*Vector[T], error) {
	col, err := m.data.Read().Column(c)
	if err != nil {
		return nil, err
	}
	return wrap(col, m.u), nil
}

// Transpose returns the transposed matrix.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	return wrapMatrix(m.data.Read().Transpose(), m.u)
}

// Values returns the rows in the display unit.
func (m *Matrix[T]) Values() [][]T {
	rows := m.data.Read().Values()
	for _, row := range rows {
		for i, x := range row {
			row[i] = T(m.u.FromStandard(float64(x)))
		}
	}
	return rows
}

// InUnit returns an immutable view displayed in u.
func (m *Matrix[T]) InUnit(u *unit.Unit) (*Matrix[T], error) {
	if err := checkTarget("convert", m.u, u); err != nil {
		return nil, err
	}
	return &Matrix[T]{data: m.data.Share(), u: u}, nil
}

// Sum returns the sum of a relative matrix.
func (m *Matrix[T]) Sum() (Scalar[T], error) {
	if m.Kind() == unit.Absolute {
		return Scalar[T]{}, fmt.Errorf("%w: sum", ErrAbsolute)
	}
	return FromSI(m.data.Read().Sum(), m.u), nil
}

// Normalize scales a dimensionless matrix in place so that it sums to one.
func (m *Matrix[T]) Normalize() error {
	if !m.Dimensions().IsDimensionless() {
		return &DimensionError{Op: "normalize", Left: m.Dimensions(), Right: si.Dimensionless}
	}
	if !m.mutable {
		return ErrImmutable
	}
	return m.data.Writable().Normalize()
}

// Determinant returns the determinant of a square relative matrix. Its
// dimensions are the element dimensions raised to the matrix order.
func (m *Matrix[T]) Determinant() (Scalar[T], error) {
	det, err := m.data.Read().Determinant()
	if err != nil {
		return Scalar[T]{}, err
	}
	u, err := powerUnit("determinant", m.u, m.Rows())
	if err != nil {
		return Scalar[T]{}, err
	}
	return FromSI(det, u), nil
}

// Equal reports whether m and o have the same dimensions, shape and
// standard-unit values.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	return m.Dimensions() == o.Dimensions() && m.data.Read().Equal(o.data.Read())
}

// Plus returns m + o elementwise.
func (m *Matrix[T]) Plus(o *Matrix[T]) (*Matrix[T], error) {
	u, err := sumUnit(m.u, o.u)
	if err != nil {
		return nil, err
	}
	return m.elementwise(storage.OpPlus, o, u)
}

// Minus returns m - o elementwise.
func (m *Matrix[T]) Minus(o *Matrix[T]) (*Matrix[T], error) {
	u, err := differenceUnit(m.u, o.u)
	if err != nil {
		return nil, err
	}
	return m.elementwise(storage.OpMinus, o, u)
}

// Times returns m * o elementwise in the derived unit.
func (m *Matrix[T]) Times(o *Matrix[T]) (*Matrix[T], error) {
	u, err := productUnit("times", m.u, o.u)
	if err != nil {
		return nil, err
	}
	return m.elementwise(storage.OpTimes, o, u)
}

// Divide returns m / o elementwise in the derived unit.
func (m *Matrix[T]) Divide(o *Matrix[T]) (*Matrix[T], error) {
	u, err := productUnit("divide", m.u, o.u)
	if err != nil {
		return nil, err
	}
	return m.elementwise(storage.OpDivide, o, u)
}

func (m *Matrix[T]) elementwise(op storage.Op, o *Matrix[T], u *unit.Unit) (*Matrix[T], error) {
	data, err := storage.ElementwiseMatrix(op, m.data.Read(), o.data.Read())
	if err != nil {
		return nil, err
	}
	return wrapMatrix(data, u), nil
}
