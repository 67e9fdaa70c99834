package storage

import (
	"fmt"
	"strings"
)

// Cell addresses one matrix element.
type Cell struct {
	Row, Col int
}

// Matrix is a rows x cols grid of values kept row-major in a Vector, so it
// shares the vector's layouts and elementwise rules.
type Matrix[T Float] struct {
	rows, cols int
	data       *Vector[T]
}

// NewDenseMatrix copies rows into a dense matrix. All rows must have the
// same length.
func NewDenseMatrix[T Float](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	cols := len(rows[0])
	flat := make([]T, 0, len(rows)*cols)
	for r, row := range rows {
		if row == nil {
			return nil, fmt.Errorf("%w: row %d", ErrEmptyInput, r)
		}
		if len(row) != cols {
			return nil, &SizeError{Op: fmt.Sprintf("row %d", r), Left: cols, Right: len(row), Wrapped: ErrShapeMismatch}
		}
		flat = append(flat, row...)
	}
	return &Matrix[T]{rows: len(rows), cols: cols, data: &Vector[T]{layout: Dense, n: len(flat), dense: flat}}, nil
}

// NewSparseMatrix builds a sparse rows x cols matrix from cell values.
func NewSparseMatrix[T Float](entries map[Cell]T, rows, cols int) (*Matrix[T], error) {
	if entries == nil {
		return nil, ErrEmptyInput
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: shape %dx%d", ErrIndexOutOfRange, rows, cols)
	}
	flat := make(map[int]T, len(entries))
	for c, x := range entries {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, fmt.Errorf("%w: cell %d,%d of %dx%d", ErrIndexOutOfRange, c.Row, c.Col, rows, cols)
		}
		flat[c.Row*cols+c.Col] = x
	}
	data, err := NewSparse(flat, rows*cols)
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}

// MatrixOf wraps a row-major vector of length rows*cols.
func MatrixOf[T Float](v *Vector[T], rows, cols int) (*Matrix[T], error) {
	if v == nil {
		return nil, ErrEmptyInput
	}
	if rows*cols != v.n || rows < 0 || cols < 0 {
		return nil, &SizeError{Op: "reshape", Left: rows * cols, Right: v.n, Wrapped: ErrShapeMismatch}
	}
	return &Matrix[T]{rows: rows, cols: cols, data: v}, nil
}

func (m *Matrix[T]) Rows() int        { return m.rows }
func (m *Matrix[T]) Cols() int        { return m.cols }
func (m *Matrix[T]) Layout() Layout   { return m.data.layout }
func (m *Matrix[T]) Data() *Vector[T] { return m.data }

func (m *Matrix[T]) offset(r, c int) (int, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return 0, fmt.Errorf("%w: cell %d,%d of %dx%d", ErrIndexOutOfRange, r, c, m.rows, m.cols)
	}
	return r*m.cols + c, nil
}

// At returns the element at row r, column c.
func (m *Matrix[T]) At(r, c int) (T, error) {
	i, err := m.offset(r, c)
	if err != nil {
		return 0, err
	}
	return m.data.get(i), nil
}

// Set stores x at row r, column c.
func (m *Matrix[T]) Set(r, c int, x T) error {
	i, err := m.offset(r, c)
	if err != nil {
		return err
	}
	return m.data.Set(i, x)
}

// Row returns a copy of row r in the matrix's layout.
func (m *Matrix[T]) Row(r int) (*Vector[T], error) {
	if r < 0 || r >= m.rows {
		return nil, fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, r, m.rows)
	}
	out := Zeros[T](m.cols, m.data.layout)
	for c := 0; c < m.cols; c++ {
		_ = out.Set(c, m.data.get(r*m.cols+c))
	}
	return out, nil
}

// Column returns a copy of column c in the matrix's layout.
func (m *Matrix[T]) Column(c int) (*Vector[T], error) {
	if c < 0 || c >= m.cols {
		return nil, fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, c, m.cols)
	}
	out := Zeros[T](m.rows, m.data.layout)
	for r := 0; r < m.rows; r++ {
		_ = out.Set(r, m.data.get(r*m.cols+c))
	}
	return out, nil
}

// Transpose returns a new cols x rows matrix in the same layout.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	t := &Matrix[T]{rows: m.cols, cols: m.rows}
	if m.data.layout == Dense {
		d := make([]T, len(m.data.dense))
		for r := 0; r < m.rows; r++ {
			for c := 0; c < m.cols; c++ {
				d[c*m.rows+r] = m.data.dense[r*m.cols+c]
			}
		}
		t.data = &Vector[T]{layout: Dense, n: len(d), dense: d}
		return t
	}
	flat := make(map[int]T, len(m.data.indices))
	for k, i := range m.data.indices {
		r, c := i/m.cols, i%m.cols
		flat[c*m.rows+r] = m.data.values[k]
	}
	t.data, _ = NewSparse(flat, m.data.n)
	return t
}

// Sum adds all elements.
func (m *Matrix[T]) Sum() T { return m.data.Sum() }

// Normalize scales m in place so that its elements sum to one.
func (m *Matrix[T]) Normalize() error { return m.data.Normalize() }

// Determinant returns the determinant of a square matrix, computed by LU
// decomposition with partial pivoting on a dense copy. The 0x0 matrix has
// determinant one.
func (m *Matrix[T]) Determinant() (T, error) {
	if m.rows != m.cols {
		return 0, fmt.Errorf("%w: determinant of %dx%d", ErrShapeMismatch, m.rows, m.cols)
	}
	n := m.rows
	a := m.data.Values()
	det := T(1)
	for k := 0; k < n; k++ {
		p := k
		for r := k + 1; r < n; r++ {
			if abs(a[r*n+k]) > abs(a[p*n+k]) {
				p = r
			}
		}
		if a[p*n+k] == 0 {
			return 0, nil
		}
		if p != k {
			for c := k; c < n; c++ {
				a[k*n+c], a[p*n+c] = a[p*n+c], a[k*n+c]
			}
			det = -det
		}
		pivot := a[k*n+k]
		det *= pivot
		for r := k + 1; r < n; r++ {
			f := a[r*n+k] / pivot
			if f == 0 {
				continue
			}
			for c := k + 1; c < n; c++ {
				a[r*n+c] -= f * a[k*n+c]
			}
		}
	}
	return det, nil
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Cardinality returns the number of nonzero elements.
func (m *Matrix[T]) Cardinality() int { return m.data.Cardinality() }

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: m.data.Clone()}
}

// As returns a copy of m in layout.
func (m *Matrix[T]) As(layout Layout) *Matrix[T] {
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: m.data.As(layout)}
}

// Equal reports whether m and o have the same shape and values.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	return m.rows == o.rows && m.cols == o.cols && m.data.Equal(o.data)
}

// Apply replaces every element x with fn(x) in place.
func (m *Matrix[T]) Apply(fn func(T) T) { m.data.Apply(fn) }

// Values returns the elements as dense rows.
func (m *Matrix[T]) Values() [][]T {
	flat := m.data.Values()
	out := make([][]T, m.rows)
	for r := range out {
		out[r] = flat[r*m.cols : (r+1)*m.cols : (r+1)*m.cols]
	}
	return out
}

// ElementwiseMatrix combines two matrices of equal shape with op, following
// the vector layout rule.
func ElementwiseMatrix[T Float](op Op, a, b *Matrix[T]) (*Matrix[T], error) {
	if a == nil || b == nil {
		return nil, ErrEmptyInput
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, fmt.Errorf("%w: %s %dx%d vs %dx%d", ErrShapeMismatch, op, a.rows, a.cols, b.rows, b.cols)
	}
	data, err := Elementwise(op, a.data, b.data)
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{rows: a.rows, cols: a.cols, data: data}, nil
}

func (m *Matrix[T]) String() string {
	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		row, _ := m.Row(r)
		b.WriteString(row.String())
		if r < m.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
