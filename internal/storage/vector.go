package storage

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/siunits/internal/scale"
)

// Float is the element type of every container.
type Float interface {
	~float32 | ~float64
}

// Layout selects how a container keeps its values.
type Layout int

const (
	// Dense keeps every element in a contiguous slice.
	Dense Layout = iota
	// Sparse keeps only nonzero elements, as sorted indices and values.
	Sparse
)

func (l Layout) String() string {
	if l == Sparse {
		return "sparse"
	}
	return "dense"
}

// ParseLayout maps "dense" or "sparse" to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dense":
		return Dense, nil
	case "sparse":
		return Sparse, nil
	}
	return Dense, fmt.Errorf("unknown storage layout %q", s)
}

// Vector is a dense or sparse sequence of values with a fixed logical length.
// In the sparse layout absent indices are zero and stored values are never
// exactly zero.
type Vector[T Float] struct {
	layout Layout
	n      int

	dense []T

	indices []int
	values  []T
}

// NewDense copies values into a dense vector.
func NewDense[T Float](values []T) (*Vector[T], error) {
	if values == nil {
		return nil, ErrEmptyInput
	}
	d := make([]T, len(values))
	copy(d, values)
	return &Vector[T]{layout: Dense, n: len(d), dense: d}, nil
}

// NewSparse builds a sparse vector of the given length from index/value
// pairs. Zero values are dropped.
func NewSparse[T Float](entries map[int]T, length int) (*Vector[T], error) {
	if entries == nil {
		return nil, ErrEmptyInput
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrIndexOutOfRange, length)
	}
	v := &Vector[T]{layout: Sparse, n: length}
	for i, x := range entries {
		if i < 0 || i >= length {
			return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, length)
		}
		if x != 0 {
			v.indices = append(v.indices, i)
		}
	}
	sort.Ints(v.indices)
	v.values = make([]T, len(v.indices))
	for k, i := range v.indices {
		v.values[k] = entries[i]
	}
	return v, nil
}

// NewVector converts values from a unit with scale sc into the standard unit,
// applying ToStandard exactly once per element, and stores them in layout.
func NewVector[T Float](values []T, sc scale.Scale, layout Layout) (*Vector[T], error) {
	v, err := NewDense(values)
	if err != nil {
		return nil, err
	}
	if sc != nil && !sc.IsStandard() {
		d := v.dense
		forEach(len(d), func(i int) {
			d[i] = T(sc.ToStandard(float64(d[i])))
		})
	}
	if layout == Sparse {
		return v.ToSparse(), nil
	}
	return v, nil
}

// Zeros returns a vector of n zeros in layout.
func Zeros[T Float](n int, layout Layout) *Vector[T] {
	if layout == Sparse {
		return &Vector[T]{layout: Sparse, n: n}
	}
	return &Vector[T]{layout: Dense, n: n, dense: make([]T, n)}
}

func (v *Vector[T]) Len() int       { return v.n }
func (v *Vector[T]) Layout() Layout { return v.layout }
func (v *Vector[T]) IsSparse() bool { return v.layout == Sparse }
func (v *Vector[T]) IsDense() bool  { return v.layout == Dense }

func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= v.n {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, v.n)
	}
	return nil
}

// search returns the position of index i in a sparse vector and whether it
// is present.
func (v *Vector[T]) search(i int) (int, bool) {
	pos := sort.SearchInts(v.indices, i)
	return pos, pos < len(v.indices) && v.indices[pos] == i
}

// At returns element i.
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		return 0, err
	}
	return v.get(i), nil
}

func (v *Vector[T]) get(i int) T {
	if v.layout == Dense {
		return v.dense[i]
	}
	if pos, ok := v.search(i); ok {
		return v.values[pos]
	}
	return 0
}

// Set stores x at index i. Setting zero removes a sparse entry.
func (v *Vector[T]) Set(i int, x T) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	if v.layout == Dense {
		v.dense[i] = x
		return nil
	}
	pos, ok := v.search(i)
	switch {
	case ok && x == 0:
		v.indices = append(v.indices[:pos], v.indices[pos+1:]...)
		v.values = append(v.values[:pos], v.values[pos+1:]...)
	case ok:
		v.values[pos] = x
	case x != 0:
		v.indices = append(v.indices, 0)
		v.values = append(v.values, 0)
		copy(v.indices[pos+1:], v.indices[pos:])
		copy(v.values[pos+1:], v.values[pos:])
		v.indices[pos] = i
		v.values[pos] = x
	}
	return nil
}

// Cardinality returns the number of nonzero elements.
func (v *Vector[T]) Cardinality() int {
	if v.layout == Sparse {
		return len(v.values)
	}
	n := 0
	for _, x := range v.dense {
		if x != 0 {
			n++
		}
	}
	return n
}

// Sum adds all elements.
func (v *Vector[T]) Sum() T {
	var s T
	for _, x := range v.stored() {
		s += x
	}
	return s
}

func (v *Vector[T]) stored() []T {
	if v.layout == Sparse {
		return v.values
	}
	return v.dense
}

// Values returns a dense copy of the elements.
func (v *Vector[T]) Values() []T {
	out := make([]T, v.n)
	if v.layout == Dense {
		copy(out, v.dense)
		return out
	}
	for k, i := range v.indices {
		out[i] = v.values[k]
	}
	return out
}

// Clone returns a deep copy.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{layout: v.layout, n: v.n}
	if v.layout == Dense {
		c.dense = append([]T(nil), v.dense...)
		return c
	}
	c.indices = append([]int(nil), v.indices...)
	c.values = append([]T(nil), v.values...)
	return c
}

// ToDense returns a dense copy of v.
func (v *Vector[T]) ToDense() *Vector[T] {
	return &Vector[T]{layout: Dense, n: v.n, dense: v.Values()}
}

// ToSparse returns a sparse copy of v, keeping only elements that are not
// exactly zero.
func (v *Vector[T]) ToSparse() *Vector[T] {
	if v.layout == Sparse {
		return v.Clone()
	}
	s := &Vector[T]{layout: Sparse, n: v.n}
	for i, x := range v.dense {
		if x != 0 {
			s.indices = append(s.indices, i)
			s.values = append(s.values, x)
		}
	}
	return s
}

// As returns a copy of v in layout.
func (v *Vector[T]) As(layout Layout) *Vector[T] {
	if layout == Sparse {
		return v.ToSparse()
	}
	return v.ToDense()
}

// Equal reports whether v and o hold the same logical values, regardless of
// layout.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v.n != o.n {
		return false
	}
	if v.layout == Sparse && o.layout == Sparse {
		if len(v.indices) != len(o.indices) {
			return false
		}
		for k := range v.indices {
			if v.indices[k] != o.indices[k] || v.values[k] != o.values[k] {
				return false
			}
		}
		return true
	}
	for i := 0; i < v.n; i++ {
		if v.get(i) != o.get(i) {
			return false
		}
	}
	return true
}

// Apply replaces every element x with fn(x) in place. A sparse vector stays
// sparse; when fn(0) is nonzero every index becomes present.
func (v *Vector[T]) Apply(fn func(T) T) {
	if v.layout == Dense {
		d := v.dense
		forEach(len(d), func(i int) { d[i] = fn(d[i]) })
		return
	}
	if fn(0) != 0 {
		d := v.Values()
		for i := range d {
			d[i] = fn(d[i])
		}
		dv := &Vector[T]{layout: Dense, n: v.n, dense: d}
		*v = *dv.ToSparse()
		return
	}
	for k := range v.values {
		v.values[k] = fn(v.values[k])
	}
	v.compact()
}

// compact drops sparse entries that became exactly zero.
func (v *Vector[T]) compact() {
	k := 0
	for j, x := range v.values {
		if x != 0 {
			v.indices[k] = v.indices[j]
			v.values[k] = x
			k++
		}
	}
	v.indices = v.indices[:k]
	v.values = v.values[:k]
}

// Scale multiplies every element by factor in place.
func (v *Vector[T]) Scale(factor T) {
	v.Apply(func(x T) T { return x * factor })
}

// Shift adds delta to every element in place.
func (v *Vector[T]) Shift(delta T) {
	v.Apply(func(x T) T { return x + delta })
}

// Normalize scales v in place so that its elements sum to one.
func (v *Vector[T]) Normalize() error {
	sum := v.Sum()
	if sum == 0 {
		return ErrNormalization
	}
	v.Scale(1 / sum)
	return nil
}

// Dot returns the inner product of v and o.
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	if v.n != o.n {
		return 0, &SizeError{Op: "dot", Left: v.n, Right: o.n, Wrapped: ErrSizeMismatch}
	}
	var s T
	if v.layout == Sparse {
		for k, i := range v.indices {
			s += v.values[k] * o.get(i)
		}
		return s, nil
	}
	if o.layout == Sparse {
		return o.Dot(v)
	}
	for i, x := range v.dense {
		s += x * o.dense[i]
	}
	return s, nil
}

// Each calls fn for every stored element in index order; absent sparse
// entries are skipped.
func (v *Vector[T]) Each(fn func(i int, x T)) {
	if v.layout == Dense {
		for i, x := range v.dense {
			fn(i, x)
		}
		return
	}
	for k, i := range v.indices {
		fn(i, v.values[k])
	}
}

func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < v.n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(float64(v.get(i)), 'g', -1, bitSize[T]()))
	}
	b.WriteByte(']')
	return b.String()
}

// bitSize returns 32 for float32-based element types and 64 otherwise.
func bitSize[T Float]() int {
	var x T = 1 << 24
	if x+1 == x {
		return 32
	}
	return 64
}
