package storage

// Op is an elementwise binary operation.
type Op int

const (
	OpPlus Op = iota
	OpMinus
	OpTimes
	OpDivide
)

var opNames = [...]string{"plus", "minus", "times", "divide"}

func (o Op) String() string { return opNames[o] }

func apply[T Float](op Op, a, b T) T {
	switch op {
	case OpMinus:
		return a - b
	case OpTimes:
		return a * b
	case OpDivide:
		return a / b
	}
	return a + b
}

// Plus returns a + b elementwise.
func Plus[T Float](a, b *Vector[T]) (*Vector[T], error) { return Elementwise(OpPlus, a, b) }

// Minus returns a - b elementwise.
func Minus[T Float](a, b *Vector[T]) (*Vector[T], error) { return Elementwise(OpMinus, a, b) }

// Times returns a * b elementwise.
func Times[T Float](a, b *Vector[T]) (*Vector[T], error) { return Elementwise(OpTimes, a, b) }

// Divide returns a / b elementwise.
func Divide[T Float](a, b *Vector[T]) (*Vector[T], error) { return Elementwise(OpDivide, a, b) }

// Elementwise combines a and b with op. The result is sparse only when both
// operands are sparse; it then covers the union of present indices, and
// indices absent from both operands stay absent (zero), including for
// division. Otherwise the result is dense.
func Elementwise[T Float](op Op, a, b *Vector[T]) (*Vector[T], error) {
	if a == nil || b == nil {
		return nil, ErrEmptyInput
	}
	if a.n != b.n {
		return nil, &SizeError{Op: op.String(), Left: a.n, Right: b.n, Wrapped: ErrSizeMismatch}
	}
	if a.layout == Sparse && b.layout == Sparse {
		return mergeSparse(op, a, b), nil
	}

	out := make([]T, a.n)
	switch {
	case a.layout == Dense && b.layout == Dense:
		x, y := a.dense, b.dense
		forEach(a.n, func(i int) { out[i] = apply(op, x[i], y[i]) })
	default:
		x, y := a.Values(), b.Values()
		forEach(a.n, func(i int) { out[i] = apply(op, x[i], y[i]) })
	}
	return &Vector[T]{layout: Dense, n: a.n, dense: out}, nil
}

// mergeSparse walks the sorted index lists of a and b together.
func mergeSparse[T Float](op Op, a, b *Vector[T]) *Vector[T] {
	out := &Vector[T]{
		layout:  Sparse,
		n:       a.n,
		indices: make([]int, 0, len(a.indices)+len(b.indices)),
		values:  make([]T, 0, len(a.indices)+len(b.indices)),
	}
	emit := func(i int, x T) {
		if x != 0 {
			out.indices = append(out.indices, i)
			out.values = append(out.values, x)
		}
	}

	i, j := 0, 0
	for i < len(a.indices) || j < len(b.indices) {
		switch {
		case j == len(b.indices) || (i < len(a.indices) && a.indices[i] < b.indices[j]):
			emit(a.indices[i], apply(op, a.values[i], 0))
			i++
		case i == len(a.indices) || b.indices[j] < a.indices[i]:
			emit(b.indices[j], apply(op, 0, b.values[j]))
			j++
		default:
			emit(a.indices[i], apply(op, a.values[i], b.values[j]))
			i++
			j++
		}
	}
	return out
}
