package storage

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/gomega"

	"github.com/san-kum/siunits/internal/scale"
)

func mustDense[T Float](t *testing.T, values []T) *Vector[T] {
	t.Helper()
	v, err := NewDense(values)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestConstructors(t *testing.T) {
	g := NewWithT(t)

	_, err := NewDense[float64](nil)
	g.Expect(err).To(MatchError(ErrEmptyInput))
	_, err = NewSparse[float64](nil, 3)
	g.Expect(err).To(MatchError(ErrEmptyInput))
	_, err = NewSparse(map[int]float64{5: 1}, 3)
	g.Expect(err).To(MatchError(ErrIndexOutOfRange))

	empty, err := NewDense([]float64{})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(empty.Len()).To(Equal(0))

	s, err := NewSparse(map[int]float64{4: 2, 1: -1, 2: 0}, 6)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(s.IsSparse()).To(BeTrue())
	g.Expect(s.Cardinality()).To(Equal(2))
	g.Expect(s.Values()).To(Equal([]float64{0, -1, 0, 0, 2, 0}))
}

func TestNewVector_ConvertsOnce(t *testing.T) {
	km, _ := scale.NewLinear(1000)
	degC, _ := scale.NewOffsetLinear(1, 273.15)

	tests := []struct {
		name   string
		values []float64
		sc     scale.Scale
		layout Layout
		want   []float64
	}{
		{"standard", []float64{1, 2}, scale.Standard{}, Dense, []float64{1, 2}},
		{"nil scale", []float64{3}, nil, Dense, []float64{3}},
		{"kilo", []float64{1.5, 0, 2}, km, Dense, []float64{1500, 0, 2000}},
		{"kilo sparse", []float64{1.5, 0, 2}, km, Sparse, []float64{1500, 0, 2000}},
		{"offset", []float64{0, 100}, degC, Sparse, []float64{273.15, 373.15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewVector(tt.values, tt.sc, tt.layout)
			if err != nil {
				t.Fatal(err)
			}
			if v.Layout() != tt.layout {
				t.Errorf("layout = %v, want %v", v.Layout(), tt.layout)
			}
			if diff := cmp.Diff(tt.want, v.Values()); diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDenseSparseRoundTrip(t *testing.T) {
	inputs := [][]float64{
		{0, 0, 0},
		{1, 0, -2.5, 0, 1e-300},
		{0, 5e-324, 0},
		{3},
	}
	for _, in := range inputs {
		v := mustDense(t, in)
		sparse := v.ToSparse()
		if diff := cmp.Diff(in, sparse.ToDense().Values()); diff != "" {
			t.Errorf("ToDense(ToSparse(%v)) differs:\n%s", in, diff)
		}
		again := sparse.ToDense().ToSparse()
		if !again.Equal(sparse) || !again.IsSparse() {
			t.Errorf("ToSparse(ToDense(ToSparse(%v))) = %v", in, again)
		}
	}
}

func TestElementwise_Layouts(t *testing.T) {
	a := []float64{1, 0, 3, 0, -2}
	b := []float64{0, 0, -3, 4, 0.5}
	ops := []Op{OpPlus, OpMinus, OpTimes}

	for _, op := range ops {
		t.Run(op.String(), func(t *testing.T) {
			da, db := mustDense(t, a), mustDense(t, b)
			sa, sb := da.ToSparse(), db.ToSparse()

			dd, err := Elementwise(op, da, db)
			if err != nil {
				t.Fatal(err)
			}
			ds, err := Elementwise(op, da, sb)
			if err != nil {
				t.Fatal(err)
			}
			ss, err := Elementwise(op, sa, sb)
			if err != nil {
				t.Fatal(err)
			}

			if !dd.IsDense() || !ds.IsDense() {
				t.Error("a dense operand must give a dense result")
			}
			if !ss.IsSparse() {
				t.Error("two sparse operands must give a sparse result")
			}
			want := dd.Values()
			if diff := cmp.Diff(want, ds.Values()); diff != "" {
				t.Errorf("dense/sparse differs:\n%s", diff)
			}
			if diff := cmp.Diff(want, ss.Values()); diff != "" {
				t.Errorf("sparse/sparse differs:\n%s", diff)
			}
			if !ss.Equal(dd.ToSparse()) {
				t.Errorf("sparse result %v is not the sparse form of %v", ss, dd)
			}
		})
	}
}

func TestElementwise_Divide(t *testing.T) {
	g := NewWithT(t)

	num := mustDense(t, []float64{6, 0, 1})
	den := mustDense(t, []float64{3, 2, 4})
	dd, err := Divide(num, den)
	g.Expect(err).NotTo(HaveOccurred())
	ss, err := Divide(num.ToSparse(), den.ToSparse())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ss.Values()).To(Equal(dd.Values()))
	g.Expect(dd.Values()).To(Equal([]float64{2, 0, 0.25}))

	// Indices absent from both sparse operands stay absent.
	a, _ := NewSparse(map[int]float64{0: 1}, 3)
	b, _ := NewSparse(map[int]float64{0: 2}, 3)
	q, err := Divide(a, b)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(q.Cardinality()).To(Equal(1))
	g.Expect(q.Values()).To(Equal([]float64{0.5, 0, 0}))
}

func TestElementwise_CancelsToAbsent(t *testing.T) {
	a, _ := NewSparse(map[int]float64{1: 2, 3: 1}, 4)
	b, _ := NewSparse(map[int]float64{1: -2}, 4)
	sum, err := Plus(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Cardinality() != 1 {
		t.Errorf("expected exact zeros to be dropped, got %v entries", sum.Cardinality())
	}
}

func TestElementwise_Errors(t *testing.T) {
	a := mustDense(t, []float64{1, 2})
	b := mustDense(t, []float64{1, 2, 3})
	_, err := Plus(a, b)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
	var se *SizeError
	if !errors.As(err, &se) || se.Left != 2 || se.Right != 3 || se.Op != "plus" {
		t.Errorf("unexpected error %#v", err)
	}
	if _, err := Minus(nil, b); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestElementwise_Parallel(t *testing.T) {
	n := 3 * parallelThreshold
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
		y[i] = float64(2 * i)
	}
	sum, err := Plus(mustDense(t, x), mustDense(t, y))
	if err != nil {
		t.Fatal(err)
	}
	for i, got := range sum.Values() {
		if got != float64(3*i) {
			t.Fatalf("element %d = %v", i, got)
		}
	}
}

func TestSetAt(t *testing.T) {
	for _, layout := range []Layout{Dense, Sparse} {
		t.Run(layout.String(), func(t *testing.T) {
			g := NewWithT(t)
			v := Zeros[float64](5, layout)
			g.Expect(v.Set(3, 7)).To(Succeed())
			g.Expect(v.Set(1, 2)).To(Succeed())
			g.Expect(v.Set(4, 1)).To(Succeed())
			g.Expect(v.Set(4, 0)).To(Succeed())
			g.Expect(v.Values()).To(Equal([]float64{0, 2, 0, 7, 0}))
			g.Expect(v.Cardinality()).To(Equal(2))

			x, err := v.At(3)
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(x).To(Equal(7.0))

			_, err = v.At(5)
			g.Expect(err).To(MatchError(ErrIndexOutOfRange))
			g.Expect(v.Set(-1, 1)).To(MatchError(ErrIndexOutOfRange))
		})
	}
}

func TestApply(t *testing.T) {
	g := NewWithT(t)

	s, _ := NewSparse(map[int]float64{1: 2}, 3)
	s.Scale(3)
	g.Expect(s.Values()).To(Equal([]float64{0, 6, 0}))
	g.Expect(s.IsSparse()).To(BeTrue())

	s.Shift(1)
	g.Expect(s.Values()).To(Equal([]float64{1, 7, 1}))
	g.Expect(s.IsSparse()).To(BeTrue())
	g.Expect(s.Cardinality()).To(Equal(3))

	s.Scale(0)
	g.Expect(s.Cardinality()).To(Equal(0))

	d := mustDense(t, []float64{1, -2})
	d.Apply(func(x float64) float64 { return x * x })
	g.Expect(d.Values()).To(Equal([]float64{1, 4}))
}

func TestNormalize(t *testing.T) {
	g := NewWithT(t)

	v := mustDense(t, []float64{1, 3})
	g.Expect(v.Normalize()).To(Succeed())
	g.Expect(v.Values()).To(Equal([]float64{0.25, 0.75}))

	z := mustDense(t, []float64{1, -1})
	g.Expect(z.Normalize()).To(MatchError(ErrNormalization))
	g.Expect(z.Values()).To(Equal([]float64{1, -1}))

	s, _ := NewSparse(map[int]float64{2: 4}, 4)
	g.Expect(s.Normalize()).To(Succeed())
	g.Expect(s.Sum()).To(Equal(1.0))
}

func TestDot(t *testing.T) {
	a := mustDense(t, []float64{1, 2, 3})
	b := mustDense(t, []float64{4, 0, -1})
	for _, pair := range [][2]*Vector[float64]{
		{a, b}, {a.ToSparse(), b}, {a, b.ToSparse()}, {a.ToSparse(), b.ToSparse()},
	} {
		got, err := pair[0].Dot(pair[1])
		if err != nil {
			t.Fatal(err)
		}
		if got != 1 {
			t.Errorf("%v . %v = %v, want 1", pair[0], pair[1], got)
		}
	}
	if _, err := a.Dot(mustDense(t, []float64{1})); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestFloat32(t *testing.T) {
	g := NewWithT(t)
	x, y := float32(0.1), float32(0.3)
	v := mustDense(t, []float32{x, 0.2})
	w := mustDense(t, []float32{y, 0})
	sum, err := Plus(v.ToSparse(), w.ToSparse())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(sum.Values()).To(Equal([]float32{x + y, 0.2}))
	g.Expect(v.String()).To(Equal("[0.1, 0.2]"))
}

func TestParseLayout(t *testing.T) {
	for in, want := range map[string]Layout{"dense": Dense, "Sparse": Sparse, "": Dense} {
		got, err := ParseLayout(in)
		if err != nil || got != want {
			t.Errorf("ParseLayout(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLayout("diagonal"); err == nil {
		t.Error("expected an error")
	}
}

func BenchmarkPlusDense(b *testing.B) {
	x := make([]float64, 1<<16)
	for i := range x {
		x[i] = float64(i)
	}
	v, _ := NewDense(x)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Plus(v, v)
	}
}
