package quantity_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/siunits/internal/quantity"
	"github.com/san-kum/siunits/internal/si"
	"github.com/san-kum/siunits/internal/unit"
)

func must[T any](v T, err error) T {
	GinkgoHelper()
	Expect(err).NotTo(HaveOccurred())
	return v
}

var _ = Describe("Scalar", func() {
	var reg *unit.Registry

	BeforeEach(func() {
		reg = unit.NewDefaultRegistry()
	})

	Describe("construction", func() {
		It("stores values in the standard unit", func() {
			l := quantity.New(1.5, reg.MustUnit("km"))
			Expect(l.SI()).To(Equal(1500.0))
			Expect(l.Value()).To(Equal(1.5))
			Expect(l.Kind()).To(Equal(unit.Relative))
		})

		It("instantiates anonymous quantities through the registry", func() {
			f := quantity.Instantiate(5.0, si.MustParse("kg.m/s2"), reg)
			Expect(f.Unit()).To(BeIdenticalTo(reg.MustUnit("N")))

			odd := quantity.Instantiate(2.0, si.MustParse("kg/s3"), reg)
			Expect(odd.Unit().Family().Synthesized()).To(BeTrue())
			Expect(odd.String()).To(Equal("2 kg/s3"))
		})

		It("checks the family of named quantities", func() {
			_, err := quantity.Make[quantity.Length](1, reg.MustUnit("s"))
			Expect(err).To(MatchError(quantity.ErrDimensionMismatch))

			_, err = quantity.Make[quantity.Length](1, reg.MustFamily(unit.Position).MustUnit("m"))
			Expect(err).To(MatchError(quantity.ErrKindMismatch))

			_, err = quantity.MakeIn[quantity.Mass](reg, 1, "m")
			Expect(err).To(MatchError(unit.ErrUnknownUnit))

			m := must(quantity.MakeIn[quantity.Mass](reg, 250, "g"))
			Expect(m.SI()).To(BeNumerically("~", 0.25, 1e-15))
		})
	})

	Describe("multiplication and division", func() {
		It("divides a duration by a length into an anonymous pace", func() {
			d := must(quantity.MakeIn[quantity.Duration](reg, 10, "s"))
			l := must(quantity.MakeIn[quantity.Length](reg, 50, "m"))

			pace := must(d.Divide(l.Scalar))
			Expect(pace.SI()).To(BeNumerically("~", 0.2, 1e-15))
			Expect(pace.Unit().Abbreviation()).To(Equal("s/m"))
			Expect(pace.Dimensions()).To(Equal(si.New(0, -1, 1)))
			Expect(pace.Unit()).To(BeIdenticalTo(reg.MustUnit("s/m")))

			again := must(d.Divide(l.Scalar))
			Expect(again.Unit()).To(BeIdenticalTo(pace.Unit()))
		})

		It("casts acceleration times duration as a speed", func() {
			a := must(quantity.MakeIn[quantity.Acceleration](reg, 1, "g0"))
			t := must(quantity.MakeIn[quantity.Duration](reg, 1, "min"))

			product := must(a.Times(t.Scalar))
			speed := must(quantity.AsStandard[quantity.Speed](product))
			direct := must(quantity.MakeIn[quantity.Speed](reg, 9.80665*60, "m/s"))
			Expect(speed.Approx(direct.Scalar, 1e-12)).To(BeTrue())
			Expect(speed.Unit().Abbreviation()).To(Equal("m/s"))

			kmh := must(quantity.As[quantity.Speed](product, reg.MustUnit("km/h")))
			Expect(kmh.Value()).To(BeNumerically("~", 9.80665*60*3.6, 1e-9))
		})

		It("refuses to cast a power as a speed", func() {
			p := must(quantity.MakeIn[quantity.Power](reg, 100, "W"))

			_, err := p.As(reg.MustUnit("m/s"))
			Expect(err).To(MatchError(quantity.ErrDimensionMismatch))
			var de *quantity.DimensionError
			Expect(err).To(BeAssignableToTypeOf(de))

			_, err = quantity.As[quantity.Speed](p.Scalar, reg.MustUnit("m/s"))
			Expect(err).To(MatchError(quantity.ErrDimensionMismatch))
			_, err = quantity.AsStandard[quantity.Speed](p.Scalar)
			Expect(err).To(MatchError(quantity.ErrDimensionMismatch))
		})

		It("takes reciprocals", func() {
			d := must(quantity.MakeIn[quantity.Duration](reg, 2, "s"))
			f := must(d.Reciprocal())
			Expect(f.Unit()).To(BeIdenticalTo(reg.MustUnit("Hz")))
			Expect(f.SI()).To(Equal(0.5))
		})

		It("rejects absolute operands", func() {
			t := must(quantity.MakeIn[quantity.Time](reg, 3, "s"))
			d := must(quantity.MakeIn[quantity.Duration](reg, 3, "s"))
			_, err := t.Times(d.Scalar)
			Expect(err).To(MatchError(quantity.ErrAbsolute))
			_, err = t.Reciprocal()
			Expect(err).To(MatchError(quantity.ErrAbsolute))
		})

		It("fails instead of wrapping exponents", func() {
			big := quantity.Instantiate(1.0, si.New(0, 100), reg)
			_, err := big.Times(big)
			Expect(err).To(MatchError(si.ErrExponentRange))

			low := quantity.Instantiate(1.0, si.Of(si.Length, -128), reg)
			_, err = low.Reciprocal()
			Expect(err).To(MatchError(si.ErrExponentRange))

			_, err = low.Divide(big)
			Expect(err).To(MatchError(si.ErrExponentRange))
		})
	})

	Describe("absolute and relative kinds", func() {
		It("follows the Abs/Rel rules for time", func() {
			t1 := must(quantity.MakeIn[quantity.Time](reg, 10, "s"))
			t0 := must(quantity.MakeIn[quantity.Time](reg, 4, "s"))

			_, err := quantity.Plus(t1, t0)
			Expect(err).To(MatchError(quantity.ErrAbsolute))

			_, err = quantity.Minus(t1, t0)
			Expect(err).To(MatchError(quantity.ErrKindMismatch))

			d := must(quantity.Between[quantity.Duration](t1, t0))
			Expect(d.SI()).To(Equal(6.0))
			Expect(d.Kind()).To(Equal(unit.Relative))

			t2 := must(quantity.Shift(t0, d))
			Expect(t2.Equal(t1.Scalar)).To(BeTrue())
			Expect(t2.Kind()).To(Equal(unit.Absolute))

			_, err = d.Minus(t1.Scalar)
			Expect(err).To(MatchError(quantity.ErrAbsolute))

			sum := must(d.Plus(t0.Scalar))
			Expect(sum.Kind()).To(Equal(unit.Absolute))
		})

		It("applies temperature offsets once", func() {
			warm := must(quantity.MakeIn[quantity.AbsoluteTemperature](reg, 20, "°C"))
			cool := must(quantity.MakeIn[quantity.AbsoluteTemperature](reg, 10, "°C"))

			delta := must(quantity.Between[quantity.Temperature](warm, cool))
			Expect(delta.Unit().Family().Name()).To(Equal(unit.Temperature))
			Expect(delta.Unit().Abbreviation()).To(Equal("°C"))
			Expect(delta.Value()).To(BeNumerically("~", 10, 1e-9))
			Expect(must(delta.In(reg.MustUnit("K")))).To(BeNumerically("~", 10, 1e-9))

			step := must(quantity.MakeIn[quantity.Temperature](reg, 5, "K"))
			hotter := must(quantity.Shift(warm, step))
			Expect(hotter.Value()).To(BeNumerically("~", 25, 1e-9))
			Expect(must(hotter.In(reg.MustFamily(unit.AbsoluteTemperature).MustUnit("°F")))).To(BeNumerically("~", 77, 1e-9))

			_, err := warm.In(reg.MustUnit("K"))
			Expect(err).To(MatchError(quantity.ErrKindMismatch))
		})

		It("only shifts an absolute quantity by a relative one", func() {
			length := must(quantity.MakeIn[quantity.Length](reg, 1, "m"))
			pos := must(quantity.MakeIn[quantity.Position](reg, 2, "m"))

			_, err := quantity.Shift(length, pos)
			Expect(err).To(MatchError(quantity.ErrKindMismatch))

			_, err = quantity.Shift(length, length)
			Expect(err).To(MatchError(quantity.ErrKindMismatch))

			_, err = quantity.Shift(pos, pos)
			Expect(err).To(MatchError(quantity.ErrKindMismatch))

			moved := must(quantity.Shift(pos, length))
			Expect(moved.Unit().Family().Name()).To(Equal(unit.Position))
			Expect(moved.SI()).To(Equal(3.0))
		})
	})

	Describe("generic helpers", func() {
		It("keeps the concrete type", func() {
			a := must(quantity.MakeIn[quantity.Length](reg, 1, "km"))
			b := must(quantity.MakeIn[quantity.Length](reg, 500, "m"))

			var sum quantity.Length = must(quantity.Plus(a, b))
			Expect(sum.SI()).To(Equal(1500.0))
			Expect(sum.Unit().Abbreviation()).To(Equal("km"))

			var diff quantity.Length = must(quantity.Minus(a, b))
			Expect(diff.Value()).To(BeNumerically("~", 0.5, 1e-12))
		})

		It("interpolates in the first operand's unit", func() {
			zero := must(quantity.MakeIn[quantity.Length](reg, 1, "km"))
			one := must(quantity.MakeIn[quantity.Length](reg, 2000, "m"))

			mid := must(quantity.Interpolate(zero, one, 0.25))
			Expect(mid.Unit().Abbreviation()).To(Equal("km"))
			Expect(mid.Value()).To(BeNumerically("~", 1.25, 1e-12))

			beyond := must(quantity.Interpolate(zero, one, 2))
			Expect(beyond.Value()).To(BeNumerically("~", 3, 1e-12))
		})

		It("orders by standard-unit value", func() {
			a := must(quantity.MakeIn[quantity.Length](reg, 1, "km"))
			b := must(quantity.MakeIn[quantity.Length](reg, 900, "m"))
			c := must(quantity.MakeIn[quantity.Length](reg, 2, "mi"))

			Expect(must(quantity.Min(a, b, c))).To(Equal(b))
			Expect(must(quantity.Max(a, b, c))).To(Equal(c))

			_, err := a.Compare(quantity.New(1.0, reg.MustUnit("s")))
			Expect(err).To(MatchError(quantity.ErrDimensionMismatch))
		})
	})
})
