package si

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Base identifies one of the base dimensions.
type Base int

const (
	Mass Base = iota
	Length
	Time
	Current
	Temperature
	Amount
	LuminousIntensity
	Money

	// NumBases is the number of base dimensions.
	NumBases = 8
)

var symbols = [NumBases]string{"kg", "m", "s", "A", "K", "mol", "cd", "$"}

var baseNames = [NumBases]string{
	"mass", "length", "time", "current", "temperature", "amount of substance", "luminous intensity", "money",
}

// Symbol returns the SI symbol of the base dimension (kg, m, s, ...).
func (b Base) Symbol() string { return symbols[b] }

func (b Base) String() string { return baseNames[b] }

// Dimensions is an exponent vector over the base dimensions.
// The zero value is dimensionless.
type Dimensions [NumBases]int8

// Dimensionless has all exponents zero.
var Dimensionless Dimensions

// Of returns dimensions with a single nonzero exponent. It panics if exp
// does not fit the exponent range.
func Of(b Base, exp int) Dimensions {
	var d Dimensions
	d[b] = mustExponent(exp)
	return d
}

// New builds dimensions from exponents in base order
// (kg, m, s, A, K, mol, cd, $). Missing trailing exponents are zero.
// It panics if an exponent does not fit the exponent range.
func New(exps ...int) Dimensions {
	var d Dimensions
	for i, e := range exps {
		if i >= NumBases {
			break
		}
		d[i] = mustExponent(e)
	}
	return d
}

func mustExponent(e int) int8 {
	x, err := exponent(e)
	if err != nil {
		panic(err)
	}
	return x
}

func exponent(e int) (int8, error) {
	if e < math.MinInt8 || e > math.MaxInt8 {
		return 0, fmt.Errorf("%w: %d", ErrExponentRange, e)
	}
	return int8(e), nil
}

// combine applies fn to every exponent pair in int arithmetic and narrows
// the result back, failing instead of wrapping.
func combine(d, o Dimensions, fn func(a, b int) int) (Dimensions, error) {
	var r Dimensions
	for i := range d {
		e, err := exponent(fn(int(d[i]), int(o[i])))
		if err != nil {
			return Dimensions{}, fmt.Errorf("%v: %w", Base(i), err)
		}
		r[i] = e
	}
	return r, nil
}

// Plus adds exponents; it models multiplying two quantities.
func (d Dimensions) Plus(o Dimensions) (Dimensions, error) {
	return combine(d, o, func(a, b int) int { return a + b })
}

// Minus subtracts exponents; it models dividing two quantities.
func (d Dimensions) Minus(o Dimensions) (Dimensions, error) {
	return combine(d, o, func(a, b int) int { return a - b })
}

// Negate flips every exponent; it models the reciprocal.
func (d Dimensions) Negate() (Dimensions, error) {
	return combine(d, Dimensionless, func(a, _ int) int { return -a })
}

// Pow multiplies every exponent by n.
func (d Dimensions) Pow(n int) (Dimensions, error) {
	return combine(d, Dimensionless, func(a, _ int) int { return a * n })
}

func (d Dimensions) Exponent(b Base) int { return int(d[b]) }

// With returns a copy of d with the exponent of b replaced. It panics if exp
// does not fit the exponent range.
func (d Dimensions) With(b Base, exp int) Dimensions {
	d[b] = mustExponent(exp)
	return d
}

func (d Dimensions) IsDimensionless() bool { return d == Dimensionless }

// String returns the canonical form, e.g. "kg.m/s2". Dimensionless prints "1".
func (d Dimensions) String() string {
	var num, den []string
	for i, e := range d {
		switch {
		case e > 0:
			num = append(num, term(symbols[i], int(e)))
		case e < 0:
			den = append(den, term(symbols[i], -int(e)))
		}
	}
	s := "1"
	if len(num) > 0 {
		s = strings.Join(num, ".")
	}
	if len(den) > 0 {
		s += "/" + strings.Join(den, ".")
	}
	return s
}

func term(sym string, exp int) string {
	if exp == 1 {
		return sym
	}
	return sym + strconv.Itoa(exp)
}
