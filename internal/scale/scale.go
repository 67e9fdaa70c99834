package scale

import (
	"fmt"
	"math"
)

// Scale converts between a unit and the standard unit of the same family.
type Scale interface {
	ToStandard(value float64) float64
	FromStandard(value float64) float64
	// IsStandard reports whether the scale is the identity.
	IsStandard() bool
}

// Factored is implemented by scales that can be multiplied by a further
// factor, which is how prefixed and derived units are built.
type Factored interface {
	Scale
	Factor() float64
	Derive(factor float64) (Scale, error)
}

func checkFactor(factor float64) error {
	if factor == 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return fmt.Errorf("factor %v: %w", factor, ErrInvalidScale)
	}
	return nil
}

// Standard is the identity scale.
type Standard struct{}

func (Standard) ToStandard(value float64) float64   { return value }
func (Standard) FromStandard(value float64) float64 { return value }
func (Standard) IsStandard() bool                   { return true }
func (Standard) Factor() float64                    { return 1 }

func (Standard) Derive(factor float64) (Scale, error) {
	return NewLinear(factor)
}

func (Standard) String() string { return "standard" }

// Linear scales by a constant factor: standard = value * factor.
type Linear struct {
	factor float64
}

func NewLinear(factor float64) (Linear, error) {
	if err := checkFactor(factor); err != nil {
		return Linear{}, err
	}
	return Linear{factor: factor}, nil
}

func (s Linear) ToStandard(value float64) float64   { return value * s.factor }
func (s Linear) FromStandard(value float64) float64 { return value / s.factor }
func (s Linear) IsStandard() bool                   { return s.factor == 1 }
func (s Linear) Factor() float64                    { return s.factor }

func (s Linear) Derive(factor float64) (Scale, error) {
	return NewLinear(s.factor * factor)
}

func (s Linear) String() string { return fmt.Sprintf("linear(%g)", s.factor) }

// OffsetLinear is a linear scale with an offset expressed in standard units:
// standard = value * factor + offset.
type OffsetLinear struct {
	factor float64
	offset float64
}

func NewOffsetLinear(factor, offset float64) (OffsetLinear, error) {
	if err := checkFactor(factor); err != nil {
		return OffsetLinear{}, err
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return OffsetLinear{}, fmt.Errorf("offset %v: %w", offset, ErrInvalidScale)
	}
	return OffsetLinear{factor: factor, offset: offset}, nil
}

func (s OffsetLinear) ToStandard(value float64) float64 {
	return value*s.factor + s.offset
}

func (s OffsetLinear) FromStandard(value float64) float64 {
	return (value - s.offset) / s.factor
}

func (s OffsetLinear) IsStandard() bool { return s.factor == 1 && s.offset == 0 }
func (s OffsetLinear) Factor() float64  { return s.factor }
func (s OffsetLinear) Offset() float64  { return s.offset }

// Derive keeps the offset: a prefixed degree Celsius still starts at 273.15 K.
func (s OffsetLinear) Derive(factor float64) (Scale, error) {
	return NewOffsetLinear(s.factor*factor, s.offset)
}

func (s OffsetLinear) String() string {
	return fmt.Sprintf("offset(%g, %g)", s.factor, s.offset)
}

// Grade maps a slope given as rise over run (times factor) onto an angle in
// radians. A percent grade uses factor 0.01.
type Grade struct {
	factor float64
}

func NewGrade(factor float64) (Grade, error) {
	if err := checkFactor(factor); err != nil {
		return Grade{}, err
	}
	return Grade{factor: factor}, nil
}

func (s Grade) ToStandard(value float64) float64   { return math.Atan(value * s.factor) }
func (s Grade) FromStandard(value float64) float64 { return math.Tan(value) / s.factor }
func (s Grade) IsStandard() bool                   { return false }

func (s Grade) String() string { return fmt.Sprintf("grade(%g)", s.factor) }

// Convert expresses value, given in from, in to. The conversion always passes
// through the standard unit.
func Convert(value float64, from, to Scale) float64 {
	if from == to {
		return value
	}
	return to.FromStandard(from.ToStandard(value))
}
