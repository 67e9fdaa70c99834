package quantity

import "github.com/san-kum/siunits/internal/unit"

// Named scalar quantities. Each one is a Scalar[float64] restricted to the
// unit family it names.
type (
	// Dimensionless is a pure number.
	Dimensionless struct{ Scalar[float64] }
	// Angle is a plane angle.
	Angle struct{ Scalar[float64] }
	// Length is a distance.
	Length struct{ Scalar[float64] }
	// Position is a point on a length scale; absolute.
	Position struct{ Scalar[float64] }
	Area     struct{ Scalar[float64] }
	Volume   struct{ Scalar[float64] }
	Mass     struct{ Scalar[float64] }
	// Duration is a time span.
	Duration struct{ Scalar[float64] }
	// Time is an instant; absolute.
	Time         struct{ Scalar[float64] }
	Frequency    struct{ Scalar[float64] }
	Speed        struct{ Scalar[float64] }
	Acceleration struct{ Scalar[float64] }
	Force        struct{ Scalar[float64] }
	Energy       struct{ Scalar[float64] }
	Power        struct{ Scalar[float64] }
	Pressure     struct{ Scalar[float64] }
	// Temperature is a temperature difference.
	Temperature struct{ Scalar[float64] }
	// AbsoluteTemperature is a temperature reading; absolute.
	AbsoluteTemperature struct{ Scalar[float64] }
	Money               struct{ Scalar[float64] }
)

func (Dimensionless) FamilyName() string                          { return unit.Dimensionless }
func (Dimensionless) Instantiate(s Scalar[float64]) Dimensionless { return Dimensionless{s} }

func (Angle) FamilyName() string                  { return unit.Angle }
func (Angle) Instantiate(s Scalar[float64]) Angle { return Angle{s} }

func (Length) FamilyName() string                   { return unit.Length }
func (Length) Instantiate(s Scalar[float64]) Length { return Length{s} }

func (Position) FamilyName() string                     { return unit.Position }
func (Position) Instantiate(s Scalar[float64]) Position { return Position{s} }

func (Area) FamilyName() string                 { return unit.Area }
func (Area) Instantiate(s Scalar[float64]) Area { return Area{s} }

func (Volume) FamilyName() string                   { return unit.Volume }
func (Volume) Instantiate(s Scalar[float64]) Volume { return Volume{s} }

func (Mass) FamilyName() string                 { return unit.Mass }
func (Mass) Instantiate(s Scalar[float64]) Mass { return Mass{s} }

func (Duration) FamilyName() string                     { return unit.Duration }
func (Duration) Instantiate(s Scalar[float64]) Duration { return Duration{s} }

func (Time) FamilyName() string                 { return unit.Time }
func (Time) Instantiate(s Scalar[float64]) Time { return Time{s} }

func (Frequency) FamilyName() string                      { return unit.Frequency }
func (Frequency) Instantiate(s Scalar[float64]) Frequency { return Frequency{s} }

func (Speed) FamilyName() string                  { return unit.Speed }
func (Speed) Instantiate(s Scalar[float64]) Speed { return Speed{s} }

func (Acceleration) FamilyName() string                         { return unit.Acceleration }
func (Acceleration) Instantiate(s Scalar[float64]) Acceleration { return Acceleration{s} }

func (Force) FamilyName() string                  { return unit.Force }
func (Force) Instantiate(s Scalar[float64]) Force { return Force{s} }

func (Energy) FamilyName() string                   { return unit.Energy }
func (Energy) Instantiate(s Scalar[float64]) Energy { return Energy{s} }

func (Power) FamilyName() string                  { return unit.Power }
func (Power) Instantiate(s Scalar[float64]) Power { return Power{s} }

func (Pressure) FamilyName() string                     { return unit.Pressure }
func (Pressure) Instantiate(s Scalar[float64]) Pressure { return Pressure{s} }

func (Temperature) FamilyName() string                        { return unit.Temperature }
func (Temperature) Instantiate(s Scalar[float64]) Temperature { return Temperature{s} }

func (AbsoluteTemperature) FamilyName() string { return unit.AbsoluteTemperature }
func (AbsoluteTemperature) Instantiate(s Scalar[float64]) AbsoluteTemperature {
	return AbsoluteTemperature{s}
}

func (Money) FamilyName() string                  { return unit.Money }
func (Money) Instantiate(s Scalar[float64]) Money { return Money{s} }

// Named vector quantities.
type (
	LengthVector        struct{ *Vector[float64] }
	PositionVector      struct{ *Vector[float64] }
	DurationVector      struct{ *Vector[float64] }
	SpeedVector         struct{ *Vector[float64] }
	DimensionlessVector struct{ *Vector[float64] }
)

func (LengthVector) FamilyName() string                          { return unit.Length }
func (LengthVector) Instantiate(v *Vector[float64]) LengthVector { return LengthVector{v} }

func (PositionVector) FamilyName() string                            { return unit.Position }
func (PositionVector) Instantiate(v *Vector[float64]) PositionVector { return PositionVector{v} }

func (DurationVector) FamilyName() string                            { return unit.Duration }
func (DurationVector) Instantiate(v *Vector[float64]) DurationVector { return DurationVector{v} }

func (SpeedVector) FamilyName() string                         { return unit.Speed }
func (SpeedVector) Instantiate(v *Vector[float64]) SpeedVector { return SpeedVector{v} }

func (DimensionlessVector) FamilyName() string { return unit.Dimensionless }
func (DimensionlessVector) Instantiate(v *Vector[float64]) DimensionlessVector {
	return DimensionlessVector{v}
}
