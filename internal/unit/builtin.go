package unit

import (
	"fmt"
	"math"

	"github.com/san-kum/siunits/internal/scale"
	"github.com/san-kum/siunits/internal/si"
)

// Built-in family names.
const (
	Dimensionless        = "Dimensionless"
	Angle                = "Angle"
	Length               = "Length"
	Position             = "Position"
	Area                 = "Area"
	Volume               = "Volume"
	Mass                 = "Mass"
	Duration             = "Duration"
	Time                 = "Time"
	Frequency            = "Frequency"
	Speed                = "Speed"
	Acceleration         = "Acceleration"
	Force                = "Force"
	Energy               = "Energy"
	Torque               = "Torque"
	Power                = "Power"
	Pressure             = "Pressure"
	Density              = "Density"
	FlowVolume           = "FlowVolume"
	FlowMass             = "FlowMass"
	ElectricalCurrent    = "ElectricalCurrent"
	ElectricalCharge     = "ElectricalCharge"
	ElectricalPotential  = "ElectricalPotential"
	ElectricalResistance = "ElectricalResistance"
	Temperature          = "Temperature"
	AbsoluteTemperature  = "AbsoluteTemperature"
	AmountOfSubstance    = "AmountOfSubstance"
	LuminousIntensity    = "LuminousIntensity"
	Money                = "Money"
	MoneyPerLength       = "MoneyPerLength"
	MoneyPerDuration     = "MoneyPerDuration"
)

type builtinFamily struct {
	name       string
	dims       string
	absoluteOf string
	units      []UnitDef
}

func lin(factor float64) scale.Scale {
	s, err := scale.NewLinear(factor)
	if err != nil {
		panic(err)
	}
	return s
}

func offset(factor, off float64) scale.Scale {
	s, err := scale.NewOffsetLinear(factor, off)
	if err != nil {
		panic(err)
	}
	return s
}

func grade(factor float64) scale.Scale {
	s, err := scale.NewGrade(factor)
	if err != nil {
		panic(err)
	}
	return s
}

const (
	inch       = 0.0254
	foot       = 0.3048
	mile       = 1609.344
	nautical   = 1852.0
	pound      = 0.45359237
	gravity    = 9.80665
	gallon     = 3.785411784e-3
	lbf        = pound * gravity
	degreeF    = 5.0 / 9.0
	zeroF      = 459.67 * degreeF
	zeroC      = 273.15
	atmosphere = 101325.0
)

var builtins = []builtinFamily{
	{name: Dimensionless, dims: "1", units: []UnitDef{
		{ID: "unit", Name: "unit", Abbreviation: "1", System: SIDerived},
	}},
	{name: Angle, dims: "1", units: []UnitDef{
		{ID: "rad", Name: "radian", Abbreviation: "rad", System: SIDerived},
		{ID: "deg", Name: "degree", Abbreviation: "°", Abbreviations: []string{"deg"}, Scale: lin(math.Pi / 180), System: SIAccepted},
		{ID: "arcmin", Name: "arcminute", Abbreviation: "'", Abbreviations: []string{"arcmin"}, Scale: lin(math.Pi / 10800), System: SIAccepted},
		{ID: "arcsec", Name: "arcsecond", Abbreviation: "\"", Abbreviations: []string{"arcsec"}, Scale: lin(math.Pi / 648000), System: SIAccepted},
		{ID: "grad", Name: "gradian", Abbreviation: "grad", Scale: lin(math.Pi / 200), System: Other},
		{ID: "percent", Name: "percent grade", Abbreviation: "%", Scale: grade(0.01), System: Other},
	}},
	{name: Length, dims: "m", units: []UnitDef{
		{ID: "m", Name: "meter", Abbreviation: "m", System: SIBase, Prefixes: UnitPrefixes},
		{ID: "in", Name: "inch", Abbreviation: "in", Scale: lin(inch), System: Imperial},
		{ID: "ft", Name: "foot", Abbreviation: "ft", Scale: lin(foot), System: Imperial},
		{ID: "yd", Name: "yard", Abbreviation: "yd", Scale: lin(3 * foot), System: Imperial},
		{ID: "mi", Name: "mile", Abbreviation: "mi", Scale: lin(mile), System: Imperial},
		{ID: "NM", Name: "nautical mile", Abbreviation: "NM", Scale: lin(nautical), System: Other},
		{ID: "angstrom", Name: "angstrom", Abbreviation: "Å", Abbreviations: []string{"angstrom"}, Scale: lin(1e-10), System: Other},
	}},
	{name: Position, absoluteOf: Length, units: []UnitDef{
		{ID: "m", Name: "meter", Abbreviation: "m", System: SIBase},
		{ID: "km", Name: "kilometer", Abbreviation: "km", Scale: lin(1e3), System: SIBase},
		{ID: "cm", Name: "centimeter", Abbreviation: "cm", Scale: lin(1e-2), System: SIBase},
		{ID: "mm", Name: "millimeter", Abbreviation: "mm", Scale: lin(1e-3), System: SIBase},
		{ID: "ft", Name: "foot", Abbreviation: "ft", Scale: lin(foot), System: Imperial},
		{ID: "mi", Name: "mile", Abbreviation: "mi", Scale: lin(mile), System: Imperial},
	}},
	{name: Area, dims: "m2", units: []UnitDef{
		{ID: "m2", Name: "square meter", Abbreviation: "m2", Abbreviations: []string{"m^2"}, System: SIDerived},
		{ID: "mm2", Name: "square millimeter", Abbreviation: "mm2", Scale: lin(1e-6), System: SIDerived},
		{ID: "cm2", Name: "square centimeter", Abbreviation: "cm2", Scale: lin(1e-4), System: SIDerived},
		{ID: "km2", Name: "square kilometer", Abbreviation: "km2", Scale: lin(1e6), System: SIDerived},
		{ID: "a", Name: "are", Abbreviation: "a", Scale: lin(1e2), System: SIAccepted},
		{ID: "ha", Name: "hectare", Abbreviation: "ha", Scale: lin(1e4), System: SIAccepted},
		{ID: "in2", Name: "square inch", Abbreviation: "in2", Scale: lin(inch * inch), System: Imperial},
		{ID: "ft2", Name: "square foot", Abbreviation: "ft2", Scale: lin(foot * foot), System: Imperial},
		{ID: "ac", Name: "acre", Abbreviation: "ac", Scale: lin(4046.8564224), System: Imperial},
		{ID: "mi2", Name: "square mile", Abbreviation: "mi2", Scale: lin(mile * mile), System: Imperial},
	}},
	{name: Volume, dims: "m3", units: []UnitDef{
		{ID: "m3", Name: "cubic meter", Abbreviation: "m3", Abbreviations: []string{"m^3"}, System: SIDerived},
		{ID: "L", Name: "liter", Abbreviation: "L", Abbreviations: []string{"l"}, Scale: lin(1e-3), System: SIAccepted, Prefixes: UnitPrefixes},
		{ID: "cm3", Name: "cubic centimeter", Abbreviation: "cm3", Abbreviations: []string{"cc"}, Scale: lin(1e-6), System: SIDerived},
		{ID: "km3", Name: "cubic kilometer", Abbreviation: "km3", Scale: lin(1e9), System: SIDerived},
		{ID: "in3", Name: "cubic inch", Abbreviation: "in3", Scale: lin(inch * inch * inch), System: Imperial},
		{ID: "ft3", Name: "cubic foot", Abbreviation: "ft3", Scale: lin(foot * foot * foot), System: Imperial},
		{ID: "gal", Name: "US gallon", Abbreviation: "gal", Scale: lin(gallon), System: USCustomary},
	}},
	{name: Mass, dims: "kg", units: []UnitDef{
		{ID: "kg", Name: "kilogram", Abbreviation: "kg", System: SIBase, Prefixes: KiloPrefixes},
		{ID: "t", Name: "tonne", Abbreviation: "t", Scale: lin(1e3), System: SIAccepted},
		{ID: "lb", Name: "pound", Abbreviation: "lb", Scale: lin(pound), System: Imperial},
		{ID: "oz", Name: "ounce", Abbreviation: "oz", Scale: lin(pound / 16), System: Imperial},
		{ID: "Da", Name: "dalton", Abbreviation: "Da", Scale: lin(1.66053906660e-27), System: Other},
	}},
	{name: Duration, dims: "s", units: []UnitDef{
		{ID: "s", Name: "second", Abbreviation: "s", Abbreviations: []string{"sec"}, System: SIBase, Prefixes: UnitPrefixes},
		{ID: "min", Name: "minute", Abbreviation: "min", Scale: lin(60), System: SIAccepted},
		{ID: "h", Name: "hour", Abbreviation: "h", Abbreviations: []string{"hr"}, Scale: lin(3600), System: SIAccepted},
		{ID: "day", Name: "day", Abbreviation: "day", Abbreviations: []string{"d"}, Scale: lin(86400), System: SIAccepted},
		{ID: "wk", Name: "week", Abbreviation: "wk", Scale: lin(7 * 86400), System: Other},
	}},
	{name: Time, absoluteOf: Duration, units: []UnitDef{
		{ID: "s", Name: "second", Abbreviation: "s", System: SIBase},
		{ID: "ms", Name: "millisecond", Abbreviation: "ms", Scale: lin(1e-3), System: SIBase},
		{ID: "min", Name: "minute", Abbreviation: "min", Scale: lin(60), System: SIAccepted},
		{ID: "h", Name: "hour", Abbreviation: "h", Scale: lin(3600), System: SIAccepted},
		{ID: "day", Name: "day", Abbreviation: "day", Scale: lin(86400), System: SIAccepted},
	}},
	{name: Frequency, dims: "1/s", units: []UnitDef{
		{ID: "Hz", Name: "hertz", Abbreviation: "Hz", System: SIDerived, Prefixes: UnitPrefixes},
		{ID: "rpm", Name: "revolutions per minute", Abbreviation: "rpm", Scale: lin(1.0 / 60), System: Other},
	}},
	{name: Speed, dims: "m/s", units: []UnitDef{
		{ID: "m/s", Name: "meter per second", Abbreviation: "m/s", System: SIDerived},
		{ID: "km/h", Name: "kilometer per hour", Abbreviation: "km/h", Abbreviations: []string{"kph"}, Scale: lin(1 / 3.6), System: SIAccepted},
		{ID: "mi/h", Name: "mile per hour", Abbreviation: "mi/h", Abbreviations: []string{"mph"}, Scale: lin(mile / 3600), System: Imperial},
		{ID: "ft/s", Name: "foot per second", Abbreviation: "ft/s", Scale: lin(foot), System: Imperial},
		{ID: "kt", Name: "knot", Abbreviation: "kt", Scale: lin(nautical / 3600), System: Other},
	}},
	{name: Acceleration, dims: "m/s2", units: []UnitDef{
		{ID: "m/s2", Name: "meter per second squared", Abbreviation: "m/s2", Abbreviations: []string{"m/s^2"}, System: SIDerived},
		{ID: "km/h2", Name: "kilometer per hour squared", Abbreviation: "km/h2", Scale: lin(1e3 / (3600 * 3600)), System: SIAccepted},
		{ID: "ft/s2", Name: "foot per second squared", Abbreviation: "ft/s2", Scale: lin(foot), System: Imperial},
		{ID: "g0", Name: "standard gravity", Abbreviation: "g0", Scale: lin(gravity), System: Other},
		{ID: "Gal", Name: "gal", Abbreviation: "Gal", Scale: lin(0.01), System: CGS},
	}},
	{name: Force, dims: "kg.m/s2", units: []UnitDef{
		{ID: "N", Name: "newton", Abbreviation: "N", System: SIDerived, Prefixes: UnitPrefixes},
		{ID: "dyn", Name: "dyne", Abbreviation: "dyn", Scale: lin(1e-5), System: CGS},
		{ID: "kgf", Name: "kilogram-force", Abbreviation: "kgf", Scale: lin(gravity), System: Other},
		{ID: "lbf", Name: "pound-force", Abbreviation: "lbf", Scale: lin(lbf), System: Imperial},
	}},
	{name: Energy, dims: "kg.m2/s2", units: []UnitDef{
		{ID: "J", Name: "joule", Abbreviation: "J", System: SIDerived, Prefixes: UnitPrefixes},
		{ID: "Wh", Name: "watt-hour", Abbreviation: "Wh", Scale: lin(3600), System: SIAccepted},
		{ID: "kWh", Name: "kilowatt-hour", Abbreviation: "kWh", Scale: lin(3.6e6), System: SIAccepted},
		{ID: "eV", Name: "electronvolt", Abbreviation: "eV", Scale: lin(1.602176634e-19), System: SIAccepted},
		{ID: "cal", Name: "calorie", Abbreviation: "cal", Scale: lin(4.184), System: Other},
		{ID: "kcal", Name: "kilocalorie", Abbreviation: "kcal", Scale: lin(4184), System: Other},
		{ID: "BTU", Name: "British thermal unit", Abbreviation: "BTU", Scale: lin(1055.05585262), System: Imperial},
		{ID: "erg", Name: "erg", Abbreviation: "erg", Scale: lin(1e-7), System: CGS},
	}},
	{name: Torque, dims: "kg.m2/s2", units: []UnitDef{
		{ID: "N.m", Name: "newton meter", Abbreviation: "N.m", Abbreviations: []string{"Nm"}, System: SIDerived},
		{ID: "lbf.ft", Name: "pound-foot", Abbreviation: "lbf.ft", Scale: lin(lbf * foot), System: Imperial},
	}},
	{name: Power, dims: "kg.m2/s3", units: []UnitDef{
		{ID: "W", Name: "watt", Abbreviation: "W", System: SIDerived, Prefixes: UnitPrefixes},
		{ID: "hp", Name: "horsepower", Abbreviation: "hp", Scale: lin(745.69987158227022), System: Imperial},
		{ID: "erg/s", Name: "erg per second", Abbreviation: "erg/s", Scale: lin(1e-7), System: CGS},
	}},
	{name: Pressure, dims: "kg/m.s2", units: []UnitDef{
		{ID: "Pa", Name: "pascal", Abbreviation: "Pa", System: SIDerived, Prefixes: UnitPrefixes},
		{ID: "bar", Name: "bar", Abbreviation: "bar", Scale: lin(1e5), System: Other},
		{ID: "mbar", Name: "millibar", Abbreviation: "mbar", Scale: lin(1e2), System: Other},
		{ID: "atm", Name: "standard atmosphere", Abbreviation: "atm", Scale: lin(atmosphere), System: Other},
		{ID: "torr", Name: "torr", Abbreviation: "torr", Scale: lin(atmosphere / 760), System: Other},
		{ID: "mmHg", Name: "millimeter of mercury", Abbreviation: "mmHg", Scale: lin(133.322387415), System: Other},
		{ID: "psi", Name: "pound per square inch", Abbreviation: "psi", Scale: lin(lbf / (inch * inch)), System: Imperial},
	}},
	{name: Density, dims: "kg/m3", units: []UnitDef{
		{ID: "kg/m3", Name: "kilogram per cubic meter", Abbreviation: "kg/m3", System: SIDerived},
		{ID: "g/cm3", Name: "gram per cubic centimeter", Abbreviation: "g/cm3", Scale: lin(1e3), System: SIDerived},
		{ID: "g/L", Name: "gram per liter", Abbreviation: "g/L", Scale: lin(1), System: SIAccepted},
		{ID: "lb/ft3", Name: "pound per cubic foot", Abbreviation: "lb/ft3", Scale: lin(pound / (foot * foot * foot)), System: Imperial},
	}},
	{name: FlowVolume, dims: "m3/s", units: []UnitDef{
		{ID: "m3/s", Name: "cubic meter per second", Abbreviation: "m3/s", System: SIDerived},
		{ID: "m3/h", Name: "cubic meter per hour", Abbreviation: "m3/h", Scale: lin(1.0 / 3600), System: SIAccepted},
		{ID: "L/s", Name: "liter per second", Abbreviation: "L/s", Scale: lin(1e-3), System: SIAccepted},
		{ID: "L/min", Name: "liter per minute", Abbreviation: "L/min", Scale: lin(1e-3 / 60), System: SIAccepted},
		{ID: "gal/min", Name: "gallon per minute", Abbreviation: "gal/min", Abbreviations: []string{"gpm"}, Scale: lin(gallon / 60), System: USCustomary},
	}},
	{name: FlowMass, dims: "kg/s", units: []UnitDef{
		{ID: "kg/s", Name: "kilogram per second", Abbreviation: "kg/s", System: SIDerived},
		{ID: "g/s", Name: "gram per second", Abbreviation: "g/s", Scale: lin(1e-3), System: SIDerived},
		{ID: "kg/h", Name: "kilogram per hour", Abbreviation: "kg/h", Scale: lin(1.0 / 3600), System: SIAccepted},
		{ID: "lb/s", Name: "pound per second", Abbreviation: "lb/s", Scale: lin(pound), System: Imperial},
	}},
	{name: ElectricalCurrent, dims: "A", units: []UnitDef{
		{ID: "A", Name: "ampere", Abbreviation: "A", System: SIBase, Prefixes: UnitPrefixes},
	}},
	{name: ElectricalCharge, dims: "s.A", units: []UnitDef{
		{ID: "C", Name: "coulomb", Abbreviation: "C", System: SIDerived, Prefixes: UnitPrefixes},
		{ID: "Ah", Name: "ampere-hour", Abbreviation: "Ah", Scale: lin(3600), System: SIAccepted},
		{ID: "mAh", Name: "milliampere-hour", Abbreviation: "mAh", Scale: lin(3.6), System: SIAccepted},
	}},
	{name: ElectricalPotential, dims: "kg.m2/s3.A", units: []UnitDef{
		{ID: "V", Name: "volt", Abbreviation: "V", System: SIDerived, Prefixes: UnitPrefixes},
	}},
	{name: ElectricalResistance, dims: "kg.m2/s3.A2", units: []UnitDef{
		{ID: "ohm", Name: "ohm", Abbreviation: "Ω", Abbreviations: []string{"ohm"}, System: SIDerived, Prefixes: UnitPrefixes},
	}},
	{name: Temperature, dims: "K", units: []UnitDef{
		{ID: "K", Name: "kelvin", Abbreviation: "K", System: SIBase, Prefixes: UnitPrefixes},
		{ID: "degC", Name: "degree Celsius", Abbreviation: "°C", Abbreviations: []string{"degC"}, Scale: lin(1), System: SIDerived},
		{ID: "degF", Name: "degree Fahrenheit", Abbreviation: "°F", Abbreviations: []string{"degF"}, Scale: lin(degreeF), System: Imperial},
		{ID: "degR", Name: "degree Rankine", Abbreviation: "°R", Abbreviations: []string{"degR"}, Scale: lin(degreeF), System: Imperial},
	}},
	{name: AbsoluteTemperature, absoluteOf: Temperature, units: []UnitDef{
		{ID: "K", Name: "kelvin", Abbreviation: "K", System: SIBase},
		{ID: "degC", Name: "degree Celsius", Abbreviation: "°C", Abbreviations: []string{"degC"}, Scale: offset(1, zeroC), System: SIDerived},
		{ID: "degF", Name: "degree Fahrenheit", Abbreviation: "°F", Abbreviations: []string{"degF"}, Scale: offset(degreeF, zeroF), System: Imperial},
		{ID: "degR", Name: "degree Rankine", Abbreviation: "°R", Abbreviations: []string{"degR"}, Scale: lin(degreeF), System: Imperial},
	}},
	{name: AmountOfSubstance, dims: "mol", units: []UnitDef{
		{ID: "mol", Name: "mole", Abbreviation: "mol", System: SIBase, Prefixes: UnitPrefixes},
	}},
	{name: LuminousIntensity, dims: "cd", units: []UnitDef{
		{ID: "cd", Name: "candela", Abbreviation: "cd", System: SIBase},
	}},
	{name: Money, dims: "$", units: []UnitDef{
		{ID: "USD", Name: "US dollar", Abbreviation: "USD", Abbreviations: []string{"$"}, System: Other},
		{ID: "cent", Name: "US cent", Abbreviation: "¢", Abbreviations: []string{"cent"}, Scale: lin(0.01), System: Other},
	}},
	{name: MoneyPerLength, dims: "$/m", units: []UnitDef{
		{ID: "USD/m", Name: "US dollar per meter", Abbreviation: "USD/m", System: Other},
		{ID: "USD/km", Name: "US dollar per kilometer", Abbreviation: "USD/km", Scale: lin(1e-3), System: Other},
	}},
	{name: MoneyPerDuration, dims: "$/s", units: []UnitDef{
		{ID: "USD/s", Name: "US dollar per second", Abbreviation: "USD/s", System: Other},
		{ID: "USD/h", Name: "US dollar per hour", Abbreviation: "USD/h", Scale: lin(1.0 / 3600), System: Other},
	}},
}

// RegisterBuiltins adds the built-in families to r.
func RegisterBuiltins(r *Registry) error {
	for _, bf := range builtins {
		var f *Family
		if bf.absoluteOf != "" {
			rel, err := r.Family(bf.absoluteOf)
			if err != nil {
				return err
			}
			f = NewAbsoluteFamily(bf.name, rel)
		} else {
			dims, err := si.Parse(bf.dims)
			if err != nil {
				return fmt.Errorf("family %s: %w", bf.name, err)
			}
			f = NewFamily(bf.name, dims)
		}
		for _, def := range bf.units {
			if _, err := f.Add(def); err != nil {
				return err
			}
		}
		if err := r.Register(f); err != nil {
			return err
		}
	}
	return nil
}

// NewDefaultRegistry returns a registry populated with the built-in families.
func NewDefaultRegistry(opts ...Option) *Registry {
	r := NewRegistry(opts...)
	if err := RegisterBuiltins(r); err != nil {
		panic(err)
	}
	return r
}
