package unit

import (
	"fmt"

	"github.com/san-kum/siunits/internal/scale"
	"github.com/san-kum/siunits/internal/si"
)

// Kind separates points on a scale from differences between them.
type Kind int

const (
	// Relative quantities are measures or differences (Duration, Length, Temperature).
	Relative Kind = iota
	// Absolute quantities are points on a scale (Time, Position, AbsoluteTemperature).
	Absolute
)

func (k Kind) String() string {
	if k == Absolute {
		return "Abs"
	}
	return "Rel"
}

// System tags the unit system a unit belongs to.
type System int

const (
	SIBase System = iota
	SIDerived
	SIAccepted
	Imperial
	USCustomary
	CGS
	MTS
	Other
)

var systemNames = map[System]string{
	SIBase:      "SI base",
	SIDerived:   "SI derived",
	SIAccepted:  "SI accepted",
	Imperial:    "Imperial",
	USCustomary: "US customary",
	CGS:         "CGS",
	MTS:         "MTS",
	Other:       "other",
}

func (s System) String() string {
	if name, ok := systemNames[s]; ok {
		return name
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// ParseSystem maps a lower-case system name ("si", "imperial", ...) to a System.
func ParseSystem(name string) (System, error) {
	switch name {
	case "si", "si_base":
		return SIBase, nil
	case "si_derived":
		return SIDerived, nil
	case "si_accepted":
		return SIAccepted, nil
	case "imperial":
		return Imperial, nil
	case "us", "us_customary":
		return USCustomary, nil
	case "cgs":
		return CGS, nil
	case "mts":
		return MTS, nil
	case "", "other":
		return Other, nil
	}
	return Other, fmt.Errorf("unknown unit system %q", name)
}

// Unit is a named scale within a family. Units are created through
// [Family.Add] and are immutable afterwards; compare them by pointer.
type Unit struct {
	id            string
	name          string
	abbreviation  string
	abbreviations []string
	scale         scale.Scale
	system        System
	family        *Family
	relative      *Unit
	generated     bool
}

func (u *Unit) ID() string                { return u.id }
func (u *Unit) Name() string              { return u.name }
func (u *Unit) Abbreviation() string      { return u.abbreviation }
func (u *Unit) Scale() scale.Scale        { return u.scale }
func (u *Unit) System() System            { return u.system }
func (u *Unit) Family() *Family           { return u.family }
func (u *Unit) Kind() Kind                { return u.family.kind }
func (u *Unit) Dimensions() si.Dimensions { return u.family.dims }

// Abbreviations returns every abbreviation the unit answers to, the default first.
func (u *Unit) Abbreviations() []string {
	out := make([]string, len(u.abbreviations))
	copy(out, u.abbreviations)
	return out
}

// Generated reports whether the unit was derived automatically (SI prefixes).
func (u *Unit) Generated() bool { return u.generated }

// IsStandard reports whether u is the standard unit of its family.
func (u *Unit) IsStandard() bool { return u.family.standard == u }

// Standard returns the standard unit of u's family.
func (u *Unit) Standard() *Unit { return u.family.standard }

// Relative returns the matching unit of the relative family for an absolute
// unit (degree Celsius for the absolute degree Celsius), or u itself for a
// relative unit.
func (u *Unit) Relative() *Unit {
	if u.relative != nil {
		return u.relative
	}
	return u
}

func (u *Unit) ToStandard(value float64) float64   { return u.scale.ToStandard(value) }
func (u *Unit) FromStandard(value float64) float64 { return u.scale.FromStandard(value) }

// ConvertTo expresses value, given in u, in the unit to.
func (u *Unit) ConvertTo(value float64, to *Unit) (float64, error) {
	if u.Dimensions() != to.Dimensions() {
		return 0, &MismatchError{Op: "convert", From: u.Dimensions(), To: to.Dimensions()}
	}
	return scale.Convert(value, u.scale, to.scale), nil
}

func (u *Unit) String() string { return u.abbreviation }

// MismatchError reports two incompatible dimension vectors.
type MismatchError struct {
	Op   string
	From si.Dimensions
	To   si.Dimensions
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: %s [%v] to [%v]", ErrDimensionMismatch, e.Op, e.From, e.To)
}

func (e *MismatchError) Unwrap() error { return ErrDimensionMismatch }
