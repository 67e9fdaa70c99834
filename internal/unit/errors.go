package unit

import "errors"

var (
	// ErrDimensionMismatch indicates two units (or quantities) whose dimension
	// vectors differ where equal dimensions are required.
	ErrDimensionMismatch = errors.New("unit: dimension mismatch")

	// ErrDuplicateUnit indicates a unit id or abbreviation registered twice in one family.
	ErrDuplicateUnit = errors.New("unit: duplicate unit")

	// ErrDuplicateFamily indicates a family name registered twice.
	ErrDuplicateFamily = errors.New("unit: duplicate family")

	// ErrUnknownFamily indicates a lookup of a family that is not registered.
	ErrUnknownFamily = errors.New("unit: unknown family")

	// ErrUnknownUnit indicates a lookup of a unit that is not registered.
	ErrUnknownUnit = errors.New("unit: unknown unit")

	// ErrStandardUnit indicates a family whose first unit does not have a standard scale,
	// or a family registered without any unit.
	ErrStandardUnit = errors.New("unit: family needs a standard unit first")

	// ErrNotPrefixable indicates SI prefixes requested for a unit that cannot take them.
	ErrNotPrefixable = errors.New("unit: unit cannot take SI prefixes")
)
