// Package scale converts values between a unit and the standard unit of its
// family.
//
// Every unit carries a [Scale]. Values are always converted through the
// standard unit, so an offset (as used by temperature scales) is applied
// exactly once per conversion:
//
//   - [Standard]: the identity, used by the standard unit itself
//   - [Linear]: value * factor
//   - [OffsetLinear]: value * factor + offset
//   - [Grade]: atan(value * factor), for slopes expressed as a grade
//
// # Example
//
//	mile, _ := scale.NewLinear(1609.344)
//	meters := mile.ToStandard(2)       // 3218.688
//	miles := mile.FromStandard(meters) // 2
package scale
