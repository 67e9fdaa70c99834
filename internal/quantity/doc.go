// Package quantity binds values and numeric storage to units.
//
// A Scalar, Vector or Matrix carries its value in the standard unit of its
// unit family together with a display unit. The unit's family decides the
// kind: absolute quantities are points on a scale (Time, Position,
// AbsoluteTemperature) and relative quantities are measures or differences.
//
//	Abs - Abs -> Rel
//	Abs ± Rel -> Abs
//	Rel ± Rel -> Rel
//	Abs + Abs    error
//
// Multiplication and division derive the result unit from the operands'
// dimension vectors through the unit registry, so any product is
// representable. Named types such as Length or Speed embed Scalar[float64]
// and reconstruct themselves through Instantiate, which lets the generic
// helpers in this package return the concrete type.
//
// Vectors and matrices share storage copy-on-write between views; none of
// the types are safe for concurrent mutation.
package quantity
