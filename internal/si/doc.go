// Package si implements the exponent algebra over the SI base dimensions.
//
// A [Dimensions] value holds one signed exponent per base dimension (mass,
// length, time, electrical current, temperature, amount of substance,
// luminous intensity) plus money as a pseudo-dimension. Multiplying two
// quantities adds their exponents, dividing subtracts them:
//
//	force := si.MustParse("kg.m/s2")
//	length := si.Of(si.Length, 1)
//	energy, err := force.Plus(length) // kg.m2/s2
//
// Arithmetic fails with [ErrExponentRange] rather than wrapping an exponent.
// Dimensions is a comparable array type, so it can be used directly as a map
// key and compared with ==.
package si
