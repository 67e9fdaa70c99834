// Package storage holds the numeric containers behind quantities: dense and
// sparse vectors and matrices over float32 or float64, elementwise
// arithmetic, and a copy-on-write holder for sharing them.
//
// Values are always stored in the standard unit of their quantity. None of
// the types are safe for concurrent mutation.
package storage
