// Package unit defines units, unit families and the registry that maps SI
// dimension vectors to them.
//
// A [Family] groups all units of one kind of quantity (Length, Duration,
// AbsoluteTemperature, ...). The first unit added to a family is its standard
// unit; every other unit carries a [scale.Scale] relative to it.
//
// The [Registry] owns the families and resolves units:
//
//   - [Registry.LookupOrCreate]: dimension vector to standard unit, synthesizing
//     and caching an anonymous unit when no named family exists
//   - [Registry.Unit]: abbreviation (or SI string such as "kg.m/s2") to unit
//   - [Registry.Family]: family by name
//
// Registries are explicit values; [NewDefaultRegistry] returns one populated
// with the built-in families. A registry is safe for concurrent use.
package unit
