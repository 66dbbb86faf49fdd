// Package fam defines Optional[T], a two-state container that either holds
// exactly one value (Present) or nothing (Absent).
//
// Absence is an ordinary value, not an error. Operations over Optional live in
// sibling packages:
// - solo: Map/Apply/FlatMap and other single-value primitives
// - seq: cartesian Apply for slices of functions and values
// - combinator: Curry and the MapInto/ApplyInto/BindInto chain operators
// - chain: a fluent wrapper for sequential FlatMap pipelines
package fam
