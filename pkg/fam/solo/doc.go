// Package solo contains single-value, synchronous primitives that operate
// on fam.Optional[T]. Every function returns a new Optional and never
// recovers panics raised by the functions it is given.
//
// Highlights:
// - Wrap: lift a value into a present Optional
// - Map: transform a present value (functor)
// - Apply: apply an optional function to an optional value (applicative)
// - FlatMap: chain steps that may themselves be absent (monad)
// - Try/Filter: turn errors or failed predicates into absence
// - Tee: side effect on present values only
// - Or/Finally: pick an alternative or reduce to a concrete value
package solo
