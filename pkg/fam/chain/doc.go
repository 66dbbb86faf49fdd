// Package chain provides a fluent wrapper around fam.Optional[T]
// for building sequential pipelines using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from an Optional or a value
// - Then/Bind: continue with a step that may be absent
// - Map: transform the present value (T -> U)
// - Filter: drop values failing a predicate
// - Ensure: run side effects on present values without changing them
// - Or: fall back to another chain when absent
// - Finally: collapse the chain into a final value
package chain
