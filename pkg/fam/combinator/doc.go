// Package combinator provides Curry and the point-free chain operators
// MapInto, ApplyInto and BindInto. The operators are plain pass-throughs to
// package solo with the argument order of their infix counterparts
// (f <^> a, f <*> a, a >>- f), so nesting them reads left to right.
package combinator
