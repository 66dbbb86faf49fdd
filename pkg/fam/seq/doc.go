// Package seq treats slices as an applicative: Apply combines every function
// of one slice with every value of another, keeping the function order
// outermost and the value order innermost.
//
// Map, FlatMap and Wrap complete the set. ApplyConcurrent evaluates the same
// cartesian product on a worker pool configured through package core and
// still returns the cells in Apply order.
package seq
