// Package core contains the plumbing behind concurrent evaluation: channel
// helpers, worker configuration and logger carried via context, and the
// locomotive that drives workers. It defines no combinator semantics itself;
// package seq uses it to evaluate cartesian applications in parallel.
package core
