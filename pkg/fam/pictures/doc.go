// Package pictures catalogs the "Functors, Applicatives, and Monads in
// Pictures" walkthrough as runnable scenarios built on this module. Each
// scenario has a deterministic UUID so printed runs can be compared.
package pictures
