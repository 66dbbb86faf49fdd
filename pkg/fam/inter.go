package fam

type ValueProvider[T any] interface {
	// Get returns the held value and whether it is present
	Get() (T, bool)
}

// Maybe defines an interface for types that may or may not hold a value
type Maybe[T any] interface {
	ValueProvider[T]
	// IsPresent returns true if a value is held
	IsPresent() bool
	// IsAbsent returns true if no value is held
	IsAbsent() bool
}

// FromMaybe copies any Maybe implementation into an Optional.
func FromMaybe[T any](m Maybe[T]) Optional[T] {
	if IsNil(m) {
		return Absent[T]()
	}
	if v, ok := m.Get(); ok {
		return Present(v)
	}
	return Absent[T]()
}
