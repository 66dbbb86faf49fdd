package fam

import "fmt"

// Optional holds either exactly one value of type T (present) or nothing
// (absent). The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
}

func Present[T any](v T) Optional[T] {
	return Optional[T]{
		value:   v,
		present: true,
	}
}

func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsAbsent() bool {
	return !o.present
}

// Get returns the held value and true, or the zero value and false.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

func (o Optional[T]) OrElseGet(def func() T) T {
	if o.present {
		return o.value
	}
	return def()
}

func (o Optional[T]) String() string {
	if o.present {
		return fmt.Sprintf("Present(%v)", o.value)
	}
	return "Absent"
}
