package chain

import (
	"github.com/ib-77/fam/pkg/fam"
	"github.com/ib-77/fam/pkg/fam/solo"
)

// Chain wraps a fam.Optional to enable fluent chaining
type Chain[T any] struct {
	result fam.Optional[T]
}

// Start creates a new chain from a fam.Optional
func Start[T any](result fam.Optional[T]) *Chain[T] {
	return &Chain[T]{
		result: result,
	}
}

// FromValue creates a new chain from a present value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{
		result: fam.Present(value),
	}
}

// Result returns the underlying fam.Optional
func (c *Chain[T]) Result() fam.Optional[T] {
	return c.result
}

// Then chains a step that may itself be absent
func Then[T, U any](c *Chain[T], onPresent func(T) fam.Optional[U]) *Chain[U] {
	return &Chain[U]{
		result: solo.FlatMap(c.result, onPresent),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onPresent func(T) U) *Chain[U] {
	return &Chain[U]{
		result: solo.Map(c.result, onPresent),
	}
}

// Bind is Then for steps that keep the type, usable as a method
func (c *Chain[T]) Bind(onPresent func(T) fam.Optional[T]) *Chain[T] {
	return Then(c, onPresent)
}

func (c *Chain[T]) Filter(keep func(T) bool) *Chain[T] {
	return &Chain[T]{
		result: solo.Filter(c.result, keep),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onPresent func(T)) *Chain[T] {
	return &Chain[T]{
		result: solo.Tee(c.result, onPresent),
	}
}

// Or keeps c when present and falls back to alternative otherwise
func (c *Chain[T]) Or(alternative *Chain[T]) *Chain[T] {
	return &Chain[T]{
		result: solo.Or(c.result, alternative.result),
	}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c *Chain[T], onPresent func(T) U, onAbsent func() U) U {
	return solo.Finally(c.result, onPresent, onAbsent)
}
