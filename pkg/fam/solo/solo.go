package solo

import (
	"github.com/ib-77/fam/pkg/fam"
)

func Wrap[T any](v T) fam.Optional[T] {
	return fam.Present(v)
}

func Map[In any, Out any](input fam.Optional[In], f func(r In) Out) fam.Optional[Out] {
	if v, ok := input.Get(); ok {
		return fam.Present(f(v))
	}
	return fam.Absent[Out]()
}

// Apply lifts the function held by fn over input. Absence on either side
// yields Absent and fn is not invoked.
func Apply[In any, Out any](fn fam.Optional[func(In) Out], input fam.Optional[In]) fam.Optional[Out] {
	f, ok := fn.Get()
	if !ok {
		return fam.Absent[Out]()
	}
	return Map(input, f)
}

// FlatMap returns f's result as is, so a step that yields Absent halts the
// computation.
func FlatMap[In any, Out any](input fam.Optional[In], f func(r In) fam.Optional[Out]) fam.Optional[Out] {
	if v, ok := input.Get(); ok {
		return f(v)
	}
	return fam.Absent[Out]()
}

func Try[In any, Out any](input fam.Optional[In], onTryExecute func(r In) (Out, error)) fam.Optional[Out] {
	return FlatMap(input, func(r In) fam.Optional[Out] {
		out, err := onTryExecute(r)
		return fam.FromError(out, err)
	})
}

func Filter[T any](input fam.Optional[T], keep func(r T) bool) fam.Optional[T] {
	if v, ok := input.Get(); ok && keep(v) {
		return input
	}
	return fam.Absent[T]()
}

func Tee[T any](input fam.Optional[T], onPresent func(r T)) fam.Optional[T] {
	if v, ok := input.Get(); ok {
		onPresent(v)
	}
	return input
}

// Or returns the first present candidate, or Absent when none is.
func Or[T any](candidates ...fam.Optional[T]) fam.Optional[T] {
	for _, c := range candidates {
		if c.IsPresent() {
			return c
		}
	}
	return fam.Absent[T]()
}

func Finally[In, Out any](input fam.Optional[In],
	onPresent func(r In) Out,
	onAbsent func() Out) Out {

	if v, ok := input.Get(); ok {
		return onPresent(v)
	}
	return onAbsent()
}
