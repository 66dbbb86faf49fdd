package combinator

import (
	"github.com/ib-77/fam/pkg/fam"
	"github.com/ib-77/fam/pkg/fam/seq"
	"github.com/ib-77/fam/pkg/fam/solo"
)

// MapInto is solo.Map with the function first.
func MapInto[T, U any](f func(T) U, o fam.Optional[T]) fam.Optional[U] {
	return solo.Map(o, f)
}

// ApplyInto is solo.Apply. Nesting calls applies a curried function argument
// by argument:
//
//	ApplyInto(ApplyInto(MapInto(Curry3(f), a), b), c)
func ApplyInto[T, U any](fn fam.Optional[func(T) U], o fam.Optional[T]) fam.Optional[U] {
	return solo.Apply(fn, o)
}

// BindInto is solo.FlatMap. Nested calls stop at the first absent step.
func BindInto[T, U any](o fam.Optional[T], f func(T) fam.Optional[U]) fam.Optional[U] {
	return solo.FlatMap(o, f)
}

func SeqApplyInto[T, U any](fs []func(T) U, vs []T) []U {
	return seq.Apply(fs, vs)
}
