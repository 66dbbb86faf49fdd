package seq

// Apply applies every function in fs to every value in vs. Outputs of fs[i]
// precede those of fs[i+1]; within one function the order of vs is kept, so
// the element at i*len(vs)+j is fs[i](vs[j]).
func Apply[In, Out any](fs []func(In) Out, vs []In) []Out {
	res := make([]Out, 0, len(fs)*len(vs))
	for _, f := range fs {
		for _, v := range vs {
			res = append(res, f(v))
		}
	}
	return res
}

func Wrap[T any](v T) []T {
	return []T{v}
}

func Map[In, Out any](vs []In, f func(In) Out) []Out {
	res := make([]Out, len(vs))
	for i, v := range vs {
		res[i] = f(v)
	}
	return res
}

// FlatMap concatenates f(v) for each v in order.
func FlatMap[In, Out any](vs []In, f func(In) []Out) []Out {
	res := make([]Out, 0, len(vs))
	for _, v := range vs {
		res = append(res, f(v)...)
	}
	return res
}
