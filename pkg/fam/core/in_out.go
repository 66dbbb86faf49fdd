package core

import (
	"context"
	"sync"
)

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs[T](ctx, values...)
}

// ToChanRange emits 0..n-1 in order and closes the channel.
func ToChanRange(ctx context.Context, n int) <-chan int {
	in := make(chan int)

	go func() {
		defer close(in)

		for i := range n {
			select {
			case in <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FromChanMany drains out until it is closed or ctx is done and returns what
// was received, in arrival order.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}
