package seq

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/ib-77/fam/pkg/fam"
	"github.com/ib-77/fam/pkg/fam/core"
)

type cell[Out any] struct {
	index int
	value Out
}

// ApplyConcurrent computes the same result as Apply, spreading the cells over
// core.GetWorkerMaxCount workers (GOMAXPROCS by default). Cells may be
// evaluated in any order but the returned slice is ordered as Apply orders it.
//
// If ctx is done before every cell is computed the result is nil and the error
// satisfies fam.IsCancellationError. A panic raised by one of fs is re-raised
// in the calling goroutine with the same value.
func ApplyConcurrent[In, Out any](ctx context.Context, fs []func(In) Out, vs []In) ([]Out, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("seq: apply not started: %w: %w", fam.ErrCancelled, err)
	}

	total := len(fs) * len(vs)
	if total == 0 {
		return []Out{}, nil
	}

	lines := min(core.GetWorkerMaxCount(ctx, runtime.GOMAXPROCS(0)), total)
	logger := core.GetLogger(ctx).With("component", "seq")

	inner, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		panicOnce  sync.Once
		panicked   bool
		panicValue any
	)

	engine := func(ctx context.Context, i int) (c cell[Out]) {
		defer func() {
			if r := recover(); r != nil {
				panicOnce.Do(func() {
					panicked = true
					panicValue = r
				})
				cancel()
			}
		}()

		f, v := fs[i/len(vs)], vs[i%len(vs)]
		return cell[Out]{index: i, value: f(v)}
	}

	handlers := core.CancellationHandlers[int, cell[Out]]{
		OnCancel: func(ctx context.Context, _ <-chan int) {
			logger.Debug("worker stopped", "reason", context.Cause(ctx))
		},
		OnCancelProcessed: func(ctx context.Context, i int, _ cell[Out]) {
			logger.Debug("dropped computed cell", "index", i)
		},
	}

	logger.Debug("apply started", "functions", len(fs), "values", len(vs), "workers", lines)

	cells := core.FromChanMany(inner,
		core.Run(inner, core.ToChanRange(inner, total), engine, handlers, lines))

	// orders the read of panicked after a worker's write, if any
	panicOnce.Do(func() {})
	if panicked {
		panic(panicValue)
	}

	if len(cells) < total {
		cause := ctx.Err()
		if cause == nil {
			cause = inner.Err()
		}
		return nil, fmt.Errorf("seq: apply interrupted after %d of %d cells: %w: %w",
			len(cells), total, fam.ErrCancelled, cause)
	}

	res := make([]Out, total)
	for _, c := range cells {
		res[c.index] = c.value
	}

	logger.Debug("apply finished", "cells", total)
	return res, nil
}
