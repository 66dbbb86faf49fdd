package core

import (
	"context"
	"sync"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel          func(ctx context.Context, inputCh <-chan In)
	OnCancelProcessed func(ctx context.Context, in In, processed Out)
}

// Locomotive pulls values from inputCh, runs engine on each and forwards the
// result to outCh until inputCh is closed or ctx is done.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out,
	engine func(ctx context.Context, input In) Out,
	handlers CancellationHandlers[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			pr := engine(ctx, in)

			select {
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, pr)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh)
				}
				return
			case outCh <- pr:
			}
		}
	}
}

// Run starts lines locomotives over inputCh. The returned channel is closed
// once every locomotive has stopped.
func Run[In, Out any](ctx context.Context, inputCh <-chan In,
	engine func(ctx context.Context, input In) Out,
	handlers CancellationHandlers[In, Out],
	lines int) <-chan Out {

	out := make(chan Out)
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go Locomotive(ctx, inputCh, out, engine, handlers, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
