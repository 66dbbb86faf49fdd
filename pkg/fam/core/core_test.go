package core

import (
	"bytes"
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerOptions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, 4, GetWorkerMaxCount(ctx, 4))
	assert.Equal(t, 2, GetWorkerMaxCount(WithWorkerOptions(ctx, 2), 4))
	assert.Equal(t, 4, GetWorkerMaxCount(WithWorkerOptions(ctx, 0), 4))
	assert.Equal(t, 4, GetWorkerMaxCount(WithWorkerOptions(ctx, -3), 4))
}

func TestLoggerOptions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	require.NotNil(t, GetLogger(ctx))
	require.NotNil(t, GetLogger(WithLogger(ctx, nil)))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	GetLogger(WithLogger(ctx, logger)).Debug("hello", "k", 1)
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "k=1")
}

func TestToChanMany_FromChanMany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := FromChanMany(ctx, ToChanMany(ctx, []string{"a", "b", "c"}))
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestToChanRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, []int{0, 1, 2, 3}, FromChanMany(ctx, ToChanRange(ctx, 4)))
	assert.Empty(t, FromChanMany(ctx, ToChanRange(ctx, 0)))
}

func TestToChanRange_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := ToChanRange(ctx, 1000)
	count := 0
	for range ch {
		count++
	}
	assert.Less(t, count, 1000)
}

func TestRun_ProcessesEverything(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	input := make([]int, 100)
	for i := range input {
		input[i] = i + 1
	}

	out := Run(ctx, ToChanMany(ctx, input),
		func(ctx context.Context, in int) int { return in * 2 },
		CancellationHandlers[int, int]{}, 4)

	got := FromChanMany(ctx, out)
	sort.Ints(got)

	require.Len(t, got, len(input))
	for i, v := range got {
		assert.Equal(t, (i+1)*2, v)
	}
}

func TestRun_UsesAllLines(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var active, peak int32
	engine := func(ctx context.Context, in int) int {
		n := atomic.AddInt32(&active, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&active, -1)
		return in
	}

	got := FromChanMany(ctx, Run(ctx, ToChanRange(ctx, 12), engine, CancellationHandlers[int, int]{}, 3))
	assert.Len(t, got, 12)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
	assert.Greater(t, atomic.LoadInt32(&peak), int32(1))
}

func TestLocomotive_OnCancel(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	inputCh := make(chan int)
	outCh := make(chan int)
	cancelled := make(chan struct{})
	var once sync.Once

	handlers := CancellationHandlers[int, int]{
		OnCancel: func(ctx context.Context, inputCh <-chan int) {
			once.Do(func() { close(cancelled) })
		},
	}

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go Locomotive(ctx, inputCh, outCh, func(ctx context.Context, in int) int { return in }, handlers, wg)

	cancel()
	wg.Wait()

	select {
	case <-cancelled:
	default:
		t.Fatalf("expected OnCancel to be called")
	}
}

func TestLocomotive_OnCancelProcessed(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	inputCh := make(chan int, 1)
	outCh := make(chan int)
	var processed int32

	handlers := CancellationHandlers[int, int]{
		OnCancelProcessed: func(ctx context.Context, in int, out int) {
			atomic.StoreInt32(&processed, int32(out))
		},
	}

	inputCh <- 21
	engine := func(ctx context.Context, in int) int {
		cancel()
		return in * 2
	}

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go Locomotive(ctx, inputCh, outCh, engine, handlers, wg)
	wg.Wait()

	assert.Equal(t, int32(42), atomic.LoadInt32(&processed))
}
