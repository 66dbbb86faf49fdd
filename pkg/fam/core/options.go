package core

import (
	"context"
	"log/slog"
)

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
	LoggerOptionKey OptionKey = "logger_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type LoggerOptions struct {
	Logger *slog.Logger
}

var discardLogger = slog.New(slog.DiscardHandler)

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// GetWorkerMaxCount returns the configured worker count, or defaultMaxWorkers
// when none is set or the configured value is not positive.
func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

// GetLogger never returns nil; without a configured logger records are
// discarded.
func GetLogger(ctx context.Context) *slog.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return discardLogger
}
