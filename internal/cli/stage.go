package cli

import (
	"context"
	"log/slog"
	"runtime/trace"
	"time"
)

// stage runs one pipeline step inside a runtime/trace region and logs its
// duration at debug level.
func stage[T any](ctx context.Context, log *slog.Logger, name string, fn func() (T, error)) (T, error) {
	var value T
	var err error
	start := time.Now()
	trace.WithRegion(ctx, name, func() {
		value, err = fn()
	})
	log.DebugContext(ctx, "stage finished", "stage", name, "elapsed", time.Since(start), "ok", err == nil)
	return value, err
}

func stageErr(ctx context.Context, log *slog.Logger, name string, fn func() error) error {
	_, err := stage(ctx, log, name, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
