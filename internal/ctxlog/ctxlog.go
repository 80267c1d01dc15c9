// Package ctxlog carries a slog.Logger through context.Context, so library
// code logs against whatever logger the caller configured without taking a
// logger parameter everywhere.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported so no other package can collide with our context entry.
type key struct{}

var loggerKey = key{}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger carried by ctx, or slog.Default when the
// context carries none. Code on a per-sample hot path should pull the
// logger out once rather than call this repeatedly.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
