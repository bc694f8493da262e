// Package ctxlog carries the session logger from the shell loop down to the
// builtins, so a command can log without the executor holding a logger.
//
// A context without a logger yields one that drops every record. Builtins can
// therefore always log, including when run directly from tests.
package ctxlog

import (
	"context"
	"log/slog"
)

type key struct{}

var loggerKey = key{}

var discard = slog.New(slog.DiscardHandler)

// WithLogger attaches the session logger to ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the session logger, or a discarding logger when ctx
// has none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return discard
}
