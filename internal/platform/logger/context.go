package logger

import (
	"context"
	"log/slog"
)

// loggerContextKey is the context key type for storing a request-scoped logger.
type loggerContextKey struct{}

// WithLogger returns a new context carrying the provided logger.
// Panics if logger is nil, since a nil logger in the context would
// silently shadow the default on every retrieval.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// FromContext retrieves the logger stored in the context, if any.
func FromContext(ctx context.Context) (*slog.Logger, bool) {
	logger, ok := ctx.Value(loggerContextKey{}).(*slog.Logger)
	return logger, ok
}

// FromContextOrDefault retrieves the logger stored in the context, falling
// back to the provided default when the context carries none. Handlers and
// stores use this so request-scoped attributes (like trace IDs) follow the
// call all the way down.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if logger, ok := FromContext(ctx); ok {
		return logger
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
