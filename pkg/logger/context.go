package logger

import (
	"context"
	"log/slog"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// With derives a context whose logger carries the extra attributes.
func With(ctx context.Context, attrs ...any) context.Context {
	l := From(ctx).With(attrs...)
	return context.WithValue(ctx, loggerKey, l)
}

// From returns the logger stored in the context, falling back to the
// process-wide logger.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return LoggerWrapper()
}
