// Package appcontext carries the request and command scoped logger through context.Context.
package appcontext

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

type requestIDKey struct{}

// WithLogger returns a copy of ctx that carries logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithRequestID stores the HTTP request id and tags the carried logger with it, so every
// line logged further down the call chain can be matched to its request.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, requestID)
	return WithLogger(ctx, LoggerFromContext(ctx).With("request_id", requestID))
}

// LoggerFromContext returns the carried logger, or slog.Default() outside a request or command.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return slog.Default()
}

// RequestIDFromContext returns the request id, or "" when ctx did not come from an HTTP request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
