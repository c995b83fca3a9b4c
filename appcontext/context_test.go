package appcontext_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"salesdash/appcontext"
)

func TestLoggerFromContext_RoundTrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := appcontext.WithLogger(context.Background(), logger)

	if got := appcontext.LoggerFromContext(ctx); got != logger {
		t.Errorf("LoggerFromContext returned %p, want %p", got, logger)
	}
}

func TestLoggerFromContext_Default(t *testing.T) {
	if got := appcontext.LoggerFromContext(context.Background()); got != slog.Default() {
		t.Errorf("expected slog.Default() when no logger is set")
	}
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := appcontext.WithRequestID(appcontext.WithLogger(context.Background(), logger), "abc-123")

	if got := appcontext.RequestIDFromContext(ctx); got != "abc-123" {
		t.Errorf("RequestIDFromContext = %q, want abc-123", got)
	}
	appcontext.LoggerFromContext(ctx).Info("hello")
	if !strings.Contains(buf.String(), "request_id=abc-123") {
		t.Errorf("expected request_id on log line, got %q", buf.String())
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	if got := appcontext.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}
