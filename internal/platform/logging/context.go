package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Keys of the request identifiers added to request loggers.
const (
	AttrRequestID     = "request_id"
	AttrCorrelationID = "correlation_id"
	AttrTraceID       = "trace_id"
)

type ctxKey struct{}

var fallbackLogger atomic.Pointer[slog.Logger]

func init() {
	fallbackLogger.Store(slog.Default())
}

// FromContext returns the logger carried by ctx, or the process default.
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, nil)
}

// FromContextOr returns the logger carried by ctx, then fallback, then the
// process default.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
			return logger
		}
	}

	if fallback != nil {
		return fallback
	}

	return fallbackLogger.Load()
}

// WithContext returns ctx carrying logger.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// WithAttrs returns ctx carrying its logger extended by attrs.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}

	return WithContext(ctx, FromContext(ctx).With(args...))
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return WithAttrs(ctx, slog.String(AttrRequestID, id))
}

func WithCorrelationID(ctx context.Context, id string) context.Context {
	return WithAttrs(ctx, slog.String(AttrCorrelationID, id))
}

func WithTraceID(ctx context.Context, id string) context.Context {
	return WithAttrs(ctx, slog.String(AttrTraceID, id))
}

// SetDefault installs logger as the process default, for FromContext and
// for the slog package functions.
func SetDefault(logger *slog.Logger) {
	fallbackLogger.Store(logger)
	slog.SetDefault(logger)
}
