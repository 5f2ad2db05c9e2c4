package logging

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/offboard/pkg/domain/types"
)

type ctxRequestIDKey struct{}

// CtxRequestID returns request ID from context. If request ID is not set, return new request ID and context with it
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		return id, ctx
	}

	newID := types.NewRequestID()
	return newID, context.WithValue(ctx, ctxRequestIDKey{}, newID)
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return Default()
}

// WithRun returns a context carrying a request ID and a logger tagged with it,
// so that every log line of one audit run can be correlated.
func WithRun(ctx context.Context) context.Context {
	id, ctx := CtxRequestID(ctx)
	return With(ctx, From(ctx).With(slog.String("request_id", string(id))))
}
