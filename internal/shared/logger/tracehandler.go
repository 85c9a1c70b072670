package logger

import (
	"context"
	"log/slog"

	"likenovel/internal/shared/tracing"
)

type traceHandler struct {
	handler slog.Handler
}

// NewTraceHandler wraps a handler so that records logged with a request context carry
// trace_id and span_id attributes.
func NewTraceHandler(handler slog.Handler) slog.Handler {
	return &traceHandler{handler: handler}
}

func (h *traceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *traceHandler) Handle(ctx context.Context, r slog.Record) error {
	if ids, ok := tracing.FromContext(ctx); ok {
		r.AddAttrs(
			slog.String("trace_id", ids.TraceID),
			slog.String("span_id", ids.SpanID),
		)
	}
	return h.handler.Handle(ctx, r)
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	return &traceHandler{handler: h.handler.WithGroup(name)}
}
