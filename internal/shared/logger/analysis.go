package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"likenovel/internal/shared/config"
)

// AnalysisRecord is the per-request record written to the analysis log.
type AnalysisRecord struct {
	TraceID   string
	SpanID    string
	Method    string
	Path      string
	Status    int
	LatencyMS int64
	ClientIP  string
	UserID    int64
	Params    map[string]any
}

// AnalysisLogger emits one JSON line per request, keyed by trace id.
type AnalysisLogger struct {
	logger *slog.Logger
	closer io.Closer
}

// NewAnalysisLogger writes to a size-rotated file. An empty path falls back to stdout.
func NewAnalysisLogger(cfg *config.AnalysisLogConfig) (*AnalysisLogger, error) {
	if cfg.Path == "" {
		return NewAnalysisLoggerWithWriter(os.Stdout), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, err
	}
	sink := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
	al := NewAnalysisLoggerWithWriter(sink)
	al.closer = sink
	return al, nil
}

func NewAnalysisLoggerWithWriter(w io.Writer) *AnalysisLogger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &AnalysisLogger{
		logger: slog.New(handler).With("logger", "analysis"),
	}
}

func (a *AnalysisLogger) Log(ctx context.Context, rec AnalysisRecord) {
	attrs := []any{
		slog.String("trace_id", rec.TraceID),
		slog.String("span_id", rec.SpanID),
		slog.String("method", rec.Method),
		slog.String("path", rec.Path),
		slog.Int("status", rec.Status),
		slog.Int64("latency_ms", rec.LatencyMS),
		slog.String("client_ip", rec.ClientIP),
	}
	if rec.UserID != 0 {
		attrs = append(attrs, slog.Int64("user_id", rec.UserID))
	}
	if len(rec.Params) > 0 {
		attrs = append(attrs, slog.Any("params", rec.Params))
	}
	a.logger.InfoContext(ctx, "request", attrs...)
}

func (a *AnalysisLogger) Close() error {
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}
