package logger

import (
	"context"
	"io"
	"log/slog"
)

// Interface is the logger handed to every use case, repository and middleware.
// The *w variants take alternating key/value pairs the same way the plain ones do.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface
	// WithContext binds a request context so records pick up its trace ids.
	WithContext(ctx context.Context) Interface

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

type slogLogger struct {
	l   *slog.Logger
	ctx context.Context
}

// NewLogger wraps the process logger set up by Init.
func NewLogger() Interface {
	return &slogLogger{l: Get(), ctx: context.Background()}
}

// NewNopLogger discards everything.
func NewNopLogger() Interface {
	return &slogLogger{
		l:   slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1})),
		ctx: context.Background(),
	}
}

func (s *slogLogger) log(level slog.Level, msg string, args []any) {
	s.l.Log(s.ctx, level, msg, args...)
}

func (s *slogLogger) Debug(msg string, args ...any) { s.log(slog.LevelDebug, msg, args) }
func (s *slogLogger) Info(msg string, args ...any)  { s.log(slog.LevelInfo, msg, args) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.log(slog.LevelWarn, msg, args) }
func (s *slogLogger) Error(msg string, args ...any) { s.log(slog.LevelError, msg, args) }

func (s *slogLogger) Debugw(msg string, kv ...any) { s.log(slog.LevelDebug, msg, kv) }
func (s *slogLogger) Infow(msg string, kv ...any)  { s.log(slog.LevelInfo, msg, kv) }
func (s *slogLogger) Warnw(msg string, kv ...any)  { s.log(slog.LevelWarn, msg, kv) }
func (s *slogLogger) Errorw(msg string, kv ...any) { s.log(slog.LevelError, msg, kv) }

func (s *slogLogger) With(args ...any) Interface {
	return &slogLogger{l: s.l.With(args...), ctx: s.ctx}
}

func (s *slogLogger) Named(name string) Interface {
	return s.With("logger", name)
}

func (s *slogLogger) WithContext(ctx context.Context) Interface {
	if ctx == nil {
		ctx = context.Background()
	}
	return &slogLogger{l: s.l, ctx: ctx}
}
