// Package logger configures the process-wide slog logger and the per-request analysis log.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"likenovel/internal/shared/config"
)

var (
	mu      sync.RWMutex
	root    *slog.Logger
	rootLevel = new(slog.LevelVar)
)

// Init replaces the process logger. Output goes to stdout, stderr, or a size-rotated file
// for any other OutputPath. Debug mode forces the debug level and source locations.
func Init(cfg *config.LoggerConfig, debug bool) error {
	level := parseLevel(cfg.Level)
	if debug {
		level = slog.LevelDebug
	}
	rootLevel.Set(level)

	var handler slog.Handler
	w := openOutput(cfg.OutputPath)
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: rootLevel, AddSource: debug})
	} else {
		handler = consoleHandler(w, rootLevel, debug)
	}

	l := slog.New(NewTraceHandler(handler))
	mu.Lock()
	root = l
	mu.Unlock()
	slog.SetDefault(l)
	return nil
}

func openOutput(path string) io.Writer {
	switch strings.ToLower(path) {
	case "", "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100,
		MaxBackups: 10,
		MaxAge:     14,
		LocalTime:  true,
	}
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// consoleHandler renders colored lines when w is a terminal and plain tint lines otherwise.
func consoleHandler(w io.Writer, level slog.Leveler, addSource bool) slog.Handler {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		AddSource:  addSource,
		NoColor:    noColor,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if err, ok := a.Value.Any().(error); ok && a.Key == "error" {
				return tint.Err(err)
			}
			return a
		},
	})
}

// Get returns the process logger, installing a stdout console logger on first use.
func Get() *slog.Logger {
	mu.RLock()
	l := root
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if root == nil {
		root = slog.New(NewTraceHandler(consoleHandler(os.Stdout, slog.LevelInfo, false)))
	}
	return root
}
