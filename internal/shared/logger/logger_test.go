package logger

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"likenovel/internal/shared/config"
	"likenovel/internal/shared/tracing"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel(" WARN "))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestInit_FileOutputCarriesTraceIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, Init(&config.LoggerConfig{Level: "info", Format: "json", OutputPath: path}, false))
	t.Cleanup(func() {
		mu.Lock()
		root = nil
		mu.Unlock()
	})

	ctx := tracing.WithIDs(context.Background(), tracing.IDs{TraceID: "t-1", SpanID: "s-1"})
	NewLogger().WithContext(ctx).Named("test").Infow("hello", "k", 1)
	NewLogger().Debugw("dropped")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"trace_id":"t-1"`)
	assert.Contains(t, out, `"logger":"test"`)
	assert.NotContains(t, out, "dropped")
}
