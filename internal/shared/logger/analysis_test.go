package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	al := NewAnalysisLoggerWithWriter(&buf)

	al.Log(context.Background(), AnalysisRecord{
		TraceID:   "0123456789abcdef0123456789abcdef",
		SpanID:    "0123456789abcdef",
		Method:    "GET",
		Path:      "/v1/query/popup",
		Status:    200,
		LatencyMS: 3,
		UserID:    42,
		Params:    map[string]any{"page": "1"},
	})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "0123456789abcdef0123456789abcdef", line["trace_id"])
	assert.Equal(t, "analysis", line["logger"])
	assert.Equal(t, float64(200), line["status"])
	assert.Equal(t, float64(42), line["user_id"])
	assert.Equal(t, map[string]any{"page": "1"}, line["params"])
}

func TestAnalysisLogger_OmitsAnonymousUser(t *testing.T) {
	var buf bytes.Buffer
	al := NewAnalysisLoggerWithWriter(&buf)

	al.Log(context.Background(), AnalysisRecord{TraceID: "t", Method: "GET", Path: "/health", Status: 200})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	_, hasUser := line["user_id"]
	assert.False(t, hasUser)
	_, hasParams := line["params"]
	assert.False(t, hasParams)
}
