package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"likenovel/internal/shared/constants"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/tracing"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTracing_EchoesIncomingTraceID(t *testing.T) {
	var sink bytes.Buffer
	engine := gin.New()
	engine.Use(Tracing(logger.NewAnalysisLoggerWithWriter(&sink)))

	var seen string
	engine.GET("/ping", func(c *gin.Context) {
		seen = tracing.TraceID(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping?page=2", nil)
	req.Header.Set(constants.HeaderTraceID, "0123456789abcdef0123456789abcdef")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0123456789abcdef0123456789abcdef", w.Header().Get(constants.HeaderTraceID))
	assert.Equal(t, "0123456789abcdef0123456789abcdef", seen)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(sink.Bytes(), &rec))
	assert.Equal(t, "0123456789abcdef0123456789abcdef", rec["trace_id"])
	assert.Len(t, rec["span_id"], 16)
	assert.Equal(t, float64(200), rec["status"])
	assert.Equal(t, map[string]any{"page": "2"}, rec["params"])
}

func TestTracing_GeneratesTraceIDWhenAbsent(t *testing.T) {
	engine := gin.New()
	engine.Use(Tracing(nil))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	traceID := w.Header().Get(constants.HeaderTraceID)
	assert.Len(t, traceID, 32)
}

func TestTracing_BodyIsReadableDownstream(t *testing.T) {
	engine := gin.New()
	engine.Use(Tracing(nil))

	var (
		stored    any
		analysis  any
		handlerIn string
	)
	engine.POST("/echo", func(c *gin.Context) {
		stored, _ = c.Get(constants.ContextKeyBody)
		analysis, _ = c.Get(constants.ContextKeyAnalysisParams)
		raw, _ := io.ReadAll(c.Request.Body)
		handlerIn = string(raw)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"a":1}`)))

	assert.Equal(t, `{"a":1}`, handlerIn)
	assert.Equal(t, map[string]any{"a": float64(1)}, stored)
	assert.Equal(t, map[string]any{"a": float64(1)}, analysis)
}

func TestTracing_MalformedBodyIsIgnored(t *testing.T) {
	engine := gin.New()
	engine.Use(Tracing(nil))

	var stored any = "unset"
	engine.POST("/echo", func(c *gin.Context) {
		stored, _ = c.Get(constants.ContextKeyBody)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`not json`)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, stored)
}

func TestTracing_RecordsPanickingRequest(t *testing.T) {
	var sink bytes.Buffer
	counter := &panicCounter{}
	engine := gin.New()
	engine.Use(Recovery(logger.NewNopLogger(), counter), Tracing(logger.NewAnalysisLoggerWithWriter(&sink)))
	engine.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, counter.n)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(sink.Bytes(), &rec))
	assert.Equal(t, "/boom", rec["path"])
	assert.Equal(t, float64(500), rec["status"])
	assert.Len(t, rec["trace_id"], 32)
}
