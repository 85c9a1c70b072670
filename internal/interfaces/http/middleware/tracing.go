package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"likenovel/internal/shared/constants"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/tracing"
)

// Tracing pre-reads request parameters, assigns trace/span ids and writes one analysis
// record per request once the handler chain returns or panics.
func Tracing(analysis *logger.AnalysisLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		params := queryParams(c)
		body := readJSONBody(c)

		c.Set(constants.ContextKeyParams, params)
		c.Set(constants.ContextKeyBody, body)
		if len(params) > 0 || body == nil {
			c.Set(constants.ContextKeyAnalysisParams, params)
		} else {
			c.Set(constants.ContextKeyAnalysisParams, body)
		}

		traceID := c.GetHeader(constants.HeaderTraceID)
		if traceID == "" {
			traceID = tracing.NewTraceID()
		}
		spanID := tracing.NewSpanID()

		c.Set(constants.ContextKeyTraceID, traceID)
		c.Set(constants.ContextKeySpanID, spanID)
		c.Request = c.Request.WithContext(tracing.WithIDs(c.Request.Context(), tracing.IDs{
			TraceID: traceID,
			SpanID:  spanID,
		}))

		// Headers must be set before the handler flushes the response.
		c.Header(constants.HeaderTraceID, traceID)

		// A panicking handler is still recorded as a 500, then handed on to Recovery.
		defer func() {
			recovered := recover()
			status := c.Writer.Status()
			if recovered != nil {
				status = http.StatusInternalServerError
			}
			if analysis != nil {
				analysis.Log(c.Request.Context(), logger.AnalysisRecord{
					TraceID:   traceID,
					SpanID:    spanID,
					Method:    c.Request.Method,
					Path:      c.Request.URL.Path,
					Status:    status,
					LatencyMS: time.Since(start).Milliseconds(),
					ClientIP:  c.ClientIP(),
					UserID:    c.GetInt64(constants.ContextKeyUserID),
					Params:    analysisParams(c),
				})
			}
			if recovered != nil {
				panic(recovered)
			}
		}()

		c.Next()
	}
}

func queryParams(c *gin.Context) map[string]any {
	out := make(map[string]any)
	for key, values := range c.Request.URL.Query() {
		if len(values) == 1 {
			out[key] = values[0]
			continue
		}
		out[key] = values
	}
	return out
}

// readJSONBody decodes a JSON object body and restores the stream for handlers.
// Non-JSON or malformed bodies yield nil.
func readJSONBody(c *gin.Context) map[string]any {
	switch c.Request.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return nil
	}
	if c.Request.Body == nil {
		return nil
	}

	raw, err := io.ReadAll(c.Request.Body)
	_ = c.Request.Body.Close()
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return nil
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil
	}
	return body
}

func analysisParams(c *gin.Context) map[string]any {
	v, ok := c.Get(constants.ContextKeyAnalysisParams)
	if !ok {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}
