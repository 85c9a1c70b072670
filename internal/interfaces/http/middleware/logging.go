package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"likenovel/internal/shared/constants"
	"likenovel/internal/shared/logger"
)

// quietPaths are probed by load balancers and scrapers and only log on failure.
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// AccessLog writes one application log line per request. Trace ids come from the
// request context, so it must run after Tracing.
func AccessLog(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		if _, quiet := quietPaths[c.Request.URL.Path]; quiet && status < http.StatusInternalServerError {
			return
		}

		reqLog := log.WithContext(c.Request.Context()).With(
			"method", c.Request.Method,
			"route", c.FullPath(),
			"status", status,
			"elapsed_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if userID := c.GetInt64(constants.ContextKeyUserID); userID > 0 {
			reqLog = reqLog.With("user_id", userID)
		}

		switch {
		case status >= http.StatusInternalServerError:
			reqLog.Errorw("request failed", "path", c.Request.URL.Path, "errors", c.Errors.ByType(gin.ErrorTypeAny).String())
		case status >= http.StatusBadRequest:
			reqLog.Warnw("request rejected", "path", c.Request.URL.Path)
		default:
			reqLog.Debugw("request served")
		}
	}
}
