package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type RequestRecorder interface {
	RequestStarted()
	RequestFinished(method, route, status string, seconds float64)
}

// Metrics records request counts and latency labelled by route pattern.
func Metrics(recorder RequestRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		recorder.RequestStarted()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		recorder.RequestFinished(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
