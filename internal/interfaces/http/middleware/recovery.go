package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"syscall"

	"github.com/gin-gonic/gin"

	"likenovel/internal/shared/constants"
	appErrors "likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/utils"
)

type PanicRecorder interface {
	PanicRecovered()
}

// Recovery turns a handler panic into a 500 error body. A panic caused by the client
// hanging up is logged without a response since nothing can be written anyway.
func Recovery(log logger.Interface, recorder PanicRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			reqLog := log.WithContext(c.Request.Context()).With(
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)

			if clientGone(recovered) {
				reqLog.Warnw("client connection lost", "error", recovered)
				c.Abort()
				return
			}

			if recorder != nil {
				recorder.PanicRecovered()
			}
			reqLog.Errorw("panic recovered", "error", recovered, "stack", string(debug.Stack()))

			if c.Writer.Written() {
				c.Abort()
				return
			}
			utils.AbortWithError(c, appErrors.NewInternalError(constants.ErrMsgInternalServerError).WithCause(fmt.Errorf("panic: %v", recovered)))
		}()
		c.Next()
	}
}

func clientGone(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	return errors.Is(err, http.ErrAbortHandler) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET)
}
