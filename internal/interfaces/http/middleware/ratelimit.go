package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/utils"
)

type RequestLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type RateLimitRecorder interface {
	RateLimited()
}

// RateLimitMiddleware enforces a per-client-IP limit.
type RateLimitMiddleware struct {
	limiter  RequestLimiter
	recorder RateLimitRecorder
	logger   logger.Interface
}

func NewRateLimitMiddleware(limiter RequestLimiter, recorder RateLimitRecorder, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter:  limiter,
		recorder: recorder,
		logger:   logger,
	}
}

func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()

		allowed, err := m.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			// Fail open when the backing store is unreachable.
			m.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			if m.recorder != nil {
				m.recorder.RateLimited()
			}
			m.logger.Infow("rate limit exceeded", "client_ip", c.ClientIP(), "path", c.Request.URL.Path)
			utils.AbortWithError(c, errors.ErrTooManyRequests)
			return
		}

		c.Next()
	}
}
