package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"likenovel/internal/infrastructure/ratelimit"
	"likenovel/internal/shared/logger"
)

type countingRecorder struct {
	limited int
}

func (c *countingRecorder) RateLimited() { c.limited++ }

type brokenLimiter struct{}

func (brokenLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return false, stderrors.New("redis: connection refused")
}

func newLimitedEngine(limiter RequestLimiter, recorder RateLimitRecorder) *gin.Engine {
	engine := gin.New()
	engine.Use(NewRateLimitMiddleware(limiter, recorder, logger.NewNopLogger()).Limit())
	engine.POST("/cmd", func(c *gin.Context) { c.Status(http.StatusOK) })
	return engine
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	recorder := &countingRecorder{}
	engine := newLimitedEngine(ratelimit.NewMemoryRateLimiter(ratelimit.Limit{Requests: 2, Window: time.Hour}), recorder)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cmd", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 1, recorder.limited)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	w := httptest.NewRecorder()
	newLimitedEngine(brokenLimiter{}, nil).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cmd", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
