package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

const maxTrackedKeys = 10000

// MemoryRateLimiter is the single-instance limiter used when redis is not configured.
// Each key gets a token bucket refilled at Requests per Window with a burst of Requests.
type MemoryRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func NewMemoryRateLimiter(limit Limit) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(float64(limit.Requests) / limit.Window.Seconds()),
		burst:    limit.Requests,
	}
}

func (l *MemoryRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return l.limiter(key).Allow(), nil
}

func (l *MemoryRateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= maxTrackedKeys {
			l.limiters = make(map[string]*rate.Limiter)
		}
		lim = rate.NewLimiter(l.rate, l.burst)
		l.limiters[key] = lim
	}
	return lim
}
