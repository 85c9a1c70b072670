// Package ratelimit caps requests per client key.
package ratelimit

import (
	"context"
	"time"

	"likenovel/internal/shared/config"
)

const (
	defaultRequests = 60
	defaultWindow   = time.Minute
)

// Limit is the number of requests a key may make per window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// LimitFromConfig fills zero settings with 60 requests per minute.
func LimitFromConfig(cfg config.RateLimitConfig) Limit {
	l := Limit{Requests: cfg.Requests, Window: cfg.Window}
	if l.Requests <= 0 {
		l.Requests = defaultRequests
	}
	if l.Window <= 0 {
		l.Window = defaultWindow
	}
	return l
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
