package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "likenovel:ratelimit:"

// fixedWindow increments the window counter and sets its expiry on first use only,
// so a busy key cannot keep its window alive forever.
var fixedWindow = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// RedisRateLimiter keeps fixed-window counters in Redis so every API instance shares them.
type RedisRateLimiter struct {
	client *redis.Client
	limit  Limit
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client, limit Limit) *RedisRateLimiter {
	return &RedisRateLimiter{client: client, limit: limit, now: time.Now}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	window := l.now().UnixNano() / int64(l.limit.Window)
	redisKey := redisKeyPrefix + key + ":" + strconv.FormatInt(window, 10)

	n, err := fixedWindow.Run(ctx, l.client, []string{redisKey}, l.limit.Window.Milliseconds()).Int64()
	if err != nil {
		return false, err
	}
	return n <= int64(l.limit.Requests), nil
}

// Reset drops every window counter of key.
func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	var keys []string
	iter := l.client.Scan(ctx, 0, redisKeyPrefix+key+":*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return l.client.Del(ctx, keys...).Err()
}
