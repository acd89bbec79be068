package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Counter increments a key whose value expires after window
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisLimiter is a fixed window limiter shared by every relay instance
type RedisLimiter struct {
	counter Counter
	prefix  string
	window  time.Duration
	maxHits int
}

func NewRedisLimiter(counter Counter, prefix string, window time.Duration, maxHits int) *RedisLimiter {
	return &RedisLimiter{
		counter: counter,
		prefix:  prefix,
		window:  window,
		maxHits: maxHits,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.counter.Incr(ctx, fmt.Sprintf("ratelimit:%s:%s", l.prefix, key), l.window)
	if err != nil {
		return false, err
	}
	return count <= int64(l.maxHits), nil
}
