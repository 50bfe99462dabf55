// Package ratelimit throttles public form submissions per client IP
// using a redis INCR + EXPIRE window.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Limiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewLimiter allows max requests per window for each key.
func NewLimiter(client *redis.Client, max int64, window time.Duration) *Limiter {
	return &Limiter{client: client, max: max, window: window}
}

// Allow reports whether the given client may submit. The first request in
// a window starts the expiry clock. Errors are returned so the caller can
// decide to fail open.
func (l *Limiter) Allow(ctx context.Context, ip string) (bool, error) {
	key := fmt.Sprintf("ratelimit:submit:%s", ip)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment submission count: %w", err)
	}

	// Set expiration on first attempt
	if count == 1 {
		l.client.Expire(ctx, key, l.window)
	}

	return count <= l.max, nil
}
