package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/book-registry/internal/persistence"
)

// LoginLimiter bounds failed login attempts per account.
type LoginLimiter interface {
	Blocked(ctx context.Context, key string) bool
	RecordFailure(ctx context.Context, key string)
	Reset(ctx context.Context, key string)
}

const loginFailurePrefix = "login:failures:"

// redisLoginLimiter counts failures in Redis with a sliding expiry window.
// Redis outages fail open: a throttle is protection, not a dependency.
type redisLoginLimiter struct {
	redis       *persistence.Redis
	logger      *zap.Logger
	maxFailures int
	window      time.Duration
}

// NewRedisLoginLimiter builds a Redis-backed limiter.
func NewRedisLoginLimiter(redis *persistence.Redis, logger *zap.Logger, maxFailures int, window time.Duration) LoginLimiter {
	if maxFailures <= 0 {
		maxFailures = 10
	}
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &redisLoginLimiter{redis: redis, logger: logger, maxFailures: maxFailures, window: window}
}

func (l *redisLoginLimiter) Blocked(ctx context.Context, key string) bool {
	count, err := l.redis.Client.Get(ctx, loginFailurePrefix+key).Int()
	if err != nil {
		return false
	}
	return count >= l.maxFailures
}

func (l *redisLoginLimiter) RecordFailure(ctx context.Context, key string) {
	redisKey := loginFailurePrefix + key
	count, err := l.redis.Client.Incr(ctx, redisKey).Result()
	if err != nil {
		l.logger.Warn("login limiter unavailable", zap.Error(err))
		return
	}
	if count == 1 {
		if err := l.redis.Client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			l.logger.Warn("login limiter expire failed", zap.Error(err))
		}
	}
}

func (l *redisLoginLimiter) Reset(ctx context.Context, key string) {
	if err := l.redis.Client.Del(ctx, loginFailurePrefix+key).Err(); err != nil {
		l.logger.Warn("login limiter reset failed", zap.Error(err))
	}
}
