package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// RateStore counts requests per key inside a fixed window.
type RateStore interface {
	Hit(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)
}

// RedisCounter is the subset of *redis.Client the Redis rate store needs.
type RedisCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisRateStore shares counters across instances with INCR/EXPIRE.
type RedisRateStore struct {
	client RedisCounter
}

func NewRedisRateStore(client RedisCounter) *RedisRateStore {
	return &RedisRateStore{client: client}
}

func (s *RedisRateStore) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	resetKey := key + ":resetAt"

	// Increment request count
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, time.Time{}, errors.Wrap(err, "incr")
	}

	// First request → set expiry and stable resetAt
	if count == 1 {
		resetAt := time.Now().Add(window)
		s.client.Expire(ctx, key, window)
		s.client.Set(ctx, resetKey, resetAt.Unix(), window)
		return count, resetAt, nil
	}

	resetAtUnix, err := s.client.Get(ctx, resetKey).Int64()
	if err != nil {
		return count, time.Now().Add(window), nil
	}
	return count, time.Unix(resetAtUnix, 0), nil
}

// MemoryRateStore keeps counters in process; used when Redis is not configured.
type MemoryRateStore struct {
	counter *cache.WindowCounter
}

func NewMemoryRateStore(counter *cache.WindowCounter) *MemoryRateStore {
	if counter == nil {
		counter = cache.NewWindowCounter()
	}
	return &MemoryRateStore{counter: counter}
}

func (s *MemoryRateStore) Hit(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	count, resetAt := s.counter.Incr(key, window)
	return count, resetAt, nil
}

// Counter exposes the window counter so it can be swept.
func (s *MemoryRateStore) Counter() *cache.WindowCounter {
	return s.counter
}

// RateLimiter allows maxRequests per client IP, method and route inside each window.
// A failing store lets the request through.
func RateLimiter(store RateStore, maxRequests int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		ip := c.ClientIP()
		endpoint := c.FullPath() // /api/ProductsApi, /api/ProductsApi/:id
		method := c.Request.Method

		// Key is per-IP, per-method, per-endpoint
		key := "rl:" + ip + ":" + method + ":" + endpoint

		count, resetAt, err := store.Hit(c.Request.Context(), key, window)
		if err != nil {
			logger.Warn("⚠️ rate limiter unavailable, allowing request", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		// Calculate remaining requests (clamped at 0)
		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		// Reset in seconds (clamped at 0)
		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}

		// Store in context for controllers
		c.Set(models.RateLimiterKey, rate)

		// If limit exceeded → block request
		if int(count) > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse(c, "Too many requests"))
			c.Abort()
			return
		}

		c.Next()
	}
}
