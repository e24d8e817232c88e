package middleware

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
)

// RateLimiter provides Redis-backed fixed window rate limiting per client IP.
// A nil client or a Redis failure lets every request through.
type RateLimiter struct {
	rdb     *redis.Client
	prefix  string
	maxReqs int
	window  time.Duration
}

// NewRateLimiter creates a rate limiter. Keys are namespaced by prefix so
// separate route groups keep separate budgets.
func NewRateLimiter(rdb *redis.Client, prefix string, maxReqs, windowSec int) *RateLimiter {
	return &RateLimiter{
		rdb:     rdb,
		prefix:  prefix,
		maxReqs: maxReqs,
		window:  time.Duration(windowSec) * time.Second,
	}
}

// Handler returns a Fiber middleware handler for rate limiting.
func (rl *RateLimiter) Handler() fiber.Handler {
	return func(c fiber.Ctx) error {
		if rl.rdb == nil || rl.maxReqs <= 0 {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%s", rl.prefix, c.IP())
		ctx := c.Context()

		// SETNX starts the window with its expiry on the first request so the
		// counter can never outlive it.
		var incr *redis.IntCmd
		_, err := rl.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.SetNX(ctx, key, 0, rl.window)
			incr = pipe.Incr(ctx, key)
			return nil
		})
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "error", err)
			return c.Next()
		}
		count := incr.Val()

		ttl, err := rl.rdb.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = rl.window
		}
		resetSec := int(ttl.Seconds())

		c.Set("X-RateLimit-Limit", strconv.Itoa(rl.maxReqs))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(max(0, int64(rl.maxReqs)-count), 10))
		c.Set("X-RateLimit-Reset", strconv.Itoa(resetSec))

		if count > int64(rl.maxReqs) {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(resetSec))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "rate limit exceeded",
				"retry_after": resetSec,
			})
		}

		return c.Next()
	}
}
