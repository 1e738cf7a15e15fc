package middlewares

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimiter counts requests per key over a fixed period. With a redis store
// the window is shared by every api instance.
type RateLimiter struct {
	limiter *limiter.Limiter
	enabled bool
}

// NewRateLimiter falls back to a process local store when store is nil.
// A limit of zero or less disables limiting.
func NewRateLimiter(limit int, window time.Duration, store limiter.Store) *RateLimiter {
	if store == nil {
		store = memory.NewStore()
	}

	rate := limiter.Rate{Period: window, Limit: int64(limit)}

	return &RateLimiter{
		limiter: limiter.New(store, rate),
		enabled: limit > 0,
	}
}

// Middleware enforces the limit for the key derived by keyFn. Store failures let the request through.
func (rl *RateLimiter) Middleware(keyFn func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled {
			c.Next()
			return
		}

		key := keyFn(c)
		if key == "" {
			key = clientIP(c)
		}

		lctx, err := rl.limiter.Get(c.Request.Context(), key)
		if err != nil {
			slog.Default().WarnContext(c.Request.Context(), "rate limiter unavailable", "err", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))

		if lctx.Reached {
			retryAfter := lctx.Reset - time.Now().Unix()
			if retryAfter < 0 {
				retryAfter = 0
			}

			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			abortWithError(c, http.StatusTooManyRequests, "rate_limited", "Too many requests. Please try again shortly.")
			return
		}

		c.Next()
	}
}

// for unauthenticated endpoints: rate limit by IP
func KeyByIP(c *gin.Context) string {
	return "ip:" + clientIP(c)
}

func clientIP(c *gin.Context) string {
	// gin's ClientIP respects X-Forwarded-For / X-Real-IP if configured.
	ip := c.ClientIP()

	host, _, err := net.SplitHostPort(ip)
	if err == nil && host != "" {
		return host
	}

	return ip
}
