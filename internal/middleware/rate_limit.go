package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/stpnv0/TourBooker/internal/ratelimit"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RateLimit keys buckets by user id when authenticated, else by client IP.
// Limiter errors fail open.
func RateLimit(l ratelimit.Limiter, capacity int, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		key := "user:" + UserID(c)
		if UserID(c) == "" {
			key = "ip:" + c.ClientIP()
		}
		key += ":" + c.FullPath()

		d, err := l.Allow(c.Request.Context(), key)
		if err != nil {
			log.LogAttrs(c.Request.Context(), logger.WarnLevel, "rate limiter unavailable",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(capacity))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(d.Remaining, 10))

		if !d.Allowed {
			secs := int(math.Ceil(d.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(secs))
			c.Set("error", "rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ginext.H{
				"error":       "rate limit exceeded",
				"retry_after": secs,
			})
			return
		}

		c.Next()
	}
}
