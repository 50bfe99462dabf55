// internal/middleware/ratelimit_middleware.go
package middleware

import (
	"movers-service/internal/pkg/ratelimit"
	"movers-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimitMiddleware throttles public form submissions per client IP.
// Redis errors fail open: losing the throttle is better than losing leads.
func RateLimitMiddleware(limiter *ratelimit.Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Warn("rate limiter unavailable, allowing request",
				zap.String("client_ip", c.ClientIP()), zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			response.RateLimited(c)
			return
		}

		c.Next()
	}
}
