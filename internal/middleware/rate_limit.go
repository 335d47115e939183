package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"time-range-parser/pkg/response"
)

// RateLimit enforces a token bucket per client IP. Idle clients are forgotten
// after a few minutes.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiters == nil {
			c.Next()
			return
		}

		if !mw.limiter(c.ClientIP()).Allow() {
			mw.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

func (mw Middleware) limiter(key string) *rate.Limiter {
	limiter, ok := mw.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(mw.rate, mw.burst)
		mw.limiters.Add(key, limiter)
	}
	return limiter
}
