package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"nextstep/pkg/response"
	"nextstep/pkg/scope"
)

// RateLimit throttles a client's calls to AI-spending endpoints. Keyed by the
// authenticated user when available, the client IP otherwise.
func (m Middleware) RateLimit() gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	perSecond := rate.Limit(float64(m.rlConfig.RequestsPerMinute) / 60.0)

	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		lim, ok := limiters[key]
		if !ok {
			lim = rate.NewLimiter(perSecond, m.rlConfig.Burst)
			limiters[key] = lim
		}
		return lim
	}

	return func(c *gin.Context) {
		key := c.ClientIP()
		if sc, ok := scope.FromContext(c); ok {
			key = sc.UserID
		}

		if !limiterFor(key).Allow() {
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests. Please slow down",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
