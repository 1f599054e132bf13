package ratelimit

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware throttles by client IP within one named scope, so the login,
// contact and testimonial limits do not share counters.
func Middleware(scope string, limiter Limiter, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()

		ok, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			// Limiter backend trouble must not take the endpoint down.
			log.Printf("[ratelimit] scope=%s error: %v", scope, err)
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": message})
			return
		}

		c.Next()
	}
}
