package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit returns per-client rate limiting middleware using token buckets.
// There is no auth layer in this service, so buckets are keyed by client IP.
//
// Token bucket algorithm: each IP gets a bucket that fills at `rps` tokens/sec
// up to `burst` tokens. Each request consumes one token. If the bucket is empty,
// the request is rejected with 429.
//
// sync.Mutex protects the map of limiters from concurrent goroutine access.
// This is one of the few cases where Go uses traditional locks instead of channels —
// a shared map with simple read/write is cleaner with a mutex than a channel.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	return func(c *gin.Context) {
		// ClientIP respects X-Forwarded-For when Gin trusts the proxy.
		ip := c.ClientIP()

		mu.Lock()
		limiter, exists := limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Limit(rps), burst)
			limiters[ip] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
