// server/internal/api/middleware/ratelimit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// fixedWindowLimiter counts requests per client IP within a fixed window.
// The counter map resets when the window rolls over. This is a blunt
// availability safeguard, not a fairness mechanism.
type fixedWindowLimiter struct {
	mu          sync.Mutex
	counts      map[string]int
	windowStart time.Time
	window      time.Duration
	max         int
}

func newFixedWindowLimiter(max int, window time.Duration) *fixedWindowLimiter {
	return &fixedWindowLimiter{
		counts:      make(map[string]int),
		windowStart: time.Now(),
		window:      window,
		max:         max,
	}
}

func (l *fixedWindowLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.windowStart) >= l.window {
		l.counts = make(map[string]int)
		l.windowStart = now
	}

	l.counts[ip]++
	return l.counts[ip] <= l.max
}

// RateLimit rejects callers exceeding max requests per window with 429.
// The router applies a coarse limit on /api and a stricter one on login.
func RateLimit(max int, window time.Duration, message string) gin.HandlerFunc {
	limiter := newFixedWindowLimiter(max, window)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   message,
			})
			return
		}
		c.Next()
	}
}
