package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuotaLimiter enforces a fixed-window request quota per client IP. Unlike
// the token-bucket limiter, a window admits exactly Limit requests and then
// rejects everything until WindowStart+Window has elapsed, which is the
// contract the matching endpoint advertises to abusive callers.
//
// Counters live in process memory and reset on restart; this is a soft abuse
// guard, not a security boundary.
type QuotaLimiter struct {
	Limit  int
	Window time.Duration

	mu      sync.Mutex
	buckets map[string]*quotaBucket

	// now is swappable for tests.
	now func() time.Time
}

type quotaBucket struct {
	count       int
	windowStart time.Time
}

// NewQuotaLimiter returns a limiter admitting limit requests per window per IP.
func NewQuotaLimiter(limit int, window time.Duration) *QuotaLimiter {
	return &QuotaLimiter{
		Limit:   limit,
		Window:  window,
		buckets: make(map[string]*quotaBucket),
		now:     time.Now,
	}
}

// Allow records a request from ip and reports whether it is within quota.
func (q *QuotaLimiter) Allow(ip string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	b, exists := q.buckets[ip]
	if !exists || now.Sub(b.windowStart) >= q.Window {
		q.buckets[ip] = &quotaBucket{count: 1, windowStart: now}
		return true
	}
	if b.count >= q.Limit {
		return false
	}
	b.count++
	return true
}

// Middleware rejects over-quota callers with 429 before the handler runs.
func (q *QuotaLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := getClientIP(c)
		if !q.Allow(ip) {
			zap.L().Warn("Request quota exceeded", zap.String("ip", ip), zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
			return
		}
		c.Next()
	}
}
