package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ingagustinmarcel/prop-flow/internal/logger"
)

// RateLimiter enforces a token-bucket limit per client. Clients are keyed by
// API key prefix, authenticated account, or IP, in that order.
type RateLimiter struct {
	limiters        sync.Map
	rate            int
	burst           int
	cleanupInterval time.Duration
}

// limiterEntry pairs a limiter with its last access time so stale entries
// can be evicted.
type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter creates a rate limiter allowing requestsPerSecond sustained
// with the given burst, and starts its eviction goroutine.
func NewRateLimiter(requestsPerSecond, burst int) *RateLimiter {
	rl := &RateLimiter{
		rate:            requestsPerSecond,
		burst:           burst,
		cleanupInterval: 5 * time.Minute,
	}

	go rl.cleanup()

	return rl
}

// cleanup evicts limiters that have not been touched in 10 minutes.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		rl.limiters.Range(func(key, value interface{}) bool {
			if entry, ok := value.(*limiterEntry); ok {
				if now.Sub(entry.lastAccess) > 10*time.Minute {
					rl.limiters.Delete(key)
				}
			}
			return true
		})
	}
}

// getLimiter returns the limiter for key, creating it on first sight.
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	if val, ok := rl.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.lastAccess = time.Now()
		return entry.limiter
	}

	entry := &limiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(rl.rate), rl.burst),
		lastAccess: time.Now(),
	}

	// LoadOrStore covers the race where two requests for a new client
	// arrive at once.
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

// getClientIdentifier derives the bucketing key for a request.
func getClientIdentifier(c *gin.Context) string {
	if apiKey := c.GetHeader("X-API-Key"); apiKey != "" {
		if len(apiKey) >= 8 {
			return fmt.Sprintf("api:%s", apiKey[:8])
		}
		return fmt.Sprintf("api:%s", apiKey)
	}

	if accountID, exists := c.Get("accountID"); exists {
		return fmt.Sprintf("account:%v", accountID)
	}

	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		return fmt.Sprintf("ip:%s", forwardedFor)
	}

	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = "unknown"
	}
	return fmt.Sprintf("ip:%s", clientIP)
}

// Middleware returns the gin handler enforcing this limiter. Probe endpoints
// are never limited.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/healthz" || c.Request.URL.Path == "/readyz" {
			c.Next()
			return
		}

		clientID := getClientIdentifier(c)
		limiter := rl.getLimiter(clientID)

		if !limiter.Allow() {
			if logger.Log != nil {
				logger.Log.Warn("Rate limit exceeded",
					zap.String("client_id", clientID),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.String("client_ip", c.ClientIP()),
				)
			}

			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.rate))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(time.Second).Unix()))
			c.Header("Retry-After", "1")

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests. Please try again later.",
				"retry_after": 1,
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.rate))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", limiter.Burst()-int(limiter.Tokens())))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(time.Second).Unix()))

		c.Next()
	}
}

// MiddlewareWithConfig returns a handler backed by a dedicated limiter with
// its own rate and burst, for endpoints that need tighter or looser limits.
func (rl *RateLimiter) MiddlewareWithConfig(customRate, customBurst int) gin.HandlerFunc {
	customRL := &RateLimiter{
		rate:            customRate,
		burst:           customBurst,
		cleanupInterval: rl.cleanupInterval,
	}

	go customRL.cleanup()

	return customRL.Middleware()
}

// Shared limiters. Default covers the API surface, Strict guards
// credential-issuing endpoints, Relaxed suits read-heavy dashboards.
var (
	DefaultRateLimiter = NewRateLimiter(100, 200)

	StrictRateLimiter = NewRateLimiter(10, 20)

	RelaxedRateLimiter = NewRateLimiter(500, 1000)
)
