package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("allows requests within rate limit", func(t *testing.T) {
		rl := NewRateLimiter(10, 20)
		router := gin.New()
		router.Use(rl.Middleware())
		router.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/test", nil)
			req.Header.Set("X-Forwarded-For", "192.168.1.1")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
			assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		}
	})

	t.Run("blocks requests exceeding rate limit", func(t *testing.T) {
		rl := NewRateLimiter(1, 2)
		router := gin.New()
		router.Use(rl.Middleware())
		router.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		var lastCode int
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/test", nil)
			req.Header.Set("X-Forwarded-For", "192.168.1.2")
			router.ServeHTTP(w, req)
			lastCode = w.Code
		}

		// Burst of 2 exhausted by the first two requests
		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})

	t.Run("different clients have separate limits", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		router := gin.New()
		router.Use(rl.Middleware())
		router.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		w1 := httptest.NewRecorder()
		req1, _ := http.NewRequest("GET", "/test", nil)
		req1.Header.Set("X-Forwarded-For", "192.168.1.3")
		router.ServeHTTP(w1, req1)
		assert.Equal(t, http.StatusOK, w1.Code)

		w2 := httptest.NewRecorder()
		req2, _ := http.NewRequest("GET", "/test", nil)
		req2.Header.Set("X-Forwarded-For", "192.168.1.4")
		router.ServeHTTP(w2, req2)
		assert.Equal(t, http.StatusOK, w2.Code)

		w3 := httptest.NewRecorder()
		req3, _ := http.NewRequest("GET", "/test", nil)
		req3.Header.Set("X-Forwarded-For", "192.168.1.3")
		router.ServeHTTP(w3, req3)
		assert.Equal(t, http.StatusTooManyRequests, w3.Code)
	})

	t.Run("API key based rate limiting", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		router := gin.New()
		router.Use(rl.Middleware())
		router.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		w1 := httptest.NewRecorder()
		req1, _ := http.NewRequest("GET", "/test", nil)
		req1.Header.Set("X-API-Key", "pfk_testkey123")
		router.ServeHTTP(w1, req1)
		assert.Equal(t, http.StatusOK, w1.Code)

		w2 := httptest.NewRecorder()
		req2, _ := http.NewRequest("GET", "/test", nil)
		req2.Header.Set("X-API-Key", "pfk_testkey123")
		router.ServeHTTP(w2, req2)
		assert.Equal(t, http.StatusTooManyRequests, w2.Code)

		// A different key is a different bucket
		w3 := httptest.NewRecorder()
		req3, _ := http.NewRequest("GET", "/test", nil)
		req3.Header.Set("X-API-Key", "pfk_otherkey456")
		router.ServeHTTP(w3, req3)
		assert.Equal(t, http.StatusOK, w3.Code)
	})

	t.Run("probe endpoints bypass rate limiting", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		router := gin.New()
		router.Use(rl.Middleware())
		router.GET("/healthz", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		router.GET("/readyz", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		for i := 0; i < 10; i++ {
			for _, path := range []string{"/healthz", "/readyz"} {
				w := httptest.NewRecorder()
				req, _ := http.NewRequest("GET", path, nil)
				router.ServeHTTP(w, req)
				assert.Equal(t, http.StatusOK, w.Code)
			}
		}
	})

	t.Run("concurrent requests handling", func(t *testing.T) {
		rl := NewRateLimiter(10, 20)
		router := gin.New()
		router.Use(rl.Middleware())
		router.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		var wg sync.WaitGroup
		successCount := 0
		rateLimitedCount := 0
		var mu sync.Mutex

		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				w := httptest.NewRecorder()
				req, _ := http.NewRequest("GET", "/test", nil)
				req.Header.Set("X-Forwarded-For", "192.168.1.100")
				router.ServeHTTP(w, req)

				mu.Lock()
				if w.Code == http.StatusOK {
					successCount++
				} else if w.Code == http.StatusTooManyRequests {
					rateLimitedCount++
				}
				mu.Unlock()
			}()
		}

		wg.Wait()

		// The burst of 20 should be admitted, the rest rejected
		assert.GreaterOrEqual(t, successCount, 20)
		assert.Greater(t, rateLimitedCount, 0)
		assert.Equal(t, 50, successCount+rateLimitedCount)
	})

	t.Run("rate limit headers are set correctly", func(t *testing.T) {
		rl := NewRateLimiter(10, 20)
		router := gin.New()
		router.Use(rl.Middleware())
		router.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	})

	t.Run("cleanup removes stale limiters", func(t *testing.T) {
		rl := &RateLimiter{
			rate:            10,
			burst:           20,
			cleanupInterval: 100 * time.Millisecond,
		}
		go rl.cleanup()

		limiter := rl.getLimiter("test-client")
		assert.NotNil(t, limiter)

		_, exists := rl.limiters.Load("test-client")
		assert.True(t, exists)

		// A recently touched entry survives a cleanup pass
		time.Sleep(200 * time.Millisecond)
		_, exists = rl.limiters.Load("test-client")
		assert.True(t, exists)

		rl.limiters.Store("stale-client", &limiterEntry{
			limiter:    limiter,
			lastAccess: time.Now().Add(-15 * time.Minute),
		})

		time.Sleep(200 * time.Millisecond)

		_, exists = rl.limiters.Load("stale-client")
		assert.False(t, exists)

		_, exists = rl.limiters.Load("test-client")
		assert.True(t, exists)
	})
}

func TestRateLimiterMiddlewareWithConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("custom rate configuration", func(t *testing.T) {
		rl := NewRateLimiter(10, 20)
		router := gin.New()

		router.GET("/strict", rl.MiddlewareWithConfig(1, 2), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		var lastCode int
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/strict", nil)
			req.Header.Set("X-Forwarded-For", "192.168.1.10")
			router.ServeHTTP(w, req)
			lastCode = w.Code
		}

		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})
}
