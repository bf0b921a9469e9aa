package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimit_AllowsNormalTraffic(t *testing.T) {
	router := gin.New()
	router.Use(RateLimit(10, 5)) // 10 req/s, burst of 5
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// First 5 requests should succeed (within burst)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestRateLimit_RejectsExcessiveTraffic(t *testing.T) {
	router := gin.New()
	router.Use(RateLimit(1, 2)) // 1 req/s, burst of 2
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Exhaust the burst
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}

	// Next request should be rate limited
	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
}

func TestRateLimit_PerClientIsolation(t *testing.T) {
	router := gin.New()
	router.Use(RateLimit(1, 1)) // Very tight: 1 req/s, burst of 1
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Buckets are keyed by client IP, so vary RemoteAddr per "client".
	send := func(remoteAddr string) int {
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	// Client A uses its burst
	if code := send("10.0.0.1:1234"); code != http.StatusOK {
		t.Errorf("client A first request: expected 200, got %d", code)
	}

	// Client A is now rate limited
	if code := send("10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("client A second request: expected 429, got %d", code)
	}

	// Client B should still work (separate bucket)
	if code := send("10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("client B first request: expected 200, got %d", code)
	}
}
