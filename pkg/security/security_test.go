package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func corsRouter(p *CORSPolicy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(p.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func allowOriginHeader(router *gin.Engine, origin string) string {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", origin)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Header().Get("Access-Control-Allow-Origin")
}

func TestCORSPolicyWhitelist(t *testing.T) {
	p := NewCORSPolicy([]string{"http://allowed.example"})
	router := corsRouter(p)

	if got := allowOriginHeader(router, "http://allowed.example"); got != "http://allowed.example" {
		t.Errorf("allowed origin echoed %q", got)
	}
	if got := allowOriginHeader(router, "http://other.example"); got != "" {
		t.Errorf("unlisted origin got Access-Control-Allow-Origin %q", got)
	}
}

func TestCORSPolicySetOriginsAppliesLive(t *testing.T) {
	p := NewCORSPolicy([]string{"http://old.example"})
	router := corsRouter(p)

	p.SetOrigins([]string{"http://new.example"})

	if got := allowOriginHeader(router, "http://old.example"); got != "" {
		t.Errorf("origin removed by reload still allowed: %q", got)
	}
	if got := allowOriginHeader(router, "http://new.example"); got != "http://new.example" {
		t.Errorf("origin added by reload not allowed: %q", got)
	}
}

func TestCORSPolicyPreflight(t *testing.T) {
	p := NewCORSPolicy([]string{"http://allowed.example"})
	router := corsRouter(p)

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://allowed.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != 204 {
		t.Errorf("preflight status = %d, want 204", w.Code)
	}
}

func limitedRouter(l *IPRateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(l.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func statusFor(router *gin.Engine) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestIPRateLimiterBlocksOverLimit(t *testing.T) {
	l := NewIPRateLimiter(2, time.Minute)
	router := limitedRouter(l)

	if got := statusFor(router); got != http.StatusOK {
		t.Fatalf("first request status = %d", got)
	}
	if got := statusFor(router); got != http.StatusOK {
		t.Fatalf("second request status = %d", got)
	}
	if got := statusFor(router); got != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", got)
	}
}

func TestIPRateLimiterSetLimitAppliesLive(t *testing.T) {
	l := NewIPRateLimiter(1, time.Minute)
	router := limitedRouter(l)

	if got := statusFor(router); got != http.StatusOK {
		t.Fatalf("first request status = %d", got)
	}
	if got := statusFor(router); got != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", got)
	}

	// Raising the limit resets the visitor store, so the client gets the
	// new budget at once.
	l.SetLimit(5, time.Minute)
	if got := statusFor(router); got != http.StatusOK {
		t.Errorf("request after limit raise status = %d, want 200", got)
	}
}

func TestIPRateLimiterSanitizesSettings(t *testing.T) {
	l := NewIPRateLimiter(0, 0)
	router := limitedRouter(l)

	// Zero config values fall back to a working limiter instead of a
	// divide-by-zero interval.
	if got := statusFor(router); got != http.StatusOK {
		t.Errorf("request under fallback settings status = %d, want 200", got)
	}
}
