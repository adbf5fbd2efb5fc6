package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"venuehub/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func pingFrom(r *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Real-IP", ip)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitMiddleware_EnforcesConfiguredBudget(t *testing.T) {
	config.AppConfig.MaxRequestsPerMin = 3
	defer func() { config.AppConfig.MaxRequestsPerMin = 0 }()

	r := limitedRouter()

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, pingFrom(r, "203.0.113.7"))
	}
	assert.Equal(t, http.StatusTooManyRequests, pingFrom(r, "203.0.113.7"))
}

func TestRateLimitMiddleware_TracksClientsSeparately(t *testing.T) {
	config.AppConfig.MaxRequestsPerMin = 2
	defer func() { config.AppConfig.MaxRequestsPerMin = 0 }()

	r := limitedRouter()

	assert.Equal(t, http.StatusOK, pingFrom(r, "198.51.100.10"))
	assert.Equal(t, http.StatusOK, pingFrom(r, "198.51.100.10"))
	assert.Equal(t, http.StatusTooManyRequests, pingFrom(r, "198.51.100.10"))

	// A different client keeps its own budget.
	assert.Equal(t, http.StatusOK, pingFrom(r, "198.51.100.11"))
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.2")
	assert.Equal(t, "198.51.100.1", getClientIP(c))

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Real-IP", "203.0.113.9")
	assert.Equal(t, "203.0.113.9", getClientIP(c))

	// No proxy headers: fall back to the peer address, port stripped.
	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "192.0.2.1", getClientIP(c))
}
