package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/test", rl.Limit(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router := setupLimitedRouter(NewRateLimiter(3, time.Minute))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router := setupLimitedRouter(NewRateLimiter(2, time.Minute))

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		router.ServeHTTP(last, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Contains(t, last.Body.String(), "Rate limit exceeded")
}

func TestRateLimiter_TracksClientsSeparately(t *testing.T) {
	router := setupLimitedRouter(NewRateLimiter(1, time.Minute))

	first := httptest.NewRecorder()
	req1, _ := http.NewRequest("GET", "/test", nil)
	req1.RemoteAddr = "10.0.0.3:1234"
	router.ServeHTTP(first, req1)

	second := httptest.NewRecorder()
	req2, _ := http.NewRequest("GET", "/test", nil)
	req2.RemoteAddr = "10.0.0.4:1234"
	router.ServeHTTP(second, req2)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
}

func TestCreateRateLimiters(t *testing.T) {
	limiters := CreateRateLimiters()

	assert.Contains(t, limiters, "search")
	assert.Contains(t, limiters, "auth")
	assert.Contains(t, limiters, "general")
	assert.Equal(t, 30, limiters["search"].rate)
	assert.Equal(t, 5, limiters["auth"].rate)
	assert.Equal(t, 120, limiters["general"].rate)
}
