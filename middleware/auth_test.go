package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"talenthub/services"
)

func setupAuthRouter(jwtService *services.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(jwtService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": UserID(c),
			"email":   UserEmail(c),
		})
	})
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	jwtService := services.NewJWTService("test-secret", time.Hour)
	router := setupAuthRouter(jwtService)

	token, err := jwtService.GenerateToken(42, "recruiter@example.com")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), "recruiter@example.com")
}

func TestAuth_MissingHeader(t *testing.T) {
	router := setupAuthRouter(services.NewJWTService("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	router := setupAuthRouter(services.NewJWTService("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_TokenSignedWithDifferentSecret(t *testing.T) {
	router := setupAuthRouter(services.NewJWTService("test-secret", time.Hour))

	other := services.NewJWTService("other-secret", time.Hour)
	token, err := other.GenerateToken(42, "recruiter@example.com")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
