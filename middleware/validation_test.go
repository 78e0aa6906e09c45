package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupValidationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ValidateJSON())
	r.POST("/candidates", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	r.GET("/candidates", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func TestValidateJSON_RejectsWrongContentType(t *testing.T) {
	router := setupValidationRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/candidates", strings.NewReader("name=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateJSON_AcceptsJSON(t *testing.T) {
	router := setupValidationRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/candidates", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidateJSON_SkipsGET(t *testing.T) {
	router := setupValidationRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/candidates", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidateJSON_SkipsMultipart(t *testing.T) {
	router := setupValidationRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/candidates", strings.NewReader("--x--"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMaxRequestSize_RejectsOversizedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MaxRequestSize(10))
	r.POST("/candidates", func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "body too large"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/candidates", strings.NewReader(`{"notes":"`+strings.Repeat("a", 100)+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestSanitizeInput_StripsNullBytesAndWhitespace(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeInput())
	var got string
	r.GET("/search", func(c *gin.Context) {
		got = c.Query("query")
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/search?query="+"%00%20golang%20", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "golang", got)
}

func TestSanitizeString_TruncatesLongValues(t *testing.T) {
	long := strings.Repeat("a", 3000)
	assert.Len(t, sanitizeString(long), 2000)
}
