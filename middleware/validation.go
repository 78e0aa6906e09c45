package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"talenthub/utils"
)

// MaxRequestSize limits the request body size
func MaxRequestSize(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// ValidateJSON middleware for JSON request validation
func ValidateJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip validation for requests without a body
		if c.Request.Method == "GET" || c.Request.Method == "DELETE" || c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}

		// Multipart uploads (resume files) carry their own content type
		contentType := c.GetHeader("Content-Type")
		if strings.Contains(contentType, "multipart/form-data") {
			c.Next()
			return
		}

		if !strings.Contains(contentType, "application/json") {
			utils.BadRequestError(c, "Content-Type must be application/json", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// SanitizeInput removes potentially dangerous characters from input
func SanitizeInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		queryParams := c.Request.URL.Query()
		for key, values := range queryParams {
			for i, value := range values {
				queryParams[key][i] = sanitizeString(value)
			}
		}
		c.Request.URL.RawQuery = queryParams.Encode()

		c.Next()
	}
}

// sanitizeString removes potentially dangerous characters
func sanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Trim whitespace
	input = strings.TrimSpace(input)

	// Limit length to prevent oversized query values
	if len(input) > 2000 {
		input = input[:2000]
	}

	return input
}
