package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"talenthub/services"
	"talenthub/utils"
)

// Auth validates the Bearer token and sets the authenticated user on the
// request context.
func Auth(jwtService *services.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			utils.UnauthorizedError(c, "Authorization header required")
			c.Abort()
			return
		}

		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			utils.UnauthorizedError(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *gin.Context) int {
	id, _ := c.Get("user_id")
	userID, _ := id.(int)
	return userID
}

// UserEmail returns the authenticated user email set by Auth.
func UserEmail(c *gin.Context) string {
	email, _ := c.Get("user_email")
	userEmail, _ := email.(string)
	return userEmail
}
