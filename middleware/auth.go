package middleware

import (
	"net/http"
	"strings"

	"inkpost/auth"

	"github.com/gin-gonic/gin"
)

// RequireAuth verifies the Authorization bearer token and puts the session
// identity into the gin context. A missing token is a 403, a token that
// fails verification a 401.
func RequireAuth(sessions *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "No token provided"})
			return
		}

		claims, err := sessions.VerifyToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Failed to authenticate token"})
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}
