// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextEmailKey holds the verified token email in the gin context.
const ContextEmailKey = "email"

// TokenVerifier resolves an access token to the email it was issued for.
type TokenVerifier interface {
	ExtractEmailFromToken(token string) (string, error)
}

// JWTAuthMiddleware requires an "Authorization: Bearer <token>" header carrying a valid token.
func JWTAuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "UnAuthorized Access"})
			return
		}

		var tokenString string
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 {
			tokenString = strings.TrimSpace(parts[1])
		}

		email, err := tokens.ExtractEmailFromToken(tokenString)
		if tokenString == "" || err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// RequesterEmail returns the email set by JWTAuthMiddleware.
func RequesterEmail(c *gin.Context) string {
	return c.GetString(ContextEmailKey)
}
