package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenVerifier resolves a bearer token to a user ID
type TokenVerifier interface {
	VerifyToken(token string) (int, error)
}

type AuthMiddleware struct {
	tokens  TokenVerifier
	isAdmin func(userID int) bool
}

func NewAuthMiddleware(tokens TokenVerifier, isAdmin func(userID int) bool) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:  tokens,
		isAdmin: isAdmin,
	}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller in the context as "user_id" and "is_admin".
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			// EventSource cannot set headers.
			token = c.Query("access_token")
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			return
		}

		userID, err := m.tokens.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("user_id", userID)
		c.Set("is_admin", m.isAdmin != nil && m.isAdmin(userID))
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
