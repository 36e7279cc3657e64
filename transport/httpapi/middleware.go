// Package httpapi exposes the REST surface: authentication, roster,
// history and operational stats.
package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"chat-direct/auth"
)

const userIDKey = "user_id"

// RequireAuth rejects requests without a valid bearer token and stores
// the authenticated user id on the context for the handlers.
func RequireAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := issuer.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

func callerID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
