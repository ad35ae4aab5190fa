package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cloudbox/internal/config"
	"cloudbox/internal/port"
)

// ContextKeyToken is the gin context key holding the presented bearer token.
const ContextKeyToken = "auth_token"

// AuthMiddleware returns gin middleware guarding the upload/fetch routes.
// With verification disabled it only requires that a bearer token is present;
// with verification enabled the token must also be a valid signed JWT. The
// presence-only mode matches the original service contract and is the default.
func AuthMiddleware(verifier port.TokenVerifier, cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		if cfg.Verify {
			if err := verifier.Verify(token); err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				return
			}
		}

		c.Set(ContextKeyToken, token)
		c.Next()
	}
}
