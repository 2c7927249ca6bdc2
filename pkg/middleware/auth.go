package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lexai-legal/lexai-backend/pkg/response"
	"github.com/lexai-legal/lexai-backend/pkg/token"
)

// Context keys for the authenticated tenant context
const (
	ContextKeyUserID = "user_id"
	ContextKeyOrgID  = "org_id"
)

// TokenVerifier validates a session token and returns its claims
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// Auth creates a middleware that resolves the tenant context from the
// Authorization header. Requests without a valid token never reach the
// handler; on success the user and organization IDs are injected into
// the gin context for downstream handlers.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(response.ErrCodeMissingToken, "Authorization header is required"))
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(response.ErrCodeInvalidToken, "Invalid authorization header format"))
			return
		}
		tokenString := authHeader[len(bearerPrefix):]

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(response.ErrCodeInvalidToken, "Token is empty"))
			return
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			if errors.Is(err, token.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(response.ErrCodeTokenExpired, "Session token has expired"))
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(response.ErrCodeInvalidToken, "Invalid session token"))
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyOrgID, claims.OrgID)

		c.Next()
	}
}

// GetUserID extracts the authenticated user ID from gin context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok
}

// GetOrgID extracts the authenticated organization ID from gin context
func GetOrgID(c *gin.Context) (string, bool) {
	orgID, exists := c.Get(ContextKeyOrgID)
	if !exists {
		return "", false
	}
	id, ok := orgID.(string)
	return id, ok
}

// AuthContext extracts the authenticated (user, organization) pair.
// Handlers must treat ok=false as an unauthorized request.
func AuthContext(c *gin.Context) (userID, orgID string, ok bool) {
	userID, uok := GetUserID(c)
	orgID, ook := GetOrgID(c)
	if !uok || !ook || userID == "" || orgID == "" {
		return "", "", false
	}
	return userID, orgID, true
}
