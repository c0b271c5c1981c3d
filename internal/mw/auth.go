package mw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fleetflow-backend/internal/auth"
	"fleetflow-backend/internal/model"
)

// ClaimsKey is the gin context key the auth middleware stores claims under.
const ClaimsKey = "auth_claims"

// AuthRequired validates the Bearer token and stores its claims in the
// request context. Requests without a valid token are rejected.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "missing bearer token"})
			return
		}

		claims, err := auth.ParseToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid or expired token"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRoles gates a route group to the given roles. Must run after
// AuthRequired.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "authentication required"})
			return
		}
		if !allowed[claims.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "insufficient permissions for role " + string(claims.Role)})
			return
		}
		c.Next()
	}
}

// Claims returns the authenticated claims from the context, or nil.
func Claims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
