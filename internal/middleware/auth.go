package middleware

import (
	"net/http"
	"strings"

	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUsername = "currentUser"
	CtxRole     = "currentRole"
)

// Auth verifies the bearer token and puts the caller's identity and role
// into the gin context. A missing token is 401; an invalid or expired one
// is 403. The token is the sole source of identity, no session lookup.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Access denied. No token provided.")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			util.Error(c, http.StatusForbidden, util.CodeAuth, "Invalid or expired token.")
			c.Abort()
			return
		}

		c.Set(CtxUsername, claims.Username)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route to the given roles. Runs after Auth.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if !allowed[role] {
			util.Error(c, http.StatusForbidden, util.CodeForbidden, "Forbidden: insufficient role.")
			c.Abort()
			return
		}
		c.Next()
	}
}
