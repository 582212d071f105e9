package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"promptly/internal/policy"
	"promptly/pkg/utils"
)

func JWTAuthMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass the principal to the next handler
		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("Role", claims.Role)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the principal when a valid bearer token is
// present but lets anonymous requests through. Used by the public submission
// form so logged-in submitters get linked to their account.
func OptionalAuthMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := utils.ValidateToken(tokenString); err == nil && claims != nil {
				c.Set("user_id", claims.UserID)
				c.Set("user_email", claims.Email)
				c.Set("Role", claims.Role)
			}
		}
		c.Next()
	}
}

// RequireCapability gates a route on the policy table. It assumes
// JWTAuthMiddleware already ran.
func RequireCapability(cap policy.Capability) gin.HandlerFunc {

	return func(c *gin.Context) {
		role := c.GetString("Role")

		if !policy.Allows(role, cap) {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
