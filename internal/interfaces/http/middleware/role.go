package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
)

// RequireRole aborts with 403 unless the actor's role grants at least the
// privileges of min. Must run after ActorMiddleware.
func RequireRole(min identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_UNAUTHORIZED",
					"message": "Authentication required",
				},
			})
			return
		}

		if !actor.Role.AtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_FORBIDDEN",
					"message": "Insufficient privileges",
				},
			})
			return
		}

		c.Next()
	}
}

// RequireSuperAdmin restricts a route to platform operators
func RequireSuperAdmin() gin.HandlerFunc {
	return RequireRole(identity.RoleSuperAdmin)
}

// RequireAdmin restricts a route to organization administrators and above
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(identity.RoleAdmin)
}
