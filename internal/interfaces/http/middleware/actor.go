package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	identityapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
)

// Actor context key
const (
	ActorKey = "request_actor"
	// OrgOverrideHeader lets platform operators act within a specific
	// organization without re-issuing tokens
	OrgOverrideHeader = "X-Org-ID"
)

// ActorMiddleware builds the acting principal from validated JWT claims and
// stores it in the request context. Must run after JWTAuthMiddleware.
func ActorMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			// Unauthenticated route (skip path); nothing to build
			c.Next()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			abortActorError(c, "token is missing a valid user identity")
			return
		}

		orgID, err := uuid.Parse(claims.OrgID)
		if err != nil {
			abortActorError(c, "token is missing a valid organization")
			return
		}

		role := identity.Role(claims.Role)
		if !role.IsValid() {
			abortActorError(c, "token carries an unknown role")
			return
		}

		// Platform operators may scope a request to any organization
		orgScoped := false
		if override := c.GetHeader(OrgOverrideHeader); override != "" && role == identity.RoleSuperAdmin {
			overrideID, err := uuid.Parse(override)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "ERR_BAD_REQUEST",
						"message": "X-Org-ID must be a valid UUID",
					},
				})
				return
			}
			orgID = overrideID
			orgScoped = true
		}

		vesselID, err := claims.GetVesselUUID()
		if err != nil {
			abortActorError(c, "token carries an invalid vessel assignment")
			return
		}

		actor := identityapp.Actor{
			UserID:         userID,
			OrganizationID: orgID,
			Email:          claims.Email,
			Role:           role,
			VesselID:       vesselID,
			IPAddress:      c.ClientIP(),
			UserAgent:      c.Request.UserAgent(),
			OrgScoped:      orgScoped,
		}

		c.Set(ActorKey, actor)

		if log != nil {
			log.Debug("request actor resolved",
				zap.String("user_id", actor.UserID.String()),
				zap.String("org_id", actor.OrganizationID.String()),
				zap.String("role", string(actor.Role)),
			)
		}

		c.Next()
	}
}

// GetActor retrieves the acting principal from gin.Context
func GetActor(c *gin.Context) (identityapp.Actor, bool) {
	if v, exists := c.Get(ActorKey); exists {
		if actor, ok := v.(identityapp.Actor); ok {
			return actor, true
		}
	}
	return identityapp.Actor{}, false
}

func abortActorError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "INVALID_TOKEN",
			"message": message,
		},
	})
}
