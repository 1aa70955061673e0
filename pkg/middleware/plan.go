package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/entitlement"
	"cafehub/pkg/models"
)

// RequirePlan gates a feature behind a subscription plan. Denied
// requests get a 403 with an upsell payload describing how the client
// should present the locked feature. Must run after LoadCafe.
func RequirePlan(feature string, required models.Plan, mode entitlement.Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		cafe, ok := CafeFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
			c.Abort()
			return
		}

		if !entitlement.HasAccess(required, cafe.Plan) {
			c.JSON(http.StatusForbidden, gin.H{
				"message": "Plan upgrade required.",
				"denial":  entitlement.Deny(feature, required, mode),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
