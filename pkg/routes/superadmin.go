package routes

import (
	"github.com/gin-gonic/gin"

	"cafehub/pkg/controllers/superadmin"
	"cafehub/pkg/middleware"
)

// RegisterSuperAdminRoutes registers the platform console routes.
// Access is by email allow-list, not role. Bootstrap is the one
// exception: any authenticated user can claim the console while the
// allow-list is still empty.
func RegisterSuperAdminRoutes(router *gin.RouterGroup, ctl *superadmin.Controller) {
	router.POST("/superadmin/bootstrap", middleware.AuthenticateToken(), superadmin.Bootstrap)

	sa := router.Group("/superadmin")
	sa.Use(middleware.AuthenticateToken(), middleware.RequireSuperAdmin())
	{
		sa.GET("/cafes", ctl.GetCafes)
		sa.PUT("/cafes/:cafeId/plan", ctl.UpdateCafePlan)

		sa.GET("/allowlist", superadmin.GetAllowList)
		sa.POST("/allowlist", superadmin.AddToAllowList)
		sa.DELETE("/allowlist/:adminId", superadmin.RemoveFromAllowList)
	}
}
