package routes

import (
	"github.com/gin-gonic/gin"

	"cafehub/pkg/controllers/auth"
	"cafehub/pkg/middleware"
)

// RegisterAuthRoutes registers all authentication routes
func RegisterAuthRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", auth.Signup)
		authGroup.POST("/signin", auth.Signin)
		authGroup.GET("/callback", auth.Callback)
		authGroup.POST("/signout", auth.Signout)

		// Protected routes
		authGroup.GET("/me", middleware.AuthenticateToken(), auth.Me)
	}
}
