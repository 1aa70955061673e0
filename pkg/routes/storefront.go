package routes

import (
	"github.com/gin-gonic/gin"

	"cafehub/pkg/controllers/storefront"
)

// RegisterStorefrontRoutes registers the public customer-facing routes.
// No authentication: the storefront is reachable from a table QR code.
func RegisterStorefrontRoutes(router *gin.RouterGroup, ctl *storefront.Controller) {
	// direct order placement and lookups
	router.POST("/orders", ctl.CreateOrder)
	router.GET("/orders", storefront.ListOrders)
	router.GET("/orders/:orderId", storefront.GetOrder)

	// order alert redelivery
	router.POST("/notifications/telegram", ctl.NotifyTelegram)

	// ratings for completed orders
	router.POST("/ratings", storefront.RateOrder)

	sf := router.Group("/storefront/:cafeId")
	{
		sf.GET("/menu", storefront.GetMenu)
		sf.GET("/cart", ctl.GetCart)
		sf.POST("/cart/items", ctl.AddToCart)
		sf.DELETE("/cart/items", ctl.RemoveFromCart)
		sf.POST("/checkout", ctl.Checkout)
	}
}
