package storefront

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/models"
	"cafehub/pkg/services"
)

// NotifyTelegram resends an order alert to the cafe's Telegram chat.
// The automatic alert fires on checkout; this endpoint lets a client
// retry a delivery that failed.
func (ctl *Controller) NotifyTelegram(c *gin.Context) {
	var req struct {
		CafeID  uint `json:"cafeId" binding:"required"`
		OrderID uint `json:"orderId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "cafeId and orderId are required"})
		return
	}

	var cafe models.Cafe
	if err := database.DB.First(&cafe, req.CafeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Cafe not found"})
		return
	}

	var order models.Order
	if err := database.DB.
		Preload("Items.MenuItem").
		Where("id = ? AND cafe_id = ?", req.OrderID, req.CafeID).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}

	err := ctl.Telegram.SendOrderMessage(c.Request.Context(), cafe, order, order.Items)
	if err != nil {
		if errors.Is(err, services.ErrTelegramNotConfigured) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Telegram is not configured for this cafe"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to deliver Telegram message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
