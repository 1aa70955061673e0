package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
)

// GetOrders returns the cafe's orders newest first, with items. The
// list is cached per cafe and invalidated on every order write.
func (ctl *Controller) GetOrders(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	key := ctl.Cache.OrdersKey(cafe.ID)
	var cached []models.Order
	if ctl.Cache.GetJSON(c.Request.Context(), key, &cached) {
		c.JSON(http.StatusOK, gin.H{"orders": cached})
		return
	}

	var orders []models.Order
	query := database.DB.
		Preload("Items.MenuItem").
		Where("cafe_id = ?", cafe.ID).
		Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		if !models.ValidOrderStatus(models.OrderStatus(status)) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status filter"})
			return
		}
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	// only the unfiltered list is worth caching
	if c.Query("status") == "" {
		ctl.Cache.SetJSON(c.Request.Context(), key, orders)
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// UpdateOrderStatus moves an order through its lifecycle. Completed and
// cancelled orders are terminal; invalid transitions are rejected.
func (ctl *Controller) UpdateOrderStatus(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order status"})
		return
	}

	var order models.Order
	if err := database.DB.
		Where("id = ? AND cafe_id = ?", c.Param("orderId"), cafe.ID).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	if !models.CanTransitionOrder(order.Status, req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Cannot change order from " + string(order.Status) + " to " + string(req.Status),
		})
		return
	}

	if err := database.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	order.Status = req.Status

	// free the table when its last open order closes
	if req.Status == models.OrderStatusCompleted || req.Status == models.OrderStatusCancelled {
		ctl.releaseTableIfIdle(cafe.ID, order.TableNumber)
	}

	ctl.Bridge.OrderChanged(c.Request.Context(), cafe.ID, order)

	c.JSON(http.StatusOK, gin.H{"order": order, "message": "Order updated"})
}

func (ctl *Controller) releaseTableIfIdle(cafeID uint, tableNumber int) {
	if tableNumber <= 0 {
		return
	}

	var open int64
	database.DB.Model(&models.Order{}).
		Where("cafe_id = ? AND table_number = ? AND status IN ?", cafeID, tableNumber,
			[]models.OrderStatus{models.OrderStatusPending, models.OrderStatusPreparing}).
		Count(&open)

	if open == 0 {
		database.DB.Model(&models.Table{}).
			Where("cafe_id = ? AND number = ?", cafeID, tableNumber).
			Update("status", models.TableStatusAvailable)
	}
}
