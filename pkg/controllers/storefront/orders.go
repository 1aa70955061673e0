package storefront

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
)

// CreateOrder places an order directly, without a session cart. Prices
// are read from the menu at order time and captured on each line.
func (ctl *Controller) CreateOrder(c *gin.Context) {
	var req struct {
		CafeID       uint   `json:"cafeId" binding:"required"`
		TableNumber  int    `json:"tableNumber"`
		CustomerName string `json:"customerName"`
		Items        []struct {
			MenuItemID uint `json:"menuItemId" binding:"required"`
			Quantity   int  `json:"quantity" binding:"required"`
		} `json:"items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cafeId and at least one item are required"})
		return
	}

	var cafe models.Cafe
	if err := database.DB.First(&cafe, req.CafeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cafe not found"})
		return
	}

	tableNumber := req.TableNumber
	if tableNumber < 0 {
		tableNumber = 0
	}

	total := 0.0
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be greater than 0"})
			return
		}
		var item models.MenuItem
		if err := database.DB.
			Where("id = ? AND cafe_id = ?", line.MenuItemID, req.CafeID).
			First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		if !item.Available {
			c.JSON(http.StatusBadRequest, gin.H{"error": item.Name + " is not available"})
			return
		}
		total += item.Price * float64(line.Quantity)
		items = append(items, models.OrderItem{
			MenuItemID: item.ID,
			Quantity:   line.Quantity,
			UnitPrice:  item.Price,
		})
	}

	order := models.Order{
		CafeID:      req.CafeID,
		TableNumber: tableNumber,
		Status:      models.OrderStatusPending,
		TotalAmount: total,
	}
	if req.CustomerName != "" {
		order.CustomerName = &req.CustomerName
	}

	if err := (gormOrderWriter{database.DB}).CreateOrder(c.Request.Context(), &order, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	if tableNumber > 0 {
		database.DB.Model(&models.Table{}).
			Where("cafe_id = ? AND number = ?", req.CafeID, tableNumber).
			Update("status", models.TableStatusOccupied)
	}

	database.DB.Preload("MenuItem").Where("order_id = ?", order.ID).Find(&items)

	middleware.RecordOrderCreated(req.CafeID)
	ctl.Bridge.OrderCreated(c.Request.Context(), cafe, order, items)

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// ListOrders returns orders newest first, optionally filtered by cafe
func ListOrders(c *gin.Context) {
	query := database.DB.
		Preload("Items.MenuItem").
		Order("created_at DESC")

	if cafeID := c.Query("cafeId"); cafeID != "" {
		query = query.Where("cafe_id = ?", cafeID)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrder returns a single order with its items, for the post-checkout
// status page.
func GetOrder(c *gin.Context) {
	var order models.Order
	if err := database.DB.
		Preload("Items.MenuItem").
		First(&order, c.Param("orderId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}
