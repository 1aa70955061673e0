package storefront

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cafehub/pkg/cart"
	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
)

// gormOrderWriter persists an order and its items in one transaction,
// satisfying the cart's atomicity requirement.
type gormOrderWriter struct {
	db *gorm.DB
}

func (w gormOrderWriter) CreateOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	return w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Checkout turns the session cart into a pending order
func (ctl *Controller) Checkout(c *gin.Context) {
	cafeID, err := strconv.Atoi(c.Param("cafeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cafe ID"})
		return
	}

	var req struct {
		TableNumber  int    `json:"tableNumber"`
		CustomerName string `json:"customerName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	var cafe models.Cafe
	if err := database.DB.First(&cafe, cafeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cafe not found"})
		return
	}

	ct, token, err := ctl.loadCart(c, uint(cafeID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	res := ct.Checkout(c.Request.Context(), gormOrderWriter{database.DB}, req.TableNumber, req.CustomerName)
	if res.Err != nil {
		if errors.Is(res.Err, cart.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	// mark the table occupied, best effort
	if req.TableNumber > 0 {
		database.DB.Model(&models.Table{}).
			Where("cafe_id = ? AND number = ?", cafeID, req.TableNumber).
			Update("status", models.TableStatusOccupied)
	}

	if err := ctl.Carts.Save(c.Request.Context(), token, ct); err != nil {
		// the order is committed; a stale mirrored cart self-corrects on next load
		c.Error(err)
	}

	var items []models.OrderItem
	database.DB.Preload("MenuItem").Where("order_id = ?", res.Order.ID).Find(&items)

	middleware.RecordOrderCreated(uint(cafeID))
	ctl.Bridge.OrderCreated(c.Request.Context(), cafe, *res.Order, items)

	c.JSON(http.StatusCreated, gin.H{
		"order":   res.Order,
		"message": "Order placed successfully",
	})
}
