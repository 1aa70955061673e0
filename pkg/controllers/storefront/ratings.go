package storefront

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cafehub/pkg/database"
	"cafehub/pkg/models"
)

var (
	errInvalidScore      = errors.New("score out of range")
	errOrderNotCompleted = errors.New("order not completed")
	errItemNotInOrder    = errors.New("item not in order")
	errAlreadyRated      = errors.New("item already rated")
)

// validateRating applies the rating rules: scores run 1 to 5, only
// completed orders can be rated, the item must appear in the order, and
// each (order, menu item) pair is rated at most once.
func validateRating(order models.Order, menuItemID uint, score int, alreadyRated bool) error {
	if score < 1 || score > 5 {
		return errInvalidScore
	}
	if order.Status != models.OrderStatusCompleted {
		return errOrderNotCompleted
	}
	ordered := false
	for _, it := range order.Items {
		if it.MenuItemID == menuItemID {
			ordered = true
			break
		}
	}
	if !ordered {
		return errItemNotInOrder
	}
	if alreadyRated {
		return errAlreadyRated
	}
	return nil
}

// RateOrder records per-item ratings for a completed order. One rating
// per (order, menu item) pair; duplicates are rejected.
func RateOrder(c *gin.Context) {
	var req struct {
		OrderID uint `json:"orderId" binding:"required"`
		Ratings []struct {
			MenuItemID uint    `json:"menuItemId" binding:"required"`
			Score      int     `json:"score" binding:"required"`
			Comment    *string `json:"comment"`
		} `json:"ratings" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "orderId and at least one rating are required"})
		return
	}

	var order models.Order
	if err := database.DB.Preload("Items").First(&order, req.OrderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, r := range req.Ratings {
			var existing models.Rating
			alreadyRated := tx.
				Where("order_id = ? AND menu_item_id = ?", req.OrderID, r.MenuItemID).
				First(&existing).Error == nil

			if err := validateRating(order, r.MenuItemID, r.Score, alreadyRated); err != nil {
				return err
			}

			rating := models.Rating{
				OrderID:    req.OrderID,
				MenuItemID: r.MenuItemID,
				Score:      r.Score,
				Comment:    r.Comment,
			}
			if err := tx.Create(&rating).Error; err != nil {
				return err
			}
		}
		return nil
	})

	switch err {
	case nil:
		c.JSON(http.StatusCreated, gin.H{"message": "Thanks for the feedback!"})
	case errInvalidScore:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Score must be between 1 and 5"})
	case errOrderNotCompleted:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only completed orders can be rated"})
	case errItemNotInOrder:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rated item was not part of this order"})
	case errAlreadyRated:
		c.JSON(http.StatusConflict, gin.H{"message": "This item was already rated for this order"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
