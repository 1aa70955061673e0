package dashboard

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
)

// loyaltyPointsFor converts lifetime spend to points: one point per 10
// spent, rounded down.
func loyaltyPointsFor(totalSpent float64) int {
	return int(math.Floor(totalSpent / 10))
}

// GetCustomers lists the customer aggregates by lifetime spend
func GetCustomers(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var customers []models.Customer
	if err := database.DB.
		Where("cafe_id = ?", cafe.ID).
		Order("total_spent DESC").
		Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// SyncCustomers rebuilds the customer aggregates from completed orders
// that carry a customer name. The table is a derived view; sync is
// explicit, not automatic on each order.
func SyncCustomers(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var orders []models.Order
	if err := database.DB.
		Where("cafe_id = ? AND status = ? AND customer_name IS NOT NULL AND customer_name <> ''",
			cafe.ID, models.OrderStatusCompleted).
		Order("created_at").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	type agg struct {
		spent     float64
		visits    int
		lastVisit *models.Order
	}
	byName := map[string]*agg{}
	for i := range orders {
		o := &orders[i]
		a := byName[*o.CustomerName]
		if a == nil {
			a = &agg{}
			byName[*o.CustomerName] = a
		}
		a.spent += o.TotalAmount
		a.visits++
		a.lastVisit = o
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for name, a := range byName {
			var customer models.Customer
			err := tx.Where("cafe_id = ? AND name = ?", cafe.ID, name).First(&customer).Error
			if err == gorm.ErrRecordNotFound {
				customer = models.Customer{CafeID: cafe.ID, Name: name}
				if err := tx.Create(&customer).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			lastVisit := a.lastVisit.CreatedAt
			// earned points are derived from spend; redeemed points were
			// subtracted at redemption time and must survive a resync
			redeemed := loyaltyPointsFor(customer.TotalSpent) - customer.LoyaltyPoints
			if redeemed < 0 {
				redeemed = 0
			}

			if err := tx.Model(&customer).Updates(map[string]interface{}{
				"total_spent":    a.spent,
				"visit_count":    a.visits,
				"last_visit_at":  lastVisit,
				"loyalty_points": loyaltyPointsFor(a.spent) - redeemed,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customers synced", "count": len(byName)})
}

// RedeemLoyaltyPoints deducts points from a customer inside a
// transaction, so a double submit can't overdraw the balance.
func RedeemLoyaltyPoints(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		Points int `json:"points" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Points <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A positive points amount is required"})
		return
	}

	var customer models.Customer
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("id = ? AND cafe_id = ?", c.Param("customerId"), cafe.ID).
			First(&customer).Error; err != nil {
			return err
		}
		if customer.LoyaltyPoints < req.Points {
			return errInsufficientPoints
		}
		return tx.Model(&customer).
			Update("loyalty_points", gorm.Expr("loyalty_points - ?", req.Points)).Error
	})

	switch err {
	case nil:
		database.DB.First(&customer, customer.ID)
		c.JSON(http.StatusOK, gin.H{"customer": customer, "message": "Points redeemed"})
	case errInsufficientPoints:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Not enough loyalty points"})
	case gorm.ErrRecordNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

var errInsufficientPoints = errors.New("insufficient loyalty points")
