package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
	"cafehub/pkg/stats"
)

type dashboardStats struct {
	TotalRevenue float64           `json:"totalRevenue"`
	TotalOrders  int               `json:"totalOrders"`
	ActiveOrders int               `json:"activeOrders"`
	MenuItems    int64             `json:"menuItems"`
	WeeklyChart  []stats.DayBucket `json:"weeklyChart"`
	RecentOrders []models.Order    `json:"recentOrders"`
}

// GetStats returns the dashboard home aggregates. The whole payload is
// cached per cafe and invalidated on every order write.
func (ctl *Controller) GetStats(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	key := ctl.Cache.StatsKey(cafe.ID)
	var cached dashboardStats
	if ctl.Cache.GetJSON(c.Request.Context(), key, &cached) {
		c.JSON(http.StatusOK, gin.H{"stats": cached})
		return
	}

	var rows []models.Order
	if err := database.DB.
		Select("status", "total_amount", "created_at").
		Where("cafe_id = ?", cafe.ID).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	points := make([]stats.OrderPoint, len(rows))
	for i, o := range rows {
		points[i] = stats.OrderPoint{Status: o.Status, TotalAmount: o.TotalAmount, CreatedAt: o.CreatedAt}
	}
	totals := stats.Summarize(points)

	var menuCount int64
	database.DB.Model(&models.MenuItem{}).Where("cafe_id = ?", cafe.ID).Count(&menuCount)

	var recent []models.Order
	database.DB.
		Preload("Items.MenuItem").
		Where("cafe_id = ?", cafe.ID).
		Order("created_at DESC").
		Limit(5).
		Find(&recent)

	payload := dashboardStats{
		TotalRevenue: totals.Revenue,
		TotalOrders:  totals.Orders,
		ActiveOrders: totals.Active,
		MenuItems:    menuCount,
		WeeklyChart:  stats.WeeklySeries(points, time.Now()),
		RecentOrders: recent,
	}

	ctl.Cache.SetJSON(c.Request.Context(), key, payload)
	c.JSON(http.StatusOK, gin.H{"stats": payload})
}
