package storefront

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/models"
)

// GetMenu returns a cafe's available menu items for the public
// storefront, along with the cafe's display details.
func GetMenu(c *gin.Context) {
	cafeID, err := strconv.Atoi(c.Param("cafeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cafe ID"})
		return
	}

	var cafe models.Cafe
	if err := database.DB.First(&cafe, cafeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cafe not found"})
		return
	}

	var items []models.MenuItem
	if err := database.DB.
		Where("cafe_id = ? AND available = ?", cafeID, true).
		Order("category, name").
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cafe": gin.H{
			"id":          cafe.ID,
			"name":        cafe.Name,
			"description": cafe.Description,
			"logoUrl":     cafe.LogoURL,
		},
		"items": items,
	})
}
