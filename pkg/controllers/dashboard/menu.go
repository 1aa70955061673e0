package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
	"cafehub/pkg/services"
)

// GetMenuItems returns every menu item of the cafe, including
// unavailable ones.
func GetMenuItems(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var items []models.MenuItem
	if err := database.DB.
		Where("cafe_id = ?", cafe.ID).
		Order("category, name").
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateMenuItem adds a menu item
func CreateMenuItem(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		Name      string   `json:"name" binding:"required"`
		Price     float64  `json:"price" binding:"required"`
		Category  string   `json:"category" binding:"required"`
		Available *bool    `json:"available"`
		CostPrice *float64 `json:"costPrice"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, price, and category are required"})
		return
	}
	if req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Price must be greater than 0"})
		return
	}

	item := models.MenuItem{
		CafeID:    cafe.ID,
		Name:      req.Name,
		Price:     req.Price,
		Category:  req.Category,
		Available: true,
		CostPrice: req.CostPrice,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// UpdateMenuItem edits a menu item
func UpdateMenuItem(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var item models.MenuItem
	if err := database.DB.
		Where("id = ? AND cafe_id = ?", c.Param("itemId"), cafe.ID).
		First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Menu item not found"})
		return
	}

	var req struct {
		Name      *string  `json:"name"`
		Price     *float64 `json:"price"`
		Category  *string  `json:"category"`
		Available *bool    `json:"available"`
		CostPrice *float64 `json:"costPrice"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Price must be greater than 0"})
			return
		}
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if req.CostPrice != nil {
		updates["cost_price"] = *req.CostPrice
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
	}

	database.DB.First(&item, item.ID)
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UploadMenuItemImage uploads an item photo and stores its URL
func UploadMenuItemImage(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var item models.MenuItem
	if err := database.DB.
		Where("id = ? AND cafe_id = ?", c.Param("itemId"), cafe.ID).
		First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Menu item not found"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "image file is required"})
		return
	}

	if !services.StorageEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Image uploads are not configured"})
		return
	}

	url, err := services.UploadImageFile(c.Request.Context(), fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload image"})
		return
	}

	// replace the old image if there was one
	if item.ImageURL != nil {
		services.DeleteImage(c.Request.Context(), *item.ImageURL)
	}

	if err := database.DB.Model(&item).Update("image_url", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}

// DeleteMenuItem removes a menu item and its stored image
func DeleteMenuItem(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var item models.MenuItem
	if err := database.DB.
		Where("id = ? AND cafe_id = ?", c.Param("itemId"), cafe.ID).
		First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Menu item not found"})
		return
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if item.ImageURL != nil {
		services.DeleteImage(c.Request.Context(), *item.ImageURL)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
