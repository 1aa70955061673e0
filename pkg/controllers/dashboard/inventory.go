package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
)

// GetInventory lists stock items, flagging those at or below threshold
func GetInventory(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var items []models.InventoryItem
	if err := database.DB.
		Preload("Supplier").
		Where("cafe_id = ?", cafe.ID).
		Order("name").
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	lowStock := []uint{}
	for _, item := range items {
		if item.Quantity <= item.Threshold {
			lowStock = append(lowStock, item.ID)
		}
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "lowStockIds": lowStock})
}

// CreateInventoryItem adds a stock item
func CreateInventoryItem(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		Name        string   `json:"name" binding:"required"`
		Unit        string   `json:"unit"`
		Quantity    float64  `json:"quantity"`
		Threshold   float64  `json:"threshold"`
		CostPerUnit *float64 `json:"costPerUnit"`
		SupplierID  *uint    `json:"supplierId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required"})
		return
	}
	if req.Quantity < 0 || req.Threshold < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity and threshold must not be negative"})
		return
	}
	if req.Unit == "" {
		req.Unit = "unit"
	}

	if req.SupplierID != nil {
		var supplier models.Supplier
		if err := database.DB.
			Where("id = ? AND cafe_id = ?", *req.SupplierID, cafe.ID).
			First(&supplier).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Supplier not found"})
			return
		}
	}

	item := models.InventoryItem{
		CafeID:      cafe.ID,
		Name:        req.Name,
		Unit:        req.Unit,
		Quantity:    req.Quantity,
		Threshold:   req.Threshold,
		CostPerUnit: req.CostPerUnit,
		SupplierID:  req.SupplierID,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// UpdateInventoryItem edits a stock item
func UpdateInventoryItem(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var item models.InventoryItem
	if err := database.DB.
		Where("id = ? AND cafe_id = ?", c.Param("itemId"), cafe.ID).
		First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Inventory item not found"})
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Unit        *string  `json:"unit"`
		Quantity    *float64 `json:"quantity"`
		Threshold   *float64 `json:"threshold"`
		CostPerUnit *float64 `json:"costPerUnit"`
		SupplierID  *uint    `json:"supplierId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must not be negative"})
			return
		}
		updates["quantity"] = *req.Quantity
	}
	if req.Threshold != nil {
		if *req.Threshold < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Threshold must not be negative"})
			return
		}
		updates["threshold"] = *req.Threshold
	}
	if req.CostPerUnit != nil {
		updates["cost_per_unit"] = *req.CostPerUnit
	}
	if req.SupplierID != nil {
		var supplier models.Supplier
		if err := database.DB.
			Where("id = ? AND cafe_id = ?", *req.SupplierID, cafe.ID).
			First(&supplier).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Supplier not found"})
			return
		}
		updates["supplier_id"] = *req.SupplierID
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

// DeleteInventoryItem removes a stock item
func DeleteInventoryItem(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	result := database.DB.
		Where("id = ? AND cafe_id = ?", c.Param("itemId"), cafe.ID).
		Delete(&models.InventoryItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Inventory item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted"})
}
