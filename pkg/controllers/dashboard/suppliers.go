package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
)

// GetSuppliers lists the cafe's suppliers
func GetSuppliers(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var suppliers []models.Supplier
	if err := database.DB.
		Where("cafe_id = ?", cafe.ID).
		Order("name").
		Find(&suppliers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
}

// CreateSupplier adds a supplier
func CreateSupplier(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		Name  string  `json:"name" binding:"required"`
		Phone *string `json:"phone"`
		Email *string `json:"email"`
		Notes *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required"})
		return
	}

	supplier := models.Supplier{
		CafeID: cafe.ID,
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
		Notes:  req.Notes,
	}
	if err := database.DB.Create(&supplier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"supplier": supplier})
}

// UpdateSupplier edits a supplier
func UpdateSupplier(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var supplier models.Supplier
	if err := database.DB.
		Where("id = ? AND cafe_id = ?", c.Param("supplierId"), cafe.ID).
		First(&supplier).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Supplier not found"})
		return
	}

	var req struct {
		Name  *string `json:"name"`
		Phone *string `json:"phone"`
		Email *string `json:"email"`
		Notes *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&supplier).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
	}

	database.DB.First(&supplier, supplier.ID)
	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

// DeleteSupplier removes a supplier
func DeleteSupplier(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	// keep purchase order history intact
	var poCount int64
	database.DB.Model(&models.PurchaseOrder{}).
		Where("cafe_id = ? AND supplier_id = ?", cafe.ID, c.Param("supplierId")).
		Count(&poCount)
	if poCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Supplier has purchase orders and cannot be deleted"})
		return
	}

	result := database.DB.
		Where("id = ? AND cafe_id = ?", c.Param("supplierId"), cafe.ID).
		Delete(&models.Supplier{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Supplier not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted"})
}
