package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
)

// GetTables lists the cafe's tables by number
func GetTables(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var tables []models.Table
	if err := database.DB.
		Where("cafe_id = ?", cafe.ID).
		Order("number").
		Find(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tables": tables})
}

// CreateTable adds a table; numbers are unique per cafe
func CreateTable(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		Number int `json:"number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Number <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A positive table number is required"})
		return
	}

	var existing models.Table
	if err := database.DB.
		Where("cafe_id = ? AND number = ?", cafe.ID, req.Number).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Table number already exists"})
		return
	}

	table := models.Table{
		CafeID: cafe.ID,
		Number: req.Number,
		Status: models.TableStatusAvailable,
	}
	if err := database.DB.Create(&table).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"table": table})
}

// UpdateTableStatus sets a table's status manually
func UpdateTableStatus(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		Status models.TableStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
		return
	}
	switch req.Status {
	case models.TableStatusAvailable, models.TableStatusOccupied, models.TableStatusReserved:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid table status"})
		return
	}

	var table models.Table
	if err := database.DB.
		Where("id = ? AND cafe_id = ?", c.Param("tableId"), cafe.ID).
		First(&table).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Table not found"})
		return
	}

	if err := database.DB.Model(&table).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	table.Status = req.Status

	c.JSON(http.StatusOK, gin.H{"table": table})
}

// DeleteTable removes a table
func DeleteTable(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	result := database.DB.
		Where("id = ? AND cafe_id = ?", c.Param("tableId"), cafe.ID).
		Delete(&models.Table{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Table not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Table deleted"})
}
