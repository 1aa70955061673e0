package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
)

// GetShifts lists upcoming and recent shifts
func GetShifts(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var shifts []models.Shift
	if err := database.DB.
		Preload("Staff").
		Where("cafe_id = ?", cafe.ID).
		Order("starts_at DESC").
		Find(&shifts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shifts": shifts})
}

// CreateShift schedules a staff shift
func CreateShift(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		StaffID  uint      `json:"staffId" binding:"required"`
		Role     string    `json:"role"`
		StartsAt time.Time `json:"startsAt" binding:"required"`
		EndsAt   time.Time `json:"endsAt" binding:"required"`
		Notes    *string   `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "staffId, startsAt, and endsAt are required"})
		return
	}
	if !req.EndsAt.After(req.StartsAt) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Shift must end after it starts"})
		return
	}

	var staff models.User
	if err := database.DB.
		Where("id = ? AND cafe_id = ? AND role = ?", req.StaffID, cafe.ID, models.RoleStaff).
		First(&staff).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Staff member not found"})
		return
	}

	shift := models.Shift{
		CafeID:   cafe.ID,
		StaffID:  req.StaffID,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Notes:    req.Notes,
	}
	if req.Role != "" {
		shift.Role = req.Role
	}

	if err := database.DB.Create(&shift).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	database.DB.Preload("Staff").First(&shift, shift.ID)
	c.JSON(http.StatusCreated, gin.H{"shift": shift})
}

// DeleteShift removes a scheduled shift
func DeleteShift(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	result := database.DB.
		Where("id = ? AND cafe_id = ?", c.Param("shiftId"), cafe.ID).
		Delete(&models.Shift{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Shift not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shift deleted"})
}
