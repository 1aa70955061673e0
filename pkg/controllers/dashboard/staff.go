package dashboard

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
	"cafehub/pkg/services"
	"cafehub/pkg/utils"
)

// GetStaff lists the cafe's staff accounts
func GetStaff(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var staff []models.User
	if err := database.DB.
		Where("cafe_id = ? AND role = ?", cafe.ID, models.RoleStaff).
		Order("name").
		Find(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

// AddStaff creates a staff account with a temporary password and emails
// the invite.
func AddStaff(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and email are required"})
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A user with this email already exists"})
		return
	}

	randomBytes := make([]byte, 6)
	rand.Read(randomBytes)
	tempPassword := hex.EncodeToString(randomBytes)

	hashedPassword, err := utils.HashPassword(tempPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	cafeID := cafe.ID
	staff := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: &hashedPassword,
		Role:     models.RoleStaff,
		CafeID:   &cafeID,
	}
	if err := database.DB.Create(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	services.SendStaffInviteEmail(req.Email, cafe.Name, tempPassword)

	c.JSON(http.StatusCreated, gin.H{
		"staff":   staff,
		"message": "Staff member added and invite sent",
	})
}

// RemoveStaff deletes a staff account from the cafe
func RemoveStaff(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	result := database.DB.
		Where("id = ? AND cafe_id = ? AND role = ?", c.Param("staffId"), cafe.ID, models.RoleStaff).
		Delete(&models.User{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Staff member not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff member removed"})
}
