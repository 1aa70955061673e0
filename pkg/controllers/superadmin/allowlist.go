package superadmin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
	"cafehub/pkg/utils"
)

// GetAllowList returns the platform admin emails
func GetAllowList(c *gin.Context) {
	var entries []models.SuperAdmin
	if err := database.DB.Order("created_at").Find(&entries).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}

	utils.SuccessResponse(c, gin.H{"admins": entries}, "")
}

// AddToAllowList grants platform access to an email. When the list is
// empty any authenticated user may add the first entry, bootstrapping
// the console; after that only existing platform admins may add more
// (enforced by the route's middleware).
func AddToAllowList(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "A valid email is required")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.SuperAdmin
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.ErrorResponse(c, http.StatusConflict, "Email is already on the allow-list")
		return
	}

	entry := models.SuperAdmin{Email: email}
	if err := database.DB.Create(&entry).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}

	utils.CreatedResponse(c, gin.H{"admin": entry}, "Platform admin added")
}

// Bootstrap adds the caller's own email as the first platform admin.
// Only works while the allow-list is empty.
func Bootstrap(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	var count int64
	if err := database.DB.Model(&models.SuperAdmin{}).Count(&count).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}
	if count > 0 {
		utils.ForbiddenResponse(c, "Platform admins already exist")
		return
	}

	entry := models.SuperAdmin{Email: strings.ToLower(user.Email)}
	if err := database.DB.Create(&entry).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}

	utils.CreatedResponse(c, gin.H{"admin": entry}, "You are now a platform admin")
}

// RemoveFromAllowList revokes platform access. The last entry cannot be
// removed, so the console is never orphaned.
func RemoveFromAllowList(c *gin.Context) {
	var count int64
	if err := database.DB.Model(&models.SuperAdmin{}).Count(&count).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}
	if count <= 1 {
		utils.BadRequestResponse(c, "Cannot remove the last platform admin")
		return
	}

	result := database.DB.Where("id = ?", c.Param("adminId")).Delete(&models.SuperAdmin{})
	if result.Error != nil {
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFoundResponse(c, "Allow-list entry not found")
		return
	}

	utils.SuccessResponse(c, nil, "Platform admin removed")
}
