package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
	"cafehub/pkg/services"
)

// GetOrCreateCafe returns the owner's cafe, creating an empty one on
// first visit so the onboarding flow has something to edit. Owners have
// at most one cafe.
func (ctl *Controller) GetOrCreateCafe(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	if user.Role != models.RoleOwner {
		// staff just read their employing cafe
		if user.CafeID == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cafe not found"})
			return
		}
		var cafe models.Cafe
		if err := database.DB.First(&cafe, *user.CafeID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cafe not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cafe": cafe})
		return
	}

	var cafe models.Cafe
	if err := database.DB.Where("owner_id = ?", user.ID).First(&cafe).Error; err != nil {
		cafe = models.Cafe{
			OwnerID: user.ID,
			Name:    user.Name + "'s Cafe",
			Plan:    models.PlanBasic,
		}
		if err := database.DB.Create(&cafe).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"cafe": cafe})
}

// UpdateCafe edits the cafe profile and chat-bot credentials
func (ctl *Controller) UpdateCafe(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cafe not found"})
		return
	}

	var req struct {
		Name             *string `json:"name"`
		Description      *string `json:"description"`
		TelegramBotToken *string `json:"telegramBotToken"`
		TelegramChatID   *string `json:"telegramChatId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.TelegramBotToken != nil {
		updates["telegram_bot_token"] = *req.TelegramBotToken
	}
	if req.TelegramChatID != nil {
		updates["telegram_chat_id"] = *req.TelegramChatID
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&cafe).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		ctl.Cache.InvalidateCafe(c.Request.Context(), user.ID)
	}

	database.DB.First(&cafe, cafe.ID)
	c.JSON(http.StatusOK, gin.H{"cafe": cafe})
}

// UploadCafeLogo uploads the cafe logo
func (ctl *Controller) UploadCafeLogo(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cafe not found"})
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "logo file is required"})
		return
	}

	if !services.StorageEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Image uploads are not configured"})
		return
	}

	url, err := services.UploadImageFile(c.Request.Context(), fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload logo"})
		return
	}

	if cafe.LogoURL != nil {
		services.DeleteImage(c.Request.Context(), *cafe.LogoURL)
	}

	if err := database.DB.Model(&cafe).Update("logo_url", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	ctl.Cache.InvalidateCafe(c.Request.Context(), user.ID)

	c.JSON(http.StatusOK, gin.H{"logoUrl": url})
}
