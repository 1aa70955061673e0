package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
)

// RegisterDevice stores a staff device token for push notifications
func (ctl *Controller) RegisterDevice(c *gin.Context) {
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
		DeviceToken string `json:"deviceToken" binding:"required"`
		Platform    string `json:"platform"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "deviceToken is required"})
		return
	}

	if err := ctl.Push.RegisterDevice(c.Request.Context(), cafe.ID, user.ID, req.DeviceToken, req.Platform); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register device"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Device registered for push notifications",
		"pushEnabled": ctl.Push.Enabled(),
	})
}

// UnregisterDevice deactivates a device token
func (ctl *Controller) UnregisterDevice(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		DeviceToken string `json:"deviceToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "deviceToken is required"})
		return
	}

	result := database.DB.Model(&models.StaffDeviceToken{}).
		Where("device_token = ? AND user_id = ?", req.DeviceToken, user.ID).
		Update("is_active", false)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Device token not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Device unregistered"})
}
