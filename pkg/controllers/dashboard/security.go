package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
	"cafehub/pkg/utils"
)

// SetupTwoFactor generates a TOTP secret and provisioning URL. The
// secret is stored but 2FA stays off until the first code is verified.
func SetupTwoFactor(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	if user.TwoFactorEnabled {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Two-factor authentication is already enabled"})
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "CafeHub",
		AccountName: user.Email,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	secret := key.Secret()
	if err := database.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("two_factor_secret", secret).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"secret": secret,
		"url":    key.URL(),
	})
}

// EnableTwoFactor verifies the first TOTP code and turns 2FA on
func EnableTwoFactor(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "code is required"})
		return
	}

	var fresh models.User
	if err := database.DB.First(&fresh, user.ID).Error; err != nil || fresh.TwoFactorSecret == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Run two-factor setup first"})
		return
	}

	if !totp.Validate(req.Code, *fresh.TwoFactorSecret) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid code"})
		return
	}

	if err := database.DB.Model(&fresh).Update("two_factor_enabled", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Two-factor authentication enabled"})
}

// DisableTwoFactor turns 2FA off after a password check
func DisableTwoFactor(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "password is required"})
		return
	}

	var fresh models.User
	if err := database.DB.First(&fresh, user.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if fresh.Password == nil || utils.ComparePassword(*fresh.Password, req.Password) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password"})
		return
	}

	if err := database.DB.Model(&fresh).Updates(map[string]interface{}{
		"two_factor_enabled": false,
		"two_factor_secret":  nil,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Two-factor authentication disabled"})
}
