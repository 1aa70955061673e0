package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"

	"cafehub/pkg/config"
	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
	"cafehub/pkg/utils"
)

const sessionMaxAge = 7 * 24 * 60 * 60

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie("token", token, sessionMaxAge, "/", "", config.IsProduction(), true)
}

// Signup handles owner registration
func Signup(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email, and password are required"})
		return
	}

	if err := utils.CheckPasswordStrength(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var existingUser models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: &hashedPassword,
		Role:     models.RoleOwner,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	setSessionCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"token": token,
	})
}

// Signin handles owner and staff login
func Signin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		TOTPCode string `json:"totpCode"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	if user.Password == nil || utils.ComparePassword(*user.Password, req.Password) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	if user.TwoFactorEnabled {
		if user.TwoFactorSecret == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		if req.TOTPCode == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Two-factor code required", "totpRequired": true})
			return
		}
		if !totp.Validate(req.TOTPCode, *user.TwoFactorSecret) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid two-factor code"})
			return
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	setSessionCookie(c, token)

	// one-time code for /auth/callback, so a client on another origin
	// can pick up a first-party session via the redirect flow
	authCode, err := utils.GenerateAuthCode(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"name":     user.Name,
		"email":    user.Email,
		"role":     user.Role,
		"token":    token,
		"authCode": authCode,
	})
}

// Callback exchanges a one-time login code for a session and redirects
// into the app. Allow-listed emails land on the platform console,
// everyone else on their dashboard.
func Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing code"})
		return
	}

	claims, err := utils.VerifyToken(code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired code"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, claims.ID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid code. User not found."})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	setSessionCookie(c, token)

	var entry models.SuperAdmin
	if err := database.DB.Where("email = ?", user.Email).First(&entry).Error; err == nil {
		c.Redirect(http.StatusFound, "/superadmin")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

// Me returns the authenticated account
func Me(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	resp := gin.H{
		"id":               user.ID,
		"name":             user.Name,
		"email":            user.Email,
		"role":             user.Role,
		"twoFactorEnabled": user.TwoFactorEnabled,
	}
	if user.CafeID != nil {
		resp["cafeId"] = *user.CafeID
	}

	var entry models.SuperAdmin
	if err := database.DB.Where("email = ?", user.Email).First(&entry).Error; err == nil {
		resp["isSuperAdmin"] = true
	}

	c.JSON(http.StatusOK, resp)
}

// Signout clears the session cookie
func Signout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}
