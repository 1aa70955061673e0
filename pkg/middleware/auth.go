package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/cache"
	"cafehub/pkg/database"
	"cafehub/pkg/models"
	"cafehub/pkg/utils"
)

// AuthenticateToken validates the session JWT from the cookie or the
// Authorization header and loads the account into the context.
func AuthenticateToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""

		// Check cookie first
		if cookieToken, err := c.Cookie("token"); err == nil && cookieToken != "" {
			token = cookieToken
		}

		// If not in cookie, check Authorization header
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					token = parts[1]
				}
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token."})
			c.Abort()
			return
		}

		var user models.User
		if err := database.DB.First(&user, claims.ID).Error; err != nil {
			log.Printf("Error fetching user %d: %v", claims.ID, err)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token. User not found."})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// RequireRoles rejects accounts whose role is not in the allowed set.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userInterface, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
			c.Abort()
			return
		}

		user, ok := userInterface.(models.User)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied. Insufficient permissions."})
		c.Abort()
	}
}

// RequireSuperAdmin rejects users whose email is not on the platform
// admin allow-list. Membership is by email, not role, so an allow-listed
// owner can reach the platform console too.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userInterface, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
			c.Abort()
			return
		}
		user := userInterface.(models.User)

		var entry models.SuperAdmin
		if err := database.DB.Where("email = ?", user.Email).First(&entry).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied. Not a platform admin."})
			c.Abort()
			return
		}

		c.Next()
	}
}

// LoadCafe resolves the cafe the authenticated user belongs to (owned
// cafe for owners, employing cafe for staff) and stores it in the
// context. Owner lookups go through the cache so a plan change is
// visible as soon as the cached record is invalidated.
func LoadCafe(store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userInterface, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
			c.Abort()
			return
		}
		user := userInterface.(models.User)

		var cafe models.Cafe
		switch {
		case user.Role == models.RoleStaff && user.CafeID != nil:
			if err := database.DB.First(&cafe, *user.CafeID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "Cafe not found for this staff account."})
				c.Abort()
				return
			}
		default:
			key := store.CafeKey(user.ID)
			if !store.GetJSON(c.Request.Context(), key, &cafe) {
				if err := database.DB.Where("owner_id = ?", user.ID).First(&cafe).Error; err != nil {
					c.JSON(http.StatusNotFound, gin.H{"message": "No cafe found. Create your cafe first."})
					c.Abort()
					return
				}
				store.SetJSON(c.Request.Context(), key, cafe)
			}
		}

		c.Set("cafe", cafe)
		c.Next()
	}
}

// CafeFromContext returns the cafe placed by LoadCafe.
func CafeFromContext(c *gin.Context) (models.Cafe, bool) {
	v, exists := c.Get("cafe")
	if !exists {
		return models.Cafe{}, false
	}
	cafe, ok := v.(models.Cafe)
	return cafe, ok
}

// UserFromContext returns the account placed by AuthenticateToken.
func UserFromContext(c *gin.Context) (models.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
