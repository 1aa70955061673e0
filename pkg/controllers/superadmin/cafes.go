// Package superadmin serves the platform console: cafe plan management
// and the operator allow-list.
package superadmin

import (
	"github.com/gin-gonic/gin"

	"cafehub/pkg/cache"
	"cafehub/pkg/database"
	"cafehub/pkg/models"
	"cafehub/pkg/utils"
)

// Controller bundles the dependencies the platform handlers need.
type Controller struct {
	Cache *cache.Cache
}

// NewController wires the platform console handlers.
func NewController(store *cache.Cache) *Controller {
	return &Controller{Cache: store}
}

// GetCafes lists every cafe on the platform, newest first
func (ctl *Controller) GetCafes(c *gin.Context) {
	var cafes []models.Cafe
	if err := database.DB.
		Preload("Owner").
		Order("created_at DESC").
		Find(&cafes).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}

	out := make([]gin.H, len(cafes))
	for i, cafe := range cafes {
		out[i] = gin.H{
			"id":         cafe.ID,
			"name":       cafe.Name,
			"plan":       cafe.Plan,
			"createdAt":  cafe.CreatedAt,
			"ownerName":  cafe.Owner.Name,
			"ownerEmail": cafe.Owner.Email,
		}
	}

	utils.SuccessResponse(c, gin.H{"cafes": out}, "")
}

// UpdateCafePlan changes a cafe's subscription plan. The owner's cached
// cafe record is invalidated so the new entitlements apply on their
// next request.
func (ctl *Controller) UpdateCafePlan(c *gin.Context) {
	var req struct {
		Plan models.Plan `json:"plan" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "plan is required")
		return
	}
	if !models.ValidPlan(req.Plan) {
		utils.BadRequestResponse(c, "Plan must be basic or pro")
		return
	}

	var cafe models.Cafe
	if err := database.DB.First(&cafe, c.Param("cafeId")).Error; err != nil {
		utils.NotFoundResponse(c, "Cafe not found")
		return
	}

	if err := database.DB.Model(&cafe).Update("plan", req.Plan).Error; err != nil {
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}
	cafe.Plan = req.Plan

	ctl.Cache.InvalidateCafe(c.Request.Context(), cafe.OwnerID)

	utils.SuccessResponse(c, gin.H{"cafe": cafe}, "Plan updated")
}
