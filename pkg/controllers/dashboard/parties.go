package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
)

// GetFinancialParties lists the cafe's counterparties
func GetFinancialParties(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var parties []models.FinancialParty
	if err := database.DB.
		Where("cafe_id = ?", cafe.ID).
		Order("name").
		Find(&parties).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"parties": parties})
}

// CreateFinancialParty adds a counterparty
func CreateFinancialParty(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		Name  string           `json:"name" binding:"required"`
		Kind  models.PartyKind `json:"kind"`
		Phone *string          `json:"phone"`
		Email *string          `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required"})
		return
	}

	kind := req.Kind
	if kind == "" {
		kind = models.PartyKindOther
	}
	switch kind {
	case models.PartyKindCustomer, models.PartyKindSupplier, models.PartyKindOther:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid party kind"})
		return
	}

	party := models.FinancialParty{
		CafeID: cafe.ID,
		Name:   req.Name,
		Kind:   kind,
		Phone:  req.Phone,
		Email:  req.Email,
	}
	if err := database.DB.Create(&party).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"party": party})
}
