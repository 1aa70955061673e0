package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
)

// GetExpenses lists expenses newest first with a category summary
func GetExpenses(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var expenses []models.Expense
	if err := database.DB.
		Where("cafe_id = ?", cafe.ID).
		Order("expense_date DESC").
		Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	byCategory := map[string]float64{}
	total := 0.0
	for _, e := range expenses {
		byCategory[e.Category] += e.Amount
		total += e.Amount
	}

	c.JSON(http.StatusOK, gin.H{
		"expenses":   expenses,
		"total":      total,
		"byCategory": byCategory,
	})
}

// CreateExpense records an expense
func CreateExpense(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		Description string     `json:"description" binding:"required"`
		Category    string     `json:"category" binding:"required"`
		Amount      float64    `json:"amount" binding:"required"`
		PaidTo      *string    `json:"paidTo"`
		ExpenseDate *time.Time `json:"expenseDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Description, category, and amount are required"})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Amount must be greater than 0"})
		return
	}

	expenseDate := time.Now()
	if req.ExpenseDate != nil {
		expenseDate = *req.ExpenseDate
	}

	expense := models.Expense{
		CafeID:      cafe.ID,
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		PaidTo:      req.PaidTo,
		ExpenseDate: expenseDate,
	}
	if err := database.DB.Create(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// DeleteExpense removes an expense record
func DeleteExpense(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	result := database.DB.
		Where("id = ? AND cafe_id = ?", c.Param("expenseId"), cafe.ID).
		Delete(&models.Expense{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Expense not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}
