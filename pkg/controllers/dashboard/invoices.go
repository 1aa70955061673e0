package dashboard

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
	"cafehub/pkg/services"
)

// GetInvoices lists invoices newest first
func GetInvoices(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var invoices []models.Invoice
	if err := database.DB.
		Preload("Party").
		Where("cafe_id = ?", cafe.ID).
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// CreateInvoice creates a draft invoice with a sequential number
func CreateInvoice(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		PartyID *uint      `json:"partyId"`
		Amount  float64    `json:"amount" binding:"required"`
		DueDate *time.Time `json:"dueDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A positive amount is required"})
		return
	}

	if req.PartyID != nil {
		var party models.FinancialParty
		if err := database.DB.
			Where("id = ? AND cafe_id = ?", *req.PartyID, cafe.ID).
			First(&party).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Party not found"})
			return
		}
	}

	var count int64
	database.DB.Model(&models.Invoice{}).Where("cafe_id = ?", cafe.ID).Count(&count)
	number := fmt.Sprintf("INV-%d-%04d", cafe.ID, count+1)

	invoice := models.Invoice{
		CafeID:  cafe.ID,
		PartyID: req.PartyID,
		Number:  number,
		Amount:  req.Amount,
		Status:  models.InvoiceStatusDraft,
		DueDate: req.DueDate,
	}
	if err := database.DB.Create(&invoice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"invoice": invoice})
}

// UpdateInvoiceStatus moves an invoice between draft, issued, paid, void
func UpdateInvoiceStatus(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		Status models.InvoiceStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
		return
	}
	switch req.Status {
	case models.InvoiceStatusDraft, models.InvoiceStatusIssued, models.InvoiceStatusPaid, models.InvoiceStatusVoid:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid invoice status"})
		return
	}

	var invoice models.Invoice
	if err := database.DB.
		Where("id = ? AND cafe_id = ?", c.Param("invoiceId"), cafe.ID).
		First(&invoice).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invoice not found"})
		return
	}

	if invoice.Status == models.InvoiceStatusPaid || invoice.Status == models.InvoiceStatusVoid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invoice is already " + string(invoice.Status)})
		return
	}

	if err := database.DB.Model(&invoice).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	invoice.Status = req.Status

	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// CreateInvoicePaymentLink generates a shareable payment link for an
// issued invoice.
func CreateInvoicePaymentLink(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var invoice models.Invoice
	if err := database.DB.
		Preload("Party").
		Where("id = ? AND cafe_id = ?", c.Param("invoiceId"), cafe.ID).
		First(&invoice).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invoice not found"})
		return
	}

	if invoice.Status != models.InvoiceStatusIssued {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only issued invoices can have payment links"})
		return
	}

	if !services.RazorpayEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Payment links are not configured"})
		return
	}

	customerName := ""
	if invoice.Party != nil {
		customerName = invoice.Party.Name
	}

	link, err := services.CreateInvoicePaymentLink(invoice.Number, invoice.Amount, customerName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create payment link"})
		return
	}

	if err := database.DB.Model(&invoice).Update("payment_link", link).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"paymentLink": link})
}
