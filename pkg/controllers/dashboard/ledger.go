package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
)

// GetLedgerAccounts lists accounts with their running balances.
// Balance convention follows the account type: debits increase asset
// and expense accounts, credits increase liability and income accounts.
func GetLedgerAccounts(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var accounts []models.LedgerAccount
	if err := database.DB.
		Preload("Entries").
		Where("cafe_id = ?", cafe.ID).
		Order("name").
		Find(&accounts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	out := make([]gin.H, len(accounts))
	for i, acct := range accounts {
		balance := 0.0
		for _, e := range acct.Entries {
			amount := e.Amount
			if e.Type == models.LedgerEntryCredit {
				amount = -amount
			}
			if acct.Type == models.LedgerAccountLiability || acct.Type == models.LedgerAccountIncome {
				amount = -amount
			}
			balance += amount
		}
		out[i] = gin.H{
			"id":      acct.ID,
			"name":    acct.Name,
			"type":    acct.Type,
			"balance": balance,
			"entries": len(acct.Entries),
		}
	}

	c.JSON(http.StatusOK, gin.H{"accounts": out})
}

// CreateLedgerAccount adds an account
func CreateLedgerAccount(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		Name string                   `json:"name" binding:"required"`
		Type models.LedgerAccountType `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and type are required"})
		return
	}
	switch req.Type {
	case models.LedgerAccountAsset, models.LedgerAccountLiability,
		models.LedgerAccountIncome, models.LedgerAccountExpense:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid account type"})
		return
	}

	account := models.LedgerAccount{
		CafeID: cafe.ID,
		Name:   req.Name,
		Type:   req.Type,
	}
	if err := database.DB.Create(&account).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// GetLedgerEntries lists an account's entries newest first
func GetLedgerEntries(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var account models.LedgerAccount
	if err := database.DB.
		Where("id = ? AND cafe_id = ?", c.Param("accountId"), cafe.ID).
		First(&account).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Account not found"})
		return
	}

	var entries []models.LedgerEntry
	if err := database.DB.
		Preload("Party").
		Where("account_id = ?", account.ID).
		Order("entry_date DESC").
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account, "entries": entries})
}

// CreateLedgerEntry records a debit or credit against an account
func CreateLedgerEntry(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var account models.LedgerAccount
	if err := database.DB.
		Where("id = ? AND cafe_id = ?", c.Param("accountId"), cafe.ID).
		First(&account).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Account not found"})
		return
	}

	var req struct {
		Type      models.LedgerEntryType `json:"type" binding:"required"`
		Amount    float64                `json:"amount" binding:"required"`
		Memo      *string                `json:"memo"`
		PartyID   *uint                  `json:"partyId"`
		EntryDate *time.Time             `json:"entryDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Type and amount are required"})
		return
	}
	if req.Type != models.LedgerEntryDebit && req.Type != models.LedgerEntryCredit {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Type must be debit or credit"})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Amount must be greater than 0"})
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

	entryDate := time.Now()
	if req.EntryDate != nil {
		entryDate = *req.EntryDate
	}

	entry := models.LedgerEntry{
		AccountID: account.ID,
		PartyID:   req.PartyID,
		Type:      req.Type,
		Amount:    req.Amount,
		Memo:      req.Memo,
		EntryDate: entryDate,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}
