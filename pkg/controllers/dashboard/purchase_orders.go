package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cafehub/pkg/database"
	"cafehub/pkg/middleware"
	"cafehub/pkg/models"
)

// GetPurchaseOrders lists purchase orders newest first
func GetPurchaseOrders(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var orders []models.PurchaseOrder
	if err := database.DB.
		Preload("Supplier").
		Preload("Items.InventoryItem").
		Where("cafe_id = ?", cafe.ID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchaseOrders": orders})
}

// CreatePurchaseOrder creates a pending purchase order with its lines
func CreatePurchaseOrder(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		SupplierID uint `json:"supplierId" binding:"required"`
		Items      []struct {
			InventoryItemID uint    `json:"inventoryItemId" binding:"required"`
			Quantity        float64 `json:"quantity" binding:"required"`
			UnitCost        float64 `json:"unitCost"`
		} `json:"items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "supplierId and at least one item are required"})
		return
	}

	var supplier models.Supplier
	if err := database.DB.
		Where("id = ? AND cafe_id = ?", req.SupplierID, cafe.ID).
		First(&supplier).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Supplier not found"})
		return
	}

	total := 0.0
	items := make([]models.PurchaseOrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be greater than 0"})
			return
		}
		var invItem models.InventoryItem
		if err := database.DB.
			Where("id = ? AND cafe_id = ?", line.InventoryItemID, cafe.ID).
			First(&invItem).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Inventory item not found"})
			return
		}
		total += line.UnitCost * line.Quantity
		items = append(items, models.PurchaseOrderItem{
			InventoryItemID: line.InventoryItemID,
			Quantity:        line.Quantity,
			UnitCost:        line.UnitCost,
		})
	}

	po := models.PurchaseOrder{
		CafeID:     cafe.ID,
		SupplierID: req.SupplierID,
		Status:     models.PurchaseOrderStatusPending,
		TotalCost:  total,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&po).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].PurchaseOrderID = po.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	database.DB.Preload("Supplier").Preload("Items.InventoryItem").First(&po, po.ID)
	c.JSON(http.StatusCreated, gin.H{"purchaseOrder": po})
}

// UpdatePurchaseOrderStatus moves a purchase order through its
// lifecycle. The delivered transition increments inventory for every
// line in the same transaction, and exactly once: re-delivering is
// rejected.
func UpdatePurchaseOrderStatus(c *gin.Context) {
	cafe, ok := middleware.CafeFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	var req struct {
		Status models.PurchaseOrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
		return
	}
	if !models.ValidPurchaseOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid purchase order status"})
		return
	}

	var po models.PurchaseOrder
	if err := database.DB.
		Preload("Items").
		Where("id = ? AND cafe_id = ?", c.Param("poId"), cafe.ID).
		First(&po).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Purchase order not found"})
		return
	}

	if !models.CanTransitionPurchaseOrder(po.Status, req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Purchase order is already " + string(po.Status)})
		return
	}

	if req.Status != models.PurchaseOrderStatusDelivered {
		if err := database.DB.Model(&po).Update("status", req.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		po.Status = req.Status
		c.JSON(http.StatusOK, gin.H{"purchaseOrder": po})
		return
	}

	now := time.Now()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// re-check under the transaction so two concurrent deliveries
		// can't both increment stock
		var current models.PurchaseOrder
		if err := tx.Where("id = ? AND status NOT IN ?", po.ID,
			[]models.PurchaseOrderStatus{models.PurchaseOrderStatusDelivered, models.PurchaseOrderStatusCancelled}).
			First(&current).Error; err != nil {
			return err
		}

		for _, line := range po.Items {
			if err := tx.Model(&models.InventoryItem{}).
				Where("id = ?", line.InventoryItemID).
				Update("quantity", gorm.Expr("quantity + ?", line.Quantity)).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.PurchaseOrder{}).
			Where("id = ?", po.ID).
			Updates(map[string]interface{}{
				"status":       models.PurchaseOrderStatusDelivered,
				"delivered_at": now,
			}).Error
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Purchase order could not be delivered"})
		return
	}

	po.Status = models.PurchaseOrderStatusDelivered
	po.DeliveredAt = &now
	c.JSON(http.StatusOK, gin.H{"purchaseOrder": po, "message": "Stock updated from delivery"})
}
