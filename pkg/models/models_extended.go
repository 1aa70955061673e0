package models

import (
	"time"
)

// Supplier model
type Supplier struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CafeID    uint      `gorm:"not null;index" json:"cafeId"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Relationships
	Cafe Cafe `gorm:"foreignKey:CafeID;references:ID" json:"cafe,omitempty"`
}

// InventoryItem model - stock tracked in free units (kg, packs, pieces)
type InventoryItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CafeID      uint      `gorm:"not null;index" json:"cafeId"`
	Name        string    `gorm:"not null" json:"name"`
	Unit        string    `gorm:"not null;default:'unit'" json:"unit"`
	Quantity    float64   `gorm:"not null;default:0" json:"quantity"`
	Threshold   float64   `gorm:"not null;default:0" json:"threshold"`
	CostPerUnit *float64  `json:"costPerUnit"`
	SupplierID  *uint     `json:"supplierId"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Cafe     Cafe      `gorm:"foreignKey:CafeID;references:ID" json:"cafe,omitempty"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID;references:ID" json:"supplier,omitempty"`
}

// PurchaseOrder model - transitioning to delivered increments inventory
// quantities for each line, exactly once.
type PurchaseOrder struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	CafeID      uint                `gorm:"not null;index" json:"cafeId"`
	SupplierID  uint                `gorm:"not null" json:"supplierId"`
	Status      PurchaseOrderStatus `gorm:"type:text;default:'pending'" json:"status"`
	TotalCost   float64             `gorm:"not null;default:0" json:"totalCost"`
	CreatedAt   time.Time           `gorm:"autoCreateTime" json:"createdAt"`
	DeliveredAt *time.Time          `json:"deliveredAt"`

	// Relationships
	Cafe     Cafe                `gorm:"foreignKey:CafeID;references:ID" json:"cafe,omitempty"`
	Supplier Supplier            `gorm:"foreignKey:SupplierID;references:ID" json:"supplier,omitempty"`
	Items    []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID" json:"items,omitempty"`
}

// PurchaseOrderItem model
type PurchaseOrderItem struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	PurchaseOrderID uint    `gorm:"not null;index" json:"purchaseOrderId"`
	InventoryItemID uint    `gorm:"not null" json:"inventoryItemId"`
	Quantity        float64 `gorm:"not null" json:"quantity"`
	UnitCost        float64 `gorm:"not null" json:"unitCost"`

	// Relationships
	PurchaseOrder PurchaseOrder `gorm:"foreignKey:PurchaseOrderID;references:ID" json:"purchaseOrder,omitempty"`
	InventoryItem InventoryItem `gorm:"foreignKey:InventoryItemID;references:ID" json:"inventoryItem,omitempty"`
}

// Customer model - aggregate keyed by (cafe, name), rebuilt by an explicit
// sync that scans completed orders. Not kept current automatically.
type Customer struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CafeID        uint       `gorm:"not null;index:idx_customer_cafe_name,unique" json:"cafeId"`
	Name          string     `gorm:"not null;index:idx_customer_cafe_name,unique" json:"name"`
	TotalSpent    float64    `gorm:"default:0" json:"totalSpent"`
	VisitCount    int        `gorm:"default:0" json:"visitCount"`
	LastVisitAt   *time.Time `json:"lastVisitAt"`
	LoyaltyPoints int        `gorm:"default:0" json:"loyaltyPoints"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Cafe Cafe `gorm:"foreignKey:CafeID;references:ID" json:"cafe,omitempty"`
}

// Shift model - a scheduled work window for a staff user
type Shift struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CafeID    uint      `gorm:"not null;index" json:"cafeId"`
	StaffID   uint      `gorm:"not null" json:"staffId"`
	Role      string    `gorm:"not null;default:'Barista'" json:"role"`
	StartsAt  time.Time `gorm:"not null" json:"startsAt"`
	EndsAt    time.Time `gorm:"not null" json:"endsAt"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Relationships
	Cafe  Cafe `gorm:"foreignKey:CafeID;references:ID" json:"cafe,omitempty"`
	Staff User `gorm:"foreignKey:StaffID;references:ID" json:"staff,omitempty"`
}

// FinancialParty model - a counterparty for invoices and ledger entries
type FinancialParty struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CafeID    uint      `gorm:"not null;index" json:"cafeId"`
	Name      string    `gorm:"not null" json:"name"`
	Kind      PartyKind `gorm:"type:text;default:'other'" json:"kind"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Relationships
	Cafe Cafe `gorm:"foreignKey:CafeID;references:ID" json:"cafe,omitempty"`
}

// Invoice model
type Invoice struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	CafeID      uint          `gorm:"not null;index" json:"cafeId"`
	PartyID     *uint         `json:"partyId"`
	Number      string        `gorm:"not null" json:"number"`
	Amount      float64       `gorm:"not null" json:"amount"`
	Status      InvoiceStatus `gorm:"type:text;default:'draft'" json:"status"`
	DueDate     *time.Time    `json:"dueDate"`
	PaymentLink *string       `json:"paymentLink"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"createdAt"`

	// Relationships
	Cafe  Cafe            `gorm:"foreignKey:CafeID;references:ID" json:"cafe,omitempty"`
	Party *FinancialParty `gorm:"foreignKey:PartyID;references:ID" json:"party,omitempty"`
}

// Expense model
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CafeID      uint      `gorm:"not null;index" json:"cafeId"`
	Description string    `gorm:"not null" json:"description"`
	Category    string    `gorm:"not null" json:"category"`
	Amount      float64   `gorm:"not null" json:"amount"`
	PaidTo      *string   `json:"paidTo"`
	ExpenseDate time.Time `gorm:"not null" json:"expenseDate"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Relationships
	Cafe Cafe `gorm:"foreignKey:CafeID;references:ID" json:"cafe,omitempty"`
}

// LedgerAccount model
type LedgerAccount struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	CafeID    uint              `gorm:"not null;index" json:"cafeId"`
	Name      string            `gorm:"not null" json:"name"`
	Type      LedgerAccountType `gorm:"type:text;not null" json:"type"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"createdAt"`

	// Relationships
	Cafe    Cafe          `gorm:"foreignKey:CafeID;references:ID" json:"cafe,omitempty"`
	Entries []LedgerEntry `gorm:"foreignKey:AccountID" json:"entries,omitempty"`
}

// LedgerEntry model
type LedgerEntry struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	AccountID uint            `gorm:"not null;index" json:"accountId"`
	PartyID   *uint           `json:"partyId"`
	Type      LedgerEntryType `gorm:"type:text;not null" json:"type"`
	Amount    float64         `gorm:"not null" json:"amount"`
	Memo      *string         `json:"memo"`
	EntryDate time.Time       `gorm:"not null" json:"entryDate"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"createdAt"`

	// Relationships
	Account LedgerAccount   `gorm:"foreignKey:AccountID;references:ID" json:"account,omitempty"`
	Party   *FinancialParty `gorm:"foreignKey:PartyID;references:ID" json:"party,omitempty"`
}

// SuperAdmin model - platform-wide allow-list of operator emails
type SuperAdmin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// StaffDeviceToken model - push notification target for a staff device
type StaffDeviceToken struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CafeID      uint      `gorm:"not null;index" json:"cafeId"`
	UserID      uint      `gorm:"not null" json:"userId"`
	DeviceToken string    `gorm:"unique;not null" json:"deviceToken"`
	Platform    string    `gorm:"not null;default:'web'" json:"platform"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Relationships
	Cafe Cafe `gorm:"foreignKey:CafeID;references:ID" json:"cafe,omitempty"`
	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}
