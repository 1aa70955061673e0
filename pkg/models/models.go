package models

import (
	"time"
)

// User model - an account that owns a cafe, works at one, or operates the platform
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Name      string    `gorm:"not null" json:"name"`
	Password  *string   `json:"-"` // Don't expose password in JSON
	Role      Role      `gorm:"type:text;default:'OWNER'" json:"role"`
	CafeID    *uint     `gorm:"index" json:"cafeId"` // set for staff accounts
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	TwoFactorEnabled bool    `gorm:"default:false" json:"twoFactorEnabled"`
	TwoFactorSecret  *string `json:"-"`

	// Relationships
	Cafe *Cafe `gorm:"foreignKey:CafeID;references:ID" json:"cafe,omitempty"`
}

// Cafe model - tenant root; at most one per owner
type Cafe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     uint      `gorm:"uniqueIndex;not null" json:"ownerId"`
	Name        string    `gorm:"not null" json:"name"`
	Description *string   `json:"description"`
	LogoURL     *string   `json:"logoUrl"`
	Plan        Plan      `gorm:"type:text;default:'basic'" json:"plan"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Optional chat-bot credentials for order notifications
	TelegramBotToken *string `json:"telegramBotToken,omitempty"`
	TelegramChatID   *string `json:"telegramChatId,omitempty"`

	// Relationships
	Owner     User       `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
	MenuItems []MenuItem `gorm:"foreignKey:CafeID" json:"menuItems,omitempty"`
	Orders    []Order    `gorm:"foreignKey:CafeID" json:"orders,omitempty"`
	Tables    []Table    `gorm:"foreignKey:CafeID" json:"tables,omitempty"`
}

// TelegramConfigured reports whether the cafe has chat-bot credentials set.
func (cf *Cafe) TelegramConfigured() bool {
	return cf.TelegramBotToken != nil && *cf.TelegramBotToken != "" &&
		cf.TelegramChatID != nil && *cf.TelegramChatID != ""
}

// MenuItem model - belongs to exactly one cafe
type MenuItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CafeID    uint      `gorm:"not null;index" json:"cafeId"`
	Name      string    `gorm:"not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	Category  string    `gorm:"not null" json:"category"`
	Available bool      `gorm:"default:true" json:"available"`
	ImageURL  *string   `json:"imageUrl"`
	CostPrice *float64  `json:"costPrice"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Relationships
	Cafe Cafe `gorm:"foreignKey:CafeID;references:ID" json:"cafe,omitempty"`
}

// Table model - a physical table with a tracked status
type Table struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	CafeID    uint        `gorm:"not null;index:idx_table_cafe_number,unique" json:"cafeId"`
	Number    int         `gorm:"not null;index:idx_table_cafe_number,unique" json:"number"`
	Status    TableStatus `gorm:"type:text;default:'available'" json:"status"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Cafe Cafe `gorm:"foreignKey:CafeID;references:ID" json:"cafe,omitempty"`
}

// Order model - the persisted record of a placed purchase.
// TotalAmount is fixed at checkout from the cart total and never recomputed
// from line items afterwards.
type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	CafeID       uint        `gorm:"not null;index" json:"cafeId"`
	TableNumber  int         `gorm:"not null;default:0" json:"tableNumber"`
	CustomerName *string     `json:"customerName"`
	Status       OrderStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	TotalAmount  float64     `gorm:"not null" json:"totalAmount"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Cafe    Cafe        `gorm:"foreignKey:CafeID;references:ID" json:"cafe,omitempty"`
	Items   []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Ratings []Rating    `gorm:"foreignKey:OrderID" json:"ratings,omitempty"`
}

// OrderItem model - one line of an order. UnitPrice is captured at order
// time so historical orders keep their value when menu prices change.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    uint    `gorm:"not null;index" json:"orderId"`
	MenuItemID uint    `gorm:"not null" json:"menuItemId"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	UnitPrice  float64 `gorm:"not null" json:"unitPrice"`

	// Relationships
	Order    Order    `gorm:"foreignKey:OrderID;references:ID" json:"order,omitempty"`
	MenuItem MenuItem `gorm:"foreignKey:MenuItemID;references:ID" json:"menuItem,omitempty"`
}

// Rating model - created once per (menu item, order) pair after completion
type Rating struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"not null;index:idx_rating_order_item,unique" json:"orderId"`
	MenuItemID uint      `gorm:"not null;index:idx_rating_order_item,unique" json:"menuItemId"`
	Score      int       `gorm:"not null" json:"score"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Relationships
	Order    Order    `gorm:"foreignKey:OrderID;references:ID" json:"order,omitempty"`
	MenuItem MenuItem `gorm:"foreignKey:MenuItemID;references:ID" json:"menuItem,omitempty"`
}
