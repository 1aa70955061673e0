// Package cart implements the pre-checkout cart state machine. A cart is
// owned by a single browsing session and mirrored to Redis on every
// mutation (last write wins), so a reload keeps in-progress state.
package cart

import (
	"context"

	"cafehub/pkg/models"
)

// Line is one (menu item, quantity) pair. UnitPrice is captured when the
// item is added so checkout persists the price the customer saw.
type Line struct {
	MenuItemID uint    `json:"menuItemId"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
}

// Cart accumulates lines for one cafe until checkout.
type Cart struct {
	CafeID      uint   `json:"cafeId"`
	Lines       []Line `json:"lines"`
	LastOrderID uint   `json:"lastOrderId"` // feeds the post-order rating flow
}

// New returns an empty cart for a cafe.
func New(cafeID uint) *Cart {
	return &Cart{CafeID: cafeID}
}

// AddItem adds qty units of a menu item, merging with an existing line.
// Unavailable items and non-positive quantities are no-ops.
func (ct *Cart) AddItem(item models.MenuItem, qty int) {
	if !item.Available || qty <= 0 {
		return
	}
	for i := range ct.Lines {
		if ct.Lines[i].MenuItemID == item.ID {
			ct.Lines[i].Quantity += qty
			return
		}
	}
	ct.Lines = append(ct.Lines, Line{
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  item.Price,
		Quantity:   qty,
	})
}

// RemoveItem removes qty units of a menu item; the line is deleted when its
// quantity reaches zero. Removing more than present deletes the line.
func (ct *Cart) RemoveItem(menuItemID uint, qty int) {
	if qty <= 0 {
		return
	}
	for i := range ct.Lines {
		if ct.Lines[i].MenuItemID != menuItemID {
			continue
		}
		ct.Lines[i].Quantity -= qty
		if ct.Lines[i].Quantity <= 0 {
			ct.Lines = append(ct.Lines[:i], ct.Lines[i+1:]...)
		}
		return
	}
}

// Total returns the sum of unit price times quantity over all lines.
func (ct *Cart) Total() float64 {
	total := 0.0
	for _, l := range ct.Lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (ct *Cart) IsEmpty() bool {
	return len(ct.Lines) == 0
}

// OrderWriter persists an order together with its items. Implementations
// must be atomic: either the order and every item are written, or nothing.
type OrderWriter interface {
	CreateOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error
}

// CheckoutResult is the explicit success/failure value of a checkout.
// Store failures are returned, never thrown.
type CheckoutResult struct {
	Order *models.Order
	Err   error
}

// Checkout turns the cart into a pending order with one item per line,
// each priced from the line (not re-read from the menu). On success the
// cart is cleared and the new order id recorded; on failure the cart is
// left untouched so the customer can retry.
func (ct *Cart) Checkout(ctx context.Context, w OrderWriter, tableNumber int, customerName string) CheckoutResult {
	if ct.IsEmpty() {
		return CheckoutResult{Err: ErrEmptyCart}
	}
	if tableNumber < 0 {
		tableNumber = 0
	}

	order := &models.Order{
		CafeID:      ct.CafeID,
		TableNumber: tableNumber,
		Status:      models.OrderStatusPending,
		TotalAmount: ct.Total(),
	}
	if customerName != "" {
		order.CustomerName = &customerName
	}

	items := make([]models.OrderItem, len(ct.Lines))
	for i, l := range ct.Lines {
		items[i] = models.OrderItem{
			MenuItemID: l.MenuItemID,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
		}
	}

	if err := w.CreateOrder(ctx, order, items); err != nil {
		return CheckoutResult{Err: err}
	}

	ct.LastOrderID = order.ID
	ct.Lines = nil
	return CheckoutResult{Order: order}
}
