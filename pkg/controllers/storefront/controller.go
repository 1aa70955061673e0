// Package storefront serves the public customer-facing endpoints: menu
// browsing, the session cart, checkout, and post-order ratings. Nothing
// here requires authentication; carts are keyed by an opaque session
// token the client carries in the X-Cart-Session header.
package storefront

import (
	"cafehub/pkg/cart"
	"cafehub/pkg/realtime"
	"cafehub/pkg/services"
)

// Controller bundles the dependencies the storefront handlers need.
type Controller struct {
	Carts    cart.Store
	Bridge   *realtime.Bridge
	Telegram *services.TelegramService
}

// NewController wires the storefront handlers.
func NewController(carts cart.Store, bridge *realtime.Bridge, telegram *services.TelegramService) *Controller {
	return &Controller{Carts: carts, Bridge: bridge, Telegram: telegram}
}
