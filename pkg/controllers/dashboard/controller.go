// Package dashboard serves the authenticated owner/staff dashboard:
// live orders, menu management, tables, supply chain, customers,
// scheduling, and the accounting suite.
package dashboard

import (
	"cafehub/pkg/cache"
	"cafehub/pkg/realtime"
	"cafehub/pkg/services"
)

// Controller bundles the dependencies the dashboard handlers need.
type Controller struct {
	Cache  *cache.Cache
	Bridge *realtime.Bridge
	Push   *services.PushService
}

// NewController wires the dashboard handlers.
func NewController(store *cache.Cache, bridge *realtime.Bridge, push *services.PushService) *Controller {
	return &Controller{Cache: store, Bridge: bridge, Push: push}
}
