package realtime

import (
	"context"
	"log"
	"time"

	"cafehub/pkg/models"
)

// Invalidator drops the dashboard read caches for a cafe.
type Invalidator interface {
	InvalidateOrders(ctx context.Context, cafeID uint)
	InvalidateStats(ctx context.Context, cafeID uint)
}

// PushSender delivers a push notification to a cafe's registered staff
// devices.
type PushSender interface {
	NotifyNewOrder(ctx context.Context, cafeID uint, order models.Order) error
}

// ChatSender posts an order summary to the cafe's chat channel.
type ChatSender interface {
	SendOrderMessage(ctx context.Context, cafe models.Cafe, order models.Order, items []models.OrderItem) error
}

// Broadcaster publishes an event to every dashboard watching a cafe.
type Broadcaster interface {
	Publish(cafeID uint, ev Event)
}

// Bridge reacts to committed order writes. Each sink is best-effort and
// independent: a failing push or chat delivery never blocks, fails, or
// suppresses the others, and never affects the HTTP response that
// triggered it.
type Bridge struct {
	Hub   Broadcaster
	Cache Invalidator
	Push  PushSender
	Chat  ChatSender
}

// NewBridge wires the bridge. Push and Chat may be nil when the
// integration is not configured.
func NewBridge(hub Broadcaster, cache Invalidator, push PushSender, chat ChatSender) *Bridge {
	return &Bridge{Hub: hub, Cache: cache, Push: push, Chat: chat}
}

// OrderCreated runs after a new order commits: invalidates the order and
// stats caches, broadcasts exactly one order_created event to the cafe's
// room, and fires push and chat deliveries in the background.
func (b *Bridge) OrderCreated(ctx context.Context, cafe models.Cafe, order models.Order, items []models.OrderItem) {
	if b == nil {
		return
	}
	if b.Cache != nil {
		b.Cache.InvalidateOrders(ctx, cafe.ID)
		b.Cache.InvalidateStats(ctx, cafe.ID)
	}
	if b.Hub != nil {
		b.Hub.Publish(cafe.ID, Event{
			Type:        "order_created",
			OrderID:     order.ID,
			TableNumber: order.TableNumber,
			TotalAmount: order.TotalAmount,
			Status:      string(order.Status),
		})
	}

	if b.Push != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := b.Push.NotifyNewOrder(ctx, cafe.ID, order); err != nil {
				log.Printf("⚠️ Push notification failed for order %d: %v", order.ID, err)
			}
		}()
	}
	if b.Chat != nil && cafe.TelegramConfigured() {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := b.Chat.SendOrderMessage(ctx, cafe, order, items); err != nil {
				log.Printf("⚠️ Telegram alert failed for order %d: %v", order.ID, err)
			}
		}()
	}
}

// OrderChanged runs after an order status update commits: invalidates
// the caches and broadcasts an order_changed event.
func (b *Bridge) OrderChanged(ctx context.Context, cafeID uint, order models.Order) {
	if b == nil {
		return
	}
	if b.Cache != nil {
		b.Cache.InvalidateOrders(ctx, cafeID)
		b.Cache.InvalidateStats(ctx, cafeID)
	}
	if b.Hub != nil {
		b.Hub.Publish(cafeID, Event{
			Type:    "order_changed",
			OrderID: order.ID,
			Status:  string(order.Status),
		})
	}
}
