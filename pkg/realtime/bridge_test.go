package realtime

import (
	"context"
	"errors"
	"testing"
	"time"

	"cafehub/pkg/models"
)

type fakeInvalidator struct {
	orders []uint
	stats  []uint
}

func (f *fakeInvalidator) InvalidateOrders(_ context.Context, cafeID uint) {
	f.orders = append(f.orders, cafeID)
}

func (f *fakeInvalidator) InvalidateStats(_ context.Context, cafeID uint) {
	f.stats = append(f.stats, cafeID)
}

type fakeBroadcaster struct {
	events chan Event
}

func (f *fakeBroadcaster) Publish(_ uint, ev Event) {
	f.events <- ev
}

type fakePush struct {
	calls chan uint
	err   error
}

func (f *fakePush) NotifyNewOrder(_ context.Context, cafeID uint, _ models.Order) error {
	f.calls <- cafeID
	return f.err
}

type fakeChat struct {
	calls chan uint
	err   error
}

func (f *fakeChat) SendOrderMessage(_ context.Context, cafe models.Cafe, _ models.Order, _ []models.OrderItem) error {
	f.calls <- cafe.ID
	return f.err
}

func telegramCafe(id uint) models.Cafe {
	token := "bot-token"
	chat := "12345"
	return models.Cafe{ID: id, TelegramBotToken: &token, TelegramChatID: &chat}
}

func TestOrderCreatedFansOutOnce(t *testing.T) {
	inv := &fakeInvalidator{}
	bc := &fakeBroadcaster{events: make(chan Event, 4)}
	push := &fakePush{calls: make(chan uint, 4)}
	chat := &fakeChat{calls: make(chan uint, 4)}

	b := NewBridge(bc, inv, push, chat)
	order := models.Order{ID: 9, CafeID: 3, TableNumber: 2, TotalAmount: 14.0, Status: models.OrderStatusPending}

	b.OrderCreated(context.Background(), telegramCafe(3), order, nil)

	if len(inv.orders) != 1 || inv.orders[0] != 3 {
		t.Errorf("orders cache invalidations = %v, want one for cafe 3", inv.orders)
	}
	if len(inv.stats) != 1 || inv.stats[0] != 3 {
		t.Errorf("stats cache invalidations = %v, want one for cafe 3", inv.stats)
	}

	select {
	case ev := <-bc.events:
		if ev.Type != "order_created" || ev.OrderID != 9 {
			t.Errorf("unexpected event %+v", ev)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("no broadcast event")
	}
	select {
	case ev := <-bc.events:
		t.Fatalf("expected exactly one event, got extra %+v", ev)
	default:
	}

	select {
	case <-push.calls:
	case <-time.After(1 * time.Second):
		t.Fatal("push sink not invoked")
	}
	select {
	case <-chat.calls:
	case <-time.After(1 * time.Second):
		t.Fatal("chat sink not invoked")
	}
}

func TestOrderCreatedSinkFailuresAreIndependent(t *testing.T) {
	inv := &fakeInvalidator{}
	bc := &fakeBroadcaster{events: make(chan Event, 4)}
	push := &fakePush{calls: make(chan uint, 4), err: errors.New("fcm down")}
	chat := &fakeChat{calls: make(chan uint, 4)}

	b := NewBridge(bc, inv, push, chat)
	b.OrderCreated(context.Background(), telegramCafe(1), models.Order{ID: 1, CafeID: 1}, nil)

	// the push error must not stop the broadcast or the chat delivery
	select {
	case <-bc.events:
	case <-time.After(1 * time.Second):
		t.Fatal("broadcast suppressed by failing push sink")
	}
	select {
	case <-chat.calls:
	case <-time.After(1 * time.Second):
		t.Fatal("chat delivery suppressed by failing push sink")
	}
}

func TestOrderCreatedSkipsChatWhenUnconfigured(t *testing.T) {
	bc := &fakeBroadcaster{events: make(chan Event, 4)}
	chat := &fakeChat{calls: make(chan uint, 4)}

	b := NewBridge(bc, &fakeInvalidator{}, nil, chat)
	b.OrderCreated(context.Background(), models.Cafe{ID: 5}, models.Order{ID: 2, CafeID: 5}, nil)

	select {
	case <-chat.calls:
		t.Fatal("chat sink invoked for a cafe without telegram credentials")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestOrderChangedInvalidatesAndBroadcasts(t *testing.T) {
	inv := &fakeInvalidator{}
	bc := &fakeBroadcaster{events: make(chan Event, 4)}

	b := NewBridge(bc, inv, nil, nil)
	b.OrderChanged(context.Background(), 8, models.Order{ID: 3, Status: models.OrderStatusPreparing})

	if len(inv.orders) != 1 || len(inv.stats) != 1 {
		t.Errorf("expected both caches invalidated, got orders=%v stats=%v", inv.orders, inv.stats)
	}
	select {
	case ev := <-bc.events:
		if ev.Type != "order_changed" || ev.Status != "preparing" {
			t.Errorf("unexpected event %+v", ev)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("no broadcast event")
	}
}
