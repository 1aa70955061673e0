package cart

import (
	"context"
	"errors"
	"testing"

	"cafehub/pkg/models"
)

func menuItem(id uint, name string, price float64, available bool) models.MenuItem {
	return models.MenuItem{ID: id, Name: name, Price: price, Available: available}
}

func TestAddAndRemoveKeepTotalConsistent(t *testing.T) {
	ct := New(1)
	latte := menuItem(10, "Latte", 3.50, true)
	cake := menuItem(11, "Cheesecake", 5.00, true)

	ct.AddItem(latte, 2)
	ct.AddItem(cake, 1)
	ct.AddItem(latte, 1) // merges into the existing line

	if len(ct.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(ct.Lines))
	}
	if got, want := ct.Total(), 3*3.50+5.00; got != want {
		t.Errorf("total = %v, want %v", got, want)
	}

	ct.RemoveItem(10, 2)
	if got, want := ct.Total(), 3.50+5.00; got != want {
		t.Errorf("total after remove = %v, want %v", got, want)
	}

	ct.RemoveItem(10, 1)
	ct.RemoveItem(11, 5) // over-remove deletes the line
	if !ct.IsEmpty() {
		t.Errorf("cart should be empty, has %d lines", len(ct.Lines))
	}

	for _, l := range ct.Lines {
		if l.Quantity <= 0 {
			t.Errorf("line %d has non-positive quantity %d", l.MenuItemID, l.Quantity)
		}
	}
}

func TestAddUnavailableItemIsNoOp(t *testing.T) {
	ct := New(1)
	ct.AddItem(menuItem(10, "SoldOut", 9.99, false), 3)
	if !ct.IsEmpty() {
		t.Fatal("unavailable item must not enter the cart")
	}
	ct.AddItem(menuItem(11, "Latte", 3.50, true), 0)
	if !ct.IsEmpty() {
		t.Fatal("zero quantity must not enter the cart")
	}
}

// fakeWriter records what checkout asked it to persist.
type fakeWriter struct {
	order *models.Order
	items []models.OrderItem
	err   error
}

func (w *fakeWriter) CreateOrder(_ context.Context, order *models.Order, items []models.OrderItem) error {
	if w.err != nil {
		return w.err
	}
	order.ID = 77
	w.order = order
	w.items = items
	return nil
}

func TestCheckoutCapturesCartPrices(t *testing.T) {
	ct := New(4)
	latte := menuItem(10, "Latte", 3.50, true)
	ct.AddItem(latte, 2)
	ct.AddItem(menuItem(11, "Cheesecake", 5.00, true), 1)

	// menu price changes after the item was carted; checkout must not care
	latte.Price = 99.0

	w := &fakeWriter{}
	res := ct.Checkout(context.Background(), w, 6, "Nora")
	if res.Err != nil {
		t.Fatalf("checkout failed: %v", res.Err)
	}

	if res.Order.TotalAmount != 2*3.50+5.00 {
		t.Errorf("order total = %v, want %v", res.Order.TotalAmount, 2*3.50+5.00)
	}
	if res.Order.Status != models.OrderStatusPending {
		t.Errorf("order status = %q, want pending", res.Order.Status)
	}
	if res.Order.TableNumber != 6 {
		t.Errorf("table number = %d, want 6", res.Order.TableNumber)
	}
	if len(w.items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(w.items))
	}
	for _, it := range w.items {
		if it.MenuItemID == 10 && it.UnitPrice != 3.50 {
			t.Errorf("latte priced at %v, want the carted 3.50", it.UnitPrice)
		}
	}

	if !ct.IsEmpty() {
		t.Error("cart should be cleared after successful checkout")
	}
	if ct.LastOrderID != 77 {
		t.Errorf("last order id = %d, want 77", ct.LastOrderID)
	}
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	ct := New(4)
	ct.AddItem(menuItem(10, "Latte", 3.50, true), 2)

	w := &fakeWriter{err: errors.New("store down")}
	res := ct.Checkout(context.Background(), w, 1, "")
	if res.Err == nil {
		t.Fatal("expected checkout error")
	}
	if ct.IsEmpty() {
		t.Error("cart must be retained after a failed checkout")
	}
	if ct.LastOrderID != 0 {
		t.Error("last order id must not change on failure")
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	ct := New(4)
	res := ct.Checkout(context.Background(), &fakeWriter{}, 1, "")
	if !errors.Is(res.Err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", res.Err)
	}
}

func TestCheckoutCoercesNegativeTable(t *testing.T) {
	ct := New(4)
	ct.AddItem(menuItem(10, "Latte", 3.50, true), 1)
	w := &fakeWriter{}
	res := ct.Checkout(context.Background(), w, -3, "")
	if res.Err != nil {
		t.Fatalf("checkout failed: %v", res.Err)
	}
	if res.Order.TableNumber != 0 {
		t.Errorf("table number = %d, want 0", res.Order.TableNumber)
	}
}

func TestMemoryStoreLastWriteWins(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	a := New(1)
	a.AddItem(menuItem(10, "Latte", 3.50, true), 1)
	b := New(1)
	b.AddItem(menuItem(11, "Mocha", 4.00, true), 2)

	// two writers on the same session token: the last save wins
	if err := s.Save(ctx, "tok", a); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "tok", b); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load(ctx, "tok")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Lines) != 1 || got.Lines[0].MenuItemID != 11 {
		t.Errorf("expected the second writer's cart, got %+v", got.Lines)
	}
}
