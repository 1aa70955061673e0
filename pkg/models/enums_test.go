package models

import "testing"

func TestCanTransitionOrder(t *testing.T) {
	allowed := []struct {
		from, to OrderStatus
	}{
		{OrderStatusPending, OrderStatusPreparing},
		{OrderStatusPending, OrderStatusCompleted},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusPreparing, OrderStatusCompleted},
		{OrderStatusPreparing, OrderStatusCancelled},
	}
	for _, tc := range allowed {
		if !CanTransitionOrder(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}
}

func TestTerminalStatusesCannotMove(t *testing.T) {
	targets := []OrderStatus{
		OrderStatusPending, OrderStatusPreparing,
		OrderStatusCompleted, OrderStatusCancelled,
	}
	for _, from := range []OrderStatus{OrderStatusCompleted, OrderStatusCancelled} {
		for _, to := range targets {
			if CanTransitionOrder(from, to) {
				t.Errorf("expected %s -> %s to be rejected", from, to)
			}
		}
	}
}

func TestOrdersCannotMoveBackwards(t *testing.T) {
	if CanTransitionOrder(OrderStatusPreparing, OrderStatusPending) {
		t.Error("expected preparing -> pending to be rejected")
	}
}

func TestPurchaseOrderDeliveryIsTerminal(t *testing.T) {
	targets := []PurchaseOrderStatus{
		PurchaseOrderStatusPending, PurchaseOrderStatusOrdered,
		PurchaseOrderStatusDelivered, PurchaseOrderStatusCancelled,
	}
	for _, from := range []PurchaseOrderStatus{PurchaseOrderStatusDelivered, PurchaseOrderStatusCancelled} {
		for _, to := range targets {
			if CanTransitionPurchaseOrder(from, to) {
				t.Errorf("expected %s -> %s to be rejected", from, to)
			}
		}
	}
}

func TestPurchaseOrderCanBeDeliveredOnce(t *testing.T) {
	if !CanTransitionPurchaseOrder(PurchaseOrderStatusPending, PurchaseOrderStatusDelivered) {
		t.Error("expected pending -> delivered to be allowed")
	}
	if !CanTransitionPurchaseOrder(PurchaseOrderStatusOrdered, PurchaseOrderStatusDelivered) {
		t.Error("expected ordered -> delivered to be allowed")
	}
	if CanTransitionPurchaseOrder(PurchaseOrderStatusDelivered, PurchaseOrderStatusDelivered) {
		t.Error("expected a second delivery to be rejected")
	}
}

func TestValidPurchaseOrderStatus(t *testing.T) {
	if !ValidPurchaseOrderStatus(PurchaseOrderStatusOrdered) {
		t.Error("expected ordered to be valid")
	}
	if ValidPurchaseOrderStatus(PurchaseOrderStatus("shipped")) {
		t.Error("expected unknown status to be invalid")
	}
}

func TestValidPlan(t *testing.T) {
	if !ValidPlan(PlanBasic) || !ValidPlan(PlanPro) {
		t.Error("expected basic and pro to be valid plans")
	}
	if ValidPlan(Plan("enterprise")) {
		t.Error("expected unknown plan to be invalid")
	}
}
