package storefront

import (
	"errors"
	"testing"

	"cafehub/pkg/models"
)

func completedOrder() models.Order {
	return models.Order{
		ID:     1,
		Status: models.OrderStatusCompleted,
		Items: []models.OrderItem{
			{MenuItemID: 10, Quantity: 2},
			{MenuItemID: 11, Quantity: 1},
		},
	}
}

func TestValidateRatingAccepts(t *testing.T) {
	order := completedOrder()
	for _, score := range []int{1, 3, 5} {
		if err := validateRating(order, 10, score, false); err != nil {
			t.Errorf("score %d on ordered item rejected: %v", score, err)
		}
	}
}

func TestValidateRatingScoreBounds(t *testing.T) {
	order := completedOrder()
	for _, score := range []int{0, 6, -1} {
		if err := validateRating(order, 10, score, false); !errors.Is(err, errInvalidScore) {
			t.Errorf("score %d: expected errInvalidScore, got %v", score, err)
		}
	}
}

func TestValidateRatingRequiresCompletedOrder(t *testing.T) {
	order := completedOrder()
	for _, status := range []models.OrderStatus{
		models.OrderStatusPending, models.OrderStatusPreparing, models.OrderStatusCancelled,
	} {
		order.Status = status
		if err := validateRating(order, 10, 4, false); !errors.Is(err, errOrderNotCompleted) {
			t.Errorf("status %s: expected errOrderNotCompleted, got %v", status, err)
		}
	}
}

func TestValidateRatingRejectsItemNotInOrder(t *testing.T) {
	if err := validateRating(completedOrder(), 99, 4, false); !errors.Is(err, errItemNotInOrder) {
		t.Fatalf("expected errItemNotInOrder, got %v", err)
	}
}

func TestValidateRatingOncePerOrderItem(t *testing.T) {
	order := completedOrder()
	if err := validateRating(order, 10, 4, false); err != nil {
		t.Fatalf("first rating rejected: %v", err)
	}
	if err := validateRating(order, 10, 4, true); !errors.Is(err, errAlreadyRated) {
		t.Fatalf("expected errAlreadyRated on duplicate, got %v", err)
	}
	// a different item on the same order is still ratable
	if err := validateRating(order, 11, 5, false); err != nil {
		t.Fatalf("second item rejected: %v", err)
	}
}
