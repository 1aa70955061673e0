package stats

import (
	"testing"
	"time"

	"cafehub/pkg/models"
)

func day(today time.Time, offset int) time.Time {
	return today.AddDate(0, 0, offset)
}

func TestRevenueCountsCompletedOnly(t *testing.T) {
	now := time.Now()
	orders := []OrderPoint{
		{Status: models.OrderStatusCompleted, TotalAmount: 10, CreatedAt: now},
		{Status: models.OrderStatusCompleted, TotalAmount: 5.50, CreatedAt: now},
		{Status: models.OrderStatusPending, TotalAmount: 100, CreatedAt: now},
		{Status: models.OrderStatusPreparing, TotalAmount: 100, CreatedAt: now},
		{Status: models.OrderStatusCancelled, TotalAmount: 100, CreatedAt: now},
	}
	if got := Revenue(orders); got != 15.50 {
		t.Errorf("revenue = %v, want 15.50", got)
	}
	if got := ActiveCount(orders); got != 2 {
		t.Errorf("active = %d, want 2", got)
	}
}

func TestSummarizeCountsEveryOrder(t *testing.T) {
	now := time.Now()
	orders := []OrderPoint{
		{Status: models.OrderStatusCompleted, TotalAmount: 30, CreatedAt: now},
		{Status: models.OrderStatusPending, TotalAmount: 12, CreatedAt: now},
		{Status: models.OrderStatusCancelled, TotalAmount: 8, CreatedAt: now},
	}

	totals := Summarize(orders)
	if totals.Orders != 3 {
		t.Errorf("orders = %d, want 3 (cancelled included in the lifetime count)", totals.Orders)
	}
	if totals.Revenue != 30 {
		t.Errorf("revenue = %v, want 30 (completed only)", totals.Revenue)
	}
	if totals.Active != 1 {
		t.Errorf("active = %d, want 1", totals.Active)
	}
}

func TestWeeklySeriesIsDense(t *testing.T) {
	today := time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local)
	series := WeeklySeries(nil, today)

	if len(series) != 7 {
		t.Fatalf("series has %d entries, want 7", len(series))
	}
	if series[6].Date != "2026-08-31" {
		t.Errorf("last bucket = %s, want today", series[6].Date)
	}
	if series[0].Date != "2026-08-25" {
		t.Errorf("first bucket = %s, want six days ago", series[0].Date)
	}
	for _, b := range series {
		if b.Revenue != 0 || b.Orders != 0 {
			t.Errorf("empty day %s should be zero, got %+v", b.Date, b)
		}
	}
}

func TestWeeklySeriesFilters(t *testing.T) {
	today := time.Date(2026, 8, 31, 9, 30, 0, 0, time.Local)
	// day 3 of the window (index 2): one completed order of 42.50
	// day 5 of the window (index 4): one cancelled order of 10
	orders := []OrderPoint{
		{Status: models.OrderStatusCompleted, TotalAmount: 42.50, CreatedAt: day(today, -4)},
		{Status: models.OrderStatusCancelled, TotalAmount: 10, CreatedAt: day(today, -2)},
	}

	series := WeeklySeries(orders, today)

	if series[2].Revenue != 42.50 || series[2].Orders != 1 {
		t.Errorf("day 3 = %+v, want revenue 42.50 / orders 1", series[2])
	}
	if series[4].Revenue != 0 || series[4].Orders != 0 {
		t.Errorf("day 5 = %+v, want zeros (cancelled excluded from both)", series[4])
	}
	for i, b := range series {
		if i == 2 || i == 4 {
			continue
		}
		if b.Revenue != 0 || b.Orders != 0 {
			t.Errorf("day %d = %+v, want zeros", i+1, b)
		}
	}
}

func TestWeeklySeriesPendingCountsAsOrderNotRevenue(t *testing.T) {
	today := time.Date(2026, 8, 31, 9, 30, 0, 0, time.Local)
	orders := []OrderPoint{
		{Status: models.OrderStatusPending, TotalAmount: 20, CreatedAt: today},
	}
	series := WeeklySeries(orders, today)
	if series[6].Orders != 1 {
		t.Errorf("pending order should count in the chart, got %d", series[6].Orders)
	}
	if series[6].Revenue != 0 {
		t.Errorf("pending order must not contribute revenue, got %v", series[6].Revenue)
	}
}

func TestWeeklySeriesIgnoresOrdersOutsideWindow(t *testing.T) {
	today := time.Date(2026, 8, 31, 9, 30, 0, 0, time.Local)
	orders := []OrderPoint{
		{Status: models.OrderStatusCompleted, TotalAmount: 9, CreatedAt: day(today, -7)},
		{Status: models.OrderStatusCompleted, TotalAmount: 9, CreatedAt: day(today, 1)},
	}
	series := WeeklySeries(orders, today)
	for _, b := range series {
		if b.Revenue != 0 || b.Orders != 0 {
			t.Errorf("out-of-window order leaked into %s: %+v", b.Date, b)
		}
	}
}
