// Package stats computes the dashboard aggregates from raw order rows.
// Every computation is total: no incremental or delta maintenance.
package stats

import (
	"time"

	"cafehub/pkg/models"
)

// OrderPoint is the slice of an order the aggregates need.
type OrderPoint struct {
	Status      models.OrderStatus
	TotalAmount float64
	CreatedAt   time.Time
}

// Revenue sums total amounts over completed orders only. Cancelled and
// in-flight orders never contribute.
func Revenue(orders []OrderPoint) float64 {
	total := 0.0
	for _, o := range orders {
		if o.Status == models.OrderStatusCompleted {
			total += o.TotalAmount
		}
	}
	return total
}

// ActiveCount counts orders still being worked (pending or preparing).
func ActiveCount(orders []OrderPoint) int {
	n := 0
	for _, o := range orders {
		if o.Status == models.OrderStatusPending || o.Status == models.OrderStatusPreparing {
			n++
		}
	}
	return n
}

// Totals are the dashboard header cards. Orders counts every order,
// cancelled included; only the weekly chart filters cancelled out.
type Totals struct {
	Revenue float64
	Orders  int
	Active  int
}

// Summarize computes the header card totals in one pass over the rows.
func Summarize(orders []OrderPoint) Totals {
	return Totals{
		Revenue: Revenue(orders),
		Orders:  len(orders),
		Active:  ActiveCount(orders),
	}
}

// DayBucket is one calendar day of the weekly chart.
type DayBucket struct {
	Date    string  `json:"date"` // YYYY-MM-DD, local day boundary
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// WeeklySeries buckets orders into exactly 7 calendar days ending today,
// dense: days with no orders appear with zero values. Revenue counts
// completed orders only; the order count excludes cancelled orders. The
// two filters are applied independently per day.
func WeeklySeries(orders []OrderPoint, today time.Time) []DayBucket {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location()).AddDate(0, 0, -6)

	series := make([]DayBucket, 7)
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		series[i] = DayBucket{Date: date}
		index[date] = i
	}

	for _, o := range orders {
		date := o.CreatedAt.In(today.Location()).Format("2006-01-02")
		i, ok := index[date]
		if !ok {
			continue
		}
		if o.Status == models.OrderStatusCompleted {
			series[i].Revenue += o.TotalAmount
		}
		if o.Status != models.OrderStatusCancelled {
			series[i].Orders++
		}
	}

	return series
}
