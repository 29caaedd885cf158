package order

import (
	"time"

	"github.com/designandcart-afk/designandcart/cart"
)

// DemoOrders returns the demo order history seed relative to now: one
// delivered order from three days ago and one freshly placed order from
// twelve hours ago, newest first.
func DemoOrders(now time.Time) []Order {
	return []Order{
		{
			ID: "ord_2",
			Items: []cart.Line{
				{ID: "line_2", ProductID: "prod_2", Qty: 2, ProjectID: "demo_2", Area: "Dining"},
			},
			Total:  13998,
			Status: StatusPlaced,
			TS:     now.Add(-12 * time.Hour).UnixMilli(),
		},
		{
			ID: "ord_1",
			Items: []cart.Line{
				{ID: "line_1", ProductID: "prod_1", Qty: 1, ProjectID: "demo_1", Area: "Living Room"},
				{ID: "line_3", ProductID: "prod_3", Qty: 1, ProjectID: "demo_1", Area: "Living Room"},
			},
			Total:  52998,
			Status: StatusDelivered,
			TS:     now.Add(-3 * 24 * time.Hour).UnixMilli(),
		},
	}
}
