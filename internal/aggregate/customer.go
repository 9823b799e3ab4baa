package aggregate

import (
	"time"

	"github.com/delito/admin-api/pkg/db/models"
)

// CustomerTotal is the spending summary for one customer.
type CustomerTotal struct {
	Orders      int
	Completed   int
	Spent       float64
	LastOrderAt *time.Time
}

// AverageOrderValue is spend per completed order, 0 when nothing completed.
func (c *CustomerTotal) AverageOrderValue() float64 {
	if c == nil {
		return 0
	}
	return Mean(c.Spent, c.Completed, 2, 0)
}

// CustomerTotals folds orders by customer id. Spend counts completed orders only.
func CustomerTotals(orders []models.Order) map[string]*CustomerTotal {
	return Fold(orders, func(o models.Order) string { return o.CustomerID }, func(c *CustomerTotal, o models.Order) {
		c.Orders++
		if !o.CreatedAt.IsZero() && (c.LastOrderAt == nil || o.CreatedAt.After(*c.LastOrderAt)) {
			at := o.CreatedAt
			c.LastOrderAt = &at
		}
		if o.Status.IsCompleted() {
			c.Completed++
			c.Spent = Add(c.Spent, o.Total)
		}
	})
}
