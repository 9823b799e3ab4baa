package aggregate

import (
	"math"
	"strings"

	"github.com/delito/admin-api/pkg/db/models"
	"github.com/delito/admin-api/pkg/enums"
)

// DeliveryTotal is the running total for one delivery person computed from orders.
type DeliveryTotal struct {
	Orders       StatusCounts
	Deliveries   int
	Earnings     float64
	Incentives   float64
	CODCollected float64
	RatingSum    float64
	RatingCount  int
}

// AverageRating is the mean delivery rating, or fallback when nothing was rated.
func (d *DeliveryTotal) AverageRating(fallback float64) float64 {
	if d == nil {
		return fallback
	}
	return Mean(d.RatingSum, d.RatingCount, 1, fallback)
}

// DeliveryTotals folds orders by delivery person id. Only completed orders
// earn money: the delivery fee, or flatFee when the order carries none, plus
// any incentive. COD collected is the order total of completed cash orders.
func DeliveryTotals(orders []models.Order, flatFee float64) map[string]*DeliveryTotal {
	return Fold(orders, func(o models.Order) string { return o.DeliveryPersonID }, func(d *DeliveryTotal, o models.Order) {
		d.Orders.Add(o.Status)
		if o.DeliveryRating > 0 {
			d.RatingSum += o.DeliveryRating
			d.RatingCount++
		}
		if !o.Status.IsCompleted() {
			return
		}
		d.Deliveries++
		fee := o.DeliveryFee
		if fee == 0 {
			fee = flatFee
		}
		d.Earnings = Add(d.Earnings, Add(fee, o.Incentive))
		d.Incentives = Add(d.Incentives, o.Incentive)
		if o.PaymentMode.IsCashOnDelivery() {
			d.CODCollected = Add(d.CODCollected, o.Total)
		}
	})
}

// CODPending is cash collected but not yet settled with the platform.
func CODPending(collected, settled float64) float64 {
	return Sub(collected, settled)
}

// TaskRates prices distance-based delivery tasks.
type TaskRates struct {
	BaseFee float64
	PerKm   float64
	FlatFee float64
}

// TaskEarnings is round(base + km*perKm) when the task has a distance,
// otherwise the flat per-task fee. Tips are not included.
func TaskEarnings(task models.DeliveryTask, rates TaskRates) float64 {
	if task.DistanceKm > 0 {
		return math.Round(rates.BaseFee + task.DistanceKm*rates.PerKm)
	}
	return rates.FlatFee
}

// TaskTotal is the running total for one delivery person computed from tasks.
type TaskTotal struct {
	Deliveries int     `json:"totalDeliveries"`
	Earnings   float64 `json:"earnings"`
	Tips       float64 `json:"totalTips"`
}

// TotalEarnings is earnings with tips on top.
func (t *TaskTotal) TotalEarnings() float64 {
	if t == nil {
		return 0
	}
	return Add(t.Earnings, t.Tips)
}

// IsTaskCompleted reports whether a task status counts as a finished delivery.
func IsTaskCompleted(status string) bool {
	s := strings.TrimSpace(status)
	return strings.EqualFold(s, string(enums.TaskStatusCompleted)) || strings.EqualFold(s, string(enums.OrderStatusDelivered))
}

// TaskTotals folds completed tasks by delivery person id.
func TaskTotals(tasks []models.DeliveryTask, rates TaskRates) map[string]*TaskTotal {
	completed := make([]models.DeliveryTask, 0, len(tasks))
	for _, t := range tasks {
		if IsTaskCompleted(t.Status) {
			completed = append(completed, t)
		}
	}
	return Fold(completed, func(t models.DeliveryTask) string { return t.DeliveryPersonID }, func(acc *TaskTotal, t models.DeliveryTask) {
		acc.Deliveries++
		acc.Earnings = Add(acc.Earnings, TaskEarnings(t, rates))
		acc.Tips = Add(acc.Tips, t.Tip)
	})
}
