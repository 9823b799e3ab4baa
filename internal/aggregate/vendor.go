package aggregate

import "github.com/delito/admin-api/pkg/db/models"

// VendorTotal is the running total for one vendor.
type VendorTotal struct {
	Orders        StatusCounts
	Earnings      float64
	RatingSum     float64
	RatingCount   int
	PrepTimeSum   float64
	PrepTimeCount int
}

func (v *VendorTotal) add(o models.Order) {
	v.Orders.Add(o.Status)
	if o.Status.IsCompleted() {
		v.Earnings = Add(v.Earnings, o.Revenue())
	}
	if o.Rating > 0 {
		v.RatingSum += o.Rating
		v.RatingCount++
	}
	if o.PreparationTime > 0 {
		v.PrepTimeSum += o.PreparationTime
		v.PrepTimeCount++
	}
}

// CompletionRate is completed/total*100 to one decimal.
func (v *VendorTotal) CompletionRate() float64 {
	if v == nil {
		return 0
	}
	return Rate(v.Orders.Completed, v.Orders.Total)
}

// CancellationRate is cancelled/total*100 to one decimal.
func (v *VendorTotal) CancellationRate() float64 {
	if v == nil {
		return 0
	}
	return Rate(v.Orders.Cancelled, v.Orders.Total)
}

// AverageRating is the mean order rating, or fallback when nothing was rated.
func (v *VendorTotal) AverageRating(fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return Mean(v.RatingSum, v.RatingCount, 1, fallback)
}

// AveragePrepTime is the mean preparation time in minutes, or fallback.
func (v *VendorTotal) AveragePrepTime(fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return Mean(v.PrepTimeSum, v.PrepTimeCount, 0, fallback)
}

// VendorTotals folds orders by vendor id.
func VendorTotals(orders []models.Order) map[string]*VendorTotal {
	return Fold(orders, func(o models.Order) string { return o.VendorID }, (*VendorTotal).add)
}
