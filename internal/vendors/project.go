package vendors

import (
	"github.com/delito/admin-api/internal/aggregate"
	"github.com/delito/admin-api/internal/projection"
	"github.com/delito/admin-api/pkg/db/models"
	"github.com/delito/admin-api/pkg/enums"
)

// DefaultPrepTime is shown for vendors without any recorded preparation time.
const DefaultPrepTime = 30.0

// Account states used by the list filter.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusPending   = "pending"
	StatusRejected  = "rejected"
)

// View is the vendor as returned by the list endpoint: stored profile fields
// with computed aggregates layered on top.
type View struct {
	models.Vendor
	Status           string  `json:"status"`
	TotalOrders      int     `json:"totalOrders"`
	CompletedOrders  int     `json:"completedOrders"`
	CancelledOrders  int     `json:"cancelledOrders"`
	TotalEarnings    float64 `json:"totalEarnings"`
	Rating           float64 `json:"rating"`
	AveragePrepTime  float64 `json:"averagePrepTime"`
	CompletionRate   float64 `json:"completionRate"`
	CancellationRate float64 `json:"cancellationRate"`
	CommissionRate   float64 `json:"commissionRate"`
	IsCustomRate     bool    `json:"isCustomCommission"`
}

// AccountStatus classifies a vendor for filtering. Suspension wins over the
// review state.
func AccountStatus(v models.Vendor) string {
	if v.IsSuspended {
		return StatusSuspended
	}
	switch v.EffectiveStatus() {
	case enums.VerificationStatusApproved:
		return StatusActive
	case enums.VerificationStatusRejected:
		return StatusRejected
	}
	return StatusPending
}

// Project merges a vendor with its aggregate. totalOrders shows the computed
// count whenever the vendor has an aggregate, even zero. totalEarnings treats
// a computed zero as missing and falls back to the stored value; clients
// depend on that precedence.
func Project(v models.Vendor, totals map[string]*aggregate.VendorTotal, platformRate float64) View {
	agg, ok := projection.Lookup(totals, v.ID)

	var (
		orders          int
		completed       int
		cancelled       int
		earnings        float64
		rated, prepared bool
	)
	if ok {
		orders = agg.Orders.Total
		completed = agg.Orders.Completed
		cancelled = agg.Orders.Cancelled
		earnings = agg.Earnings
		rated = agg.RatingCount > 0
		prepared = agg.PrepTimeCount > 0
	}

	return View{
		Vendor: v,
		Status: AccountStatus(v),
		TotalOrders: projection.First(
			projection.Present(orders, ok),
			projection.Fallback(v.TotalOrders),
		),
		CompletedOrders: completed,
		CancelledOrders: cancelled,
		TotalEarnings: projection.First(
			projection.NonZero(earnings),
			projection.NonZero(v.TotalEarnings),
			projection.Fallback(0.0),
		),
		Rating: projection.First(
			projection.Present(agg.AverageRating(0), rated),
			projection.NonZero(v.Rating),
			projection.Fallback(0.0),
		),
		AveragePrepTime: projection.First(
			projection.Present(agg.AveragePrepTime(0), prepared),
			projection.NonZero(v.AveragePrepTime),
			projection.Fallback(DefaultPrepTime),
		),
		CompletionRate:   agg.CompletionRate(),
		CancellationRate: agg.CancellationRate(),
		CommissionRate:   EffectiveCommission(v, platformRate),
		IsCustomRate:     v.CommissionRate != nil,
	}
}

// EffectiveCommission is the vendor's own rate, else the platform default.
func EffectiveCommission(v models.Vendor, platformRate float64) float64 {
	var own float64
	if v.CommissionRate != nil {
		own = *v.CommissionRate
	}
	return projection.First(
		projection.Present(own, v.CommissionRate != nil),
		projection.Fallback(platformRate),
	)
}
