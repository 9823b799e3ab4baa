package delivery

import (
	"github.com/delito/admin-api/internal/aggregate"
	"github.com/delito/admin-api/internal/projection"
	"github.com/delito/admin-api/pkg/db/models"
)

// Presence states used by the list filter.
const (
	StatusOnline    = "online"
	StatusOffline   = "offline"
	StatusSuspended = "suspended"
)

// View is the delivery person as returned by the list endpoint.
type View struct {
	models.DeliveryPerson
	Status          string  `json:"status"`
	TotalOrders     int     `json:"totalOrders"`
	TotalDeliveries int     `json:"totalDeliveries"`
	TotalEarnings   float64 `json:"totalEarnings"`
	Incentives      float64 `json:"incentives"`
	Rating          float64 `json:"rating"`
	CODCollected    float64 `json:"codCollected"`
	CODSettled      float64 `json:"codSettled"`
	CODPending      float64 `json:"codPending"`
}

// PresenceStatus classifies a delivery person for filtering.
func PresenceStatus(p models.DeliveryPerson) string {
	switch {
	case p.IsSuspended:
		return StatusSuspended
	case p.IsOnline:
		return StatusOnline
	}
	return StatusOffline
}

// Project merges a delivery person with their order aggregate. Counts show
// the computed value whenever an aggregate exists. Money fields treat a
// computed zero as missing and fall back to the stored value.
func Project(p models.DeliveryPerson, totals map[string]*aggregate.DeliveryTotal) View {
	agg, ok := projection.Lookup(totals, p.ID)

	var (
		orders, deliveries             int
		earnings, incentives, codTaken float64
		rated                          bool
	)
	if ok {
		orders = agg.Orders.Total
		deliveries = agg.Deliveries
		earnings = agg.Earnings
		incentives = agg.Incentives
		codTaken = agg.CODCollected
		rated = agg.RatingCount > 0
	}

	collected := projection.First(
		projection.NonZero(codTaken),
		projection.NonZero(p.CODCollected),
		projection.Fallback(0.0),
	)
	return View{
		DeliveryPerson: p,
		Status:         PresenceStatus(p),
		TotalOrders:    orders,
		TotalDeliveries: projection.First(
			projection.Present(deliveries, ok),
			projection.Fallback(p.TotalDeliveries),
		),
		TotalEarnings: projection.First(
			projection.NonZero(earnings),
			projection.NonZero(p.TotalEarnings),
			projection.Fallback(0.0),
		),
		Incentives: incentives,
		Rating: projection.First(
			projection.Present(agg.AverageRating(0), rated),
			projection.NonZero(p.Rating),
			projection.Fallback(0.0),
		),
		CODCollected: collected,
		CODSettled:   p.CODSettled,
		CODPending:   aggregate.CODPending(collected, p.CODSettled),
	}
}
