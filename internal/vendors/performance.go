package vendors

import (
	"context"
	"sort"
	"time"

	"github.com/delito/admin-api/internal/aggregate"
	"github.com/delito/admin-api/internal/projection"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
)

// MaxPerformanceDays bounds the performance window.
const MaxPerformanceDays = 365

// Performance is one vendor's scorecard over the requested window.
type Performance struct {
	VendorID         string  `json:"vendorId"`
	Name             string  `json:"name"`
	TotalOrders      int     `json:"totalOrders"`
	CompletedOrders  int     `json:"completedOrders"`
	CancelledOrders  int     `json:"cancelledOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
	CompletionRate   float64 `json:"completionRate"`
	CancellationRate float64 `json:"cancellationRate"`
	AverageRating    float64 `json:"averageRating"`
	AveragePrepTime  float64 `json:"averagePrepTime"`
}

type PerformanceSummary struct {
	TotalVendors          int     `json:"totalVendors"`
	ActiveVendors         int     `json:"activeVendors"`
	TotalRevenue          float64 `json:"totalRevenue"`
	AverageCompletionRate float64 `json:"averageCompletionRate"`
}

type PerformanceReport struct {
	Days    int                `json:"days,omitempty"`
	Since   *time.Time         `json:"since,omitempty"`
	Vendors []Performance      `json:"vendors"`
	Summary PerformanceSummary `json:"summary"`
}

// Performance scores every vendor over the last days days, or all time when
// days is zero. Vendors without orders in the window are listed with zeros.
// Active vendors are those with at least one order in the window.
func (s *service) Performance(ctx context.Context, days int) (*PerformanceReport, error) {
	if days < 0 || days > MaxPerformanceDays {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "days must be between 1 and 365")
	}

	report := &PerformanceReport{Days: days}
	if days > 0 {
		since := s.now().UTC().AddDate(0, 0, -days)
		report.Since = &since
	}

	vendors, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list vendors")
	}
	orders, err := s.repo.ListOrders(ctx, report.Since)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list orders")
	}

	totals := aggregate.VendorTotals(orders)
	report.Vendors = make([]Performance, 0, len(vendors))
	var completionSum float64
	for _, v := range vendors {
		agg, ok := projection.Lookup(totals, v.ID)
		row := Performance{
			VendorID:         v.ID,
			Name:             v.DisplayName(),
			CompletionRate:   agg.CompletionRate(),
			CancellationRate: agg.CancellationRate(),
			AverageRating:    agg.AverageRating(v.Rating),
			AveragePrepTime: projection.First(
				projection.Present(agg.AveragePrepTime(0), ok && agg.PrepTimeCount > 0),
				projection.NonZero(v.AveragePrepTime),
				projection.Fallback(DefaultPrepTime),
			),
		}
		if ok {
			row.TotalOrders = agg.Orders.Total
			row.CompletedOrders = agg.Orders.Completed
			row.CancelledOrders = agg.Orders.Cancelled
			row.TotalRevenue = aggregate.Round2(agg.Earnings)
		}
		if row.TotalOrders > 0 {
			report.Summary.ActiveVendors++
			completionSum += row.CompletionRate
		}
		report.Summary.TotalRevenue = aggregate.Add(report.Summary.TotalRevenue, row.TotalRevenue)
		report.Vendors = append(report.Vendors, row)
	}

	sort.SliceStable(report.Vendors, func(i, j int) bool {
		if report.Vendors[i].TotalRevenue != report.Vendors[j].TotalRevenue {
			return report.Vendors[i].TotalRevenue > report.Vendors[j].TotalRevenue
		}
		return report.Vendors[i].Name < report.Vendors[j].Name
	})
	report.Summary.TotalVendors = len(vendors)
	report.Summary.AverageCompletionRate = aggregate.Mean(completionSum, report.Summary.ActiveVendors, 1, 0)
	return report, nil
}
