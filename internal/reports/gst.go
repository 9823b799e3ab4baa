package reports

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/delito/admin-api/internal/aggregate"
	"github.com/delito/admin-api/internal/vendors"
	"github.com/delito/admin-api/pkg/config"
	"github.com/delito/admin-api/pkg/db/models"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
	"github.com/delito/admin-api/pkg/pagination"
)

const (
	// DateLayout is the format of the startDate and endDate filters.
	DateLayout = "2006-01-02"
	// MaxEntries caps the per-order lines returned with a report.
	MaxEntries = 100
)

// Service builds GST reports over completed orders.
type Service interface {
	GST(ctx context.Context, params Params) (*Report, error)
	Export(ctx context.Context, params Params) (*Export, error)
}

// ServiceParams groups dependencies for the report service.
type ServiceParams struct {
	Repo     Repository
	Business config.BusinessConfig
}

// Params filters a report. Dates are inclusive calendar days in UTC; either
// may be empty for an open range.
type Params struct {
	StartDate string
	EndDate   string
	VendorID  string
}

// Summary totals every entry in the report window.
type Summary struct {
	TotalOrders          int     `json:"totalOrders"`
	TotalItemSales       float64 `json:"totalItemSales"`
	TotalCommission      float64 `json:"totalCommission"`
	TotalGST             float64 `json:"totalGST"`
	TotalPlatformEarning float64 `json:"totalPlatformEarning"`
	CommissionRate       float64 `json:"commissionRate"`
	GSTRate              float64 `json:"gstRate"`
	EffectiveGSTRate     float64 `json:"effectiveGstRate"`
}

type Month struct {
	Month string `json:"month"`
	aggregate.GSTBucket
}

type Vendor struct {
	VendorID       string  `json:"vendorId"`
	VendorName     string  `json:"vendorName"`
	CommissionRate float64 `json:"commissionRate"`
	aggregate.GSTBucket
}

// Report is the GST breakdown for one window. From GST, Entries holds at
// most MaxEntries lines; TotalEntries counts all of them.
type Report struct {
	StartDate    string               `json:"startDate,omitempty"`
	EndDate      string               `json:"endDate,omitempty"`
	VendorID     string               `json:"vendorId,omitempty"`
	Summary      Summary              `json:"summary"`
	Monthly      []Month              `json:"monthly"`
	Vendors      []Vendor             `json:"vendors"`
	Entries      []aggregate.GSTEntry `json:"entries"`
	TotalEntries int                  `json:"totalEntries"`
}

type service struct {
	repo     Repository
	business config.BusinessConfig
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, errors.New("report repository required")
	}
	return &service{repo: params.Repo, business: params.Business}, nil
}

type window struct {
	from *time.Time
	to   *time.Time
}

// parseWindow turns inclusive day filters into a half-open [from, to) range.
func parseWindow(params Params) (window, error) {
	var w window
	if raw := strings.TrimSpace(params.StartDate); raw != "" {
		start, err := time.Parse(DateLayout, raw)
		if err != nil {
			return w, pkgerrors.New(pkgerrors.CodeValidation, "startDate must be YYYY-MM-DD")
		}
		w.from = &start
	}
	if raw := strings.TrimSpace(params.EndDate); raw != "" {
		end, err := time.Parse(DateLayout, raw)
		if err != nil {
			return w, pkgerrors.New(pkgerrors.CodeValidation, "endDate must be YYYY-MM-DD")
		}
		if w.from != nil && end.Before(*w.from) {
			return w, pkgerrors.New(pkgerrors.CodeValidation, "endDate must not be before startDate")
		}
		next := end.AddDate(0, 0, 1)
		w.to = &next
	}
	return w, nil
}

// GST returns the report with at most MaxEntries order lines.
func (s *service) GST(ctx context.Context, params Params) (*Report, error) {
	report, err := s.build(ctx, params)
	if err != nil {
		return nil, err
	}
	report.Entries = pagination.Truncate(report.Entries, MaxEntries)
	return report, nil
}

// build assembles the full report, every entry included.
func (s *service) build(ctx context.Context, params Params) (*Report, error) {
	w, err := parseWindow(params)
	if err != nil {
		return nil, err
	}
	vendorID := strings.TrimSpace(params.VendorID)

	settings, err := s.repo.PlatformSettings(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to load platform settings")
	}
	platformRate := s.business.DefaultCommissionRate
	if settings != nil && settings.DefaultCommissionRate != nil {
		platformRate = *settings.DefaultCommissionRate
	}

	vendorList, err := s.repo.ListVendors(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list vendors")
	}
	orders, err := s.repo.ListOrders(ctx, w.from, w.to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list orders")
	}
	if vendorID != "" {
		kept := make([]models.Order, 0, len(orders))
		for _, o := range orders {
			if o.VendorID == vendorID {
				kept = append(kept, o)
			}
		}
		orders = kept
	}

	rates := aggregate.GSTRates{
		DefaultCommission: platformRate,
		GST:               s.business.GSTRate,
		VendorCommission:  map[string]float64{},
	}
	names := map[string]string{}
	for _, v := range vendorList {
		names[v.ID] = v.DisplayName()
		if v.CommissionRate != nil {
			rates.VendorCommission[v.ID] = vendors.EffectiveCommission(v, platformRate)
		}
	}

	entries := aggregate.GSTEntries(orders, rates)
	for i := range entries {
		entries[i].VendorName = names[entries[i].VendorID]
	}

	total := aggregate.GSTTotal(entries)
	report := &Report{
		StartDate: strings.TrimSpace(params.StartDate),
		EndDate:   strings.TrimSpace(params.EndDate),
		VendorID:  vendorID,
		Summary: Summary{
			TotalOrders:          total.Orders,
			TotalItemSales:       total.ItemSales,
			TotalCommission:      total.Commission,
			TotalGST:             total.GST,
			TotalPlatformEarning: total.PlatformEarning,
			CommissionRate:       platformRate,
			GSTRate:              s.business.GSTRate,
			EffectiveGSTRate:     total.EffectiveGSTRate(),
		},
		Monthly:      monthly(entries),
		Vendors:      byVendor(entries, names, rates),
		Entries:      entries,
		TotalEntries: len(entries),
	}
	return report, nil
}

func monthly(entries []aggregate.GSTEntry) []Month {
	buckets := aggregate.GSTMonthly(entries)
	out := make([]Month, 0, len(buckets))
	for key, b := range buckets {
		out = append(out, Month{Month: key, GSTBucket: *b})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	return out
}

func byVendor(entries []aggregate.GSTEntry, names map[string]string, rates aggregate.GSTRates) []Vendor {
	buckets := aggregate.GSTByVendor(entries)
	out := make([]Vendor, 0, len(buckets))
	for id, b := range buckets {
		out = append(out, Vendor{
			VendorID:       id,
			VendorName:     names[id],
			CommissionRate: rates.CommissionFor(id),
			GSTBucket:      *b,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PlatformEarning != out[j].PlatformEarning {
			return out[i].PlatformEarning > out[j].PlatformEarning
		}
		return out[i].VendorID < out[j].VendorID
	})
	return out
}
