package vendors

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/delito/admin-api/internal/auditlog"
	"github.com/delito/admin-api/internal/projection"
	"github.com/delito/admin-api/pkg/db"
	"github.com/delito/admin-api/pkg/db/models"
	"github.com/delito/admin-api/pkg/enums"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
)

// CommissionHistoryLimit is how many past rate changes a vendor keeps.
const CommissionHistoryLimit = 10

// VendorCommission is one vendor's effective rate.
type VendorCommission struct {
	VendorID       string                    `json:"vendorId"`
	Name           string                    `json:"name"`
	CommissionRate float64                   `json:"commissionRate"`
	IsCustom       bool                      `json:"isCustom"`
	History        []models.CommissionChange `json:"history"`
}

type CommissionOverview struct {
	PlatformDefault float64            `json:"platformDefault"`
	GSTRate         float64            `json:"gstRate"`
	Vendors         []VendorCommission `json:"vendors"`
}

// CommissionInput sets one vendor's rate. Rate is a pointer so a missing
// value is distinguishable from 0.
type CommissionInput struct {
	VendorID string
	Rate     *float64
	AdminID  string
	Reason   string
}

type CommissionResult struct {
	VendorID       string                    `json:"vendorId"`
	CommissionRate float64                   `json:"commissionRate"`
	PreviousRate   float64                   `json:"previousRate"`
	History        []models.CommissionChange `json:"history"`
}

type PlatformCommissionInput struct {
	Rate    *float64
	AdminID string
}

type PlatformCommissionResult struct {
	DefaultCommissionRate float64 `json:"defaultCommissionRate"`
	PreviousRate          float64 `json:"previousRate"`
}

func (s *service) Commission(ctx context.Context) (*CommissionOverview, error) {
	platformRate, err := s.platformRate(ctx)
	if err != nil {
		return nil, err
	}
	vendors, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list vendors")
	}

	out := &CommissionOverview{
		PlatformDefault: platformRate,
		GSTRate:         s.business.GSTRate,
		Vendors:         make([]VendorCommission, 0, len(vendors)),
	}
	for _, v := range vendors {
		history := v.CommissionHistory
		if history == nil {
			history = []models.CommissionChange{}
		}
		out.Vendors = append(out.Vendors, VendorCommission{
			VendorID:       v.ID,
			Name:           v.DisplayName(),
			CommissionRate: EffectiveCommission(v, platformRate),
			IsCustom:       v.CommissionRate != nil,
			History:        history,
		})
	}
	sort.SliceStable(out.Vendors, func(i, j int) bool { return out.Vendors[i].Name < out.Vendors[j].Name })
	return out, nil
}

// UpdateCommission sets a vendor's rate and appends to its history. Out of
// range rates are rejected before anything is read or written.
func (s *service) UpdateCommission(ctx context.Context, input CommissionInput) (*CommissionResult, error) {
	vendorID := strings.TrimSpace(input.VendorID)
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendorId is required")
	}
	rate, err := validateRate(input.Rate)
	if err != nil {
		return nil, err
	}
	adminID := strings.TrimSpace(input.AdminID)
	if adminID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "adminId is required")
	}

	vendor, err := s.repo.Get(ctx, vendorID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to load vendor")
	}
	platformRate, err := s.platformRate(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	previous := EffectiveCommission(*vendor, platformRate)
	history := AppendHistory(vendor.CommissionHistory, models.CommissionChange{
		Rate:         rate,
		PreviousRate: previous,
		ChangedBy:    adminID,
		ChangedAt:    now,
		Reason:       strings.TrimSpace(input.Reason),
	})

	err = s.repo.Update(ctx, vendorID, map[string]any{
		"commissionRate":    rate,
		"commissionHistory": history,
		"updatedAt":         now,
	})
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to update vendor commission")
	}

	s.audit.Record(ctx, auditlog.Entry{
		Action:     enums.AdminActionCommissionUpdated,
		TargetType: enums.TargetVendor,
		TargetID:   vendorID,
		AdminID:    adminID,
		Details:    map[string]any{"commissionRate": rate, "previousRate": previous, "reason": strings.TrimSpace(input.Reason)},
	})
	return &CommissionResult{VendorID: vendorID, CommissionRate: rate, PreviousRate: previous, History: history}, nil
}

// UpdatePlatformCommission sets the default rate for vendors without their own.
func (s *service) UpdatePlatformCommission(ctx context.Context, input PlatformCommissionInput) (*PlatformCommissionResult, error) {
	rate, err := validateRate(input.Rate)
	if err != nil {
		return nil, err
	}
	adminID := strings.TrimSpace(input.AdminID)
	if adminID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "adminId is required")
	}

	previous, err := s.platformRate(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	err = s.repo.MergePlatformSettings(ctx, map[string]any{
		"defaultCommissionRate": rate,
		"updatedAt":             now,
		"updatedBy":             adminID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to update platform settings")
	}

	s.audit.Record(ctx, auditlog.Entry{
		Action:     enums.AdminActionPlatformCommissionUpdated,
		TargetType: enums.TargetPlatform,
		TargetID:   db.SettingsPlatformDoc,
		AdminID:    adminID,
		Details:    map[string]any{"commissionRate": rate, "previousRate": previous},
	})
	return &PlatformCommissionResult{DefaultCommissionRate: rate, PreviousRate: previous}, nil
}

// platformRate reads settings/platform, falling back to the configured default.
func (s *service) platformRate(ctx context.Context) (float64, error) {
	settings, err := s.repo.PlatformSettings(ctx)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to load platform settings")
	}
	var stored float64
	ok := settings != nil && settings.DefaultCommissionRate != nil
	if ok {
		stored = *settings.DefaultCommissionRate
	}
	return projection.First(
		projection.Present(stored, ok),
		projection.Fallback(s.business.DefaultCommissionRate),
	), nil
}

func validateRate(rate *float64) (float64, error) {
	if rate == nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "commissionRate is required")
	}
	if *rate < 0 || *rate > 100 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("commissionRate must be between 0 and 100, got %v", *rate))
	}
	return *rate, nil
}

// AppendHistory adds change and keeps the most recent CommissionHistoryLimit entries.
func AppendHistory(history []models.CommissionChange, change models.CommissionChange) []models.CommissionChange {
	out := make([]models.CommissionChange, 0, len(history)+1)
	out = append(out, history...)
	out = append(out, change)
	if len(out) > CommissionHistoryLimit {
		out = out[len(out)-CommissionHistoryLimit:]
	}
	return out
}
