package vendors

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/delito/admin-api/internal/aggregate"
	"github.com/delito/admin-api/internal/auditlog"
	"github.com/delito/admin-api/internal/mutation"
	"github.com/delito/admin-api/internal/projection"
	"github.com/delito/admin-api/internal/suspension"
	"github.com/delito/admin-api/internal/verification"
	"github.com/delito/admin-api/pkg/config"
	"github.com/delito/admin-api/pkg/db/models"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
)

// Service exposes the admin vendor operations.
type Service interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Update(ctx context.Context, input UpdateInput) (*mutation.Result, error)
	Performance(ctx context.Context, days int) (*PerformanceReport, error)
	Suspend(ctx context.Context, input suspension.SuspendInput) (*suspension.Result, error)
	Reinstate(ctx context.Context, vendorID, adminID string) (*suspension.Result, error)
	ListSuspended(ctx context.Context) ([]models.Vendor, error)
	Verifications(ctx context.Context, status string) (*verification.ListResult[models.Vendor], error)
	Verify(ctx context.Context, decision verification.Decision) (*verification.Result, error)
	Commission(ctx context.Context) (*CommissionOverview, error)
	UpdateCommission(ctx context.Context, input CommissionInput) (*CommissionResult, error)
	UpdatePlatformCommission(ctx context.Context, input PlatformCommissionInput) (*PlatformCommissionResult, error)
}

// ServiceParams groups dependencies for the vendor service.
type ServiceParams struct {
	Repo     Repository
	Audit    auditlog.Recorder
	Business config.BusinessConfig
}

type service struct {
	repo       Repository
	audit      auditlog.Recorder
	business   config.BusinessConfig
	suspension *suspension.Manager[models.Vendor]
	review     *verification.Manager[models.Vendor]
	now        func() time.Time
}

// NewService builds a vendor service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, errors.New("vendor repository required")
	}
	if params.Audit == nil {
		return nil, errors.New("audit recorder required")
	}
	suspensions, err := suspension.NewManager[models.Vendor](params.Repo, params.Audit, suspension.VendorTarget)
	if err != nil {
		return nil, err
	}
	review, err := verification.NewManager[models.Vendor](params.Repo, params.Audit, verification.VendorTarget)
	if err != nil {
		return nil, err
	}
	return &service{
		repo:       params.Repo,
		audit:      params.Audit,
		business:   params.Business,
		suspension: suspensions,
		review:     review,
		now:        time.Now,
	}, nil
}

// ListParams filters the vendor list.
type ListParams struct {
	Status string
	Search string
}

// ListSummary counts vendors by account state across the whole collection.
type ListSummary struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Suspended int `json:"suspended"`
	Pending   int `json:"pending"`
	Rejected  int `json:"rejected"`
	Online    int `json:"online"`
}

type ListResult struct {
	Vendors []View      `json:"vendors"`
	Summary ListSummary `json:"summary"`
}

func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	status := strings.ToLower(strings.TrimSpace(params.Status))
	switch status {
	case "", StatusActive, StatusSuspended, StatusPending, StatusRejected:
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be one of active, suspended, pending, rejected")
	}

	vendors, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list vendors")
	}
	orders, err := s.repo.ListOrders(ctx, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list orders")
	}
	platformRate, err := s.platformRate(ctx)
	if err != nil {
		return nil, err
	}

	totals := aggregate.VendorTotals(orders)
	out := &ListResult{Vendors: make([]View, 0, len(vendors))}
	for _, v := range vendors {
		state := AccountStatus(v)
		out.Summary.Total++
		switch state {
		case StatusActive:
			out.Summary.Active++
		case StatusSuspended:
			out.Summary.Suspended++
		case StatusPending:
			out.Summary.Pending++
		case StatusRejected:
			out.Summary.Rejected++
		}
		if v.IsOnline {
			out.Summary.Online++
		}

		if status != "" && state != status {
			continue
		}
		if !projection.Matches(params.Search, v.Name, v.BusinessName, v.OwnerName, v.Email, v.Phone, v.City) {
			continue
		}
		out.Vendors = append(out.Vendors, Project(v, totals, platformRate))
	}
	sort.SliceStable(out.Vendors, func(i, j int) bool {
		return out.Vendors[i].DisplayName() < out.Vendors[j].DisplayName()
	})
	return out, nil
}

// UpdateInput is the allow-listed set of profile fields an admin may change.
type UpdateInput struct {
	VendorID     string
	Name         *string
	BusinessName *string
	OwnerName    *string
	Email        *string
	Phone        *string
	Address      *string
	City         *string
	Cuisine      []string
	GSTIN        *string
	FSSAINumber  *string
	IsOnline     *bool
}

func (s *service) Update(ctx context.Context, input UpdateInput) (*mutation.Result, error) {
	patch := mutation.NewPatch().
		String("name", input.Name).
		String("businessName", input.BusinessName).
		String("ownerName", input.OwnerName).
		String("email", input.Email).
		String("phone", input.Phone).
		String("address", input.Address).
		String("city", input.City).
		String("gstin", input.GSTIN).
		String("fssaiNumber", input.FSSAINumber).
		Bool("isOnline", input.IsOnline)
	if input.Cuisine != nil {
		patch.Set("cuisine", input.Cuisine)
	}
	return mutation.Apply(ctx, mutation.Target{Label: "vendor", IDField: "vendorId"}, input.VendorID, patch, s.repo.Update, s.now())
}

func (s *service) Suspend(ctx context.Context, input suspension.SuspendInput) (*suspension.Result, error) {
	return s.suspension.Suspend(ctx, input)
}

func (s *service) Reinstate(ctx context.Context, vendorID, adminID string) (*suspension.Result, error) {
	return s.suspension.Reinstate(ctx, vendorID, adminID)
}

func (s *service) ListSuspended(ctx context.Context) ([]models.Vendor, error) {
	vendors, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list vendors")
	}
	out := suspension.Suspended(vendors)
	sort.SliceStable(out, func(i, j int) bool {
		return timeOrZero(out[i].SuspendedAt).After(timeOrZero(out[j].SuspendedAt))
	})
	return out, nil
}

func (s *service) Verifications(ctx context.Context, status string) (*verification.ListResult[models.Vendor], error) {
	return s.review.List(ctx, status)
}

func (s *service) Verify(ctx context.Context, decision verification.Decision) (*verification.Result, error) {
	return s.review.Apply(ctx, decision)
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
