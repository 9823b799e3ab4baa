package delivery

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
	"github.com/delito/admin-api/pkg/logger"
)

// Service exposes the admin delivery-person operations.
type Service interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Update(ctx context.Context, input UpdateInput) (*mutation.Result, error)
	Suspend(ctx context.Context, input suspension.SuspendInput) (*suspension.Result, error)
	Reinstate(ctx context.Context, deliveryPersonID, adminID string) (*suspension.Result, error)
	ListSuspended(ctx context.Context) ([]models.DeliveryPerson, error)
	Verifications(ctx context.Context, status string) (*verification.ListResult[models.DeliveryPerson], error)
	Verify(ctx context.Context, decision verification.Decision) (*verification.Result, error)
	Sync(ctx context.Context, input SyncInput) (*SyncResult, error)
}

// ServiceParams groups dependencies for the delivery service.
type ServiceParams struct {
	Repo     Repository
	Audit    auditlog.Recorder
	Business config.BusinessConfig
	Logger   *logger.Logger
}

type service struct {
	repo       Repository
	audit      auditlog.Recorder
	business   config.BusinessConfig
	logg       *logger.Logger
	suspension *suspension.Manager[models.DeliveryPerson]
	review     *verification.Manager[models.DeliveryPerson]
	now        func() time.Time
}

// NewService builds a delivery service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, errors.New("delivery repository required")
	}
	if params.Audit == nil {
		return nil, errors.New("audit recorder required")
	}
	if params.Logger == nil {
		return nil, errors.New("logger required")
	}
	suspensions, err := suspension.NewManager[models.DeliveryPerson](params.Repo, params.Audit, suspension.DeliveryPersonTarget)
	if err != nil {
		return nil, err
	}
	review, err := verification.NewManager[models.DeliveryPerson](params.Repo, params.Audit, verification.DeliveryPersonTarget)
	if err != nil {
		return nil, err
	}
	return &service{
		repo:       params.Repo,
		audit:      params.Audit,
		business:   params.Business,
		logg:       params.Logger,
		suspension: suspensions,
		review:     review,
		now:        time.Now,
	}, nil
}

// ListParams filters the delivery-person list.
type ListParams struct {
	Status string
	Search string
}

// ListSummary totals the whole fleet, ignoring filters.
type ListSummary struct {
	Total           int     `json:"total"`
	Online          int     `json:"online"`
	Offline         int     `json:"offline"`
	Suspended       int     `json:"suspended"`
	TotalCODPending float64 `json:"totalCodPending"`
}

type ListResult struct {
	DeliveryPersons []View      `json:"deliveryPersons"`
	Summary         ListSummary `json:"summary"`
}

func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	status := strings.ToLower(strings.TrimSpace(params.Status))
	switch status {
	case "", StatusOnline, StatusOffline, StatusSuspended:
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be one of online, offline, suspended")
	}

	persons, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list delivery persons")
	}
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list orders")
	}

	totals := aggregate.DeliveryTotals(orders, s.business.DeliveryFlatOrderFee)
	out := &ListResult{DeliveryPersons: make([]View, 0, len(persons))}
	for _, p := range persons {
		view := Project(p, totals)
		out.Summary.Total++
		switch view.Status {
		case StatusOnline:
			out.Summary.Online++
		case StatusOffline:
			out.Summary.Offline++
		case StatusSuspended:
			out.Summary.Suspended++
		}
		out.Summary.TotalCODPending = aggregate.Add(out.Summary.TotalCODPending, view.CODPending)

		if status != "" && view.Status != status {
			continue
		}
		if !projection.Matches(params.Search, p.Name, p.Email, p.Phone, p.City, p.VehicleNumber) {
			continue
		}
		out.DeliveryPersons = append(out.DeliveryPersons, view)
	}
	sort.SliceStable(out.DeliveryPersons, func(i, j int) bool {
		return out.DeliveryPersons[i].Name < out.DeliveryPersons[j].Name
	})
	return out, nil
}

// UpdateInput is the allow-listed set of fields an admin may change.
// CODSettled records cash handed over by the rider.
type UpdateInput struct {
	DeliveryPersonID string
	Name             *string
	Email            *string
	Phone            *string
	City             *string
	VehicleType      *string
	VehicleNumber    *string
	LicenseNumber    *string
	IsAvailable      *bool
	BankDetails      *models.BankDetails
	CODSettled       *float64
}

func (s *service) Update(ctx context.Context, input UpdateInput) (*mutation.Result, error) {
	if input.CODSettled != nil && *input.CODSettled < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "codSettled must be zero or more")
	}
	patch := mutation.NewPatch().
		String("name", input.Name).
		String("email", input.Email).
		String("phone", input.Phone).
		String("city", input.City).
		String("vehicleType", input.VehicleType).
		String("vehicleNumber", input.VehicleNumber).
		String("licenseNumber", input.LicenseNumber).
		Bool("isAvailable", input.IsAvailable).
		Float("codSettled", input.CODSettled)
	if input.BankDetails != nil {
		patch.Set("bankDetails", *input.BankDetails)
	}
	return mutation.Apply(ctx, mutation.Target{Label: "delivery person", IDField: "deliveryPersonId"}, input.DeliveryPersonID, patch, s.repo.Update, s.now())
}

func (s *service) Suspend(ctx context.Context, input suspension.SuspendInput) (*suspension.Result, error) {
	return s.suspension.Suspend(ctx, input)
}

func (s *service) Reinstate(ctx context.Context, deliveryPersonID, adminID string) (*suspension.Result, error) {
	return s.suspension.Reinstate(ctx, deliveryPersonID, adminID)
}

func (s *service) ListSuspended(ctx context.Context) ([]models.DeliveryPerson, error) {
	persons, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list delivery persons")
	}
	out := suspension.Suspended(persons)
	sort.SliceStable(out, func(i, j int) bool {
		return timeOrZero(out[i].SuspendedAt).After(timeOrZero(out[j].SuspendedAt))
	})
	return out, nil
}

func (s *service) Verifications(ctx context.Context, status string) (*verification.ListResult[models.DeliveryPerson], error) {
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
