package customers

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/delito/admin-api/internal/aggregate"
	"github.com/delito/admin-api/internal/mutation"
	"github.com/delito/admin-api/internal/projection"
	"github.com/delito/admin-api/pkg/db/models"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
)

// Service exposes the admin customer operations.
type Service interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Update(ctx context.Context, input UpdateInput) (*mutation.Result, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds a customer service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, errors.New("customer repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

// View is a customer with spend aggregates computed from orders.
type View struct {
	models.Customer
	TotalOrders       int        `json:"totalOrders"`
	CompletedOrders   int        `json:"completedOrders"`
	TotalSpent        float64    `json:"totalSpent"`
	AverageOrderValue float64    `json:"averageOrderValue"`
	LastOrderAt       *time.Time `json:"lastOrderAt,omitempty"`
}

// Project merges a customer with their order aggregate. The order count is
// the computed one whenever it exists; a computed zero spend falls back to
// the stored total.
func Project(c models.Customer, totals map[string]*aggregate.CustomerTotal) View {
	agg, ok := projection.Lookup(totals, c.ID)
	view := View{Customer: c}

	var orders int
	var spent float64
	if ok {
		orders = agg.Orders
		spent = agg.Spent
		view.CompletedOrders = agg.Completed
		view.LastOrderAt = agg.LastOrderAt
	}
	view.TotalOrders = projection.First(projection.Present(orders, ok), projection.Fallback(c.TotalOrders))
	view.TotalSpent = projection.First(projection.NonZero(spent), projection.NonZero(c.TotalSpent), projection.Fallback(0.0))
	view.AverageOrderValue = agg.AverageOrderValue()
	return view
}

type ListParams struct {
	Search string
}

type ListSummary struct {
	Total      int     `json:"total"`
	Blocked    int     `json:"blocked"`
	WithOrders int     `json:"withOrders"`
	TotalSpent float64 `json:"totalSpent"`
}

type ListResult struct {
	Customers []View      `json:"customers"`
	Summary   ListSummary `json:"summary"`
}

// List returns customers matching the search with their spend, highest
// spenders first. The summary covers the filtered set.
func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list customers")
	}
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list orders")
	}

	totals := aggregate.CustomerTotals(orders)
	out := &ListResult{Customers: make([]View, 0, len(customers))}
	for _, c := range customers {
		if !projection.Matches(params.Search, c.Name, c.Email, c.Phone) {
			continue
		}
		view := Project(c, totals)
		out.Summary.Total++
		if c.IsBlocked {
			out.Summary.Blocked++
		}
		if view.TotalOrders > 0 {
			out.Summary.WithOrders++
		}
		out.Summary.TotalSpent = aggregate.Add(out.Summary.TotalSpent, view.TotalSpent)
		out.Customers = append(out.Customers, view)
	}
	sort.SliceStable(out.Customers, func(i, j int) bool {
		return out.Customers[i].TotalSpent > out.Customers[j].TotalSpent
	})
	return out, nil
}

// UpdateInput is the allow-listed set of fields an admin may change.
type UpdateInput struct {
	CustomerID string
	Name       *string
	Email      *string
	Phone      *string
	IsBlocked  *bool
	AdminNotes *string
}

func (s *service) Update(ctx context.Context, input UpdateInput) (*mutation.Result, error) {
	patch := mutation.NewPatch().
		String("name", input.Name).
		String("email", input.Email).
		String("phone", input.Phone).
		Bool("isBlocked", input.IsBlocked).
		String("adminNotes", input.AdminNotes)
	return mutation.Apply(ctx, mutation.Target{Label: "customer", IDField: "customerId"}, input.CustomerID, patch, s.repo.Update, s.now())
}
