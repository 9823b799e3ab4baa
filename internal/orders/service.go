package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/delito/admin-api/internal/mutation"
	"github.com/delito/admin-api/pkg/db"
	"github.com/delito/admin-api/pkg/db/models"
	"github.com/delito/admin-api/pkg/enums"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
	"github.com/delito/admin-api/pkg/pagination"
	"golang.org/x/sync/errgroup"
)

// Service exposes the admin order operations.
type Service interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Update(ctx context.Context, input UpdateInput) (*mutation.Result, error)
}

// ServiceParams groups dependencies for the order service.
type ServiceParams struct {
	Repo  Repository
	Names NameResolver
}

type service struct {
	repo  Repository
	names NameResolver
	now   func() time.Time
}

// NewService builds an order service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, errors.New("order repository required")
	}
	if params.Names == nil {
		return nil, errors.New("name resolver required")
	}
	return &service{repo: params.Repo, names: params.Names, now: time.Now}, nil
}

// List returns the newest orders with vendor, customer and delivery person
// names resolved in chunked batch lookups. The summary covers the returned page.
func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	var status enums.OrderStatus
	if raw := strings.TrimSpace(params.Status); raw != "" {
		parsed, err := enums.ParseOrderStatus(raw)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter")
		}
		status = parsed
	}
	limit := pagination.NormalizeLimit(params.Limit)

	orders, err := s.repo.List(ctx, status, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list orders")
	}
	names, err := s.resolveNames(ctx, orders)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to resolve order names")
	}

	out := &ListResult{Orders: make([]View, 0, len(orders))}
	for _, o := range orders {
		out.Summary.Add(o.Status)
		out.Orders = append(out.Orders, View{
			Order:              o,
			Bucket:             o.Status.Bucket(),
			VendorName:         names.vendors[o.VendorID],
			CustomerName:       names.customers[o.CustomerID],
			DeliveryPersonName: names.deliveryPersons[o.DeliveryPersonID],
		})
	}
	return out, nil
}

type orderNames struct {
	vendors         map[string]string
	customers       map[string]string
	deliveryPersons map[string]string
}

func (s *service) resolveNames(ctx context.Context, orders []models.Order) (orderNames, error) {
	var vendorIDs, customerIDs, riderIDs []string
	for _, o := range orders {
		vendorIDs = append(vendorIDs, o.VendorID)
		customerIDs = append(customerIDs, o.CustomerID)
		riderIDs = append(riderIDs, o.DeliveryPersonID)
	}

	var names orderNames
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.names.LookupNames(gctx, db.CollectionVendors, vendorIDs, "businessName", "name")
		names.vendors = m
		return err
	})
	g.Go(func() error {
		m, err := s.names.LookupNames(gctx, db.CollectionCustomers, customerIDs, "name", "displayName")
		names.customers = m
		return err
	})
	g.Go(func() error {
		m, err := s.names.LookupNames(gctx, db.CollectionDeliveryPersons, riderIDs, "name")
		names.deliveryPersons = m
		return err
	})
	if err := g.Wait(); err != nil {
		return orderNames{}, err
	}
	return names, nil
}

// Update patches an order. A status change also stamps the matching
// transition timestamp, e.g. deliveredAt.
func (s *service) Update(ctx context.Context, input UpdateInput) (*mutation.Result, error) {
	now := s.now().UTC()
	patch := mutation.NewPatch().
		String("paymentStatus", input.PaymentStatus).
		String("deliveryPersonId", input.DeliveryPersonID).
		String("cancelReason", input.CancelReason)

	if input.Status != nil {
		status, err := enums.ParseOrderStatus(strings.TrimSpace(*input.Status))
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status")
		}
		patch.Set("status", string(status))
		patch.Set(status.TimestampField(), now)
	}
	return mutation.Apply(ctx, mutation.Target{Label: "order", IDField: "orderId"}, input.OrderID, patch, s.repo.Update, now)
}
