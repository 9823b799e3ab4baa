package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/delito/admin-api/internal/aggregate"
	"github.com/delito/admin-api/internal/mutation"
	"github.com/delito/admin-api/internal/orders"
	"github.com/delito/admin-api/pkg/db/models"
	"github.com/delito/admin-api/pkg/logger"
	"github.com/delito/admin-api/pkg/pagination"
)

type stubOrders struct {
	listFn   func(ctx context.Context, params orders.ListParams) (*orders.ListResult, error)
	updateFn func(ctx context.Context, input orders.UpdateInput) (*mutation.Result, error)
}

func (s stubOrders) List(ctx context.Context, params orders.ListParams) (*orders.ListResult, error) {
	return s.listFn(ctx, params)
}

func (s stubOrders) Update(ctx context.Context, input orders.UpdateInput) (*mutation.Result, error) {
	return s.updateFn(ctx, input)
}

func TestOrdersListDefaultsLimit(t *testing.T) {
	svc := stubOrders{
		listFn: func(ctx context.Context, params orders.ListParams) (*orders.ListResult, error) {
			if params.Limit != pagination.DefaultLimit {
				t.Fatalf("expected default limit, got %d", params.Limit)
			}
			return &orders.ListResult{
				Orders:  []orders.View{{Order: models.Order{ID: "o1"}, VendorName: "Spice Hub"}},
				Summary: aggregate.StatusCounts{},
			}, nil
		},
	}

	resp := serve(t, OrdersList(svc, logger.Nop()), http.MethodGet, "/orders", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	env := decode[orders.ListResult](t, resp)
	if len(env.Data.Orders) != 1 || env.Data.Orders[0].VendorName != "Spice Hub" {
		t.Fatalf("unexpected payload %+v", env.Data)
	}
}

func TestOrdersListLimitBounds(t *testing.T) {
	svc := stubOrders{
		listFn: func(ctx context.Context, params orders.ListParams) (*orders.ListResult, error) {
			if params.Status != "Delivered" || params.Limit != 500 {
				t.Fatalf("unexpected params %+v", params)
			}
			return &orders.ListResult{}, nil
		},
	}
	h := OrdersList(svc, logger.Nop())

	if resp := serve(t, h, http.MethodGet, "/orders?status=Delivered&limit=500", ""); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	for _, target := range []string{"/orders?limit=0", "/orders?limit=501", "/orders?limit=ten"} {
		if resp := serve(t, h, http.MethodGet, target, ""); resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d", target, resp.Code)
		}
	}
}

func TestOrdersUpdate(t *testing.T) {
	svc := stubOrders{
		updateFn: func(ctx context.Context, input orders.UpdateInput) (*mutation.Result, error) {
			if input.OrderID != "o1" || input.Status == nil || *input.Status != "Cancelled" {
				t.Fatalf("unexpected input %+v", input)
			}
			if input.CancelReason == nil || *input.CancelReason != "vendor closed" {
				t.Fatalf("expected cancel reason, got %+v", input.CancelReason)
			}
			return &mutation.Result{ID: "o1", UpdatedFields: []string{"cancelReason", "cancelledAt", "status"}}, nil
		},
	}

	body := `{"orderId":"o1","status":"Cancelled","cancelReason":"vendor closed"}`
	resp := serve(t, OrdersUpdate(svc, logger.Nop()), http.MethodPatch, "/orders", body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestOrdersUpdateRequiresBody(t *testing.T) {
	svc := stubOrders{
		updateFn: func(ctx context.Context, input orders.UpdateInput) (*mutation.Result, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	resp := serve(t, OrdersUpdate(svc, logger.Nop()), http.MethodPatch, "/orders", "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if env := decode[any](t, resp); env.Error != "request body is required" {
		t.Fatalf("unexpected error %q", env.Error)
	}
}
