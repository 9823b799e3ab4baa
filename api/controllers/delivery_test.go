package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delito/admin-api/internal/delivery"
	"github.com/delito/admin-api/internal/mutation"
	"github.com/delito/admin-api/internal/suspension"
	"github.com/delito/admin-api/pkg/db/models"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
	"github.com/delito/admin-api/pkg/logger"
)

type stubDelivery struct {
	listFn      func(ctx context.Context, params delivery.ListParams) (*delivery.ListResult, error)
	updateFn    func(ctx context.Context, input delivery.UpdateInput) (*mutation.Result, error)
	suspendFn   func(ctx context.Context, input suspension.SuspendInput) (*suspension.Result, error)
	reinstateFn func(ctx context.Context, id, adminID string) (*suspension.Result, error)
	suspendedFn func(ctx context.Context) ([]models.DeliveryPerson, error)
	syncFn      func(ctx context.Context, input delivery.SyncInput) (*delivery.SyncResult, error)
}

func (s stubDelivery) List(ctx context.Context, params delivery.ListParams) (*delivery.ListResult, error) {
	return s.listFn(ctx, params)
}

func (s stubDelivery) Update(ctx context.Context, input delivery.UpdateInput) (*mutation.Result, error) {
	return s.updateFn(ctx, input)
}

func (s stubDelivery) Suspend(ctx context.Context, input suspension.SuspendInput) (*suspension.Result, error) {
	return s.suspendFn(ctx, input)
}

func (s stubDelivery) Reinstate(ctx context.Context, id, adminID string) (*suspension.Result, error) {
	return s.reinstateFn(ctx, id, adminID)
}

func (s stubDelivery) ListSuspended(ctx context.Context) ([]models.DeliveryPerson, error) {
	return s.suspendedFn(ctx)
}

func (s stubDelivery) Sync(ctx context.Context, input delivery.SyncInput) (*delivery.SyncResult, error) {
	return s.syncFn(ctx, input)
}

func TestDeliveryListPassesFilters(t *testing.T) {
	svc := stubDelivery{
		listFn: func(ctx context.Context, params delivery.ListParams) (*delivery.ListResult, error) {
			assert.Equal(t, "online", params.Status)
			assert.Equal(t, "ravi", params.Search)
			return &delivery.ListResult{Summary: delivery.ListSummary{Total: 4, Online: 2}}, nil
		},
	}

	resp := serve(t, DeliveryList(svc, logger.Nop()), http.MethodGet, "/delivery?status=online&search=ravi", "")
	require.Equal(t, http.StatusOK, resp.Code)
	env := decode[delivery.ListResult](t, resp)
	assert.Equal(t, 2, env.Data.Summary.Online)
}

func TestDeliveryUpdateForwardsBankDetails(t *testing.T) {
	svc := stubDelivery{
		updateFn: func(ctx context.Context, input delivery.UpdateInput) (*mutation.Result, error) {
			require.NotNil(t, input.BankDetails)
			assert.Equal(t, "HDFC0001", input.BankDetails.IFSC)
			require.NotNil(t, input.CODSettled)
			assert.Equal(t, 250.0, *input.CODSettled)
			return &mutation.Result{ID: input.DeliveryPersonID}, nil
		},
	}

	body := `{"deliveryPersonId":"d1","bankDetails":{"ifsc":"HDFC0001"},"codSettled":250}`
	resp := serve(t, DeliveryUpdate(svc, logger.Nop()), http.MethodPatch, "/delivery", body)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
}

func TestDeliveryUpdateRejectsNegativeSettlement(t *testing.T) {
	svc := stubDelivery{
		updateFn: func(ctx context.Context, input delivery.UpdateInput) (*mutation.Result, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	resp := serve(t, DeliveryUpdate(svc, logger.Nop()), http.MethodPatch, "/delivery", `{"deliveryPersonId":"d1","codSettled":-5}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDeliverySuspendDefaultsActorToCaller(t *testing.T) {
	now := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	svc := stubDelivery{
		suspendFn: func(ctx context.Context, input suspension.SuspendInput) (*suspension.Result, error) {
			if input.AdminID != "admin-7" {
				t.Fatalf("expected caller as actor, got %q", input.AdminID)
			}
			if input.TargetID != "d1" || input.Reason != "fraud" {
				t.Fatalf("unexpected input %+v", input)
			}
			return &suspension.Result{ID: "d1", IsSuspended: true, SuspendedAt: &now}, nil
		},
	}

	resp := serveAs(t, DeliverySuspend(svc, logger.Nop()), "admin-7", http.MethodPost, "/delivery/suspend", `{"deliveryPersonId":"d1","reason":"fraud"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestDeliverySuspendPayloadActorWins(t *testing.T) {
	svc := stubDelivery{
		suspendFn: func(ctx context.Context, input suspension.SuspendInput) (*suspension.Result, error) {
			if input.AdminID != "admin-payload" {
				t.Fatalf("expected payload actor, got %q", input.AdminID)
			}
			return &suspension.Result{ID: "d1", IsSuspended: true}, nil
		},
	}

	body := `{"deliveryPersonId":"d1","reason":"fraud","adminId":"admin-payload"}`
	resp := serveAs(t, DeliverySuspend(svc, logger.Nop()), "admin-7", http.MethodPost, "/delivery/suspend", body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestDeliverySuspendConflictIsClientError(t *testing.T) {
	svc := stubDelivery{
		suspendFn: func(ctx context.Context, input suspension.SuspendInput) (*suspension.Result, error) {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "delivery person is already suspended")
		},
	}

	resp := serveAs(t, DeliverySuspend(svc, logger.Nop()), "admin-7", http.MethodPost, "/delivery/suspend", `{"deliveryPersonId":"d1","reason":"fraud"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	env := decode[any](t, resp)
	if env.Code != string(pkgerrors.CodeStateConflict) {
		t.Fatalf("unexpected code %q", env.Code)
	}
}

func TestDeliveryReinstateReadsQuery(t *testing.T) {
	svc := stubDelivery{
		reinstateFn: func(ctx context.Context, id, adminID string) (*suspension.Result, error) {
			if id != "d1" || adminID != "admin-q" {
				t.Fatalf("unexpected args %q %q", id, adminID)
			}
			return &suspension.Result{ID: id}, nil
		},
	}

	resp := serveAs(t, DeliveryReinstate(svc, logger.Nop()), "admin-7", http.MethodDelete, "/delivery/suspend?deliveryPersonId=d1&adminId=admin-q", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestDeliverySuspendedEmptyList(t *testing.T) {
	svc := stubDelivery{
		suspendedFn: func(ctx context.Context) ([]models.DeliveryPerson, error) {
			return nil, nil
		},
	}

	resp := serve(t, DeliverySuspended(svc, logger.Nop()), http.MethodGet, "/delivery/suspend", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"deliveryPersons":[]`)
	assert.Contains(t, resp.Body.String(), `"total":0`)
}

func TestDeliverySyncWithoutBody(t *testing.T) {
	svc := stubDelivery{
		syncFn: func(ctx context.Context, input delivery.SyncInput) (*delivery.SyncResult, error) {
			if input.DeliveryPersonID != "" {
				t.Fatalf("expected unscoped sync, got %q", input.DeliveryPersonID)
			}
			if input.AdminID != "admin-7" {
				t.Fatalf("expected caller as actor, got %q", input.AdminID)
			}
			result := &delivery.SyncResult{}
			result.Succeed(delivery.SyncItem{DeliveryPersonID: "d1", TotalEarnings: 120, TotalDeliveries: 3})
			result.Fail(delivery.SyncItem{DeliveryPersonID: "d2"}, errors.New("boom"))
			return result, nil
		},
	}

	resp := serveAs(t, DeliverySync(svc, logger.Nop()), "admin-7", http.MethodPost, "/delivery/sync", "")
	require.Equal(t, http.StatusOK, resp.Code)
	env := decode[delivery.SyncResult](t, resp)
	assert.Equal(t, 1, env.Data.Synced)
	assert.Equal(t, 1, env.Data.Failed)
	require.Len(t, env.Data.Results, 2)
	assert.False(t, env.Data.Results[1].Success)
	assert.NotEmpty(t, env.Data.Results[1].Error)
}

func TestDeliverySyncChunkedEmptyBody(t *testing.T) {
	var called bool
	svc := stubDelivery{
		syncFn: func(ctx context.Context, input delivery.SyncInput) (*delivery.SyncResult, error) {
			called = true
			if input.DeliveryPersonID != "" {
				t.Fatalf("expected unscoped sync, got %q", input.DeliveryPersonID)
			}
			return &delivery.SyncResult{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/delivery/sync", io.NopCloser(strings.NewReader("")))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	resp := httptest.NewRecorder()
	DeliverySync(svc, logger.Nop()).ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.True(t, called)
}

func TestDeliverySyncScoped(t *testing.T) {
	svc := stubDelivery{
		syncFn: func(ctx context.Context, input delivery.SyncInput) (*delivery.SyncResult, error) {
			if input.DeliveryPersonID != "d9" {
				t.Fatalf("expected scoped sync, got %q", input.DeliveryPersonID)
			}
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "delivery person not found")
		},
	}

	resp := serve(t, DeliverySync(svc, logger.Nop()), http.MethodPost, "/delivery/sync", `{"deliveryPersonId":"d9"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
