package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delito/admin-api/internal/customers"
	"github.com/delito/admin-api/internal/mutation"
	"github.com/delito/admin-api/pkg/logger"
)

type stubCustomers struct {
	listFn   func(ctx context.Context, params customers.ListParams) (*customers.ListResult, error)
	updateFn func(ctx context.Context, input customers.UpdateInput) (*mutation.Result, error)
}

func (s stubCustomers) List(ctx context.Context, params customers.ListParams) (*customers.ListResult, error) {
	return s.listFn(ctx, params)
}

func (s stubCustomers) Update(ctx context.Context, input customers.UpdateInput) (*mutation.Result, error) {
	return s.updateFn(ctx, input)
}

func TestCustomersListSearch(t *testing.T) {
	svc := stubCustomers{
		listFn: func(ctx context.Context, params customers.ListParams) (*customers.ListResult, error) {
			assert.Equal(t, "asha", params.Search)
			return &customers.ListResult{Summary: customers.ListSummary{Total: 1, TotalSpent: 640}}, nil
		},
	}

	resp := serve(t, CustomersList(svc, logger.Nop()), http.MethodGet, "/customers?search=%20asha%20", "")
	require.Equal(t, http.StatusOK, resp.Code)
	env := decode[customers.ListResult](t, resp)
	assert.Equal(t, 640.0, env.Data.Summary.TotalSpent)
}

func TestCustomersUpdateBlock(t *testing.T) {
	svc := stubCustomers{
		updateFn: func(ctx context.Context, input customers.UpdateInput) (*mutation.Result, error) {
			require.NotNil(t, input.IsBlocked)
			assert.True(t, *input.IsBlocked)
			assert.Equal(t, ptr("abusive to riders"), input.AdminNotes)
			return &mutation.Result{ID: input.CustomerID}, nil
		},
	}

	body := `{"customerId":"c1","isBlocked":true,"adminNotes":"abusive to riders"}`
	resp := serve(t, CustomersUpdate(svc, logger.Nop()), http.MethodPatch, "/customers", body)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "customer updated", decode[mutation.Result](t, resp).Message)
}
