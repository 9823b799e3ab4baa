package controllers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/delito/admin-api/internal/complaints"
	"github.com/delito/admin-api/internal/mutation"
	"github.com/delito/admin-api/pkg/db/models"
	"github.com/delito/admin-api/pkg/enums"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
	"github.com/delito/admin-api/pkg/logger"
)

type stubComplaints struct {
	listFn   func(ctx context.Context, params complaints.ListParams) (*complaints.ListResult, error)
	updateFn func(ctx context.Context, input complaints.UpdateInput) (*mutation.Result, error)
}

func (s stubComplaints) List(ctx context.Context, params complaints.ListParams) (*complaints.ListResult, error) {
	return s.listFn(ctx, params)
}

func (s stubComplaints) Update(ctx context.Context, input complaints.UpdateInput) (*mutation.Result, error) {
	return s.updateFn(ctx, input)
}

func TestComplaintsListPassesFilters(t *testing.T) {
	svc := stubComplaints{
		listFn: func(ctx context.Context, params complaints.ListParams) (*complaints.ListResult, error) {
			if params.Status != "Open" || params.Priority != "high" || params.Type != "refund" {
				t.Fatalf("unexpected params %+v", params)
			}
			return &complaints.ListResult{
				Complaints: []models.Complaint{{ID: "c1", Status: enums.ComplaintStatusOpen}},
				Summary:    complaints.Summary{Total: 1, Open: 1},
			}, nil
		},
	}

	resp := serve(t, ComplaintsList(svc, logger.Nop()), http.MethodGet, "/complaints?status=Open&priority=high&type=refund", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	env := decode[complaints.ListResult](t, resp)
	if !env.Success || len(env.Data.Complaints) != 1 || env.Data.Summary.Open != 1 {
		t.Fatalf("unexpected payload %+v", env)
	}
}

func TestComplaintsUpdate(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc := stubComplaints{
		updateFn: func(ctx context.Context, input complaints.UpdateInput) (*mutation.Result, error) {
			if input.ComplaintID != "c1" || input.Status == nil || *input.Status != "Resolved" {
				t.Fatalf("unexpected input %+v", input)
			}
			if input.Priority != nil {
				t.Fatalf("priority should stay nil when omitted")
			}
			return &mutation.Result{ID: "c1", UpdatedFields: []string{"resolvedAt", "status"}, UpdatedAt: now}, nil
		},
	}

	resp := serve(t, ComplaintsUpdate(svc, logger.Nop()), http.MethodPatch, "/complaints", `{"complaintId":"c1","status":"Resolved"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	env := decode[mutation.Result](t, resp)
	if env.Message != "complaint updated" || env.Data.ID != "c1" {
		t.Fatalf("unexpected payload %+v", env)
	}
}

func TestComplaintsUpdateRejectsUnknownFields(t *testing.T) {
	svc := stubComplaints{
		updateFn: func(ctx context.Context, input complaints.UpdateInput) (*mutation.Result, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	resp := serve(t, ComplaintsUpdate(svc, logger.Nop()), http.MethodPatch, "/complaints", `{"complaintId":"c1","customerId":"x"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestComplaintsUpdateNotFound(t *testing.T) {
	svc := stubComplaints{
		updateFn: func(ctx context.Context, input complaints.UpdateInput) (*mutation.Result, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "complaint not found")
		},
	}

	resp := serve(t, ComplaintsUpdate(svc, logger.Nop()), http.MethodPatch, "/complaints", `{"complaintId":"missing"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	env := decode[any](t, resp)
	if env.Success || env.Error != "complaint not found" || env.Code != string(pkgerrors.CodeNotFound) {
		t.Fatalf("unexpected error envelope %+v", env)
	}
}

func TestComplaintsNilService(t *testing.T) {
	resp := serve(t, ComplaintsList(nil, logger.Nop()), http.MethodGet, "/complaints", "")
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}
