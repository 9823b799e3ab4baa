package controllers

import (
	"context"
	"net/http"

	"github.com/delito/admin-api/api/responses"
	"github.com/delito/admin-api/api/validators"
	"github.com/delito/admin-api/internal/complaints"
	"github.com/delito/admin-api/internal/mutation"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
	"github.com/delito/admin-api/pkg/logger"
)

type complaintsService interface {
	List(ctx context.Context, params complaints.ListParams) (*complaints.ListResult, error)
	Update(ctx context.Context, input complaints.UpdateInput) (*mutation.Result, error)
}

type complaintUpdateRequest struct {
	ComplaintID  string  `json:"complaintId"`
	Status       *string `json:"status"`
	Priority     *string `json:"priority"`
	Resolution   *string `json:"resolution"`
	AdminNotes   *string `json:"adminNotes"`
	RefundStatus *string `json:"refundStatus"`
}

func ComplaintsList(svc complaintsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "complaints service unavailable"))
			return
		}

		result, err := svc.List(r.Context(), complaints.ListParams{
			Status:   validators.QueryString(r, "status"),
			Priority: validators.QueryString(r, "priority"),
			Type:     validators.QueryString(r, "type"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func ComplaintsUpdate(svc complaintsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "complaints service unavailable"))
			return
		}

		var req complaintUpdateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Update(r.Context(), complaints.UpdateInput{
			ComplaintID:  req.ComplaintID,
			Status:       req.Status,
			Priority:     req.Priority,
			Resolution:   req.Resolution,
			AdminNotes:   req.AdminNotes,
			RefundStatus: req.RefundStatus,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "complaint updated", result)
	}
}
