package controllers

import (
	"context"
	"net/http"

	"github.com/delito/admin-api/api/responses"
	"github.com/delito/admin-api/api/validators"
	"github.com/delito/admin-api/internal/verification"
	"github.com/delito/admin-api/pkg/db/models"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
	"github.com/delito/admin-api/pkg/logger"
)

type vendorVerifier interface {
	Verifications(ctx context.Context, status string) (*verification.ListResult[models.Vendor], error)
	Verify(ctx context.Context, decision verification.Decision) (*verification.Result, error)
}

type deliveryVerifier interface {
	Verifications(ctx context.Context, status string) (*verification.ListResult[models.DeliveryPerson], error)
	Verify(ctx context.Context, decision verification.Decision) (*verification.Result, error)
}

type vendorVerificationRequest struct {
	VendorID string `json:"vendorId"`
	Action   string `json:"action"`
	Notes    string `json:"notes"`
	Reason   string `json:"reason"`
	AdminID  string `json:"adminId"`
}

type deliveryVerificationRequest struct {
	DeliveryPersonID string `json:"deliveryPersonId"`
	Action           string `json:"action"`
	Notes            string `json:"notes"`
	Reason           string `json:"reason"`
	AdminID          string `json:"adminId"`
}

func VendorVerificationList(svc vendorVerifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendors service unavailable"))
			return
		}

		result, err := svc.Verifications(r.Context(), validators.QueryString(r, "status"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"vendors": result.Items,
			"counts":  result.Counts,
		})
	}
}

func VendorVerificationDecide(svc vendorVerifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendors service unavailable"))
			return
		}

		var req vendorVerificationRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Verify(r.Context(), verification.Decision{
			TargetID: req.VendorID,
			AdminID:  actorID(r, req.AdminID),
			Action:   req.Action,
			Notes:    req.Notes,
			Reason:   req.Reason,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "vendor "+string(result.VerificationStatus), result)
	}
}

func DeliveryVerificationList(svc deliveryVerifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "delivery service unavailable"))
			return
		}

		result, err := svc.Verifications(r.Context(), validators.QueryString(r, "status"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"deliveryPersons": result.Items,
			"counts":          result.Counts,
		})
	}
}

func DeliveryVerificationDecide(svc deliveryVerifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "delivery service unavailable"))
			return
		}

		var req deliveryVerificationRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Verify(r.Context(), verification.Decision{
			TargetID: req.DeliveryPersonID,
			AdminID:  actorID(r, req.AdminID),
			Action:   req.Action,
			Notes:    req.Notes,
			Reason:   req.Reason,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "delivery person "+string(result.VerificationStatus), result)
	}
}
