package controllers

import (
	"context"
	"net/http"

	"github.com/delito/admin-api/api/responses"
	"github.com/delito/admin-api/api/validators"
	"github.com/delito/admin-api/internal/delivery"
	"github.com/delito/admin-api/internal/mutation"
	"github.com/delito/admin-api/internal/suspension"
	"github.com/delito/admin-api/pkg/db/models"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
	"github.com/delito/admin-api/pkg/logger"
)

type deliveryService interface {
	List(ctx context.Context, params delivery.ListParams) (*delivery.ListResult, error)
	Update(ctx context.Context, input delivery.UpdateInput) (*mutation.Result, error)
	Suspend(ctx context.Context, input suspension.SuspendInput) (*suspension.Result, error)
	Reinstate(ctx context.Context, deliveryPersonID, adminID string) (*suspension.Result, error)
	ListSuspended(ctx context.Context) ([]models.DeliveryPerson, error)
	Sync(ctx context.Context, input delivery.SyncInput) (*delivery.SyncResult, error)
}

type deliveryUpdateRequest struct {
	DeliveryPersonID string              `json:"deliveryPersonId"`
	Name             *string             `json:"name"`
	Email            *string             `json:"email" validate:"omitempty,email"`
	Phone            *string             `json:"phone"`
	City             *string             `json:"city"`
	VehicleType      *string             `json:"vehicleType"`
	VehicleNumber    *string             `json:"vehicleNumber"`
	LicenseNumber    *string             `json:"licenseNumber"`
	IsAvailable      *bool               `json:"isAvailable"`
	BankDetails      *models.BankDetails `json:"bankDetails"`
	CODSettled       *float64            `json:"codSettled" validate:"omitempty,gte=0"`
}

type deliverySuspendRequest struct {
	DeliveryPersonID string `json:"deliveryPersonId"`
	Reason           string `json:"reason"`
	Notes            string `json:"notes"`
	AdminID          string `json:"adminId"`
}

type deliverySyncRequest struct {
	DeliveryPersonID string `json:"deliveryPersonId"`
	AdminID          string `json:"adminId"`
}

type suspendedDeliveryPersons struct {
	DeliveryPersons []models.DeliveryPerson `json:"deliveryPersons"`
	Total           int                     `json:"total"`
}

func DeliveryList(svc deliveryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "delivery service unavailable"))
			return
		}

		result, err := svc.List(r.Context(), delivery.ListParams{
			Status: validators.QueryString(r, "status"),
			Search: validators.QueryString(r, "search"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func DeliveryUpdate(svc deliveryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "delivery service unavailable"))
			return
		}

		var req deliveryUpdateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Update(r.Context(), delivery.UpdateInput{
			DeliveryPersonID: req.DeliveryPersonID,
			Name:             req.Name,
			Email:            req.Email,
			Phone:            req.Phone,
			City:             req.City,
			VehicleType:      req.VehicleType,
			VehicleNumber:    req.VehicleNumber,
			LicenseNumber:    req.LicenseNumber,
			IsAvailable:      req.IsAvailable,
			BankDetails:      req.BankDetails,
			CODSettled:       req.CODSettled,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "delivery person updated", result)
	}
}

func DeliverySuspend(svc deliveryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "delivery service unavailable"))
			return
		}

		var req deliverySuspendRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Suspend(r.Context(), suspension.SuspendInput{
			TargetID: req.DeliveryPersonID,
			AdminID:  actorID(r, req.AdminID),
			Reason:   req.Reason,
			Notes:    req.Notes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "delivery person suspended", result)
	}
}

// DeliveryReinstate reads its target from the query string since DELETE
// requests carry no body.
func DeliveryReinstate(svc deliveryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "delivery service unavailable"))
			return
		}

		result, err := svc.Reinstate(r.Context(),
			validators.QueryString(r, "deliveryPersonId"),
			actorID(r, validators.QueryString(r, "adminId")),
		)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "delivery person reinstated", result)
	}
}

func DeliverySuspended(svc deliveryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "delivery service unavailable"))
			return
		}

		persons, err := svc.ListSuspended(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if persons == nil {
			persons = []models.DeliveryPerson{}
		}
		responses.WriteSuccess(w, suspendedDeliveryPersons{DeliveryPersons: persons, Total: len(persons)})
	}
}

// DeliverySync accepts an empty body to recompute earnings for every person.
func DeliverySync(svc deliveryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "delivery service unavailable"))
			return
		}

		var req deliverySyncRequest
		if err := validators.DecodeOptionalJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Sync(r.Context(), delivery.SyncInput{
			DeliveryPersonID: req.DeliveryPersonID,
			AdminID:          actorID(r, req.AdminID),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if result.Failed > 0 && logg != nil {
			logg.Warn(logg.WithFields(r.Context(), map[string]any{
				"synced": result.Synced,
				"failed": result.Failed,
			}), "delivery earnings sync finished with failures")
		}
		responses.WriteMessage(w, "delivery earnings synced", result)
	}
}
