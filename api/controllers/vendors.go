package controllers

import (
	"context"
	"net/http"

	"github.com/delito/admin-api/api/responses"
	"github.com/delito/admin-api/api/validators"
	"github.com/delito/admin-api/internal/mutation"
	"github.com/delito/admin-api/internal/suspension"
	"github.com/delito/admin-api/internal/vendors"
	"github.com/delito/admin-api/pkg/db/models"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
	"github.com/delito/admin-api/pkg/logger"
)

type vendorsService interface {
	List(ctx context.Context, params vendors.ListParams) (*vendors.ListResult, error)
	Update(ctx context.Context, input vendors.UpdateInput) (*mutation.Result, error)
	Performance(ctx context.Context, days int) (*vendors.PerformanceReport, error)
	Suspend(ctx context.Context, input suspension.SuspendInput) (*suspension.Result, error)
	Reinstate(ctx context.Context, vendorID, adminID string) (*suspension.Result, error)
	ListSuspended(ctx context.Context) ([]models.Vendor, error)
}

type commissionService interface {
	Commission(ctx context.Context) (*vendors.CommissionOverview, error)
	UpdateCommission(ctx context.Context, input vendors.CommissionInput) (*vendors.CommissionResult, error)
	UpdatePlatformCommission(ctx context.Context, input vendors.PlatformCommissionInput) (*vendors.PlatformCommissionResult, error)
}

type vendorUpdateRequest struct {
	VendorID     string   `json:"vendorId"`
	Name         *string  `json:"name"`
	BusinessName *string  `json:"businessName"`
	OwnerName    *string  `json:"ownerName"`
	Email        *string  `json:"email" validate:"omitempty,email"`
	Phone        *string  `json:"phone"`
	Address      *string  `json:"address"`
	City         *string  `json:"city"`
	Cuisine      []string `json:"cuisine"`
	GSTIN        *string  `json:"gstin"`
	FSSAINumber  *string  `json:"fssaiNumber"`
	IsOnline     *bool    `json:"isOnline"`
}

type vendorSuspendRequest struct {
	VendorID string `json:"vendorId"`
	Reason   string `json:"reason"`
	Notes    string `json:"notes"`
	AdminID  string `json:"adminId"`
}

type vendorCommissionRequest struct {
	VendorID       string   `json:"vendorId"`
	CommissionRate *float64 `json:"commissionRate"`
	AdminID        string   `json:"adminId"`
	Reason         string   `json:"reason"`
}

type platformCommissionRequest struct {
	CommissionRate *float64 `json:"commissionRate"`
	AdminID        string   `json:"adminId"`
}

type suspendedVendors struct {
	Vendors []models.Vendor `json:"vendors"`
	Total   int             `json:"total"`
}

func VendorsList(svc vendorsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendors service unavailable"))
			return
		}

		result, err := svc.List(r.Context(), vendors.ListParams{
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

func VendorsUpdate(svc vendorsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendors service unavailable"))
			return
		}

		var req vendorUpdateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Update(r.Context(), vendors.UpdateInput{
			VendorID:     req.VendorID,
			Name:         req.Name,
			BusinessName: req.BusinessName,
			OwnerName:    req.OwnerName,
			Email:        req.Email,
			Phone:        req.Phone,
			Address:      req.Address,
			City:         req.City,
			Cuisine:      req.Cuisine,
			GSTIN:        req.GSTIN,
			FSSAINumber:  req.FSSAINumber,
			IsOnline:     req.IsOnline,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "vendor updated", result)
	}
}

// VendorsPerformance reports over the last `days` days; omitting it covers all time.
func VendorsPerformance(svc vendorsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendors service unavailable"))
			return
		}

		days, err := validators.ParseQueryInt(r, "days", 0, 1, vendors.MaxPerformanceDays)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		report, err := svc.Performance(r.Context(), days)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

func VendorsSuspend(svc vendorsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendors service unavailable"))
			return
		}

		var req vendorSuspendRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Suspend(r.Context(), suspension.SuspendInput{
			TargetID: req.VendorID,
			AdminID:  actorID(r, req.AdminID),
			Reason:   req.Reason,
			Notes:    req.Notes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "vendor suspended", result)
	}
}

func VendorsReinstate(svc vendorsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendors service unavailable"))
			return
		}

		result, err := svc.Reinstate(r.Context(),
			validators.QueryString(r, "vendorId"),
			actorID(r, validators.QueryString(r, "adminId")),
		)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "vendor reinstated", result)
	}
}

func VendorsSuspended(svc vendorsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "vendors service unavailable"))
			return
		}

		list, err := svc.ListSuspended(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if list == nil {
			list = []models.Vendor{}
		}
		responses.WriteSuccess(w, suspendedVendors{Vendors: list, Total: len(list)})
	}
}

func VendorsCommission(svc commissionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "commission service unavailable"))
			return
		}

		overview, err := svc.Commission(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, overview)
	}
}

func VendorsCommissionUpdate(svc commissionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "commission service unavailable"))
			return
		}

		var req vendorCommissionRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.UpdateCommission(r.Context(), vendors.CommissionInput{
			VendorID: req.VendorID,
			Rate:     req.CommissionRate,
			AdminID:  actorID(r, req.AdminID),
			Reason:   req.Reason,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "commission rate updated", result)
	}
}

func PlatformCommissionUpdate(svc commissionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "commission service unavailable"))
			return
		}

		var req platformCommissionRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.UpdatePlatformCommission(r.Context(), vendors.PlatformCommissionInput{
			Rate:    req.CommissionRate,
			AdminID: actorID(r, req.AdminID),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "platform commission rate updated", result)
	}
}
