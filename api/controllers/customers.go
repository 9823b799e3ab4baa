package controllers

import (
	"context"
	"net/http"

	"github.com/delito/admin-api/api/responses"
	"github.com/delito/admin-api/api/validators"
	"github.com/delito/admin-api/internal/customers"
	"github.com/delito/admin-api/internal/mutation"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
	"github.com/delito/admin-api/pkg/logger"
)

type customersService interface {
	List(ctx context.Context, params customers.ListParams) (*customers.ListResult, error)
	Update(ctx context.Context, input customers.UpdateInput) (*mutation.Result, error)
}

type customerUpdateRequest struct {
	CustomerID string  `json:"customerId"`
	Name       *string `json:"name"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Phone      *string `json:"phone"`
	IsBlocked  *bool   `json:"isBlocked"`
	AdminNotes *string `json:"adminNotes"`
}

func CustomersList(svc customersService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customers service unavailable"))
			return
		}

		result, err := svc.List(r.Context(), customers.ListParams{Search: validators.QueryString(r, "search")})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func CustomersUpdate(svc customersService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customers service unavailable"))
			return
		}

		var req customerUpdateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Update(r.Context(), customers.UpdateInput{
			CustomerID: req.CustomerID,
			Name:       req.Name,
			Email:      req.Email,
			Phone:      req.Phone,
			IsBlocked:  req.IsBlocked,
			AdminNotes: req.AdminNotes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "customer updated", result)
	}
}
