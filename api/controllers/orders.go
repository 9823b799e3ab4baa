package controllers

import (
	"context"
	"net/http"

	"github.com/delito/admin-api/api/responses"
	"github.com/delito/admin-api/api/validators"
	"github.com/delito/admin-api/internal/mutation"
	"github.com/delito/admin-api/internal/orders"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
	"github.com/delito/admin-api/pkg/logger"
	"github.com/delito/admin-api/pkg/pagination"
)

type ordersService interface {
	List(ctx context.Context, params orders.ListParams) (*orders.ListResult, error)
	Update(ctx context.Context, input orders.UpdateInput) (*mutation.Result, error)
}

type orderUpdateRequest struct {
	OrderID          string  `json:"orderId"`
	Status           *string `json:"status"`
	PaymentStatus    *string `json:"paymentStatus"`
	DeliveryPersonID *string `json:"deliveryPersonId"`
	CancelReason     *string `json:"cancelReason"`
}

func OrdersList(svc ordersService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), orders.ListParams{
			Status: validators.QueryString(r, "status"),
			Limit:  limit,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func OrdersUpdate(svc ordersService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		var req orderUpdateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Update(r.Context(), orders.UpdateInput{
			OrderID:          req.OrderID,
			Status:           req.Status,
			PaymentStatus:    req.PaymentStatus,
			DeliveryPersonID: req.DeliveryPersonID,
			CancelReason:     req.CancelReason,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "order updated", result)
	}
}
