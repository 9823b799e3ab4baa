package orders

import (
	"github.com/delito/admin-api/internal/aggregate"
	"github.com/delito/admin-api/pkg/db/models"
	"github.com/delito/admin-api/pkg/enums"
)

// ListParams filters the order list.
type ListParams struct {
	Status string
	Limit  int
}

// View is an order with the names of the parties involved.
type View struct {
	models.Order
	Bucket             enums.OrderBucket `json:"bucket"`
	VendorName         string            `json:"vendorName"`
	CustomerName       string            `json:"customerName"`
	DeliveryPersonName string            `json:"deliveryPersonName,omitempty"`
}

type ListResult struct {
	Orders  []View                 `json:"orders"`
	Summary aggregate.StatusCounts `json:"summary"`
}

// UpdateInput is the allow-listed set of fields an admin may change.
type UpdateInput struct {
	OrderID          string
	Status           *string
	PaymentStatus    *string
	DeliveryPersonID *string
	CancelReason     *string
}
