package models

import (
	"time"

	"github.com/delito/admin-api/pkg/enums"
)

// Order is a customer order document. Money fields are in rupees; a zero
// value means the ordering app did not write the field.
type Order struct {
	ID               string            `firestore:"-" json:"id"`
	OrderNumber      string            `firestore:"orderNumber,omitempty" json:"orderNumber,omitempty"`
	VendorID         string            `firestore:"vendorId" json:"vendorId"`
	CustomerID       string            `firestore:"customerId" json:"customerId"`
	DeliveryPersonID string            `firestore:"deliveryPersonId,omitempty" json:"deliveryPersonId,omitempty"`
	Status           enums.OrderStatus `firestore:"status" json:"status"`
	Items            []OrderItem       `firestore:"items,omitempty" json:"items,omitempty"`
	ItemTotal        float64           `firestore:"itemTotal,omitempty" json:"itemTotal,omitempty"`
	Subtotal         float64           `firestore:"subtotal,omitempty" json:"subtotal"`
	Discount         float64           `firestore:"discount,omitempty" json:"discount"`
	DeliveryFee      float64           `firestore:"deliveryFee,omitempty" json:"deliveryFee"`
	Tax              float64           `firestore:"tax,omitempty" json:"tax"`
	Total            float64           `firestore:"total" json:"total"`
	Incentive        float64           `firestore:"incentive,omitempty" json:"incentive,omitempty"`
	PaymentMode      enums.PaymentMode `firestore:"paymentMode,omitempty" json:"paymentMode,omitempty"`
	PaymentStatus    string            `firestore:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	Rating           float64           `firestore:"rating,omitempty" json:"rating,omitempty"`
	DeliveryRating   float64           `firestore:"deliveryRating,omitempty" json:"deliveryRating,omitempty"`
	PreparationTime  float64           `firestore:"preparationTime,omitempty" json:"preparationTime,omitempty"`
	CreatedAt        time.Time         `firestore:"createdAt" json:"createdAt"`
	UpdatedAt        *time.Time        `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	AcceptedAt       *time.Time        `firestore:"acceptedAt,omitempty" json:"acceptedAt,omitempty"`
	PreparedAt       *time.Time        `firestore:"preparedAt,omitempty" json:"preparedAt,omitempty"`
	PickedUpAt       *time.Time        `firestore:"pickedUpAt,omitempty" json:"pickedUpAt,omitempty"`
	DeliveredAt      *time.Time        `firestore:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	CancelledAt      *time.Time        `firestore:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	CancelReason     string            `firestore:"cancelReason,omitempty" json:"cancelReason,omitempty"`
}

func (o *Order) SetID(id string) { o.ID = id }

// OrderItem is one line on an order.
type OrderItem struct {
	Name     string  `firestore:"name" json:"name"`
	Quantity int     `firestore:"quantity" json:"quantity"`
	Price    float64 `firestore:"price" json:"price"`
}

// Revenue is subtotal, or total when the subtotal was never written.
func (o Order) Revenue() float64 {
	if o.Subtotal != 0 {
		return o.Subtotal
	}
	return o.Total
}

// SalesBase is the item value commission is charged on: itemTotal, then
// subtotal, then total.
func (o Order) SalesBase() float64 {
	if o.ItemTotal != 0 {
		return o.ItemTotal
	}
	return o.Revenue()
}
