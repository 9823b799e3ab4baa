package models

import (
	"time"

	"github.com/delito/admin-api/pkg/enums"
)

// Complaint is a customer-raised issue about an order.
type Complaint struct {
	ID               string                  `firestore:"-" json:"id"`
	OrderID          string                  `firestore:"orderId,omitempty" json:"orderId,omitempty"`
	CustomerID       string                  `firestore:"customerId,omitempty" json:"customerId,omitempty"`
	VendorID         string                  `firestore:"vendorId,omitempty" json:"vendorId,omitempty"`
	DeliveryPersonID string                  `firestore:"deliveryPersonId,omitempty" json:"deliveryPersonId,omitempty"`
	Type             enums.ComplaintType     `firestore:"type,omitempty" json:"type,omitempty"`
	Subject          string                  `firestore:"subject,omitempty" json:"subject,omitempty"`
	Description      string                  `firestore:"description,omitempty" json:"description,omitempty"`
	Status           enums.ComplaintStatus   `firestore:"status" json:"status"`
	Priority         enums.ComplaintPriority `firestore:"priority,omitempty" json:"priority,omitempty"`
	Resolution       string                  `firestore:"resolution,omitempty" json:"resolution,omitempty"`
	AdminNotes       string                  `firestore:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	RefundStatus     enums.RefundStatus      `firestore:"refundStatus,omitempty" json:"refundStatus,omitempty"`
	RefundAmount     float64                 `firestore:"refundAmount,omitempty" json:"refundAmount,omitempty"`
	CreatedAt        *time.Time              `firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt        *time.Time              `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	ResolvedAt       *time.Time              `firestore:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
}

func (c *Complaint) SetID(id string) { c.ID = id }
