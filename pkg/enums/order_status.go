package enums

import "fmt"

// OrderStatus tracks the lifecycle of a customer order as written by the ordering apps.
type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "Pending"
	OrderStatusAccepted        OrderStatus = "Accepted"
	OrderStatusPreparing       OrderStatus = "Preparing"
	OrderStatusPrepared        OrderStatus = "Prepared"
	OrderStatusPickedUp        OrderStatus = "PickedUp"
	OrderStatusSentForDelivery OrderStatus = "SentForDelivery"
	OrderStatusDelivered       OrderStatus = "Delivered"
	OrderStatusCompleted       OrderStatus = "Completed"
	OrderStatusCancelled       OrderStatus = "Cancelled"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusAccepted,
	OrderStatusPreparing,
	OrderStatusPrepared,
	OrderStatusPickedUp,
	OrderStatusSentForDelivery,
	OrderStatusDelivered,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// String implements fmt.Stringer.
func (o OrderStatus) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OrderStatus.
func (o OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == o {
			return true
		}
	}
	return false
}

// IsCompleted reports whether the order counts toward revenue.
func (o OrderStatus) IsCompleted() bool {
	return o == OrderStatusDelivered || o == OrderStatusCompleted
}

// Bucket maps the status onto the dashboard summary category.
func (o OrderStatus) Bucket() OrderBucket {
	switch o {
	case OrderStatusPending:
		return OrderBucketPending
	case OrderStatusAccepted, OrderStatusPreparing, OrderStatusPrepared:
		return OrderBucketPreparing
	case OrderStatusPickedUp, OrderStatusSentForDelivery:
		return OrderBucketInTransit
	case OrderStatusDelivered, OrderStatusCompleted:
		return OrderBucketCompleted
	case OrderStatusCancelled:
		return OrderBucketCancelled
	}
	return OrderBucketOther
}

// TimestampField is the document field stamped when an order enters this status.
func (o OrderStatus) TimestampField() string {
	if o == "" {
		return ""
	}
	b := []byte(o)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b) + "At"
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}

// OrderBucket groups order statuses for summaries.
type OrderBucket string

const (
	OrderBucketPending   OrderBucket = "pending"
	OrderBucketPreparing OrderBucket = "preparing"
	OrderBucketInTransit OrderBucket = "inTransit"
	OrderBucketCompleted OrderBucket = "completed"
	OrderBucketCancelled OrderBucket = "cancelled"
	OrderBucketOther     OrderBucket = "other"
)
