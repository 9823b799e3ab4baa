package enums

import "fmt"

// ComplaintStatus tracks the handling of a customer complaint.
type ComplaintStatus string

const (
	ComplaintStatusOpen       ComplaintStatus = "Open"
	ComplaintStatusInProgress ComplaintStatus = "InProgress"
	ComplaintStatusResolved   ComplaintStatus = "Resolved"
	ComplaintStatusClosed     ComplaintStatus = "Closed"
)

var validComplaintStatuses = []ComplaintStatus{
	ComplaintStatusOpen,
	ComplaintStatusInProgress,
	ComplaintStatusResolved,
	ComplaintStatusClosed,
}

// String implements fmt.Stringer.
func (c ComplaintStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ComplaintStatus.
func (c ComplaintStatus) IsValid() bool {
	for _, candidate := range validComplaintStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the complaint has been settled.
func (c ComplaintStatus) IsTerminal() bool {
	return c == ComplaintStatusResolved || c == ComplaintStatusClosed
}

// ParseComplaintStatus converts raw input into a ComplaintStatus.
func ParseComplaintStatus(value string) (ComplaintStatus, error) {
	for _, candidate := range validComplaintStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid complaint status %q", value)
}

// ComplaintPriority ranks complaints for triage.
type ComplaintPriority string

const (
	ComplaintPriorityLow    ComplaintPriority = "Low"
	ComplaintPriorityMedium ComplaintPriority = "Medium"
	ComplaintPriorityHigh   ComplaintPriority = "High"
	ComplaintPriorityUrgent ComplaintPriority = "Urgent"
)

var validComplaintPriorities = []ComplaintPriority{
	ComplaintPriorityLow,
	ComplaintPriorityMedium,
	ComplaintPriorityHigh,
	ComplaintPriorityUrgent,
}

// String implements fmt.Stringer.
func (c ComplaintPriority) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ComplaintPriority.
func (c ComplaintPriority) IsValid() bool {
	for _, candidate := range validComplaintPriorities {
		if candidate == c {
			return true
		}
	}
	return false
}

// IsHigh reports whether the complaint counts toward the high-priority summary.
func (c ComplaintPriority) IsHigh() bool {
	return c == ComplaintPriorityHigh || c == ComplaintPriorityUrgent
}

// ParseComplaintPriority converts raw input into a ComplaintPriority.
func ParseComplaintPriority(value string) (ComplaintPriority, error) {
	for _, candidate := range validComplaintPriorities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid complaint priority %q", value)
}

// ComplaintType categorises what went wrong.
type ComplaintType string

const (
	ComplaintTypeFoodQuality   ComplaintType = "food_quality"
	ComplaintTypeMissingItems  ComplaintType = "missing_items"
	ComplaintTypeWrongOrder    ComplaintType = "wrong_order"
	ComplaintTypeLateDelivery  ComplaintType = "late_delivery"
	ComplaintTypeRiderBehavior ComplaintType = "rider_behavior"
	ComplaintTypePayment       ComplaintType = "payment_issue"
	ComplaintTypeOther         ComplaintType = "other"
)

var AllComplaintTypes = []ComplaintType{
	ComplaintTypeFoodQuality,
	ComplaintTypeMissingItems,
	ComplaintTypeWrongOrder,
	ComplaintTypeLateDelivery,
	ComplaintTypeRiderBehavior,
	ComplaintTypePayment,
	ComplaintTypeOther,
}

// RefundStatus is the refund sub-state carried on a complaint.
type RefundStatus string

const (
	RefundStatusNone      RefundStatus = ""
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusProcessed RefundStatus = "processed"
	RefundStatusRejected  RefundStatus = "rejected"
)
