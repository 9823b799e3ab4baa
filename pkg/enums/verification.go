package enums

import "fmt"

// VerificationStatus is the onboarding review state of a vendor or delivery person.
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"
)

var validVerificationStatuses = []VerificationStatus{
	VerificationStatusPending,
	VerificationStatusApproved,
	VerificationStatusRejected,
}

// String implements fmt.Stringer.
func (v VerificationStatus) String() string {
	return string(v)
}

// IsValid reports whether the value is a known VerificationStatus.
func (v VerificationStatus) IsValid() bool {
	for _, candidate := range validVerificationStatuses {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseVerificationStatus converts raw input into a VerificationStatus.
func ParseVerificationStatus(value string) (VerificationStatus, error) {
	for _, candidate := range validVerificationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid verification status %q", value)
}

// VerificationAction is the admin decision applied to a pending account.
type VerificationAction string

const (
	VerificationActionApprove VerificationAction = "approve"
	VerificationActionReject  VerificationAction = "reject"
)

// ParseVerificationAction converts raw input into a VerificationAction.
func ParseVerificationAction(value string) (VerificationAction, error) {
	switch VerificationAction(value) {
	case VerificationActionApprove, VerificationActionReject:
		return VerificationAction(value), nil
	}
	return "", fmt.Errorf("invalid verification action %q", value)
}

// Result is the status an action moves the account into.
func (a VerificationAction) Result() VerificationStatus {
	if a == VerificationActionApprove {
		return VerificationStatusApproved
	}
	return VerificationStatusRejected
}
