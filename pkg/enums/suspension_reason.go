package enums

import "fmt"

// SuspensionReason is the fixed set of reasons an admin may give when suspending an account.
type SuspensionReason string

const (
	SuspensionReasonPolicyViolation    SuspensionReason = "policy_violation"
	SuspensionReasonFraud              SuspensionReason = "fraud"
	SuspensionReasonCustomerComplaints SuspensionReason = "customer_complaints"
	SuspensionReasonQualityIssues      SuspensionReason = "quality_issues"
	SuspensionReasonDocumentIssues     SuspensionReason = "document_issues"
	SuspensionReasonPaymentIssues      SuspensionReason = "payment_issues"
	SuspensionReasonSafetyConcerns     SuspensionReason = "safety_concerns"
	SuspensionReasonOther              SuspensionReason = "other"
)

var validSuspensionReasons = []SuspensionReason{
	SuspensionReasonPolicyViolation,
	SuspensionReasonFraud,
	SuspensionReasonCustomerComplaints,
	SuspensionReasonQualityIssues,
	SuspensionReasonDocumentIssues,
	SuspensionReasonPaymentIssues,
	SuspensionReasonSafetyConcerns,
	SuspensionReasonOther,
}

// SuspensionReasons returns the accepted reasons in display order.
func SuspensionReasons() []SuspensionReason {
	out := make([]SuspensionReason, len(validSuspensionReasons))
	copy(out, validSuspensionReasons)
	return out
}

// String implements fmt.Stringer.
func (s SuspensionReason) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SuspensionReason.
func (s SuspensionReason) IsValid() bool {
	for _, candidate := range validSuspensionReasons {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSuspensionReason converts raw input into a SuspensionReason.
func ParseSuspensionReason(value string) (SuspensionReason, error) {
	for _, candidate := range validSuspensionReasons {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid suspension reason %q", value)
}
