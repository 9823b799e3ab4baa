package models

import (
	"time"

	"github.com/delito/admin-api/pkg/enums"
)

// Suspension holds the suspension fields shared by vendors and delivery persons.
type Suspension struct {
	IsSuspended      bool                   `firestore:"isSuspended" json:"isSuspended"`
	SuspensionReason enums.SuspensionReason `firestore:"suspensionReason,omitempty" json:"suspensionReason,omitempty"`
	SuspensionNotes  string                 `firestore:"suspensionNotes,omitempty" json:"suspensionNotes,omitempty"`
	SuspendedAt      *time.Time             `firestore:"suspendedAt,omitempty" json:"suspendedAt,omitempty"`
	SuspendedBy      string                 `firestore:"suspendedBy,omitempty" json:"suspendedBy,omitempty"`
	ReinstatedAt     *time.Time             `firestore:"reinstatedAt,omitempty" json:"reinstatedAt,omitempty"`
	ReinstatedBy     string                 `firestore:"reinstatedBy,omitempty" json:"reinstatedBy,omitempty"`
}

// Verification holds the onboarding review fields.
type Verification struct {
	IsVerified         bool                     `firestore:"isVerified" json:"isVerified"`
	VerificationStatus enums.VerificationStatus `firestore:"verificationStatus,omitempty" json:"verificationStatus,omitempty"`
	VerificationNotes  string                   `firestore:"verificationNotes,omitempty" json:"verificationNotes,omitempty"`
	VerifiedAt         *time.Time               `firestore:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	VerifiedBy         string                   `firestore:"verifiedBy,omitempty" json:"verifiedBy,omitempty"`
	RejectionReason    string                   `firestore:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	RejectedAt         *time.Time               `firestore:"rejectedAt,omitempty" json:"rejectedAt,omitempty"`
}

// EffectiveStatus treats documents without a status as pending unless they
// are already verified.
func (v Verification) EffectiveStatus() enums.VerificationStatus {
	if v.VerificationStatus.IsValid() {
		return v.VerificationStatus
	}
	if v.IsVerified {
		return enums.VerificationStatusApproved
	}
	return enums.VerificationStatusPending
}

// SuspensionState exposes the embedded suspension fields.
func (s Suspension) SuspensionState() Suspension { return s }

// VerificationState exposes the embedded verification fields.
func (v Verification) VerificationState() Verification { return v }
