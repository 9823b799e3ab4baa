// Package verification applies onboarding review decisions to vendors and
// delivery persons.
package verification

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/delito/admin-api/internal/auditlog"
	"github.com/delito/admin-api/pkg/db"
	"github.com/delito/admin-api/pkg/db/models"
	"github.com/delito/admin-api/pkg/enums"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
)

// Verifiable is any document that embeds models.Verification.
type Verifiable interface {
	VerificationState() models.Verification
}

// Store loads, lists and patches one kind of verifiable document.
type Store[T Verifiable] interface {
	Get(ctx context.Context, id string) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id string, fields map[string]any) error
}

// Target describes the kind of document under review.
type Target struct {
	Label         string
	IDField       string
	Type          enums.TargetType
	ApproveAction enums.AdminAction
	RejectAction  enums.AdminAction
	// Storefront marks vendors, which go online on approval and offline on
	// rejection.
	Storefront bool
}

var (
	VendorTarget = Target{
		Label:         "vendor",
		IDField:       "vendorId",
		Type:          enums.TargetVendor,
		ApproveAction: enums.AdminActionVendorApproved,
		RejectAction:  enums.AdminActionVendorRejected,
		Storefront:    true,
	}
	DeliveryPersonTarget = Target{
		Label:         "delivery person",
		IDField:       "deliveryPersonId",
		Type:          enums.TargetDeliveryPerson,
		ApproveAction: enums.AdminActionDeliveryApproved,
		RejectAction:  enums.AdminActionDeliveryRejected,
	}
)

// Decision is an admin review of one account.
type Decision struct {
	TargetID string
	AdminID  string
	Action   string
	Notes    string
	Reason   string
}

// Result is the account's review state after a decision.
type Result struct {
	ID                 string                   `json:"id"`
	IsVerified         bool                     `json:"isVerified"`
	VerificationStatus enums.VerificationStatus `json:"verificationStatus"`
	DecidedAt          time.Time                `json:"decidedAt"`
}

// Counts tallies accounts per review state.
type Counts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// ListResult is the filtered review queue.
type ListResult[T any] struct {
	Items  []T
	Counts Counts
}

// StatusAll disables the status filter on List.
const StatusAll = "all"

// Manager applies review decisions for one document kind.
type Manager[T Verifiable] struct {
	store  Store[T]
	audit  auditlog.Recorder
	target Target
	now    func() time.Time
}

// NewManager builds a Manager for target.
func NewManager[T Verifiable](store Store[T], audit auditlog.Recorder, target Target) (*Manager[T], error) {
	if store == nil {
		return nil, errors.New("verification store required")
	}
	if audit == nil {
		return nil, errors.New("audit recorder required")
	}
	return &Manager[T]{store: store, audit: audit, target: target, now: time.Now}, nil
}

// List returns accounts whose review state matches status. An empty status
// means pending. Counts always cover every account.
func (m *Manager[T]) List(ctx context.Context, status string) (*ListResult[T], error) {
	filter, err := parseFilter(status)
	if err != nil {
		return nil, err
	}
	docs, err := m.store.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list "+m.target.Label+"s")
	}

	out := &ListResult[T]{Items: make([]T, 0)}
	for _, doc := range docs {
		state := doc.VerificationState().EffectiveStatus()
		out.Counts.Total++
		switch state {
		case enums.VerificationStatusApproved:
			out.Counts.Approved++
		case enums.VerificationStatusRejected:
			out.Counts.Rejected++
		default:
			out.Counts.Pending++
		}
		if filter == "" || state == filter {
			out.Items = append(out.Items, doc)
		}
	}
	return out, nil
}

func parseFilter(status string) (enums.VerificationStatus, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	switch status {
	case "":
		return enums.VerificationStatusPending, nil
	case StatusAll:
		return "", nil
	}
	parsed, err := enums.ParseVerificationStatus(status)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter")
	}
	return parsed, nil
}

// Apply approves or rejects an account. Rejected accounts may be approved later.
func (m *Manager[T]) Apply(ctx context.Context, decision Decision) (*Result, error) {
	id := strings.TrimSpace(decision.TargetID)
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, m.target.IDField+" is required")
	}
	action, err := enums.ParseVerificationAction(strings.ToLower(strings.TrimSpace(decision.Action)))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "action must be approve or reject")
	}
	adminID := strings.TrimSpace(decision.AdminID)
	if adminID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "adminId is required")
	}

	if _, err := m.store.Get(ctx, id); err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, m.target.Label+" not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to load "+m.target.Label)
	}

	now := m.now().UTC()
	fields := DecisionFields(m.target, action, decision, adminID, now)
	if err := m.store.Update(ctx, id, fields); err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, m.target.Label+" not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to update "+m.target.Label)
	}

	auditAction := m.target.ApproveAction
	if action == enums.VerificationActionReject {
		auditAction = m.target.RejectAction
	}
	m.audit.Record(ctx, auditlog.Entry{
		Action:     auditAction,
		TargetType: m.target.Type,
		TargetID:   id,
		AdminID:    adminID,
		Details:    map[string]any{"notes": strings.TrimSpace(decision.Notes), "reason": strings.TrimSpace(decision.Reason)},
	})

	return &Result{
		ID:                 id,
		IsVerified:         action == enums.VerificationActionApprove,
		VerificationStatus: action.Result(),
		DecidedAt:          now,
	}, nil
}

// DecisionFields is the partial update written for a review decision.
func DecisionFields(target Target, action enums.VerificationAction, decision Decision, adminID string, now time.Time) map[string]any {
	fields := map[string]any{
		"verificationStatus": string(action.Result()),
		"updatedAt":          now,
	}
	if notes := strings.TrimSpace(decision.Notes); notes != "" {
		fields["verificationNotes"] = notes
	}

	if action == enums.VerificationActionApprove {
		fields["isVerified"] = true
		fields["verifiedAt"] = now
		fields["verifiedBy"] = adminID
		if target.Storefront {
			fields["isOnline"] = true
			fields["setupComplete"] = true
		}
		return fields
	}

	fields["isVerified"] = false
	fields["rejectionReason"] = strings.TrimSpace(decision.Reason)
	fields["rejectedAt"] = now
	if target.Storefront {
		fields["isOnline"] = false
	}
	return fields
}
