// Package suspension implements the Active/Suspended lifecycle shared by
// vendors and delivery persons.
package suspension

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/delito/admin-api/internal/auditlog"
	"github.com/delito/admin-api/pkg/db"
	"github.com/delito/admin-api/pkg/db/models"
	"github.com/delito/admin-api/pkg/enums"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
)

// Suspendable is any document that embeds models.Suspension.
type Suspendable interface {
	SuspensionState() models.Suspension
}

// Store loads and patches one kind of suspendable document. Get returns
// db.ErrNotFound for missing documents.
type Store[T Suspendable] interface {
	Get(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, id string, fields map[string]any) error
}

// Target describes the kind of document being suspended.
type Target struct {
	Label           string
	IDField         string
	Type            enums.TargetType
	SuspendAction   enums.AdminAction
	ReinstateAction enums.AdminAction
	// OfflineFields are forced to false when the account is suspended.
	OfflineFields []string
}

var (
	VendorTarget = Target{
		Label:           "vendor",
		IDField:         "vendorId",
		Type:            enums.TargetVendor,
		SuspendAction:   enums.AdminActionVendorSuspended,
		ReinstateAction: enums.AdminActionVendorReinstated,
		OfflineFields:   []string{"isOnline"},
	}
	DeliveryPersonTarget = Target{
		Label:           "delivery person",
		IDField:         "deliveryPersonId",
		Type:            enums.TargetDeliveryPerson,
		SuspendAction:   enums.AdminActionDeliverySuspended,
		ReinstateAction: enums.AdminActionDeliveryReinstated,
		OfflineFields:   []string{"isOnline", "isAvailable"},
	}
)

// SuspendInput is an admin request to suspend an account.
type SuspendInput struct {
	TargetID string
	AdminID  string
	Reason   string
	Notes    string
}

// Result is the account's suspension state after a transition.
type Result struct {
	ID           string                 `json:"id"`
	IsSuspended  bool                   `json:"isSuspended"`
	Reason       enums.SuspensionReason `json:"suspensionReason,omitempty"`
	SuspendedAt  *time.Time             `json:"suspendedAt,omitempty"`
	ReinstatedAt *time.Time             `json:"reinstatedAt,omitempty"`
}

// Manager guards and applies suspension transitions for one document kind.
type Manager[T Suspendable] struct {
	store  Store[T]
	audit  auditlog.Recorder
	target Target
	now    func() time.Time
}

// NewManager builds a Manager for target.
func NewManager[T Suspendable](store Store[T], audit auditlog.Recorder, target Target) (*Manager[T], error) {
	if store == nil {
		return nil, errors.New("suspension store required")
	}
	if audit == nil {
		return nil, errors.New("audit recorder required")
	}
	return &Manager[T]{store: store, audit: audit, target: target, now: time.Now}, nil
}

// Suspend moves an active account to suspended. Suspending an already
// suspended account is rejected without a write.
func (m *Manager[T]) Suspend(ctx context.Context, input SuspendInput) (*Result, error) {
	id := strings.TrimSpace(input.TargetID)
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, m.target.IDField+" is required")
	}
	adminID := strings.TrimSpace(input.AdminID)
	if adminID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "adminId is required")
	}
	reason, err := enums.ParseSuspensionReason(strings.TrimSpace(input.Reason))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid suspension reason").
			WithDetails(map[string]any{"allowed": enums.SuspensionReasons()})
	}

	current, err := m.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.IsSuspended {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("%s is already suspended", m.target.Label))
	}

	now := m.now().UTC()
	if err := m.store.Update(ctx, id, SuspendFields(m.target, reason, strings.TrimSpace(input.Notes), adminID, now)); err != nil {
		return nil, m.writeError(err)
	}

	m.audit.Record(ctx, auditlog.Entry{
		Action:     m.target.SuspendAction,
		TargetType: m.target.Type,
		TargetID:   id,
		AdminID:    adminID,
		Details:    map[string]any{"reason": string(reason), "notes": strings.TrimSpace(input.Notes)},
	})
	return &Result{ID: id, IsSuspended: true, Reason: reason, SuspendedAt: &now}, nil
}

// Reinstate moves a suspended account back to active. Reinstating an active
// account is rejected without a write.
func (m *Manager[T]) Reinstate(ctx context.Context, targetID, adminID string) (*Result, error) {
	id := strings.TrimSpace(targetID)
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, m.target.IDField+" is required")
	}
	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "adminId is required")
	}

	current, err := m.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.IsSuspended {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("%s is not suspended", m.target.Label))
	}

	now := m.now().UTC()
	if err := m.store.Update(ctx, id, ReinstateFields(adminID, now)); err != nil {
		return nil, m.writeError(err)
	}

	m.audit.Record(ctx, auditlog.Entry{
		Action:     m.target.ReinstateAction,
		TargetType: m.target.Type,
		TargetID:   id,
		AdminID:    adminID,
		Details:    map[string]any{"previousReason": string(current.SuspensionReason)},
	})
	return &Result{ID: id, IsSuspended: false, ReinstatedAt: &now}, nil
}

func (m *Manager[T]) load(ctx context.Context, id string) (models.Suspension, error) {
	doc, err := m.store.Get(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return models.Suspension{}, pkgerrors.New(pkgerrors.CodeNotFound, m.target.Label+" not found")
		}
		return models.Suspension{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to load "+m.target.Label)
	}
	return (*doc).SuspensionState(), nil
}

func (m *Manager[T]) writeError(err error) error {
	if db.IsNotFound(err) {
		return pkgerrors.New(pkgerrors.CodeNotFound, m.target.Label+" not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to update "+m.target.Label)
}

// SuspendFields is the partial update applied on suspension.
func SuspendFields(target Target, reason enums.SuspensionReason, notes, adminID string, now time.Time) map[string]any {
	fields := map[string]any{
		"isSuspended":      true,
		"suspensionReason": string(reason),
		"suspensionNotes":  notes,
		"suspendedAt":      now,
		"suspendedBy":      adminID,
		"updatedAt":        now,
	}
	for _, f := range target.OfflineFields {
		fields[f] = false
	}
	return fields
}

// ReinstateFields is the partial update applied on reinstatement.
func ReinstateFields(adminID string, now time.Time) map[string]any {
	return map[string]any{
		"isSuspended":      false,
		"suspensionReason": firestore.Delete,
		"suspensionNotes":  firestore.Delete,
		"suspendedAt":      firestore.Delete,
		"suspendedBy":      firestore.Delete,
		"reinstatedAt":     now,
		"reinstatedBy":     adminID,
		"updatedAt":        now,
	}
}

// Suspended filters docs down to suspended accounts.
func Suspended[T Suspendable](docs []T) []T {
	out := make([]T, 0)
	for _, d := range docs {
		if d.SuspensionState().IsSuspended {
			out = append(out, d)
		}
	}
	return out
}
