package complaints

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/delito/admin-api/internal/mutation"
	"github.com/delito/admin-api/pkg/db/models"
	"github.com/delito/admin-api/pkg/enums"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
)

// Service exposes the admin complaint operations.
type Service interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Update(ctx context.Context, input UpdateInput) (*mutation.Result, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds a complaint service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, errors.New("complaint repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

type ListParams struct {
	Status   string
	Priority string
	Type     string
}

// Summary counts the filtered complaints. Resolved includes closed ones.
type Summary struct {
	Total         int `json:"total"`
	Open          int `json:"open"`
	InProgress    int `json:"inProgress"`
	Resolved      int `json:"resolved"`
	RefundPending int `json:"refundPending"`
	HighPriority  int `json:"highPriority"`
}

type ListResult struct {
	Complaints []models.Complaint `json:"complaints"`
	Summary    Summary            `json:"summary"`
}

func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	var status enums.ComplaintStatus
	if raw := strings.TrimSpace(params.Status); raw != "" {
		parsed, err := enums.ParseComplaintStatus(raw)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter")
		}
		status = parsed
	}
	var priority enums.ComplaintPriority
	if raw := strings.TrimSpace(params.Priority); raw != "" {
		parsed, err := enums.ParseComplaintPriority(raw)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid priority filter")
		}
		priority = parsed
	}
	complaintType := enums.ComplaintType(strings.TrimSpace(params.Type))

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list complaints")
	}

	out := &ListResult{Complaints: make([]models.Complaint, 0, len(all))}
	for _, c := range all {
		if status != "" && c.Status != status {
			continue
		}
		if priority != "" && c.Priority != priority {
			continue
		}
		if complaintType != "" && c.Type != complaintType {
			continue
		}
		out.Complaints = append(out.Complaints, c)
		out.Summary.add(c)
	}
	sort.SliceStable(out.Complaints, func(i, j int) bool {
		return timeOrZero(out.Complaints[i].CreatedAt).After(timeOrZero(out.Complaints[j].CreatedAt))
	})
	return out, nil
}

func (s *Summary) add(c models.Complaint) {
	s.Total++
	switch {
	case c.Status == enums.ComplaintStatusOpen:
		s.Open++
	case c.Status == enums.ComplaintStatusInProgress:
		s.InProgress++
	case c.Status.IsTerminal():
		s.Resolved++
	}
	if c.RefundStatus == enums.RefundStatusPending {
		s.RefundPending++
	}
	if c.Priority.IsHigh() {
		s.HighPriority++
	}
}

// UpdateInput is the allow-listed set of fields an admin may change.
type UpdateInput struct {
	ComplaintID  string
	Status       *string
	Priority     *string
	Resolution   *string
	AdminNotes   *string
	RefundStatus *string
}

// Update patches a complaint. Moving it to Resolved or Closed stamps resolvedAt.
func (s *service) Update(ctx context.Context, input UpdateInput) (*mutation.Result, error) {
	now := s.now().UTC()
	patch := mutation.NewPatch().
		String("resolution", input.Resolution).
		String("adminNotes", input.AdminNotes)

	if input.Status != nil {
		status, err := enums.ParseComplaintStatus(strings.TrimSpace(*input.Status))
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "status must be one of Open, InProgress, Resolved, Closed")
		}
		patch.Set("status", string(status))
		if status.IsTerminal() {
			patch.Set("resolvedAt", now)
		}
	}
	if input.Priority != nil {
		priority, err := enums.ParseComplaintPriority(strings.TrimSpace(*input.Priority))
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "priority must be one of Low, Medium, High, Urgent")
		}
		patch.Set("priority", string(priority))
	}
	if input.RefundStatus != nil {
		refund := enums.RefundStatus(strings.TrimSpace(*input.RefundStatus))
		switch refund {
		case enums.RefundStatusPending, enums.RefundStatusProcessed, enums.RefundStatusRejected:
			patch.Set("refundStatus", string(refund))
		default:
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "refundStatus must be one of pending, processed, rejected")
		}
	}

	return mutation.Apply(ctx, mutation.Target{Label: "complaint", IDField: "complaintId"}, input.ComplaintID, patch, s.repo.Update, now)
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
