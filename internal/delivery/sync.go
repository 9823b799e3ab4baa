package delivery

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/delito/admin-api/internal/aggregate"
	"github.com/delito/admin-api/internal/auditlog"
	"github.com/delito/admin-api/pkg/db"
	"github.com/delito/admin-api/pkg/enums"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
	"go.uber.org/multierr"
)

// SyncInput scopes a sync to one delivery person when DeliveryPersonID is set.
type SyncInput struct {
	DeliveryPersonID string
	AdminID          string
}

// SyncItem is the outcome for one delivery person.
type SyncItem struct {
	DeliveryPersonID string  `json:"deliveryPersonId"`
	Success          bool    `json:"success"`
	TotalEarnings    float64 `json:"totalEarnings"`
	TotalDeliveries  int     `json:"totalDeliveries"`
	TotalTips        float64 `json:"totalTips"`
	Error            string  `json:"error,omitempty"`
}

// SyncResult reports every item. A failed item does not stop the others.
type SyncResult struct {
	Results  []SyncItem `json:"results"`
	Synced   int        `json:"synced"`
	Failed   int        `json:"failed"`
	SyncedAt time.Time  `json:"syncedAt"`

	errs error
}

// Err combines the per-item write failures, or nil when every item synced.
func (r *SyncResult) Err() error {
	if r == nil {
		return nil
	}
	return r.errs
}

// Succeed records a written item.
func (r *SyncResult) Succeed(item SyncItem) {
	item.Success = true
	item.Error = ""
	r.Synced++
	r.Results = append(r.Results, item)
}

// Fail records an item whose write failed. The caller-facing error text is
// generic; err is kept for Err.
func (r *SyncResult) Fail(item SyncItem, err error) {
	item.Success = false
	item.Error = "failed to update delivery person"
	r.Failed++
	r.Results = append(r.Results, item)
	r.errs = multierr.Append(r.errs, fmt.Errorf("sync %s: %w", item.DeliveryPersonID, err))
}

func (s *service) taskRates() aggregate.TaskRates {
	return aggregate.TaskRates{
		BaseFee: s.business.DeliveryBaseFee,
		PerKm:   s.business.DeliveryPerKmRate,
		FlatFee: s.business.DeliveryFlatTaskFee,
	}
}

// Sync recomputes earnings from completed delivery tasks and overwrites the
// cached totals on each delivery person. Running it twice without task
// changes writes the same totals.
func (s *service) Sync(ctx context.Context, input SyncInput) (*SyncResult, error) {
	scope := strings.TrimSpace(input.DeliveryPersonID)

	var ids []string
	if scope != "" {
		if _, err := s.repo.Get(ctx, scope); err != nil {
			if db.IsNotFound(err) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "delivery person not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to load delivery person")
		}
		ids = []string{scope}
	} else {
		persons, err := s.repo.List(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list delivery persons")
		}
		for _, p := range persons {
			ids = append(ids, p.ID)
		}
		sort.Strings(ids)
	}

	tasks, err := s.repo.ListTasks(ctx, scope)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list delivery tasks")
	}
	totals := aggregate.TaskTotals(tasks, s.taskRates())

	now := s.now().UTC()
	result := &SyncResult{Results: make([]SyncItem, 0, len(ids)), SyncedAt: now}
	for _, id := range ids {
		total := totals[id]
		if total == nil {
			total = &aggregate.TaskTotal{}
		}
		item := SyncItem{
			DeliveryPersonID: id,
			TotalEarnings:    total.TotalEarnings(),
			TotalDeliveries:  total.Deliveries,
			TotalTips:        total.Tips,
		}
		err := s.repo.Update(ctx, id, map[string]any{
			"totalEarnings":   item.TotalEarnings,
			"totalTips":       item.TotalTips,
			"totalDeliveries": item.TotalDeliveries,
			"lastSyncedAt":    now,
			"updatedAt":       now,
		})
		if err != nil {
			result.Fail(item, err)
			s.logg.WarnErr(s.logg.WithField(ctx, "delivery_person_id", id), "delivery.sync.item_failed", err)
			continue
		}
		result.Succeed(item)
	}

	if input.AdminID != "" {
		s.audit.Record(ctx, auditlog.Entry{
			Action:     enums.AdminActionDeliveryEarningsSynced,
			TargetType: enums.TargetDeliveryPerson,
			TargetID:   scope,
			AdminID:    input.AdminID,
			Details:    map[string]any{"synced": result.Synced, "failed": result.Failed},
		})
	}
	return result, nil
}
