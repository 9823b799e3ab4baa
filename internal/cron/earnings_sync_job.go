package cron

import (
	"context"
	"fmt"

	"github.com/delito/admin-api/internal/delivery"
	"github.com/delito/admin-api/pkg/logger"
	"github.com/delito/admin-api/pkg/metrics"
)

const earningsSyncJobName = "delivery-earnings-sync"

// EarningsSyncer recomputes delivery earnings from completed tasks.
type EarningsSyncer interface {
	Sync(ctx context.Context, input delivery.SyncInput) (*delivery.SyncResult, error)
}

type EarningsSyncJobParams struct {
	Logger  *logger.Logger
	Syncer  EarningsSyncer
	Metrics *metrics.CronJobMetrics
}

func NewEarningsSyncJob(params EarningsSyncJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Syncer == nil {
		return nil, fmt.Errorf("earnings syncer required")
	}
	return &earningsSyncJob{logg: params.Logger, syncer: params.Syncer, metrics: params.Metrics}, nil
}

type earningsSyncJob struct {
	logg    *logger.Logger
	syncer  EarningsSyncer
	metrics *metrics.CronJobMetrics
}

func (j *earningsSyncJob) Name() string { return earningsSyncJobName }

// Run syncs every delivery person. Per-person write failures do not stop the
// run; they come back combined once every person has been tried.
func (j *earningsSyncJob) Run(ctx context.Context) error {
	result, err := j.syncer.Sync(ctx, delivery.SyncInput{})
	if err != nil {
		return fmt.Errorf("delivery earnings sync: %w", err)
	}
	j.metrics.AddItems(earningsSyncJobName, "synced", result.Synced)
	j.metrics.AddItems(earningsSyncJobName, "failed", result.Failed)

	logCtx := j.logg.WithFields(ctx, map[string]any{
		"synced": result.Synced,
		"failed": result.Failed,
	})
	if err := result.Err(); err != nil {
		return fmt.Errorf("delivery earnings sync: %d of %d failed: %w", result.Failed, len(result.Results), err)
	}
	j.logg.Info(logCtx, "delivery earnings sync complete")
	return nil
}
