package cron

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/delito/admin-api/internal/reports"
	"github.com/delito/admin-api/pkg/logger"
	"github.com/delito/admin-api/pkg/metrics"
)

const gstLedgerJobName = "gst-ledger-export"

// GSTReporter builds the report the ledger rows are taken from.
type GSTReporter interface {
	GST(ctx context.Context, params reports.Params) (*reports.Report, error)
}

// LedgerWriter is the warehouse side of the export.
type LedgerWriter interface {
	EnsureTable(ctx context.Context, table string, schema bigquery.Schema) error
	InsertRows(ctx context.Context, table string, rows []any) error
}

type GSTLedgerJobParams struct {
	Logger   *logger.Logger
	Reports  GSTReporter
	Writer   LedgerWriter
	Table    string
	Metrics  *metrics.CronJobMetrics
	Exported ExportTracker
}

// ExportTracker remembers which periods were already written so hourly
// cycles export each month once.
type ExportTracker interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Del(ctx context.Context, keys ...string) error
}

const exportMarkerTTL = 62 * 24 * time.Hour

func NewGSTLedgerJob(params GSTLedgerJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Reports == nil {
		return nil, fmt.Errorf("gst reporter required")
	}
	if params.Writer == nil {
		return nil, fmt.Errorf("ledger writer required")
	}
	if params.Table == "" {
		return nil, fmt.Errorf("ledger table required")
	}
	return &gstLedgerJob{
		logg:     params.Logger,
		reports:  params.Reports,
		writer:   params.Writer,
		table:    params.Table,
		metrics:  params.Metrics,
		exported: params.Exported,
		now:      time.Now,
	}, nil
}

type gstLedgerJob struct {
	logg     *logger.Logger
	reports  GSTReporter
	writer   LedgerWriter
	table    string
	metrics  *metrics.CronJobMetrics
	exported ExportTracker
	now      func() time.Time
}

func (j *gstLedgerJob) Name() string { return gstLedgerJobName }

// Run exports the previous calendar month's per-vendor GST totals.
func (j *gstLedgerJob) Run(ctx context.Context) error {
	now := j.now().UTC()
	start, end, period := reports.PreviousMonth(now)
	logCtx := j.logg.WithField(ctx, "period", period)

	marker := "delito:gst-ledger:" + period
	if j.exported != nil {
		fresh, err := j.exported.SetNX(ctx, marker, now.Format(time.RFC3339), exportMarkerTTL)
		if err != nil {
			return fmt.Errorf("gst ledger marker: %w", err)
		}
		if !fresh {
			j.logg.Debug(logCtx, "gst ledger already exported")
			return nil
		}
	}

	if err := j.export(ctx, start, end, period, now); err != nil {
		if j.exported != nil {
			if delErr := j.exported.Del(ctx, marker); delErr != nil {
				j.logg.WarnErr(logCtx, "failed to clear gst ledger marker", delErr)
			}
		}
		return err
	}
	return nil
}

func (j *gstLedgerJob) export(ctx context.Context, start, end time.Time, period string, now time.Time) error {
	report, err := j.reports.GST(ctx, reports.Params{
		StartDate: start.Format(reports.DateLayout),
		EndDate:   end.Format(reports.DateLayout),
	})
	if err != nil {
		return fmt.Errorf("gst ledger report %s: %w", period, err)
	}
	schema, err := reports.LedgerSchema()
	if err != nil {
		return fmt.Errorf("gst ledger schema: %w", err)
	}
	if err := j.writer.EnsureTable(ctx, j.table, schema); err != nil {
		return fmt.Errorf("gst ledger table: %w", err)
	}

	ledger := reports.LedgerRows(report, period, now)
	rows := make([]any, 0, len(ledger))
	for i := range ledger {
		rows = append(rows, &ledger[i])
	}
	if err := j.writer.InsertRows(ctx, j.table, rows); err != nil {
		return fmt.Errorf("gst ledger insert %s: %w", period, err)
	}
	j.metrics.AddItems(gstLedgerJobName, "exported", len(rows))

	logCtx := j.logg.WithFields(ctx, map[string]any{
		"period": period,
		"rows":   len(rows),
		"table":  j.table,
	})
	j.logg.Info(logCtx, "gst ledger export complete")
	return nil
}
