package cron

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/delito/admin-api/internal/delivery"
	"github.com/delito/admin-api/internal/reports"
	"github.com/delito/admin-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type stubSyncer struct {
	result *delivery.SyncResult
	err    error
	inputs []delivery.SyncInput
}

func (s *stubSyncer) Sync(ctx context.Context, input delivery.SyncInput) (*delivery.SyncResult, error) {
	s.inputs = append(s.inputs, input)
	return s.result, s.err
}

func TestEarningsSyncJobSyncsEveryone(t *testing.T) {
	result := &delivery.SyncResult{}
	result.Succeed(delivery.SyncItem{DeliveryPersonID: "d1", TotalEarnings: 77})
	syncer := &stubSyncer{result: result}
	job, err := NewEarningsSyncJob(EarningsSyncJobParams{Logger: logger.Nop(), Syncer: syncer})
	require.NoError(t, err)

	require.NoError(t, job.Run(context.Background()))
	require.Len(t, syncer.inputs, 1)
	assert.Equal(t, delivery.SyncInput{}, syncer.inputs[0])
	assert.Equal(t, earningsSyncJobName, job.Name())
}

func TestEarningsSyncJobCombinesItemFailures(t *testing.T) {
	result := &delivery.SyncResult{}
	result.Succeed(delivery.SyncItem{DeliveryPersonID: "d1"})
	result.Fail(delivery.SyncItem{DeliveryPersonID: "d2"}, errors.New("deadline exceeded"))
	result.Fail(delivery.SyncItem{DeliveryPersonID: "d3"}, errors.New("permission denied"))
	job, err := NewEarningsSyncJob(EarningsSyncJobParams{Logger: logger.Nop(), Syncer: &stubSyncer{result: result}})
	require.NoError(t, err)

	err = job.Run(context.Background())
	require.Error(t, err)
	assert.Len(t, multierr.Errors(errors.Unwrap(err)), 2)
	assert.Contains(t, err.Error(), "2 of 3 failed")
	assert.Contains(t, err.Error(), "sync d3")
}

func TestEarningsSyncJobPropagatesSyncError(t *testing.T) {
	job, err := NewEarningsSyncJob(EarningsSyncJobParams{Logger: logger.Nop(), Syncer: &stubSyncer{err: errors.New("list failed")}})
	require.NoError(t, err)
	assert.Error(t, job.Run(context.Background()))
}

type stubReporter struct {
	params []reports.Params
	report *reports.Report
	err    error
}

func (s *stubReporter) GST(ctx context.Context, params reports.Params) (*reports.Report, error) {
	s.params = append(s.params, params)
	return s.report, s.err
}

type stubWriter struct {
	ensured  []string
	inserted []any
	err      error
}

func (s *stubWriter) EnsureTable(ctx context.Context, table string, schema bigquery.Schema) error {
	s.ensured = append(s.ensured, table)
	return nil
}

func (s *stubWriter) InsertRows(ctx context.Context, table string, rows []any) error {
	if s.err != nil {
		return s.err
	}
	s.inserted = append(s.inserted, rows...)
	return nil
}

type memoryTracker struct {
	keys map[string]bool
}

func (m *memoryTracker) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	if m.keys[key] {
		return false, nil
	}
	m.keys[key] = true
	return true, nil
}

func (m *memoryTracker) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.keys, k)
	}
	return nil
}

func newLedgerJob(t *testing.T, reporter *stubReporter, writer *stubWriter, tracker ExportTracker) *gstLedgerJob {
	t.Helper()
	job, err := NewGSTLedgerJob(GSTLedgerJobParams{
		Logger:   logger.Nop(),
		Reports:  reporter,
		Writer:   writer,
		Table:    "gst_ledger",
		Exported: tracker,
	})
	require.NoError(t, err)
	ledger := job.(*gstLedgerJob)
	ledger.now = func() time.Time { return time.Date(2026, 3, 5, 1, 0, 0, 0, time.UTC) }
	return ledger
}

func ledgerReport() *reports.Report {
	r := &reports.Report{Summary: reports.Summary{GSTRate: 18}, Vendors: []reports.Vendor{{VendorID: "v1"}, {VendorID: "v2"}}}
	r.Vendors[0].PlatformEarning = 177
	return r
}

func TestGSTLedgerJobExportsPreviousMonthOnce(t *testing.T) {
	reporter := &stubReporter{report: ledgerReport()}
	writer := &stubWriter{}
	tracker := &memoryTracker{keys: map[string]bool{}}
	job := newLedgerJob(t, reporter, writer, tracker)

	require.NoError(t, job.Run(context.Background()))
	require.Len(t, reporter.params, 1)
	assert.Equal(t, reports.Params{StartDate: "2026-02-01", EndDate: "2026-02-28"}, reporter.params[0])
	assert.Equal(t, []string{"gst_ledger"}, writer.ensured)
	require.Len(t, writer.inserted, 2)
	row := writer.inserted[0].(*reports.LedgerRow)
	assert.Equal(t, "2026-02", row.Period)
	assert.Equal(t, 177.0, row.PlatformEarning)

	require.NoError(t, job.Run(context.Background()))
	assert.Len(t, reporter.params, 1)
}

func TestGSTLedgerJobClearsMarkerOnFailure(t *testing.T) {
	reporter := &stubReporter{report: ledgerReport()}
	writer := &stubWriter{err: errors.New("quota exceeded")}
	tracker := &memoryTracker{keys: map[string]bool{}}
	job := newLedgerJob(t, reporter, writer, tracker)

	err := job.Run(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "2026-02"))
	assert.Empty(t, tracker.keys)
}

func TestGSTLedgerJobWithoutTrackerAlwaysExports(t *testing.T) {
	reporter := &stubReporter{report: ledgerReport()}
	job := newLedgerJob(t, reporter, &stubWriter{}, nil)
	require.NoError(t, job.Run(context.Background()))
	require.NoError(t, job.Run(context.Background()))
	assert.Len(t, reporter.params, 2)
}

func TestGSTLedgerJobRequiresTable(t *testing.T) {
	_, err := NewGSTLedgerJob(GSTLedgerJobParams{Logger: logger.Nop(), Reports: &stubReporter{}, Writer: &stubWriter{}})
	assert.Error(t, err)
}
