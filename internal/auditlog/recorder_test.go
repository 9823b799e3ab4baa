package auditlog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/delito/admin-api/pkg/db/models"
	"github.com/delito/admin-api/pkg/enums"
	"github.com/delito/admin-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	logs []models.AdminLog
	err  error
}

func (s *stubStore) Create(ctx context.Context, log models.AdminLog) error {
	if s.err != nil {
		return s.err
	}
	s.logs = append(s.logs, log)
	return nil
}

type stubPublisher struct {
	topic string
	data  []byte
	attrs map[string]string
	err   error
}

func (p *stubPublisher) Publish(ctx context.Context, topic string, data []byte, attrs map[string]string) (string, error) {
	p.topic, p.data, p.attrs = topic, data, attrs
	return "msg-1", p.err
}

func newTestRecorder(t *testing.T, store Store, pub Publisher) *recorder {
	t.Helper()
	rec, err := NewRecorder(Params{Store: store, Publisher: pub, Topic: "admin-audit", Logger: logger.Nop()})
	require.NoError(t, err)
	r := rec.(*recorder)
	r.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	r.newID = func() string { return "log-1" }
	return r
}

func TestNewRecorderRequiresStore(t *testing.T) {
	_, err := NewRecorder(Params{Logger: logger.Nop()})
	require.Error(t, err)
}

func TestRecordWritesAndPublishes(t *testing.T) {
	store := &stubStore{}
	pub := &stubPublisher{}
	r := newTestRecorder(t, store, pub)

	r.Record(context.Background(), Entry{
		Action:     enums.AdminActionVendorSuspended,
		TargetType: enums.TargetVendor,
		TargetID:   "v1",
		AdminID:    "admin-1",
		Details:    map[string]any{"reason": "fraud"},
	})

	require.Len(t, store.logs, 1)
	assert.Equal(t, "log-1", store.logs[0].ID)
	assert.Equal(t, "v1", store.logs[0].TargetID)

	assert.Equal(t, "admin-audit", pub.topic)
	assert.Equal(t, "vendor_suspended", pub.attrs["action"])
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(pub.data, &decoded))
	assert.Equal(t, "admin-1", decoded["adminId"])
	assert.Equal(t, "vendor", decoded["targetType"])
}

func TestRecordStoreFailureStillPublishes(t *testing.T) {
	store := &stubStore{err: errors.New("firestore down")}
	pub := &stubPublisher{}
	r := newTestRecorder(t, store, pub)

	r.Record(context.Background(), Entry{Action: enums.AdminActionCommissionUpdated, TargetID: "v1"})

	assert.Empty(t, store.logs)
	assert.NotEmpty(t, pub.data)
}

func TestRecordPublishFailureIsSwallowed(t *testing.T) {
	store := &stubStore{}
	pub := &stubPublisher{err: errors.New("pubsub down")}
	r := newTestRecorder(t, store, pub)

	r.Record(context.Background(), Entry{Action: enums.AdminActionVendorApproved, TargetID: "v1"})

	assert.Len(t, store.logs, 1)
}

func TestRecordWithoutPublisher(t *testing.T) {
	store := &stubStore{}
	rec, err := NewRecorder(Params{Store: store, Logger: logger.Nop()})
	require.NoError(t, err)

	rec.Record(context.Background(), Entry{Action: enums.AdminActionVendorApproved, TargetID: "v1"})

	assert.Len(t, store.logs, 1)
}
