// Package auditlog records admin mutations in the adminLogs collection and
// fans each record out to Pub/Sub. Both writes are best effort.
package auditlog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/delito/admin-api/pkg/db/models"
	"github.com/delito/admin-api/pkg/enums"
	"github.com/delito/admin-api/pkg/logger"
	"github.com/google/uuid"
)

// Entry describes one admin action.
type Entry struct {
	Action     enums.AdminAction
	TargetType enums.TargetType
	TargetID   string
	AdminID    string
	Details    map[string]any
}

// Store persists audit records.
type Store interface {
	Create(ctx context.Context, log models.AdminLog) error
}

// Publisher fans audit records out to subscribers.
type Publisher interface {
	Publish(ctx context.Context, topic string, data []byte, attrs map[string]string) (string, error)
}

// Recorder writes audit entries. Record never fails the caller.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

// Params groups the recorder dependencies. Publisher and Topic are optional.
type Params struct {
	Store     Store
	Publisher Publisher
	Topic     string
	Logger    *logger.Logger
}

type recorder struct {
	store     Store
	publisher Publisher
	topic     string
	logg      *logger.Logger
	now       func() time.Time
	newID     func() string
}

// NewRecorder builds a Recorder.
func NewRecorder(params Params) (Recorder, error) {
	if params.Store == nil {
		return nil, errors.New("audit store required")
	}
	if params.Logger == nil {
		return nil, errors.New("logger required")
	}
	return &recorder{
		store:     params.Store,
		publisher: params.Publisher,
		topic:     params.Topic,
		logg:      params.Logger,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}, nil
}

func (r *recorder) Record(ctx context.Context, entry Entry) {
	log := models.AdminLog{
		ID:         r.newID(),
		Action:     entry.Action,
		TargetType: entry.TargetType,
		TargetID:   entry.TargetID,
		AdminID:    entry.AdminID,
		Details:    entry.Details,
		Timestamp:  r.now().UTC(),
	}
	ctx = r.logg.WithFields(ctx, map[string]any{
		"audit_id":     log.ID,
		"audit_action": string(log.Action),
		"target_id":    log.TargetID,
	})

	if err := r.store.Create(ctx, log); err != nil {
		r.logg.WarnErr(ctx, "auditlog.store_failed", err)
	}
	r.publish(ctx, log)
}

func (r *recorder) publish(ctx context.Context, log models.AdminLog) {
	if r.publisher == nil || r.topic == "" {
		return
	}
	payload, err := json.Marshal(log)
	if err != nil {
		r.logg.WarnErr(ctx, "auditlog.encode_failed", err)
		return
	}
	attrs := map[string]string{
		"action":     string(log.Action),
		"targetType": string(log.TargetType),
	}
	if _, err := r.publisher.Publish(ctx, r.topic, payload, attrs); err != nil {
		r.logg.WarnErr(ctx, "auditlog.publish_failed", err)
	}
}
