package mutation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/delito/admin-api/pkg/db"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var target = Target{Label: "customer", IDField: "customerId"}

func TestPatchSkipsNilInputs(t *testing.T) {
	name := "  Asha  "
	blocked := false
	p := NewPatch().String("name", &name).String("email", nil).Bool("isBlocked", &blocked).Float("rating", nil)

	assert.Equal(t, []string{"isBlocked", "name"}, p.Keys())
	now := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	fields := p.Fields(now)
	assert.Equal(t, "Asha", fields["name"])
	assert.Equal(t, false, fields["isBlocked"])
	assert.Equal(t, now, fields["updatedAt"])
}

func TestApplyWritesStampedFields(t *testing.T) {
	var gotID string
	var gotFields map[string]any
	update := func(ctx context.Context, id string, fields map[string]any) error {
		gotID, gotFields = id, fields
		return nil
	}
	now := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)

	res, err := Apply(context.Background(), target, " c1 ", NewPatch().Set("adminNotes", "vip"), update, now)
	require.NoError(t, err)
	assert.Equal(t, "c1", gotID)
	assert.Equal(t, "vip", gotFields["adminNotes"])
	assert.Equal(t, now, gotFields["updatedAt"])
	assert.Equal(t, []string{"adminNotes"}, res.UpdatedFields)
}

func TestApplyErrors(t *testing.T) {
	noop := func(ctx context.Context, id string, fields map[string]any) error { return nil }

	_, err := Apply(context.Background(), target, "", NewPatch().Set("a", 1), noop, time.Now())
	require.Error(t, err)
	assert.Equal(t, "customerId is required", pkgerrors.As(err).Message())

	_, err = Apply(context.Background(), target, "c1", NewPatch(), noop, time.Now())
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	missing := func(ctx context.Context, id string, fields map[string]any) error { return db.ErrNotFound }
	_, err = Apply(context.Background(), target, "c1", NewPatch().Set("a", 1), missing, time.Now())
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	broken := func(ctx context.Context, id string, fields map[string]any) error { return errors.New("deadline") }
	_, err = Apply(context.Background(), target, "c1", NewPatch().Set("a", 1), broken, time.Now())
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))
}
