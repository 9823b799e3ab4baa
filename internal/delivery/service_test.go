package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/delito/admin-api/internal/auditlog"
	"github.com/delito/admin-api/pkg/config"
	"github.com/delito/admin-api/pkg/db"
	"github.com/delito/admin-api/pkg/db/models"
	"github.com/delito/admin-api/pkg/enums"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
	"github.com/delito/admin-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	persons   []models.DeliveryPerson
	orders    []models.Order
	tasks     []models.DeliveryTask
	updateErr map[string]error
	updates   map[string]map[string]any
	taskScope *string
}

func (s *stubRepo) List(ctx context.Context) ([]models.DeliveryPerson, error) {
	return s.persons, nil
}

func (s *stubRepo) Get(ctx context.Context, id string) (*models.DeliveryPerson, error) {
	for i := range s.persons {
		if s.persons[i].ID == id {
			p := s.persons[i]
			return &p, nil
		}
	}
	return nil, db.ErrNotFound
}

func (s *stubRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := s.updateErr[id]; err != nil {
		return err
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if s.updates == nil {
		s.updates = map[string]map[string]any{}
	}
	s.updates[id] = fields
	return nil
}

func (s *stubRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders, nil
}

func (s *stubRepo) ListTasks(ctx context.Context, deliveryPersonID string) ([]models.DeliveryTask, error) {
	s.taskScope = &deliveryPersonID
	if deliveryPersonID == "" {
		return s.tasks, nil
	}
	var out []models.DeliveryTask
	for _, t := range s.tasks {
		if t.DeliveryPersonID == deliveryPersonID {
			out = append(out, t)
		}
	}
	return out, nil
}

type stubRecorder struct {
	entries []auditlog.Entry
}

func (r *stubRecorder) Record(ctx context.Context, entry auditlog.Entry) {
	r.entries = append(r.entries, entry)
}

var testNow = time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, repo *stubRepo) (*service, *stubRecorder) {
	t.Helper()
	rec := &stubRecorder{}
	svc, err := NewService(ServiceParams{
		Repo:  repo,
		Audit: rec,
		Business: config.BusinessConfig{
			DeliveryBaseFee:      20,
			DeliveryPerKmRate:    5,
			DeliveryFlatTaskFee:  30,
			DeliveryFlatOrderFee: 30,
		},
		Logger: logger.Nop(),
	})
	require.NoError(t, err)
	s := svc.(*service)
	s.now = func() time.Time { return testNow }
	return s, rec
}

func TestListProjectsEarningsAndCOD(t *testing.T) {
	rider := models.DeliveryPerson{ID: "d1", Name: "Ravi", IsOnline: true, CODSettled: 100}
	repo := &stubRepo{
		persons: []models.DeliveryPerson{rider},
		orders: []models.Order{
			{DeliveryPersonID: "d1", Status: enums.OrderStatusDelivered, DeliveryFee: 40, Incentive: 10, Total: 300, PaymentMode: "COD"},
			{DeliveryPersonID: "d1", Status: enums.OrderStatusDelivered, Total: 200, PaymentMode: "UPI"},
			{DeliveryPersonID: "d1", Status: enums.OrderStatusCancelled, DeliveryFee: 40, Total: 500, PaymentMode: "Cash"},
		},
	}
	svc, _ := newTestService(t, repo)

	res, err := svc.List(context.Background(), ListParams{})
	require.NoError(t, err)
	require.Len(t, res.DeliveryPersons, 1)
	view := res.DeliveryPersons[0]
	assert.Equal(t, StatusOnline, view.Status)
	assert.Equal(t, 3, view.TotalOrders)
	assert.Equal(t, 2, view.TotalDeliveries)
	assert.Equal(t, 80.0, view.TotalEarnings, "40+10 plus the flat 30 fallback")
	assert.Equal(t, 10.0, view.Incentives)
	assert.Equal(t, 300.0, view.CODCollected)
	assert.Equal(t, 200.0, view.CODPending)
	assert.Equal(t, 200.0, res.Summary.TotalCODPending)
}

func TestListRiderWithoutOrdersReportsZeros(t *testing.T) {
	repo := &stubRepo{persons: []models.DeliveryPerson{{ID: "d2", Name: "New Rider"}}}
	svc, _ := newTestService(t, repo)

	res, err := svc.List(context.Background(), ListParams{})
	require.NoError(t, err)
	view := res.DeliveryPersons[0]
	assert.Equal(t, 0, view.TotalDeliveries)
	assert.Equal(t, 0.0, view.TotalEarnings)
	assert.Equal(t, 0.0, view.Rating)
	assert.Equal(t, 0.0, view.CODPending)
}

func TestListComputedZeroEarningsFallsBackToStored(t *testing.T) {
	rider := models.DeliveryPerson{ID: "d3", Name: "Veteran", TotalEarnings: 1200, TotalDeliveries: 40}
	repo := &stubRepo{
		persons: []models.DeliveryPerson{rider},
		orders:  []models.Order{{DeliveryPersonID: "d3", Status: enums.OrderStatusPending}},
	}
	svc, _ := newTestService(t, repo)

	res, err := svc.List(context.Background(), ListParams{})
	require.NoError(t, err)
	view := res.DeliveryPersons[0]
	assert.Equal(t, 0, view.TotalDeliveries, "an aggregate exists, so its zero count is shown")
	assert.Equal(t, 1200.0, view.TotalEarnings, "a computed zero yields to the stored total")
}

func TestListStatusFilter(t *testing.T) {
	suspended := models.DeliveryPerson{ID: "s", Name: "S", IsOnline: true}
	suspended.IsSuspended = true
	repo := &stubRepo{persons: []models.DeliveryPerson{
		{ID: "on", Name: "On", IsOnline: true},
		{ID: "off", Name: "Off"},
		suspended,
	}}
	svc, _ := newTestService(t, repo)

	for status, want := range map[string]string{"online": "on", "offline": "off", "suspended": "s"} {
		res, err := svc.List(context.Background(), ListParams{Status: status})
		require.NoError(t, err)
		require.Len(t, res.DeliveryPersons, 1, status)
		assert.Equal(t, want, res.DeliveryPersons[0].ID)
	}

	_, err := svc.List(context.Background(), ListParams{Status: "busy"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestUpdateRejectsNegativeCOD(t *testing.T) {
	repo := &stubRepo{persons: []models.DeliveryPerson{{ID: "d1"}}}
	svc, _ := newTestService(t, repo)
	negative := -5.0

	_, err := svc.Update(context.Background(), UpdateInput{DeliveryPersonID: "d1", CODSettled: &negative})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	assert.Empty(t, repo.updates)

	settled := 250.0
	res, err := svc.Update(context.Background(), UpdateInput{DeliveryPersonID: "d1", CODSettled: &settled})
	require.NoError(t, err)
	assert.Equal(t, []string{"codSettled"}, res.UpdatedFields)
}

func syncFixture() *stubRepo {
	return &stubRepo{
		persons: []models.DeliveryPerson{{ID: "d1"}, {ID: "d2"}, {ID: "d3"}},
		tasks: []models.DeliveryTask{
			{DeliveryPersonID: "d1", Status: "completed", DistanceKm: 3.4, Tip: 10},
			{DeliveryPersonID: "d1", Status: "Delivered"},
			{DeliveryPersonID: "d1", Status: "assigned", DistanceKm: 10},
			{DeliveryPersonID: "d2", Status: "COMPLETED", DistanceKm: 1},
		},
	}
}

func TestSyncComputesTaskEarnings(t *testing.T) {
	repo := syncFixture()
	svc, _ := newTestService(t, repo)

	res, err := svc.Sync(context.Background(), SyncInput{})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Synced)
	assert.Equal(t, 0, res.Failed)
	require.NoError(t, res.Err())

	require.Len(t, res.Results, 3)
	d1 := res.Results[0]
	// round(20 + 3.4*5) = 37, plus the flat 30 for the task without distance.
	assert.Equal(t, SyncItem{DeliveryPersonID: "d1", Success: true, TotalEarnings: 77, TotalDeliveries: 2, TotalTips: 10}, d1)
	assert.Equal(t, 25.0, res.Results[1].TotalEarnings)
	assert.Equal(t, SyncItem{DeliveryPersonID: "d3", Success: true}, res.Results[2])

	assert.Equal(t, 77.0, repo.updates["d1"]["totalEarnings"])
	assert.Equal(t, testNow, repo.updates["d1"]["lastSyncedAt"])
}

func TestSyncIsIdempotent(t *testing.T) {
	repo := syncFixture()
	svc, _ := newTestService(t, repo)

	first, err := svc.Sync(context.Background(), SyncInput{})
	require.NoError(t, err)
	firstWrites := repo.updates["d1"]

	second, err := svc.Sync(context.Background(), SyncInput{})
	require.NoError(t, err)
	assert.Equal(t, first.Results, second.Results)
	assert.Equal(t, firstWrites, repo.updates["d1"])
}

func TestSyncScopedToOnePerson(t *testing.T) {
	repo := syncFixture()
	svc, rec := newTestService(t, repo)

	res, err := svc.Sync(context.Background(), SyncInput{DeliveryPersonID: "d2", AdminID: "admin"})
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "d2", *repo.taskScope)
	assert.NotContains(t, repo.updates, "d1")
	assert.Equal(t, enums.AdminActionDeliveryEarningsSynced, rec.entries[0].Action)
}

func TestSyncUnknownPerson(t *testing.T) {
	svc, _ := newTestService(t, syncFixture())

	_, err := svc.Sync(context.Background(), SyncInput{DeliveryPersonID: "ghost"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestSyncIsolatesItemFailures(t *testing.T) {
	repo := syncFixture()
	repo.updateErr = map[string]error{"d2": errors.New("write conflict")}
	svc, _ := newTestService(t, repo)

	res, err := svc.Sync(context.Background(), SyncInput{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Synced)
	assert.Equal(t, 1, res.Failed)
	assert.False(t, res.Results[1].Success)
	assert.Equal(t, "failed to update delivery person", res.Results[1].Error)
	assert.ErrorContains(t, res.Err(), "sync d2")
	assert.Contains(t, repo.updates, "d3")
}
