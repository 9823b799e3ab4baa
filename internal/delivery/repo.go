package delivery

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/delito/admin-api/pkg/db"
	"github.com/delito/admin-api/pkg/db/models"
)

// Repository reads and patches delivery person documents and the orders and
// tasks their earnings are computed from.
type Repository interface {
	List(ctx context.Context) ([]models.DeliveryPerson, error)
	Get(ctx context.Context, id string) (*models.DeliveryPerson, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	ListOrders(ctx context.Context) ([]models.Order, error)
	// ListTasks returns every task, or only deliveryPersonID's when it is set.
	ListTasks(ctx context.Context, deliveryPersonID string) ([]models.DeliveryTask, error)
}

type repository struct {
	persons *firestore.CollectionRef
	orders  *firestore.CollectionRef
	tasks   *firestore.CollectionRef
}

// NewRepository returns a Firestore-backed delivery repository.
func NewRepository(client *db.Client) Repository {
	return &repository{
		persons: client.Collection(db.CollectionDeliveryPersons),
		orders:  client.Collection(db.CollectionOrders),
		tasks:   client.Collection(db.CollectionDeliveryTasks),
	}
}

func (r *repository) List(ctx context.Context) ([]models.DeliveryPerson, error) {
	return db.DecodeAll[models.DeliveryPerson](ctx, r.persons.Query)
}

func (r *repository) Get(ctx context.Context, id string) (*models.DeliveryPerson, error) {
	person, err := db.Get[models.DeliveryPerson](ctx, r.persons, id)
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *repository) Update(ctx context.Context, id string, fields map[string]any) error {
	return db.UpdateFields(ctx, r.persons, id, fields)
}

func (r *repository) ListOrders(ctx context.Context) ([]models.Order, error) {
	return db.DecodeAll[models.Order](ctx, r.orders.Query)
}

// Task status casing varies between app versions, so completion is filtered
// in memory rather than in the query.
func (r *repository) ListTasks(ctx context.Context, deliveryPersonID string) ([]models.DeliveryTask, error) {
	q := r.tasks.Query
	if deliveryPersonID != "" {
		q = q.Where("deliveryPersonId", "==", deliveryPersonID)
	}
	return db.DecodeAll[models.DeliveryTask](ctx, q)
}
