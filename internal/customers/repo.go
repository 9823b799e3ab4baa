package customers

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/delito/admin-api/pkg/db"
	"github.com/delito/admin-api/pkg/db/models"
)

// Repository reads and patches customer documents.
type Repository interface {
	List(ctx context.Context) ([]models.Customer, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	ListOrders(ctx context.Context) ([]models.Order, error)
}

type repository struct {
	customers *firestore.CollectionRef
	orders    *firestore.CollectionRef
}

// NewRepository returns a Firestore-backed customer repository.
func NewRepository(client *db.Client) Repository {
	return &repository{
		customers: client.Collection(db.CollectionCustomers),
		orders:    client.Collection(db.CollectionOrders),
	}
}

func (r *repository) List(ctx context.Context) ([]models.Customer, error) {
	return db.DecodeAll[models.Customer](ctx, r.customers.Query)
}

func (r *repository) Update(ctx context.Context, id string, fields map[string]any) error {
	return db.UpdateFields(ctx, r.customers, id, fields)
}

func (r *repository) ListOrders(ctx context.Context) ([]models.Order, error) {
	return db.DecodeAll[models.Order](ctx, r.orders.Query)
}
