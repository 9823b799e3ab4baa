package orders

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/delito/admin-api/pkg/db"
	"github.com/delito/admin-api/pkg/db/models"
	"github.com/delito/admin-api/pkg/enums"
	"github.com/delito/admin-api/pkg/pagination"
)

type repository struct {
	orders *firestore.CollectionRef
}

// NewRepository returns a Firestore-backed order repository.
func NewRepository(client *db.Client) Repository {
	return &repository{orders: client.Collection(db.CollectionOrders)}
}

// List pushes ordering and the limit to Firestore when unfiltered. A status
// filter combined with ordering would need a composite index, so filtered
// lists are sorted and truncated in memory.
func (r *repository) List(ctx context.Context, status enums.OrderStatus, limit int) ([]models.Order, error) {
	if status == "" {
		return db.DecodeAll[models.Order](ctx, r.orders.OrderBy("createdAt", firestore.Desc).Limit(limit))
	}

	orders, err := db.DecodeAll[models.Order](ctx, r.orders.Where("status", "==", string(status)))
	if err != nil {
		return nil, err
	}
	SortNewestFirst(orders)
	return pagination.Truncate(orders, limit), nil
}

func (r *repository) Update(ctx context.Context, id string, fields map[string]any) error {
	return db.UpdateFields(ctx, r.orders, id, fields)
}

// SortNewestFirst orders by createdAt descending, ties by id.
func SortNewestFirst(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID < orders[j].ID
	})
}
