package reports

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/delito/admin-api/pkg/db"
	"github.com/delito/admin-api/pkg/db/models"
)

// Repository loads the documents a GST report is computed from.
type Repository interface {
	// ListOrders returns orders created in [from, to). Nil bounds are open.
	ListOrders(ctx context.Context, from, to *time.Time) ([]models.Order, error)
	ListVendors(ctx context.Context) ([]models.Vendor, error)
	PlatformSettings(ctx context.Context) (*models.PlatformSettings, error)
}

type repository struct {
	orders   *firestore.CollectionRef
	vendors  *firestore.CollectionRef
	settings *firestore.DocumentRef
}

func NewRepository(client *db.Client) Repository {
	return &repository{
		orders:   client.Collection(db.CollectionOrders),
		vendors:  client.Collection(db.CollectionVendors),
		settings: client.Collection(db.CollectionSettings).Doc(db.SettingsPlatformDoc),
	}
}

// ListOrders only pushes the createdAt range to Firestore. The vendor filter
// runs in memory so no composite index is needed.
func (r *repository) ListOrders(ctx context.Context, from, to *time.Time) ([]models.Order, error) {
	q := r.orders.Query
	if from != nil {
		q = q.Where("createdAt", ">=", *from)
	}
	if to != nil {
		q = q.Where("createdAt", "<", *to)
	}
	return db.DecodeAll[models.Order](ctx, q)
}

func (r *repository) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	return db.DecodeAll[models.Vendor](ctx, r.vendors.Query)
}

func (r *repository) PlatformSettings(ctx context.Context) (*models.PlatformSettings, error) {
	snap, err := r.settings.Get(ctx)
	if err != nil {
		if db.IsNotFound(err) {
			return &models.PlatformSettings{}, nil
		}
		return nil, err
	}
	var settings models.PlatformSettings
	if err := snap.DataTo(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
