package vendors

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/delito/admin-api/pkg/db"
	"github.com/delito/admin-api/pkg/db/models"
)

// Repository reads and patches vendor documents and the orders and platform
// settings they are aggregated against.
type Repository interface {
	List(ctx context.Context) ([]models.Vendor, error)
	Get(ctx context.Context, id string) (*models.Vendor, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	ListOrders(ctx context.Context, since *time.Time) ([]models.Order, error)
	PlatformSettings(ctx context.Context) (*models.PlatformSettings, error)
	MergePlatformSettings(ctx context.Context, fields map[string]any) error
}

type repository struct {
	vendors  *firestore.CollectionRef
	orders   *firestore.CollectionRef
	settings *firestore.DocumentRef
}

// NewRepository returns a Firestore-backed vendor repository.
func NewRepository(client *db.Client) Repository {
	return &repository{
		vendors:  client.Collection(db.CollectionVendors),
		orders:   client.Collection(db.CollectionOrders),
		settings: client.Collection(db.CollectionSettings).Doc(db.SettingsPlatformDoc),
	}
}

func (r *repository) List(ctx context.Context) ([]models.Vendor, error) {
	return db.DecodeAll[models.Vendor](ctx, r.vendors.Query)
}

func (r *repository) Get(ctx context.Context, id string) (*models.Vendor, error) {
	vendor, err := db.Get[models.Vendor](ctx, r.vendors, id)
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *repository) Update(ctx context.Context, id string, fields map[string]any) error {
	return db.UpdateFields(ctx, r.vendors, id, fields)
}

func (r *repository) ListOrders(ctx context.Context, since *time.Time) ([]models.Order, error) {
	q := r.orders.Query
	if since != nil {
		q = q.Where("createdAt", ">=", *since)
	}
	return db.DecodeAll[models.Order](ctx, q)
}

// PlatformSettings returns empty settings when the document does not exist.
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

func (r *repository) MergePlatformSettings(ctx context.Context, fields map[string]any) error {
	_, err := r.settings.Set(ctx, fields, firestore.MergeAll)
	return err
}
