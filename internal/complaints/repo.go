package complaints

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/delito/admin-api/pkg/db"
	"github.com/delito/admin-api/pkg/db/models"
)

// Repository reads and patches complaint documents.
type Repository interface {
	List(ctx context.Context) ([]models.Complaint, error)
	Update(ctx context.Context, id string, fields map[string]any) error
}

type repository struct {
	complaints *firestore.CollectionRef
}

// NewRepository returns a Firestore-backed complaint repository.
func NewRepository(client *db.Client) Repository {
	return &repository{complaints: client.Collection(db.CollectionComplaints)}
}

// List loads every complaint. Filters and ordering are applied in memory:
// combining them in Firestore needs a composite index per pair, and ordering
// by createdAt would drop documents that lack it.
func (r *repository) List(ctx context.Context) ([]models.Complaint, error) {
	return db.DecodeAll[models.Complaint](ctx, r.complaints.Query)
}

func (r *repository) Update(ctx context.Context, id string, fields map[string]any) error {
	return db.UpdateFields(ctx, r.complaints, id, fields)
}
