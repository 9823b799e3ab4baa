package auditlog

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/delito/admin-api/pkg/db"
	"github.com/delito/admin-api/pkg/db/models"
)

type firestoreStore struct {
	col *firestore.CollectionRef
}

// NewFirestoreStore writes audit records to the adminLogs collection, keyed by
// the record id.
func NewFirestoreStore(client *db.Client) Store {
	return &firestoreStore{col: client.Collection(db.CollectionAdminLogs)}
}

func (s *firestoreStore) Create(ctx context.Context, log models.AdminLog) error {
	_, err := s.col.Doc(log.ID).Set(ctx, log)
	return err
}
