package orders

import (
	"context"

	"github.com/delito/admin-api/pkg/db/models"
	"github.com/delito/admin-api/pkg/enums"
)

// Repository reads and patches order documents.
type Repository interface {
	// List returns the newest orders first, at most limit of them, optionally
	// restricted to one status.
	List(ctx context.Context, status enums.OrderStatus, limit int) ([]models.Order, error)
	Update(ctx context.Context, id string, fields map[string]any) error
}

// NameResolver maps document ids in a collection to display names.
type NameResolver interface {
	LookupNames(ctx context.Context, collection string, ids []string, fields ...string) (map[string]string, error)
}
