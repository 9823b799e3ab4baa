package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/delito/admin-api/pkg/config"
	"github.com/delito/admin-api/pkg/logger"
	"google.golang.org/api/option"
)

// Collection names in the Delito Firestore project.
const (
	CollectionOrders          = "orders"
	CollectionVendors         = "vendors"
	CollectionDeliveryPersons = "deliveryPersons"
	CollectionCustomers       = "customers"
	CollectionComplaints      = "complaints"
	CollectionDeliveryTasks   = "deliveryTasks"
	CollectionAdminLogs       = "adminLogs"
	CollectionSettings        = "settings"

	SettingsPlatformDoc = "platform"
)

// Client wraps the shared Firestore connection.
type Client struct {
	fs *firestore.Client
}

// Pinger exposes the health check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New boots a Firestore client from the service-account values in cfg.
// Missing credentials fail here instead of degrading to empty data.
func New(ctx context.Context, cfg config.FirebaseConfig, logg *logger.Logger) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firebase project id is required")
	}

	var opts []option.ClientOption
	if !cfg.UsesEmulator() {
		if cfg.ClientEmail == "" || cfg.PrivateKey == "" {
			return nil, fmt.Errorf("firebase client email and private key are required")
		}
		creds, err := cfg.ServiceAccountJSON()
		if err != nil {
			return nil, fmt.Errorf("encoding firebase credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	}

	databaseID := cfg.DatabaseID
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	fs, err := firestore.NewClientWithDatabase(ctx, cfg.ProjectID, databaseID, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	if logg != nil {
		ctx = logg.WithFields(ctx, map[string]any{"project_id": cfg.ProjectID, "database_id": databaseID, "emulator": cfg.UsesEmulator()})
		logg.Info(ctx, "firestore client initialized")
	}

	return &Client{fs: fs}, nil
}

// Firestore returns the underlying client.
func (c *Client) Firestore() *firestore.Client {
	return c.fs
}

// Collection returns a reference to the named collection.
func (c *Client) Collection(name string) *firestore.CollectionRef {
	return c.fs.Collection(name)
}

// Ping verifies the project is reachable by reading the platform settings document.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.fs.Collection(CollectionSettings).Doc(SettingsPlatformDoc).Get(ctx)
	if err != nil && !IsNotFound(err) {
		return err
	}
	return nil
}

// Close releases the gRPC connection.
func (c *Client) Close() error {
	return c.fs.Close()
}
