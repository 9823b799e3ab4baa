package instance

import (
	"os"

	"github.com/delito/admin-api/pkg/env"
)

// GetID returns the worker instance identifier: DELITO_WORKER_ID, then the
// hostname, then a default value.
func GetID() string {
	if id := env.Get("DELITO_WORKER_ID", ""); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "worker-0"
}
