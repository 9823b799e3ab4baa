package controllers

import (
	"net/http"
	"strings"

	"github.com/delito/admin-api/api/middleware"
)

// actorID prefers the adminId sent in the payload and falls back to the
// authenticated admin.
func actorID(r *http.Request, provided string) string {
	if id := strings.TrimSpace(provided); id != "" {
		return id
	}
	return middleware.AdminIDFromContext(r.Context())
}
