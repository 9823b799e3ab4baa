package main

import (
	"fmt"

	"github.com/delito/admin-api/api/routes"
	"github.com/delito/admin-api/internal/auditlog"
	"github.com/delito/admin-api/internal/complaints"
	"github.com/delito/admin-api/internal/customers"
	"github.com/delito/admin-api/internal/delivery"
	"github.com/delito/admin-api/internal/orders"
	"github.com/delito/admin-api/internal/reports"
	"github.com/delito/admin-api/internal/vendors"
	"github.com/delito/admin-api/pkg/config"
	"github.com/delito/admin-api/pkg/db"
	"github.com/delito/admin-api/pkg/logger"
)

// buildServices wires every domain service onto the shared Firestore client.
func buildServices(cfg *config.Config, logg *logger.Logger, dbClient *db.Client, audit auditlog.Recorder) (routes.Services, error) {
	var out routes.Services
	var err error

	out.Vendors, err = vendors.NewService(vendors.ServiceParams{
		Repo:     vendors.NewRepository(dbClient),
		Audit:    audit,
		Business: cfg.Business,
	})
	if err != nil {
		return out, fmt.Errorf("vendors service: %w", err)
	}

	out.Delivery, err = delivery.NewService(delivery.ServiceParams{
		Repo:     delivery.NewRepository(dbClient),
		Audit:    audit,
		Business: cfg.Business,
		Logger:   logg,
	})
	if err != nil {
		return out, fmt.Errorf("delivery service: %w", err)
	}

	out.Customers, err = customers.NewService(customers.NewRepository(dbClient))
	if err != nil {
		return out, fmt.Errorf("customers service: %w", err)
	}

	out.Complaints, err = complaints.NewService(complaints.NewRepository(dbClient))
	if err != nil {
		return out, fmt.Errorf("complaints service: %w", err)
	}

	out.Orders, err = orders.NewService(orders.ServiceParams{
		Repo:  orders.NewRepository(dbClient),
		Names: dbClient,
	})
	if err != nil {
		return out, fmt.Errorf("orders service: %w", err)
	}

	out.Reports, err = reports.NewService(reports.ServiceParams{
		Repo:     reports.NewRepository(dbClient),
		Business: cfg.Business,
	})
	if err != nil {
		return out, fmt.Errorf("reports service: %w", err)
	}

	return out, nil
}
