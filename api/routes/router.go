package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/delito/admin-api/api/controllers"
	"github.com/delito/admin-api/api/middleware"
	"github.com/delito/admin-api/internal/complaints"
	"github.com/delito/admin-api/internal/customers"
	"github.com/delito/admin-api/internal/delivery"
	"github.com/delito/admin-api/internal/orders"
	"github.com/delito/admin-api/internal/reports"
	"github.com/delito/admin-api/internal/vendors"
	"github.com/delito/admin-api/pkg/config"
	"github.com/delito/admin-api/pkg/db"
	"github.com/delito/admin-api/pkg/logger"
	"github.com/delito/admin-api/pkg/metrics"
	"github.com/delito/admin-api/pkg/redis"
)

// Services are the domain services behind the admin routes.
type Services struct {
	Vendors    vendors.Service
	Delivery   delivery.Service
	Customers  customers.Service
	Complaints complaints.Service
	Orders     orders.Service
	Reports    reports.Service
}

// Params wires the router. Redis and Gatherer are optional: without redis
// idempotency is off and readiness skips it, without a gatherer /metrics is
// not mounted.
type Params struct {
	Config   *config.Config
	Logger   *logger.Logger
	Store    db.Pinger
	Redis    *redis.Client
	Metrics  *metrics.HTTPMetrics
	Gatherer prometheus.Gatherer
	Services Services
}

func NewRouter(p Params) http.Handler {
	cfg, logg := p.Config, p.Logger
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
		middleware.Metrics(p.Metrics),
	)

	// A nil *redis.Client must stay a nil interface.
	var idempotencyStore redis.IdempotencyStore
	redisDep := controllers.Dependency{Name: "redis"}
	if p.Redis != nil {
		idempotencyStore = p.Redis
		redisDep.Pinger = p.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg,
			controllers.Dependency{Name: "firestore", Pinger: p.Store},
			redisDep,
		))
	})

	if p.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	svc := p.Services
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.Idempotency(idempotencyStore, logg))

		r.Route("/complaints", func(r chi.Router) {
			r.Get("/", controllers.ComplaintsList(svc.Complaints, logg))
			r.Patch("/", controllers.ComplaintsUpdate(svc.Complaints, logg))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.CustomersList(svc.Customers, logg))
			r.Patch("/", controllers.CustomersUpdate(svc.Customers, logg))
		})

		r.Route("/delivery", func(r chi.Router) {
			r.Get("/", controllers.DeliveryList(svc.Delivery, logg))
			r.Patch("/", controllers.DeliveryUpdate(svc.Delivery, logg))
			r.Get("/suspend", controllers.DeliverySuspended(svc.Delivery, logg))
			r.Post("/suspend", controllers.DeliverySuspend(svc.Delivery, logg))
			r.Delete("/suspend", controllers.DeliveryReinstate(svc.Delivery, logg))
			r.Post("/sync", controllers.DeliverySync(svc.Delivery, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(svc.Orders, logg))
			r.Patch("/", controllers.OrdersUpdate(svc.Orders, logg))
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/gst", controllers.ReportsGST(svc.Reports, logg))
			r.Get("/gst/export", controllers.ReportsGSTExport(svc.Reports, logg))
		})

		r.Route("/vendors", func(r chi.Router) {
			r.Get("/", controllers.VendorsList(svc.Vendors, logg))
			r.Patch("/", controllers.VendorsUpdate(svc.Vendors, logg))
			r.Get("/performance", controllers.VendorsPerformance(svc.Vendors, logg))
			r.Get("/suspend", controllers.VendorsSuspended(svc.Vendors, logg))
			r.Post("/suspend", controllers.VendorsSuspend(svc.Vendors, logg))
			r.Delete("/suspend", controllers.VendorsReinstate(svc.Vendors, logg))
			r.Get("/commission", controllers.VendorsCommission(svc.Vendors, logg))
			r.Patch("/commission", controllers.VendorsCommissionUpdate(svc.Vendors, logg))
			r.Post("/commission", controllers.PlatformCommissionUpdate(svc.Vendors, logg))
		})

		r.Route("/verification", func(r chi.Router) {
			r.Get("/vendors", controllers.VendorVerificationList(svc.Vendors, logg))
			r.Patch("/vendors", controllers.VendorVerificationDecide(svc.Vendors, logg))
			r.Get("/delivery", controllers.DeliveryVerificationList(svc.Delivery, logg))
			r.Patch("/delivery", controllers.DeliveryVerificationDecide(svc.Delivery, logg))
		})
	})

	return r
}
