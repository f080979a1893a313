package http

import (
	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/reverse-geocode", h.reverseGeocode)
		r.Post("/api/admin/login", h.adminLogin)
		r.Post("/api/mobile/auth", h.scannerLogin)
	})

	// dashboard routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth(models.RoleAdmin))

		resourceRoutes[models.ScannerInput, models.Scanner](r, "/api/admin/scanners", h.services.ScannerService)
		resourceRoutes[models.ProductInput, models.Product](r, "/api/admin/products", h.services.ProductService)
		resourceRoutes[models.ManufacturerInput, models.Manufacturer](r, "/api/admin/manufacturers", h.services.ManufacturerService)

		r.Get("/api/admin/dashboard", h.dashboardCounts)
		r.Get("/api/admin/scan-events", h.scanEvents)
		r.Get("/api/admin/reports", h.report)
		r.Get("/api/admin/reports/export", h.exportReport)
	})

	// mobile app routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth(models.RoleScanner))

		r.Get("/api/mobile/auth", h.scannerProfile)
		r.Post("/api/mobile/scan", h.recordScan)
		r.Get("/api/mobile/scan", h.scanHistory)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
