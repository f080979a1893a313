package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-waste-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ScannerRepository persists scanner accounts. Protected columns are passed
// and returned sealed; lookups by username take the sealed value.
type ScannerRepository interface {
	Create(ctx context.Context, scanner models.ScannerRecord) error
	Update(ctx context.Context, scanner models.ScannerRecord) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.ScannerRecord, error)
	List(ctx context.Context) ([]models.ScannerRecord, error)
	FindByUsername(ctx context.Context, sealedUsername string) (models.ScannerRecord, error)
}

// ProductRepository persists products.
type ProductRepository interface {
	Create(ctx context.Context, product models.ProductRecord) error
	Update(ctx context.Context, product models.ProductRecord) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.ProductRecord, error)
	List(ctx context.Context) ([]models.ProductRecord, error)
	FindByBarcode(ctx context.Context, sealedBarcode string) (models.ProductRecord, error)
}

// ManufacturerRepository persists manufacturers.
type ManufacturerRepository interface {
	Create(ctx context.Context, manufacturer models.ManufacturerRecord) error
	Update(ctx context.Context, manufacturer models.ManufacturerRecord) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.ManufacturerRecord, error)
	List(ctx context.Context) ([]models.ManufacturerRecord, error)
}

// ScanEventRepository persists scan events and computes per-scanner
// aggregates.
type ScanEventRepository interface {
	Create(ctx context.Context, event models.ScanEventRecord) error
	List(ctx context.Context, filter models.ScanEventFilter) ([]models.ScanEventRecord, error)
	Count(ctx context.Context, filter models.ScanEventFilter) (int, error)
	Stats(ctx context.Context, filter models.ScanEventFilter) ([]models.ScannerStatsRecord, error)
	SetLocation(ctx context.Context, id string, sealedLocation string) error
}

// AdminRepository persists dashboard operators.
type AdminRepository interface {
	Create(ctx context.Context, admin models.Admin) error
	FindByUsername(ctx context.Context, username string) (models.Admin, error)
}

// DashboardRepository computes the dashboard counters. Scans at or after
// since count as today's.
type DashboardRepository interface {
	Counts(ctx context.Context, since time.Time) (models.DashboardCounts, error)
}
