package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
)

// Storages groups every repository backed by one database connection.
type Storages struct {
	ScannerRepository      ScannerRepository
	ProductRepository      ProductRepository
	ManufacturerRepository ManufacturerRepository
	ScanEventRepository    ScanEventRepository
	AdminRepository        AdminRepository
	DashboardRepository    DashboardRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		ScannerRepository:      NewScannerRepository(db, log),
		ProductRepository:      NewProductRepository(db, log),
		ManufacturerRepository: NewManufacturerRepository(db, log),
		ScanEventRepository:    NewScanEventRepository(db, log),
		AdminRepository:        NewAdminRepository(db, log),
		DashboardRepository:    NewDashboardRepository(db, log),
		db:                     db,
	}
}

// Close closes the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
