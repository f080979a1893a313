package service

import (
	"fmt"

	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/envelope"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
	"github.com/MKhiriev/go-waste-tracker/internal/validators"
)

type Services struct {
	AuthService         AuthService
	ScannerService      ScannerService
	ProductService      ProductService
	ManufacturerService ManufacturerService
	ScanService         ScanService
	ReportService       ReportService
	DashboardService    DashboardService
	GeocodeService      GeocodeService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, codec *envelope.Codec, resolver LocationResolver, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewRecordValidator()
	ids := utils.NewUUIDGenerator()

	scanService := NewScanService(storages.ProductRepository, storages.ManufacturerRepository, storages.ScanEventRepository, codec, ids, logger)

	return &Services{
		AuthService:         NewAuthService(storages.AdminRepository, storages.ScannerRepository, codec, ids, cfg.App, logger),
		ScannerService:      NewScannerService(storages.ScannerRepository, codec, validator, ids, logger),
		ProductService:      NewProductService(storages.ProductRepository, codec, validator, ids, logger),
		ManufacturerService: NewManufacturerService(storages.ManufacturerRepository, codec, validator, ids, logger),
		ScanService:         NewScanValidationService(validator).Wrap(scanService),
		ReportService:       NewReportService(storages.ScanEventRepository, codec, resolver, logger),
		DashboardService:    NewDashboardService(storages.DashboardRepository, logger),
		GeocodeService:      NewGeocodeService(resolver, logger),
		AppInfoService:      appInfoService,
	}, nil
}
