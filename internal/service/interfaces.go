// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-waste-tracker/models"
)

type AuthService interface {
	AdminLogin(ctx context.Context, credentials models.Credentials) (models.Admin, error)
	ScannerLogin(ctx context.Context, credentials models.Credentials) (models.Scanner, error)
	EnsureAdmin(ctx context.Context, username, password string) error

	CreateToken(ctx context.Context, subjectID string, role models.Role) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ScannerService interface {
	Create(ctx context.Context, input models.ScannerInput) (models.Scanner, error)
	Update(ctx context.Context, id string, input models.ScannerInput) (models.Scanner, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.Scanner, error)
	List(ctx context.Context) ([]models.Scanner, error)
}

type ProductService interface {
	Create(ctx context.Context, input models.ProductInput) (models.Product, error)
	Update(ctx context.Context, id string, input models.ProductInput) (models.Product, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
}

type ManufacturerService interface {
	Create(ctx context.Context, input models.ManufacturerInput) (models.Manufacturer, error)
	Update(ctx context.Context, id string, input models.ManufacturerInput) (models.Manufacturer, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.Manufacturer, error)
	List(ctx context.Context) ([]models.Manufacturer, error)
}

// ScanService records scans submitted by the mobile app.
type ScanService interface {
	RecordScan(ctx context.Context, scannerID string, request models.ScanRequest) (models.ScanEvent, error)
	History(ctx context.Context, scannerID string, skip, take int) (models.ScanHistory, error)
}

// ScanServiceWrapper defines middleware composition for ScanService.
// Implementations wrap an existing ScanService to add behavior such as
// validation.
type ScanServiceWrapper interface {
	Wrap(ScanService) ScanService
}

// ReportService builds the admin views over recorded scans. startDate and
// endDate are "YYYY-MM-DD" strings; an empty string leaves that side of the
// range open.
type ReportService interface {
	ScanEvents(ctx context.Context, startDate, endDate string, withLocation bool) ([]models.ScanEvent, error)
	Report(ctx context.Context, startDate, endDate string) (models.Report, error)
	ExportCSV(ctx context.Context, w io.Writer, startDate, endDate string) error
}

type DashboardService interface {
	Counts(ctx context.Context) (models.DashboardCounts, error)
}

type GeocodeService interface {
	Reverse(ctx context.Context, lat, lon string) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// LocationResolver turns a coordinate pair into a display location.
// It is satisfied by *geocode.Resolver.
type LocationResolver interface {
	Resolve(ctx context.Context, lat, lon string) string
}

// IDGenerator issues record ids.
type IDGenerator interface {
	Generate() string
}
