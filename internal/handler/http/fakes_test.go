package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/service"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// Each fake implements one service interface. Method fields are set per
// test; calling an unset field panics, which fails the test.

type fakeAuthService struct {
	adminLoginFn   func(ctx context.Context, credentials models.Credentials) (models.Admin, error)
	scannerLoginFn func(ctx context.Context, credentials models.Credentials) (models.Scanner, error)
	createTokenFn  func(ctx context.Context, subjectID string, role models.Role) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) AdminLogin(ctx context.Context, credentials models.Credentials) (models.Admin, error) {
	return f.adminLoginFn(ctx, credentials)
}

func (f *fakeAuthService) ScannerLogin(ctx context.Context, credentials models.Credentials) (models.Scanner, error) {
	return f.scannerLoginFn(ctx, credentials)
}

func (f *fakeAuthService) EnsureAdmin(context.Context, string, string) error {
	return nil
}

func (f *fakeAuthService) CreateToken(ctx context.Context, subjectID string, role models.Role) (models.Token, error) {
	return f.createTokenFn(ctx, subjectID, role)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString)
}

// tokenAuth accepts "<role>:<subject>" bearer tokens.
func tokenAuth() *fakeAuthService {
	return &fakeAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			for _, role := range []models.Role{models.RoleAdmin, models.RoleScanner} {
				prefix := string(role) + ":"
				if len(tokenString) > len(prefix) && tokenString[:len(prefix)] == prefix {
					return models.Token{SignedString: tokenString, SubjectID: tokenString[len(prefix):], Role: role}, nil
				}
			}
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
}

// fakeResourceService serves the scanner, product and manufacturer CRUD
// interfaces.
type fakeResourceService[In, Out any] struct {
	createFn func(ctx context.Context, input In) (Out, error)
	updateFn func(ctx context.Context, id string, input In) (Out, error)
	deleteFn func(ctx context.Context, id string) error
	getFn    func(ctx context.Context, id string) (Out, error)
	listFn   func(ctx context.Context) ([]Out, error)
}

func (f *fakeResourceService[In, Out]) Create(ctx context.Context, input In) (Out, error) {
	return f.createFn(ctx, input)
}

func (f *fakeResourceService[In, Out]) Update(ctx context.Context, id string, input In) (Out, error) {
	return f.updateFn(ctx, id, input)
}

func (f *fakeResourceService[In, Out]) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeResourceService[In, Out]) Get(ctx context.Context, id string) (Out, error) {
	return f.getFn(ctx, id)
}

func (f *fakeResourceService[In, Out]) List(ctx context.Context) ([]Out, error) {
	return f.listFn(ctx)
}

type fakeScanService struct {
	recordScanFn func(ctx context.Context, scannerID string, request models.ScanRequest) (models.ScanEvent, error)
	historyFn    func(ctx context.Context, scannerID string, skip, take int) (models.ScanHistory, error)
}

func (f *fakeScanService) RecordScan(ctx context.Context, scannerID string, request models.ScanRequest) (models.ScanEvent, error) {
	return f.recordScanFn(ctx, scannerID, request)
}

func (f *fakeScanService) History(ctx context.Context, scannerID string, skip, take int) (models.ScanHistory, error) {
	return f.historyFn(ctx, scannerID, skip, take)
}

type fakeReportService struct {
	scanEventsFn func(ctx context.Context, startDate, endDate string, withLocation bool) ([]models.ScanEvent, error)
	reportFn     func(ctx context.Context, startDate, endDate string) (models.Report, error)
	exportCSVFn  func(ctx context.Context, w io.Writer, startDate, endDate string) error
}

func (f *fakeReportService) ScanEvents(ctx context.Context, startDate, endDate string, withLocation bool) ([]models.ScanEvent, error) {
	return f.scanEventsFn(ctx, startDate, endDate, withLocation)
}

func (f *fakeReportService) Report(ctx context.Context, startDate, endDate string) (models.Report, error) {
	return f.reportFn(ctx, startDate, endDate)
}

func (f *fakeReportService) ExportCSV(ctx context.Context, w io.Writer, startDate, endDate string) error {
	return f.exportCSVFn(ctx, w, startDate, endDate)
}

type fakeDashboardService struct {
	counts models.DashboardCounts
	err    error
}

func (f *fakeDashboardService) Counts(context.Context) (models.DashboardCounts, error) {
	return f.counts, f.err
}

type fakeGeocodeService struct {
	reverseFn func(ctx context.Context, lat, lon string) (string, error)
}

func (f *fakeGeocodeService) Reverse(ctx context.Context, lat, lon string) (string, error) {
	return f.reverseFn(ctx, lat, lon)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over services. Unset services fall back to
// fakes that accept the test tokens and report version "test".
func newTestHandler(services *service.Services) *Handler {
	if services.AuthService == nil {
		services.AuthService = tokenAuth()
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfoService{version: "test"}
	}
	return NewHandler(services, config.Server{}, logger.Nop())
}

// serve sends a request through the full router.
func serve(t *testing.T, h *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func asAdmin(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer admin:admin-1")
	return req
}

func asScanner(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer scanner:scanner-1")
	return req
}

// injectNopLogger puts a nop logger into the request context for handlers
// called directly.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}
