package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-waste-tracker/internal/service"
	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	h := newTestHandler(&service.Services{AppInfoService: &fakeAppInfoService{version: "v1.4.0"}})

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "v1.4.0", body.Version)
}

func TestReverseGeocode(t *testing.T) {
	tests := []struct {
		name       string
		location   string
		err        error
		wantStatus int
	}{
		{name: "resolved", location: "Tacloban City, Leyte", wantStatus: http.StatusOK},
		{name: "bad coordinates", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "upstream failure", err: service.ErrLocationUnavailable, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geocoder := &fakeGeocodeService{
				reverseFn: func(_ context.Context, lat, lon string) (string, error) {
					assert.Equal(t, "11.2435", lat)
					assert.Equal(t, "125.0047", lon)
					return tt.location, tt.err
				},
			}
			h := newTestHandler(&service.Services{GeocodeService: geocoder})

			rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/reverse-geocode?lat=11.2435&lon=125.0047", nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var body models.LocationResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.location, body.DisplayName)
			}
		})
	}
}

func TestDashboardCounts(t *testing.T) {
	counts := models.DashboardCounts{Scanners: 3, VerifiedScanners: 2, Products: 10, Scans: 40, ScansToday: 5}
	h := newTestHandler(&service.Services{DashboardService: &fakeDashboardService{counts: counts}})

	rec := serve(t, h, asAdmin(httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.DashboardCounts
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, counts, body)
}

func TestDashboardCounts_RequiresToken(t *testing.T) {
	h := newTestHandler(&service.Services{DashboardService: &fakeDashboardService{}})

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInit_UnsupportedMethodIsNotFound(t *testing.T) {
	h := newTestHandler(&service.Services{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/api/version"},
		{http.MethodPut, "/api/admin/login"},
		{http.MethodPatch, "/api/mobile/scan"},
	}

	for _, tt := range tests {
		rec := serve(t, h, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tt.method, tt.path)
	}
}

func TestInit_UnknownPath(t *testing.T) {
	h := newTestHandler(&service.Services{})

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_TraceIDHeader(t *testing.T) {
	h := newTestHandler(&service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-abc")
	rec := serve(t, h, req)
	assert.Equal(t, "trace-abc", rec.Header().Get(traceIDHeader))

	rec = serve(t, h, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	assert.Len(t, rec.Header().Get(traceIDHeader), 36)
}
