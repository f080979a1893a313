// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://waste.example.org/ ", want: "https://waste.example.org"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Adapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/admin/login", r.URL.Path)

		var credentials models.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&credentials))
		assert.Equal(t, models.Credentials{Username: "root", Password: "changeme"}, credentials)

		w.Header().Set("Authorization", "Bearer header.jwt.token")
		writeJSON(t, w, http.StatusOK, models.LoginResponse{
			Token: "header.jwt.token",
			Admin: &models.Admin{ID: "admin-1", Username: "root", Name: "Root"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	admin, err := a.Login(context.Background(), models.Credentials{Username: "root", Password: "changeme"})

	require.NoError(t, err)
	assert.Equal(t, "Root", admin.Name)
	assert.Equal(t, "header.jwt.token", a.Token())
}

func TestLogin_TokenFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Token: "body.jwt.token", Admin: &models.Admin{ID: "admin-1"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "root", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "body.jwt.token", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "wrong username or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "root", Password: "x"})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "wrong username or password")
	assert.Empty(t, a.Token())
}

// ── DashboardCounts ─────────────────────────────────────────────────────────

func TestDashboardCounts_Success(t *testing.T) {
	want := models.DashboardCounts{Scanners: 4, VerifiedScanners: 3, Products: 12, Scans: 80, ScansToday: 6}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/dashboard", r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	got, err := a.DashboardCounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDashboardCounts_NotLoggedIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("no request expected before login")
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).DashboardCounts(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

// ── ScanEvents ──────────────────────────────────────────────────────────────

func TestScanEvents_Query(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		wantQuery string
	}{
		{name: "open range", wantQuery: ""},
		{name: "start only", startDate: "2026-03-01", wantQuery: "start_date=2026-03-01"},
		{name: "closed range", startDate: "2026-03-01", endDate: "2026-03-14", wantQuery: "end_date=2026-03-14&start_date=2026-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/admin/scan-events", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.Query().Encode())
				writeJSON(t, w, http.StatusOK, []models.ScanEvent{{ID: "event-1", Latitude: "11.2435", Longitude: "125.0047"}})
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			a.SetToken("sometoken")

			events, err := a.ScanEvents(context.Background(), tt.startDate, tt.endDate)

			require.NoError(t, err)
			require.Len(t, events, 1)
			assert.Equal(t, "11.2435", events[0].Latitude)
		})
	}
}

func TestScanEvents_InvalidDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: `invalid date, expected YYYY-MM-DD: "tomorrow"`})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	_, err := a.ScanEvents(context.Background(), "tomorrow", "")
	assert.ErrorIs(t, err, ErrBadRequest)
}
