// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-waste-tracker/internal/service"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// ─────────────────────────────────────────────
// adminLogin
// ─────────────────────────────────────────────

func TestAdminLogin_Success(t *testing.T) {
	var gotRole models.Role
	auth := &fakeAuthService{
		adminLoginFn: func(_ context.Context, c models.Credentials) (models.Admin, error) {
			assert.Equal(t, models.Credentials{Username: "root", Password: "changeme"}, c)
			return models.Admin{ID: "admin-1", Username: "root", Name: "Root"}, nil
		},
		createTokenFn: func(_ context.Context, subjectID string, role models.Role) (models.Token, error) {
			assert.Equal(t, "admin-1", subjectID)
			gotRole = role
			return stubToken("signed.admin.token"), nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"root","password":"changeme"}`))
	rec := serve(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleAdmin, gotRole)
	assert.Equal(t, "Bearer signed.admin.token", rec.Header().Get("Authorization"))

	var body models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "signed.admin.token", body.Token)
	require.NotNil(t, body.Admin)
	assert.Equal(t, "Root", body.Admin.Name)
	assert.Nil(t, body.Scanner)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAdminLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		wantStatus int
		wantError  string
	}{
		{name: "malformed body", body: `{"username":`, wantStatus: http.StatusBadRequest, wantError: ErrInvalidJSON.Error()},
		{name: "wrong credentials", body: `{"username":"root","password":"x"}`, loginErr: service.ErrWrongCredentials, wantStatus: http.StatusUnauthorized, wantError: service.ErrWrongCredentials.Error()},
		{name: "empty credentials", body: `{}`, loginErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest, wantError: service.ErrInvalidDataProvided.Error()},
		{name: "storage failure is masked", body: `{"username":"root","password":"x"}`, loginErr: assert.AnError, wantStatus: http.StatusInternalServerError, wantError: http.StatusText(http.StatusInternalServerError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{
				adminLoginFn: func(context.Context, models.Credentials) (models.Admin, error) {
					return models.Admin{}, tt.loginErr
				},
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			rec := serve(t, h, httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Header().Get("Authorization"))

			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}

// ─────────────────────────────────────────────
// scannerLogin / scannerProfile
// ─────────────────────────────────────────────

func TestScannerLogin_Success(t *testing.T) {
	auth := &fakeAuthService{
		scannerLoginFn: func(_ context.Context, c models.Credentials) (models.Scanner, error) {
			return models.Scanner{ID: "scanner-1", Username: c.Username, Firstname: "Maria"}, nil
		},
		createTokenFn: func(_ context.Context, subjectID string, role models.Role) (models.Token, error) {
			assert.Equal(t, "scanner-1", subjectID)
			assert.Equal(t, models.RoleScanner, role)
			return stubToken("signed.scanner.token"), nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rec := serve(t, h, httptest.NewRequest(http.MethodPost, "/api/mobile/auth", strings.NewReader(`{"username":"maria","password":"pa55word"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.scanner.token", rec.Header().Get("Authorization"))

	var body models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Scanner)
	assert.Equal(t, "maria", body.Scanner.Username)
	assert.Nil(t, body.Admin)
}

func TestScannerLogin_TokenFailure(t *testing.T) {
	auth := &fakeAuthService{
		scannerLoginFn: func(context.Context, models.Credentials) (models.Scanner, error) {
			return models.Scanner{ID: "scanner-1"}, nil
		},
		createTokenFn: func(context.Context, string, models.Role) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rec := serve(t, h, httptest.NewRequest(http.MethodPost, "/api/mobile/auth", strings.NewReader(`{"username":"maria","password":"x"}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestScannerProfile(t *testing.T) {
	scanners := &fakeResourceService[models.ScannerInput, models.Scanner]{
		getFn: func(_ context.Context, id string) (models.Scanner, error) {
			if id != "scanner-1" {
				return models.Scanner{}, store.ErrNotFound
			}
			return models.Scanner{ID: id, Username: "maria", TamperedFields: []string{"address"}}, nil
		},
	}
	h := newTestHandler(&service.Services{ScannerService: scanners})

	rec := serve(t, h, asScanner(httptest.NewRequest(http.MethodGet, "/api/mobile/auth", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.Scanner
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "maria", body.Username)
	assert.Equal(t, []string{"address"}, body.TamperedFields)
}
