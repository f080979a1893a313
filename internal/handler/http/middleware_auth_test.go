package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-waste-tracker/internal/service"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeAuth(h *Handler, role models.Role, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.auth(role)(next).ServeHTTP(rec, req)
	return rec
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		role       models.Role
		header     string
		wantStatus int
	}{
		{name: "missing header", role: models.RoleAdmin, wantStatus: http.StatusUnauthorized},
		{name: "bearer without token", role: models.RoleAdmin, header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "unknown token", role: models.RoleAdmin, header: "Bearer garbage", wantStatus: http.StatusUnauthorized},
		{name: "scanner token on admin route", role: models.RoleAdmin, header: "Bearer scanner:scanner-1", wantStatus: http.StatusForbidden},
		{name: "admin token on scanner route", role: models.RoleScanner, header: "Bearer admin:admin-1", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&service.Services{})
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Fatal("next handler must not be called")
			})

			rec := executeAuth(h, tt.role, tt.header, next)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestAuth_PassesSubjectToNext(t *testing.T) {
	h := newTestHandler(&service.Services{})

	var (
		called    bool
		subjectID string
		role      models.Role
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		subjectID, _ = utils.GetSubjectIDFromContext(r.Context())
		role, _ = utils.GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := executeAuth(h, models.RoleScanner, "Bearer scanner:scanner-7", next)

	require.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "scanner-7", subjectID)
	assert.Equal(t, models.RoleScanner, role)
}
