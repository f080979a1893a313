package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-waste-tracker/internal/service"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
	"github.com/MKhiriev/go-waste-tracker/internal/validators"
	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "wrapped validation error", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidBarcode), want: http.StatusBadRequest},
		{name: "invalid date", err: service.ErrInvalidDate, want: http.StatusBadRequest},
		{name: "wrong credentials", err: service.ErrWrongCredentials, want: http.StatusUnauthorized},
		{name: "malformed authorization", err: utils.ErrInvalidAuthorizationHeader, want: http.StatusUnauthorized},
		{name: "forbidden", err: ErrForbidden, want: http.StatusForbidden},
		{name: "not found deep in chain", err: fmt.Errorf("get: %w", fmt.Errorf("query: %w", store.ErrNotFound)), want: http.StatusNotFound},
		{name: "unknown barcode", err: service.ErrUnknownBarcode, want: http.StatusNotFound},
		{name: "duplicate", err: store.ErrAlreadyExists, want: http.StatusConflict},
		{name: "geocoder down", err: service.ErrLocationUnavailable, want: http.StatusBadGateway},
		{name: "anything else", err: assert.AnError, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := statusFromError(tt.err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestWriteError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation detail is kept",
			err:  fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidBarcode),
			want: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidBarcode).Error(),
		},
		{
			name: "other client errors use the sentinel text",
			err:  fmt.Errorf("scanner scanner-9: %w", store.ErrNotFound),
			want: store.ErrNotFound.Error(),
		},
		{
			name: "server errors are masked",
			err:  fmt.Errorf("pq: relation %q does not exist", "scan_events"),
			want: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))

			writeError(rec, req, tt.err, "test")

			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body.Error)
		})
	}
}
