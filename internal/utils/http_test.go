package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-waste-tracker/models"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "object", data: map[string]string{"version": "1.0.0"}, status: http.StatusOK, wantBody: `{"version":"1.0.0"}`},
		{name: "created status", data: models.VersionResponse{Version: "2"}, status: http.StatusCreated, wantBody: `{"version":"2"}`},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: "null"},
		{name: "empty struct", data: struct{}{}, status: http.StatusOK, wantBody: "{}"},
		{name: "slice", data: []int{1, 2, 3}, status: http.StatusOK, wantBody: "[1,2,3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if n != len(tt.wantBody) {
				t.Errorf("expected %d bytes written, got %d", len(tt.wantBody), n)
			}
			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
			}
			if w.Body.String() != tt.wantBody {
				t.Errorf("expected body %s, got %s", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_DoesNotEscapeHTML(t *testing.T) {
	w := httptest.NewRecorder()
	sealed := `{"$":"<s>","value":"YWxpY2U=","$$":"<e>"}`

	_, err := WriteJSON(w, map[string]string{"username": sealed, "location": "Purok 1 & 2"}, http.StatusOK)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	body := w.Body.String()
	if strings.Contains(body, `\u003c`) || strings.Contains(body, `\u0026`) {
		t.Errorf("expected unescaped HTML characters, got %s", body)
	}
	if strings.HasSuffix(body, "\n") {
		t.Error("expected no trailing newline")
	}

	var decoded map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON written: %v", err)
	}
	if decoded["username"] != sealed {
		t.Errorf("expected %s, got %s", sealed, decoded["username"])
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, "scanner not found", http.StatusNotFound)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON written: %v", err)
	}
	if resp.Error != "scanner not found" {
		t.Errorf("expected error message, got %q", resp.Error)
	}
}
