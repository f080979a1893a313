package http

import (
	"net/http"

	"github.com/MKhiriev/go-waste-tracker/internal/utils"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// reverseGeocode resolves ?lat=&lon= into a display location through the
// server-side cache. The body mirrors a Nominatim reverse response so the
// dashboard can use the same lookuper against this endpoint.
func (h *Handler) reverseGeocode(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	location, err := h.services.GeocodeService.Reverse(r.Context(), query.Get("lat"), query.Get("lon"))
	if err != nil {
		writeError(w, r, err, "reverse geocoding failed")
		return
	}

	utils.WriteJSON(w, models.LocationResponse{DisplayName: location}, http.StatusOK)
}
