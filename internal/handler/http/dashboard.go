package http

import (
	"net/http"

	"github.com/MKhiriev/go-waste-tracker/internal/utils"
)

func (h *Handler) dashboardCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.services.DashboardService.Counts(r.Context())
	if err != nil {
		writeError(w, r, err, "error loading dashboard counts")
		return
	}

	utils.WriteJSON(w, counts, http.StatusOK)
}
