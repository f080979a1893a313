package http

import (
	"net/http"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// recordScan stores a scan submitted by the authenticated scanner.
func (h *Handler) recordScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	scannerID, _ := utils.GetSubjectIDFromContext(ctx)

	var request models.ScanRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err, "invalid scan body")
		return
	}

	event, err := h.services.ScanService.RecordScan(ctx, scannerID, request)
	if err != nil {
		writeError(w, r, err, "error recording scan")
		return
	}

	logger.FromRequest(r).Debug().Str("scanner_id", scannerID).Str("event_id", event.ID).Msg("scan recorded")
	utils.WriteJSON(w, event, http.StatusCreated)
}

// scanHistory returns a page of the authenticated scanner's scans, selected
// with the skip and take query parameters.
func (h *Handler) scanHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	scannerID, _ := utils.GetSubjectIDFromContext(ctx)

	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		writeError(w, r, err, "invalid skip")
		return
	}
	take, err := queryInt(r, "take", 0)
	if err != nil {
		writeError(w, r, err, "invalid take")
		return
	}

	history, err := h.services.ScanService.History(ctx, scannerID, skip, take)
	if err != nil {
		writeError(w, r, err, "error loading scan history")
		return
	}

	utils.WriteJSON(w, history, http.StatusOK)
}
