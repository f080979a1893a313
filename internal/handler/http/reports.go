package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-waste-tracker/internal/utils"
)

func (h *Handler) scanEvents(w http.ResponseWriter, r *http.Request) {
	withLocation, err := queryBool(r, "with_location")
	if err != nil {
		writeError(w, r, err, "invalid with_location")
		return
	}

	query := r.URL.Query()
	events, err := h.services.ReportService.ScanEvents(r.Context(), query.Get("start_date"), query.Get("end_date"), withLocation)
	if err != nil {
		writeError(w, r, err, "error listing scan events")
		return
	}

	utils.WriteJSON(w, events, http.StatusOK)
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	report, err := h.services.ReportService.Report(r.Context(), query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		writeError(w, r, err, "error building report")
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

// exportReport answers with the report as a CSV attachment. The file is
// built in memory first so that a failure still yields a JSON error.
func (h *Handler) exportReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	startDate, endDate := query.Get("start_date"), query.Get("end_date")

	var buf bytes.Buffer
	if err := h.services.ReportService.ExportCSV(r.Context(), &buf, startDate, endDate); err != nil {
		writeError(w, r, err, "error exporting report")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", strconv.Quote(exportFileName(startDate, endDate))))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func exportFileName(startDate, endDate string) string {
	switch {
	case startDate == "" && endDate == "":
		return "scan-report.csv"
	case endDate == "":
		return "scan-report-from-" + startDate + ".csv"
	case startDate == "":
		return "scan-report-until-" + endDate + ".csv"
	default:
		return "scan-report-" + startDate + "-to-" + endDate + ".csv"
	}
}
