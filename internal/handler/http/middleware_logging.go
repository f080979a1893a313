package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
)

// withLogging writes one access log entry per request through the
// request-scoped logger, so every entry carries the trace id.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.status
		if !lw.wroteHeader {
			status = http.StatusOK
		}

		entry := logger.FromRequest(r).Info()
		if status >= http.StatusInternalServerError {
			entry = logger.FromRequest(r).Error()
		}
		entry.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
