package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/service"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidDate:         http.StatusBadRequest,
	service.ErrInvalidDateRange:    http.StatusBadRequest,
	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrInvalidQuery:                http.StatusBadRequest,

	service.ErrWrongCredentials:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,

	ErrForbidden: http.StatusForbidden,

	service.ErrUnknownBarcode: http.StatusNotFound,
	store.ErrNotFound:         http.StatusNotFound,

	store.ErrAlreadyExists:     http.StatusConflict,
	store.ErrReferenceNotFound: http.StatusConflict,

	service.ErrLocationUnavailable: http.StatusBadGateway,
}

// detailedErrors keep their full message in the response body because the
// wrapped cause tells the client which field to fix.
var detailedErrors = []error{
	service.ErrInvalidDataProvided,
	service.ErrInvalidDate,
	ErrInvalidQuery,
}

// statusFromError returns the HTTP status for err and the sentinel that
// matched it, or 500 and nil.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError maps err to a status and writes a JSON error body. Server
// errors are logged with the full chain and answered with the status text
// only.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	status, target := statusFromError(err)
	if target == nil {
		log.Err(err).Msg(msg)
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg(msg)

	message := target.Error()
	for _, detailed := range detailedErrors {
		if errors.Is(err, detailed) {
			message = err.Error()
			break
		}
	}
	utils.WriteError(w, message, status)
}
