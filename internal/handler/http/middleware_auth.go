package http

import (
	"net/http"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// auth returns a middleware that enforces JWT bearer authentication for
// accounts of the given role.
//
// It extracts the token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken] and stores the account ID and role in the
// request context (see [utils.WithSubject]).
//
// Requests are rejected with 401 when the header is missing or malformed or
// the token is invalid, and with 403 when the token belongs to another role.
func (h *Handler) auth(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, r, ErrEmptyAuthorizationHeader, "request without authorization")
				return
			}

			tokenString, err := utils.ParseBearerToken(authHeader)
			if err != nil {
				writeError(w, r, err, "malformed authorization header")
				return
			}

			ctx := r.Context()
			token, err := h.services.AuthService.ParseToken(ctx, tokenString)
			if err != nil {
				writeError(w, r, err, "error occurred during parsing token")
				return
			}

			if token.Role != role {
				logger.FromRequest(r).Warn().
					Str("subject_id", token.SubjectID).
					Str("role", string(token.Role)).
					Str("required_role", string(role)).
					Msg("token role does not match route")
				writeError(w, r, ErrForbidden, "wrong role")
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithSubject(ctx, token.SubjectID, token.Role)))
		})
	}
}
