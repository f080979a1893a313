// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// adminLogin authenticates a dashboard operator. The token is returned both
// in the body and in the Authorization header.
func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials); err != nil {
		writeError(w, r, err, "invalid admin login body")
		return
	}

	admin, err := h.services.AuthService.AdminLogin(ctx, credentials)
	if err != nil {
		writeError(w, r, err, "admin login failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, admin.ID, models.RoleAdmin)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	logger.FromRequest(r).Info().Str("admin_id", admin.ID).Msg("admin logged in")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString, Admin: &admin}, http.StatusOK)
}

// scannerLogin authenticates a field worker of the mobile app.
func (h *Handler) scannerLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials); err != nil {
		writeError(w, r, err, "invalid scanner login body")
		return
	}

	scanner, err := h.services.AuthService.ScannerLogin(ctx, credentials)
	if err != nil {
		writeError(w, r, err, "scanner login failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, scanner.ID, models.RoleScanner)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	logger.FromRequest(r).Info().Str("scanner_id", scanner.ID).Msg("scanner logged in")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString, Scanner: &scanner}, http.StatusOK)
}

// scannerProfile returns the profile of the authenticated scanner.
func (h *Handler) scannerProfile(w http.ResponseWriter, r *http.Request) {
	scannerID, _ := utils.GetSubjectIDFromContext(r.Context())

	scanner, err := h.services.ScannerService.Get(r.Context(), scannerID)
	if err != nil {
		writeError(w, r, err, "error loading scanner profile")
		return
	}

	utils.WriteJSON(w, scanner, http.StatusOK)
}
