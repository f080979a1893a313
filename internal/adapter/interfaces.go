// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the dashboard's client of the go-waste-tracker HTTP API.
//
// [ServerAdapter] hides the transport from the dashboard. Error statuses are
// mapped by mapHTTPError to the sentinels in errors.go so that callers can
// use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-waste-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the part of the admin API the dashboard uses.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before login.
	Token() string

	// Login authenticates an admin and stores the returned token.
	Login(ctx context.Context, credentials models.Credentials) (models.Admin, error)

	// DashboardCounts fetches the headline numbers.
	DashboardCounts(ctx context.Context) (models.DashboardCounts, error)

	// ScanEvents lists the scan events between startDate and endDate
	// ("YYYY-MM-DD", empty for an open side) without server-side location
	// enrichment.
	ScanEvents(ctx context.Context, startDate, endDate string) ([]models.ScanEvent, error)
}
