// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "slices"

// validate checks the values that are set in the merged [StructuredConfig].
// Zero values are accepted here; role-specific requirements are enforced by
// validateServer and [DashboardConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if p := cfg.Envelope.Policy; p != "" && !slices.Contains([]string{PolicyFixed, PolicyRandom}, p) {
		return ErrInvalidEnvelopeConfigs
	}

	if d := cfg.Storage.DB.Driver; d != "" && !slices.Contains([]string{DriverPostgres, DriverSQLite}, d) {
		return ErrInvalidStorageConfigs
	}

	if cfg.Geocoder.BatchSize < 0 {
		return ErrInvalidGeocoderConfigs
	}

	return nil
}

// validateServer checks everything the server needs to start.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Envelope.Policy == PolicyFixed && (cfg.Envelope.StartMarker == "" || cfg.Envelope.EndMarker == "") {
		return ErrInvalidEnvelopeConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if err := cfg.Geocoder.validate(); err != nil {
		return err
	}

	if cfg.Workers.CacheSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (g Geocoder) validate() error {
	if g.BaseURL == "" || g.BatchSize < 1 || g.SuccessTTL <= 0 || g.FailureTTL <= 0 || g.BatchDelay < 0 {
		return ErrInvalidGeocoderConfigs
	}

	return nil
}

func (cfg *DashboardConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return cfg.Geocoder.validate()
}
