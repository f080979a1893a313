// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment using the `env` and `envPrefix`
// tags of [StructuredConfig], e.g. GEOCODER_SUCCESS_TTL or STORAGE_DB_DRIVER.
// Every variable that fails to parse is reported, not only the first one.
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var aggregate env.AggregateError
	if errors.As(err, &aggregate) {
		return fmt.Errorf("error getting env configs: %w", errors.Join(aggregate.Errors...))
	}
	return fmt.Errorf("error getting env configs: %w", err)
}
