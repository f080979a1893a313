// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
)

// CacheSweeper periodically purges expired geocode cache entries.
type CacheSweeper struct {
	cache    Purger
	interval time.Duration

	logger *logger.Logger
}

func NewCacheSweeper(cache Purger, cfg config.Workers, logger *logger.Logger) *CacheSweeper {
	return &CacheSweeper{
		cache:    cache,
		interval: cfg.CacheSweepInterval,
		logger:   logger,
	}
}

func (s *CacheSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("geocode cache sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("geocode cache sweeper stopped")
			return
		case <-ticker.C:
			if removed := s.cache.Purge(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired geocode entries purged")
			}
		}
	}
}
