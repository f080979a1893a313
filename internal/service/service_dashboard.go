package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/models"
)

type dashboardService struct {
	dashboardRepository store.DashboardRepository
	now                 func() time.Time

	logger *logger.Logger
}

func NewDashboardService(dashboardRepository store.DashboardRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		dashboardRepository: dashboardRepository,
		now:                 nowUTC,
		logger:              logger,
	}
}

// Counts returns the dashboard headline numbers. "Today" starts at midnight
// UTC.
func (s *dashboardService) Counts(ctx context.Context) (models.DashboardCounts, error) {
	now := s.now()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts, err := s.dashboardRepository.Counts(ctx, since)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error counting dashboard records")
		return models.DashboardCounts{}, fmt.Errorf("error counting dashboard records: %w", err)
	}

	return counts, nil
}
