package service

import (
	"context"

	"github.com/MKhiriev/go-waste-tracker/internal/geocode"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
)

type geocodeService struct {
	resolver LocationResolver

	logger *logger.Logger
}

func NewGeocodeService(resolver LocationResolver, logger *logger.Logger) GeocodeService {
	return &geocodeService{
		resolver: resolver,
		logger:   logger,
	}
}

// Reverse resolves a coordinate pair through the shared resolver and its
// cache. Invalid coordinates are ErrInvalidDataProvided; a lookup that
// yields no location is ErrLocationUnavailable.
func (s *geocodeService) Reverse(ctx context.Context, lat, lon string) (string, error) {
	if _, err := geocode.CacheKey(lat, lon); err != nil {
		return "", ErrInvalidDataProvided
	}

	location := s.resolver.Resolve(ctx, lat, lon)
	if location == geocode.UnknownLocation {
		logger.FromContext(ctx).Debug().Str("lat", lat).Str("lon", lon).Msg("location unavailable")
		return "", ErrLocationUnavailable
	}

	return location, nil
}
