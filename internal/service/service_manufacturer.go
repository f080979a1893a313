package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/envelope"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/internal/validators"
	"github.com/MKhiriev/go-waste-tracker/models"
)

type manufacturerService struct {
	manufacturerRepository store.ManufacturerRepository
	codec                  *envelope.Codec
	validator              validators.Validator
	ids                    IDGenerator
	now                    func() time.Time

	logger *logger.Logger
}

func NewManufacturerService(manufacturerRepository store.ManufacturerRepository, codec *envelope.Codec,
	validator validators.Validator, ids IDGenerator, logger *logger.Logger) ManufacturerService {
	return &manufacturerService{
		manufacturerRepository: manufacturerRepository,
		codec:                  codec,
		validator:              validator,
		ids:                    ids,
		now:                    nowUTC,
		logger:                 logger,
	}
}

func (s *manufacturerService) Create(ctx context.Context, input models.ManufacturerInput) (models.Manufacturer, error) {
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Manufacturer{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := s.now()
	record := models.ManufacturerRecord{
		ID:        s.ids.Generate(),
		Name:      s.codec.SealOptional(input.Name),
		Barcode:   s.codec.Seal(input.Barcode),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.manufacturerRepository.Create(ctx, record); err != nil {
		logger.FromContext(ctx).Err(err).Msg("manufacturer creation ended with error")
		return models.Manufacturer{}, fmt.Errorf("manufacturer creation ended with error: %w", err)
	}

	return decodeManufacturer(s.codec, record), nil
}

func (s *manufacturerService) Update(ctx context.Context, id string, input models.ManufacturerInput) (models.Manufacturer, error) {
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Manufacturer{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	existing, err := s.manufacturerRepository.Get(ctx, id)
	if err != nil {
		return models.Manufacturer{}, fmt.Errorf("manufacturer search by id failed: %w", err)
	}

	record := models.ManufacturerRecord{
		ID:        existing.ID,
		Name:      s.codec.SealOptional(input.Name),
		Barcode:   s.codec.Seal(input.Barcode),
		CreatedAt: existing.CreatedAt,
		UpdatedAt: s.now(),
	}

	if err = s.manufacturerRepository.Update(ctx, record); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("manufacturer update ended with error")
		return models.Manufacturer{}, fmt.Errorf("manufacturer update ended with error: %w", err)
	}

	return decodeManufacturer(s.codec, record), nil
}

func (s *manufacturerService) Delete(ctx context.Context, id string) error {
	if err := s.manufacturerRepository.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("manufacturer deletion ended with error")
		return fmt.Errorf("manufacturer deletion ended with error: %w", err)
	}
	return nil
}

func (s *manufacturerService) Get(ctx context.Context, id string) (models.Manufacturer, error) {
	record, err := s.manufacturerRepository.Get(ctx, id)
	if err != nil {
		return models.Manufacturer{}, fmt.Errorf("manufacturer search by id failed: %w", err)
	}
	return decodeManufacturer(s.codec, record), nil
}

func (s *manufacturerService) List(ctx context.Context) ([]models.Manufacturer, error) {
	records, err := s.manufacturerRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing manufacturers: %w", err)
	}

	manufacturers := make([]models.Manufacturer, 0, len(records))
	for _, record := range records {
		manufacturer := decodeManufacturer(s.codec, record)
		manufacturer.TamperedFields = nil
		manufacturers = append(manufacturers, manufacturer)
	}

	return manufacturers, nil
}
