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

type productService struct {
	productRepository store.ProductRepository
	codec             *envelope.Codec
	validator         validators.Validator
	ids               IDGenerator
	now               func() time.Time

	logger *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, codec *envelope.Codec,
	validator validators.Validator, ids IDGenerator, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		codec:             codec,
		validator:         validator,
		ids:               ids,
		now:               nowUTC,
		logger:            logger,
	}
}

func (s *productService) Create(ctx context.Context, input models.ProductInput) (models.Product, error) {
	input, err := s.validate(ctx, input)
	if err != nil {
		return models.Product{}, err
	}

	now := s.now()
	record := s.seal(input)
	record.ID = s.ids.Generate()
	record.CreatedAt = now
	record.UpdatedAt = now

	if err = s.productRepository.Create(ctx, record); err != nil {
		logger.FromContext(ctx).Err(err).Msg("product creation ended with error")
		return models.Product{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	return decodeProduct(s.codec, record), nil
}

func (s *productService) Update(ctx context.Context, id string, input models.ProductInput) (models.Product, error) {
	input, err := s.validate(ctx, input)
	if err != nil {
		return models.Product{}, err
	}

	existing, err := s.productRepository.Get(ctx, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("product search by id failed: %w", err)
	}

	record := s.seal(input)
	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = s.now()

	if err = s.productRepository.Update(ctx, record); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("product update ended with error")
		return models.Product{}, fmt.Errorf("product update ended with error: %w", err)
	}

	return decodeProduct(s.codec, record), nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if err := s.productRepository.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("product deletion ended with error")
		return fmt.Errorf("product deletion ended with error: %w", err)
	}
	return nil
}

func (s *productService) Get(ctx context.Context, id string) (models.Product, error) {
	record, err := s.productRepository.Get(ctx, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("product search by id failed: %w", err)
	}
	return decodeProduct(s.codec, record), nil
}

func (s *productService) List(ctx context.Context) ([]models.Product, error) {
	records, err := s.productRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}

	products := make([]models.Product, 0, len(records))
	for _, record := range records {
		product := decodeProduct(s.codec, record)
		product.TamperedFields = nil
		products = append(products, product)
	}

	return products, nil
}

// validate defaults an empty type to LOCAL before checking the input.
func (s *productService) validate(ctx context.Context, input models.ProductInput) (models.ProductInput, error) {
	if input.Type == "" {
		input.Type = models.ProductTypeLocal
	}
	if err := s.validator.Validate(ctx, input); err != nil {
		return input, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return input, nil
}

func (s *productService) seal(input models.ProductInput) models.ProductRecord {
	return models.ProductRecord{
		Image:        input.Image,
		Name:         s.codec.SealOptional(input.Name),
		Barcode:      s.codec.Seal(input.Barcode),
		Manufacturer: s.codec.Seal(input.Manufacturer),
		Description:  s.codec.SealOptional(input.Description),
		Type:         input.Type,
	}
}
