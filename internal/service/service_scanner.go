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
	"golang.org/x/crypto/bcrypt"
)

func nowUTC() time.Time {
	return time.Now().UTC()
}

type scannerService struct {
	scannerRepository store.ScannerRepository
	codec             *envelope.Codec
	validator         validators.Validator
	ids               IDGenerator

	passwordCost int
	now          func() time.Time

	logger *logger.Logger
}

func NewScannerService(scannerRepository store.ScannerRepository, codec *envelope.Codec,
	validator validators.Validator, ids IDGenerator, logger *logger.Logger) ScannerService {
	return &scannerService{
		scannerRepository: scannerRepository,
		codec:             codec,
		validator:         validator,
		ids:               ids,
		passwordCost:      bcrypt.DefaultCost,
		now:               nowUTC,
		logger:            logger,
	}
}

func (s *scannerService) Create(ctx context.Context, input models.ScannerInput) (models.Scanner, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Scanner{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	password, err := s.sealPassword(input.Password)
	if err != nil {
		return models.Scanner{}, err
	}

	now := s.now()
	record := s.seal(input)
	record.ID = s.ids.Generate()
	record.Password = password
	record.CreatedAt = now
	record.UpdatedAt = now
	if input.Verified {
		record.VerifiedAt = &now
	}

	if err = s.scannerRepository.Create(ctx, record); err != nil {
		log.Err(err).Msg("scanner creation ended with error")
		return models.Scanner{}, fmt.Errorf("scanner creation ended with error: %w", err)
	}

	return decodeScanner(s.codec, record), nil
}

// Update replaces the scanner's profile. An empty password keeps the stored
// hash; VerifiedAt is set on the first update that marks the scanner verified
// and cleared when the flag is removed.
func (s *scannerService) Update(ctx context.Context, id string, input models.ScannerInput) (models.Scanner, error) {
	log := logger.FromContext(ctx)

	fields := validators.ScannerUpdateFields
	if input.Password != "" {
		fields = append([]string{validators.FieldPassword}, fields...)
	}
	if err := s.validator.Validate(ctx, input, fields...); err != nil {
		return models.Scanner{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	existing, err := s.scannerRepository.Get(ctx, id)
	if err != nil {
		return models.Scanner{}, fmt.Errorf("scanner search by id failed: %w", err)
	}

	record := s.seal(input)
	record.ID = existing.ID
	record.Password = existing.Password
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = s.now()

	if input.Password != "" {
		if record.Password, err = s.sealPassword(input.Password); err != nil {
			return models.Scanner{}, err
		}
	}

	switch {
	case !input.Verified:
		record.VerifiedAt = nil
	case existing.VerifiedAt != nil:
		record.VerifiedAt = existing.VerifiedAt
	default:
		record.VerifiedAt = &record.UpdatedAt
	}

	if err = s.scannerRepository.Update(ctx, record); err != nil {
		log.Err(err).Str("id", id).Msg("scanner update ended with error")
		return models.Scanner{}, fmt.Errorf("scanner update ended with error: %w", err)
	}

	return decodeScanner(s.codec, record), nil
}

func (s *scannerService) Delete(ctx context.Context, id string) error {
	if err := s.scannerRepository.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("scanner deletion ended with error")
		return fmt.Errorf("scanner deletion ended with error: %w", err)
	}
	return nil
}

func (s *scannerService) Get(ctx context.Context, id string) (models.Scanner, error) {
	record, err := s.scannerRepository.Get(ctx, id)
	if err != nil {
		return models.Scanner{}, fmt.Errorf("scanner search by id failed: %w", err)
	}

	scanner := decodeScanner(s.codec, record)
	if len(scanner.TamperedFields) > 0 {
		logger.FromContext(ctx).Warn().Str("id", id).Strs("fields", scanner.TamperedFields).Msg("scanner has edited fields")
	}

	return scanner, nil
}

func (s *scannerService) List(ctx context.Context) ([]models.Scanner, error) {
	records, err := s.scannerRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing scanners: %w", err)
	}

	scanners := make([]models.Scanner, 0, len(records))
	for _, record := range records {
		scanner := decodeScanner(s.codec, record)
		scanner.TamperedFields = nil
		scanners = append(scanners, scanner)
	}

	return scanners, nil
}

func (s *scannerService) seal(input models.ScannerInput) models.ScannerRecord {
	return models.ScannerRecord{
		Image:     input.Image,
		Username:  s.codec.Seal(input.Username),
		Firstname: s.codec.Seal(input.Firstname),
		Lastname:  s.codec.Seal(input.Lastname),
		Address:   s.codec.Seal(input.Address),
		Gender:    s.codec.Seal(input.Gender),
		Birthdate: s.codec.Seal(input.Birthdate),
		Barangay:  s.codec.SealOptional(input.Barangay),
		Purok:     s.codec.SealOptional(input.Purok),
	}
}

// sealPassword hashes the password with bcrypt and seals the hash.
func (s *scannerService) sealPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.passwordCost)
	if err != nil {
		return "", fmt.Errorf("error hashing scanner password: %w", err)
	}
	return s.codec.Seal(string(hash)), nil
}
