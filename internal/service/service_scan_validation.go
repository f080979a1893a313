package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-waste-tracker/internal/validators"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// ScanValidationService checks scan submissions before they reach the
// wrapped ScanService.
type ScanValidationService struct {
	inner     ScanService
	validator validators.Validator
}

func NewScanValidationService(validator validators.Validator) ScanServiceWrapper {
	return &ScanValidationService{
		validator: validator,
	}
}

func (v *ScanValidationService) RecordScan(ctx context.Context, scannerID string, request models.ScanRequest) (models.ScanEvent, error) {
	if scannerID == "" {
		return models.ScanEvent{}, ErrInvalidDataProvided
	}

	// a missing quantity is recorded as one item
	fields := []string{validators.FieldCode, validators.FieldLat, validators.FieldLng}
	if request.Quantity != 0 {
		fields = append(fields, validators.FieldQuantity)
	}

	if err := v.validator.Validate(ctx, request, fields...); err != nil {
		return models.ScanEvent{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RecordScan(ctx, scannerID, request)
}

func (v *ScanValidationService) History(ctx context.Context, scannerID string, skip, take int) (models.ScanHistory, error) {
	if scannerID == "" {
		return models.ScanHistory{}, ErrInvalidDataProvided
	}
	return v.inner.History(ctx, scannerID, skip, take)
}

func (v *ScanValidationService) Wrap(inner ScanService) ScanService {
	v.inner = inner
	return v
}
