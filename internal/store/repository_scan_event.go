// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// scanEventRepository is the SQL implementation of [ScanEventRepository].
//
// List reads join the scanner, product and manufacturer of each event so a
// report page needs a single round trip.
type scanEventRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewScanEventRepository constructs a [ScanEventRepository] backed by db.
func NewScanEventRepository(db *DB, logger *logger.Logger) ScanEventRepository {
	logger.Debug().Msg("creating scan event repository")
	return &scanEventRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts e. An unknown scanner, product or manufacturer id yields
// [ErrReferenceNotFound].
func (r *scanEventRepository) Create(ctx context.Context, e models.ScanEventRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.Insert(e.TableName()).
		Columns("id", "scanner_id", "product_id", "manufacturer_id", "latitude", "longitude", "location", "quantity", "scanned_at").
		Values(e.ID, e.ScannerID, e.ProductID, e.ManufacturerID, e.Latitude, e.Longitude, e.Location, e.Quantity, e.ScannedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*scanEventRepository.Create").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*scanEventRepository.Create").Msg("error inserting scan event")
		return execError(err)
	}
	return nil
}

// List returns the events matching filter, newest first, each carrying its
// joined scanner, product and manufacturer.
func (r *scanEventRepository) List(ctx context.Context, filter models.ScanEventFilter) ([]models.ScanEventRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListScanEventsQuery(r.db.sq, filter)
	if err != nil {
		log.Err(err).Str("func", "*scanEventRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	events, err := queryAll(ctx, r.db, query, args, scanJoinedScanEvent)
	if err != nil {
		log.Err(err).Str("func", "*scanEventRepository.List").Msg("error listing scan events")
		return nil, err
	}
	return events, nil
}

// Count returns the number of events matching filter; Limit and Offset are
// ignored.
func (r *scanEventRepository) Count(ctx context.Context, filter models.ScanEventFilter) (int, error) {
	query, args, err := buildCountScanEventsQuery(r.db.sq, filter)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*scanEventRepository.Count").Msg("error counting scan events")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}

func (r *scanEventRepository) Stats(ctx context.Context, filter models.ScanEventFilter) ([]models.ScannerStatsRecord, error) {
	query, args, err := buildScannerStatsQuery(r.db.sq, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	stats, err := queryAll(ctx, r.db, query, args, func(row rowScanner) (models.ScannerStatsRecord, error) {
		var s models.ScannerStatsRecord
		err := row.Scan(&s.ScannerID, &s.Firstname, &s.Lastname, &s.ScanCount, &s.TotalQuantity)
		return s, err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*scanEventRepository.Stats").Msg("error aggregating scan events")
		return nil, err
	}
	return stats, nil
}

// SetLocation stores the sealed display location resolved for event id.
func (r *scanEventRepository) SetLocation(ctx context.Context, id string, sealedLocation string) error {
	query, args, err := r.db.sq.Update(models.ScanEventRecord{}.TableName()).
		Set("location", sealedLocation).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*scanEventRepository.SetLocation").Msg("error storing location")
		return execError(err)
	}
	return affectedOne(res)
}

func scanJoinedScanEvent(row rowScanner) (models.ScanEventRecord, error) {
	var (
		e                   models.ScanEventRecord
		scanner             models.ScannerRecord
		productName         *string
		productBarcode      *string
		productManufacturer *string
		productType         *string
		manufacturerName    *string
		manufacturerBarcode *string
	)

	err := row.Scan(
		&e.ID, &e.ScannerID, &e.ProductID, &e.ManufacturerID,
		&e.Latitude, &e.Longitude, &e.Location, &e.Quantity, &e.ScannedAt,
		&scanner.Firstname, &scanner.Lastname,
		&productName, &productBarcode, &productManufacturer, &productType,
		&manufacturerName, &manufacturerBarcode,
	)
	if err != nil {
		return models.ScanEventRecord{}, err
	}

	scanner.ID = e.ScannerID
	e.Scanner = &scanner

	if e.ProductID != nil && productBarcode != nil {
		e.Product = &models.ProductRecord{
			ID:           *e.ProductID,
			Name:         productName,
			Barcode:      *productBarcode,
			Manufacturer: deref(productManufacturer),
			Type:         models.ProductType(deref(productType)),
		}
	}

	if e.ManufacturerID != nil && manufacturerBarcode != nil {
		e.Manufacturer = &models.ManufacturerRecord{
			ID:      *e.ManufacturerID,
			Name:    manufacturerName,
			Barcode: *manufacturerBarcode,
		}
	}

	return e, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
