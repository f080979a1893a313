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

var scannerColumns = []string{
	"id", "image", "username", "password", "firstname", "lastname", "address",
	"gender", "birthdate", "barangay", "purok", "verified_at", "created_at", "updated_at",
}

// scannerRepository is the SQL implementation of [ScannerRepository] over
// the "scanners" table.
type scannerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewScannerRepository constructs a [ScannerRepository] backed by db.
func NewScannerRepository(db *DB, logger *logger.Logger) ScannerRepository {
	logger.Debug().Msg("creating scanner repository")
	return &scannerRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new scanner. A second scanner with the same sealed
// username yields [ErrAlreadyExists].
func (r *scannerRepository) Create(ctx context.Context, s models.ScannerRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.Insert(s.TableName()).
		Columns(scannerColumns...).
		Values(s.ID, s.Image, s.Username, s.Password, s.Firstname, s.Lastname, s.Address,
			s.Gender, s.Birthdate, s.Barangay, s.Purok, s.VerifiedAt, s.CreatedAt, s.UpdatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*scannerRepository.Create").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*scannerRepository.Create").Msg("error inserting scanner")
		return execError(err)
	}

	return nil
}

// Update overwrites every mutable column of the scanner with s.ID.
func (r *scannerRepository) Update(ctx context.Context, s models.ScannerRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.Update(s.TableName()).
		Set("image", s.Image).
		Set("username", s.Username).
		Set("password", s.Password).
		Set("firstname", s.Firstname).
		Set("lastname", s.Lastname).
		Set("address", s.Address).
		Set("gender", s.Gender).
		Set("birthdate", s.Birthdate).
		Set("barangay", s.Barangay).
		Set("purok", s.Purok).
		Set("verified_at", s.VerifiedAt).
		Set("updated_at", s.UpdatedAt).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*scannerRepository.Update").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scannerRepository.Update").Msg("error updating scanner")
		return execError(err)
	}

	return affectedOne(res)
}

func (r *scannerRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, models.ScannerRecord{}.TableName(), id)
}

func (r *scannerRepository) Get(ctx context.Context, id string) (models.ScannerRecord, error) {
	return r.findOne(ctx, squirrel.Eq{"id": id})
}

// FindByUsername looks a scanner up by its sealed username. The lookup only
// works with fixed markers, where equal plaintexts seal to equal strings.
func (r *scannerRepository) FindByUsername(ctx context.Context, sealedUsername string) (models.ScannerRecord, error) {
	return r.findOne(ctx, squirrel.Eq{"username": sealedUsername})
}

func (r *scannerRepository) findOne(ctx context.Context, where squirrel.Eq) (models.ScannerRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.Select(scannerColumns...).
		From(models.ScannerRecord{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return models.ScannerRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var scanner models.ScannerRecord
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		scanner, scanErr = scanScanner(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		log.Debug().Err(err).Str("func", "*scannerRepository.findOne").Msg("scanner lookup failed")
		return models.ScannerRecord{}, queryError(err)
	}

	return scanner, nil
}

// List returns all scanners, newest first.
func (r *scannerRepository) List(ctx context.Context) ([]models.ScannerRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.Select(scannerColumns...).
		From(models.ScannerRecord{}.TableName()).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	scanners, err := queryAll(ctx, r.db, query, args, scanScanner)
	if err != nil {
		log.Err(err).Str("func", "*scannerRepository.List").Msg("error listing scanners")
		return nil, err
	}
	return scanners, nil
}

func scanScanner(row rowScanner) (models.ScannerRecord, error) {
	var s models.ScannerRecord
	err := row.Scan(&s.ID, &s.Image, &s.Username, &s.Password, &s.Firstname, &s.Lastname, &s.Address,
		&s.Gender, &s.Birthdate, &s.Barangay, &s.Purok, &s.VerifiedAt, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}
