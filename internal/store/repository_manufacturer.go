package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/models"
)

var manufacturerColumns = []string{"id", "name", "barcode", "created_at", "updated_at"}

type manufacturerRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewManufacturerRepository(db *DB, logger *logger.Logger) ManufacturerRepository {
	logger.Debug().Msg("creating manufacturer repository")
	return &manufacturerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *manufacturerRepository) Create(ctx context.Context, m models.ManufacturerRecord) error {
	query, args, err := r.db.sq.Insert(m.TableName()).
		Columns(manufacturerColumns...).
		Values(m.ID, m.Name, m.Barcode, m.CreatedAt, m.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*manufacturerRepository.Create").Msg("error inserting manufacturer")
		return execError(err)
	}
	return nil
}

func (r *manufacturerRepository) Update(ctx context.Context, m models.ManufacturerRecord) error {
	query, args, err := r.db.sq.Update(m.TableName()).
		Set("name", m.Name).
		Set("barcode", m.Barcode).
		Set("updated_at", m.UpdatedAt).
		Where(squirrel.Eq{"id": m.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*manufacturerRepository.Update").Msg("error updating manufacturer")
		return execError(err)
	}
	return affectedOne(res)
}

func (r *manufacturerRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, models.ManufacturerRecord{}.TableName(), id)
}

func (r *manufacturerRepository) Get(ctx context.Context, id string) (models.ManufacturerRecord, error) {
	query, args, err := r.db.sq.Select(manufacturerColumns...).
		From(models.ManufacturerRecord{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.ManufacturerRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var m models.ManufacturerRecord
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		m, scanErr = scanManufacturer(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		return models.ManufacturerRecord{}, queryError(err)
	}
	return m, nil
}

// List returns all manufacturers. Scan recording decodes this list to match
// barcode prefixes, so it is not paginated.
func (r *manufacturerRepository) List(ctx context.Context) ([]models.ManufacturerRecord, error) {
	query, args, err := r.db.sq.Select(manufacturerColumns...).
		From(models.ManufacturerRecord{}.TableName()).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	manufacturers, err := queryAll(ctx, r.db, query, args, scanManufacturer)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*manufacturerRepository.List").Msg("error listing manufacturers")
		return nil, err
	}
	return manufacturers, nil
}

func scanManufacturer(row rowScanner) (models.ManufacturerRecord, error) {
	var m models.ManufacturerRecord
	err := row.Scan(&m.ID, &m.Name, &m.Barcode, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}
