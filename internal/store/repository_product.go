package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/models"
)

var productColumns = []string{
	"id", "image", "name", "barcode", "manufacturer", "description", "type", "created_at", "updated_at",
}

type productRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

func (r *productRepository) Create(ctx context.Context, p models.ProductRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.Insert(p.TableName()).
		Columns(productColumns...).
		Values(p.ID, p.Image, p.Name, p.Barcode, p.Manufacturer, p.Description, string(p.Type), p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*productRepository.Create").Msg("error inserting product")
		return execError(err)
	}
	return nil
}

func (r *productRepository) Update(ctx context.Context, p models.ProductRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.Update(p.TableName()).
		Set("image", p.Image).
		Set("name", p.Name).
		Set("barcode", p.Barcode).
		Set("manufacturer", p.Manufacturer).
		Set("description", p.Description).
		Set("type", string(p.Type)).
		Set("updated_at", p.UpdatedAt).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.Update").Msg("error updating product")
		return execError(err)
	}
	return affectedOne(res)
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, models.ProductRecord{}.TableName(), id)
}

func (r *productRepository) Get(ctx context.Context, id string) (models.ProductRecord, error) {
	return r.findOne(ctx, squirrel.Eq{"id": id})
}

// FindByBarcode looks a product up by its sealed barcode.
func (r *productRepository) FindByBarcode(ctx context.Context, sealedBarcode string) (models.ProductRecord, error) {
	return r.findOne(ctx, squirrel.Eq{"barcode": sealedBarcode})
}

func (r *productRepository) findOne(ctx context.Context, where squirrel.Eq) (models.ProductRecord, error) {
	query, args, err := r.db.sq.Select(productColumns...).
		From(models.ProductRecord{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return models.ProductRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var product models.ProductRecord
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		product, scanErr = scanProduct(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		return models.ProductRecord{}, queryError(err)
	}
	return product, nil
}

func (r *productRepository) List(ctx context.Context) ([]models.ProductRecord, error) {
	query, args, err := r.db.sq.Select(productColumns...).
		From(models.ProductRecord{}.TableName()).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	products, err := queryAll(ctx, r.db, query, args, scanProduct)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productRepository.List").Msg("error listing products")
		return nil, err
	}
	return products, nil
}

func scanProduct(row rowScanner) (models.ProductRecord, error) {
	var (
		p           models.ProductRecord
		productType string
	)
	err := row.Scan(&p.ID, &p.Image, &p.Name, &p.Barcode, &p.Manufacturer, &p.Description, &productType, &p.CreatedAt, &p.UpdatedAt)
	p.Type = models.ProductType(productType)
	return p, err
}
