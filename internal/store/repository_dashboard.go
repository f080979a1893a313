package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/models"
)

type dashboardRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewDashboardRepository(db *DB, logger *logger.Logger) DashboardRepository {
	logger.Debug().Msg("creating dashboard repository")
	return &dashboardRepository{
		db:     db,
		logger: logger,
	}
}

// Counts computes every dashboard counter in one query of scalar
// subqueries.
func (r *dashboardRepository) Counts(ctx context.Context, since time.Time) (models.DashboardCounts, error) {
	query, args, err := r.db.sq.Select().
		Column("(SELECT COUNT(*) FROM scanners)").
		Column("(SELECT COUNT(*) FROM scanners WHERE verified_at IS NOT NULL)").
		Column("(SELECT COUNT(*) FROM products)").
		Column(squirrel.Expr("(SELECT COUNT(*) FROM products WHERE type = ?)", string(models.ProductTypeInternational))).
		Column(squirrel.Expr("(SELECT COUNT(*) FROM products WHERE type = ?)", string(models.ProductTypeLocal))).
		Column("(SELECT COUNT(*) FROM manufacturers)").
		Column("(SELECT COUNT(*) FROM scan_events)").
		Column(squirrel.Expr("(SELECT COUNT(*) FROM scan_events WHERE scanned_at >= ?)", since.UTC())).
		ToSql()
	if err != nil {
		return models.DashboardCounts{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.DashboardCounts
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&c.Scanners, &c.VerifiedScanners,
			&c.Products, &c.InternationalProducts, &c.LocalProducts,
			&c.Manufacturers, &c.Scans, &c.ScansToday,
		)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dashboardRepository.Counts").Msg("error counting dashboard")
		return models.DashboardCounts{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return c, nil
}
