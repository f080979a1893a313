package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// queryAll runs a multi-row query and scans every row with scan. Transient
// failures are retried as a whole.
func queryAll[T any](ctx context.Context, db *DB, query string, args []any, scan func(rowScanner) (T, error)) ([]T, error) {
	var result []T

	err := db.withRetry(ctx, func() error {
		result = result[:0]

		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			item, err := scan(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			result = append(result, item)
		}

		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result == nil {
		result = []T{}
	}
	return result, nil
}

func deleteByID(ctx context.Context, db *DB, table, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := db.sq.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "deleteByID").Str("table", table).Msg("error deleting row")
		return execError(err)
	}

	return affectedOne(res)
}

// scanEventSelect is the joined projection shared by list queries: the scan
// event itself plus the display columns of its scanner, product and
// manufacturer.
var scanEventSelect = []string{
	"e.id", "e.scanner_id", "e.product_id", "e.manufacturer_id",
	"e.latitude", "e.longitude", "e.location", "e.quantity", "e.scanned_at",
	"s.firstname", "s.lastname",
	"p.name", "p.barcode", "p.manufacturer", "p.type",
	"m.name", "m.barcode",
}

// buildListScanEventsQuery renders the joined scan event query for filter,
// newest first.
func buildListScanEventsQuery(sq squirrel.StatementBuilderType, filter models.ScanEventFilter) (string, []any, error) {
	q := sq.Select(scanEventSelect...).
		From("scan_events e").
		Join("scanners s ON s.id = e.scanner_id").
		LeftJoin("products p ON p.id = e.product_id").
		LeftJoin("manufacturers m ON m.id = e.manufacturer_id")

	q = applyScanEventFilter(q, filter).OrderBy("e.scanned_at DESC", "e.id DESC")

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	return q.ToSql()
}

func buildCountScanEventsQuery(sq squirrel.StatementBuilderType, filter models.ScanEventFilter) (string, []any, error) {
	return applyScanEventFilter(sq.Select("COUNT(*)").From("scan_events e"), filter).ToSql()
}

// buildScannerStatsQuery aggregates scan count and total quantity per
// scanner, busiest scanner first.
func buildScannerStatsQuery(sq squirrel.StatementBuilderType, filter models.ScanEventFilter) (string, []any, error) {
	q := sq.Select("s.id", "s.firstname", "s.lastname", "COUNT(e.id)", "COALESCE(SUM(e.quantity), 0)").
		From("scan_events e").
		Join("scanners s ON s.id = e.scanner_id")

	return applyScanEventFilter(q, filter).
		GroupBy("s.id", "s.firstname", "s.lastname").
		OrderBy("COUNT(e.id) DESC", "s.id").
		ToSql()
}

func applyScanEventFilter(q squirrel.SelectBuilder, filter models.ScanEventFilter) squirrel.SelectBuilder {
	if filter.ScannerID != "" {
		q = q.Where(squirrel.Eq{"e.scanner_id": filter.ScannerID})
	}
	if filter.From != nil {
		q = q.Where(squirrel.GtOrEq{"e.scanned_at": filter.From.UTC()})
	}
	if filter.To != nil {
		q = q.Where(squirrel.Lt{"e.scanned_at": filter.To.UTC()})
	}
	return q
}
