package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/models"
)

type adminRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts an admin. A taken username yields [ErrAlreadyExists].
func (r *adminRepository) Create(ctx context.Context, a models.Admin) error {
	query, args, err := r.db.sq.Insert(a.TableName()).
		Columns("id", "username", "password_hash", "name").
		Values(a.ID, a.Username, a.PasswordHash, a.Name).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*adminRepository.Create").Msg("error inserting admin")
		return execError(err)
	}
	return nil
}

func (r *adminRepository) FindByUsername(ctx context.Context, username string) (models.Admin, error) {
	query, args, err := r.db.sq.Select("id", "username", "password_hash", "name").
		From(models.Admin{}.TableName()).
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return models.Admin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var a models.Admin
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Name)
	})
	if err != nil {
		return models.Admin{}, queryError(err)
	}
	return a, nil
}
