package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManufacturerRepository_CRUD(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &manufacturerRepository{db: db, logger: logger.Nop()}
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	m := models.ManufacturerRecord{ID: "manufacturer-1", Name: strPtr("sealed-name"), Barcode: "sealed-prefix", CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec("INSERT INTO manufacturers").
		WithArgs(m.ID, m.Name, m.Barcode, m.CreatedAt, m.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT id, name, barcode, created_at, updated_at FROM manufacturers WHERE id = \$1`).
		WithArgs(m.ID).
		WillReturnRows(sqlmock.NewRows(manufacturerColumns).AddRow(m.ID, m.Name, m.Barcode, m.CreatedAt, m.UpdatedAt))
	mock.ExpectExec(`UPDATE manufacturers SET name = \$1, barcode = \$2, updated_at = \$3 WHERE id = \$4`).
		WithArgs(m.Name, m.Barcode, m.UpdatedAt, m.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .* FROM manufacturers ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(manufacturerColumns).AddRow(m.ID, nil, m.Barcode, m.CreatedAt, m.UpdatedAt))
	mock.ExpectExec("DELETE FROM manufacturers").
		WithArgs(m.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(ctx, m))

	got, err := repo.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m, got)

	require.NoError(t, repo.Update(ctx, m))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Name)

	require.NoError(t, repo.Delete(ctx, m.ID))
	require.NoError(t, mock.ExpectationsWereMet())
}
