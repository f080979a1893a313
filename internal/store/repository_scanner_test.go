package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScannerRepo(t *testing.T) (*scannerRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &scannerRepository{db: db, logger: logger.Nop()}, mock
}

func testScannerRecord() models.ScannerRecord {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	return models.ScannerRecord{
		ID:        "0195a0b2-0000-7000-8000-000000000001",
		Username:  `{"$":"s","value":"YWxpY2U=","$$":"e"}`,
		Password:  "sealed-hash",
		Firstname: "sealed-first",
		Lastname:  "sealed-last",
		Address:   "sealed-address",
		Gender:    "sealed-gender",
		Birthdate: "sealed-birthdate",
		Barangay:  strPtr("sealed-barangay"),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func scannerRows(records ...models.ScannerRecord) *sqlmock.Rows {
	rows := sqlmock.NewRows(scannerColumns)
	for _, s := range records {
		rows.AddRow(s.ID, s.Image, s.Username, s.Password, s.Firstname, s.Lastname, s.Address,
			s.Gender, s.Birthdate, s.Barangay, s.Purok, s.VerifiedAt, s.CreatedAt, s.UpdatedAt)
	}
	return rows
}

func TestScannerRepository_Create_Success(t *testing.T) {
	repo, mock := newTestScannerRepo(t)
	s := testScannerRecord()

	mock.ExpectExec(`INSERT INTO scanners \(id,image,username,password`).
		WithArgs(s.ID, s.Image, s.Username, s.Password, s.Firstname, s.Lastname, s.Address,
			s.Gender, s.Birthdate, s.Barangay, s.Purok, s.VerifiedAt, s.CreatedAt, s.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), s))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScannerRepository_Create_DuplicateUsername(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "postgres unique violation", err: pgError(pgerrcode.UniqueViolation)},
		{name: "sqlite unique constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestScannerRepo(t)

			mock.ExpectExec("INSERT INTO scanners").WillReturnError(tt.err)

			err := repo.Create(context.Background(), testScannerRecord())
			assert.ErrorIs(t, err, ErrAlreadyExists)
		})
	}
}

func TestScannerRepository_Create_UnexpectedError(t *testing.T) {
	repo, mock := newTestScannerRepo(t)

	mock.ExpectExec("INSERT INTO scanners").WillReturnError(errors.New("db network error"))

	err := repo.Create(context.Background(), testScannerRecord())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.Contains(t, err.Error(), "db network error")
}

func TestScannerRepository_Update(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newTestScannerRepo(t)
		s := testScannerRecord()

		mock.ExpectExec(`UPDATE scanners SET image = \$1, username = \$2, .* WHERE id = \$13`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Update(context.Background(), s))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing scanner", func(t *testing.T) {
		repo, mock := newTestScannerRepo(t)

		mock.ExpectExec("UPDATE scanners").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(context.Background(), testScannerRecord()), ErrNotFound)
	})
}

func TestScannerRepository_Delete(t *testing.T) {
	repo, mock := newTestScannerRepo(t)

	mock.ExpectExec(`DELETE FROM scanners WHERE id = \$1`).
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM scanners WHERE id = \$1`).
		WithArgs("id-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "id-1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "id-2"), ErrNotFound)
}

func TestScannerRepository_Get(t *testing.T) {
	repo, mock := newTestScannerRepo(t)
	s := testScannerRecord()

	mock.ExpectQuery(`SELECT .* FROM scanners WHERE id = \$1`).
		WithArgs(s.ID).
		WillReturnRows(scannerRows(s))

	got, err := repo.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestScannerRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestScannerRepo(t)

	mock.ExpectQuery("SELECT .* FROM scanners").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScannerRepository_FindByUsername(t *testing.T) {
	repo, mock := newTestScannerRepo(t)
	s := testScannerRecord()

	mock.ExpectQuery(`SELECT .* FROM scanners WHERE username = \$1`).
		WithArgs(s.Username).
		WillReturnRows(scannerRows(s))

	got, err := repo.FindByUsername(context.Background(), s.Username)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
}

func TestScannerRepository_List(t *testing.T) {
	repo, mock := newTestScannerRepo(t)
	first, second := testScannerRecord(), testScannerRecord()
	second.ID = "0195a0b2-0000-7000-8000-000000000002"
	verified := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	second.VerifiedAt = &verified

	mock.ExpectQuery(`SELECT .* FROM scanners ORDER BY created_at DESC`).
		WillReturnRows(scannerRows(first, second))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].VerifiedAt)
	assert.Equal(t, verified, *got[1].VerifiedAt)
}

func TestScannerRepository_List_Empty(t *testing.T) {
	repo, mock := newTestScannerRepo(t)

	mock.ExpectQuery("SELECT .* FROM scanners").WillReturnRows(scannerRows())

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestScannerRepository_List_ScanError(t *testing.T) {
	repo, mock := newTestScannerRepo(t)

	mock.ExpectQuery("SELECT .* FROM scanners").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("only-id"))

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}
