package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a queried or updated row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned on a unique violation: a second scanner
	// with the same username, a second product or manufacturer with the
	// same barcode, a second admin with the same username.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrReferenceNotFound is returned on a foreign key violation, e.g. a
	// scan event for a scanner that was deleted meanwhile.
	ErrReferenceNotFound = errors.New("referenced record not found")

	// ErrUnsupportedDriver is returned by [NewConnect] for a driver other
	// than pgx or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are wrapped together with the
// driver error when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
