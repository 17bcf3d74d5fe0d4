package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSavedCiphertextNotFound is returned when no active record with the
	// given id exists for the given owner. Missing, deleted and foreign
	// records are indistinguishable.
	ErrSavedCiphertextNotFound = errors.New("saved ciphertext was not found")

	// ErrSavedCiphertextNotSaved is returned when an INSERT completes without
	// error but affects no rows, or when the id is already taken.
	ErrSavedCiphertextNotSaved = errors.New("saved ciphertext was not saved")

	// ErrUnsupportedDSN is returned when the storage DSN names no known backend.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan saved ciphertext row")

	// ErrScanningRows is returned when multi-row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan saved ciphertext rows")
)
