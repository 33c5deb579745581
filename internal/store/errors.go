package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when the requested row does not exist or has
	// been soft-deleted.
	ErrNotFound = errors.New("record was not found")

	// ErrAlreadyExists is returned when an insert or update violates a
	// unique constraint (e.g. a duplicate username).
	ErrAlreadyExists = errors.New("record already exists")

	// ErrInvalidReference is returned when a row points to a parent that
	// does not exist (e.g. a city with an unknown department_id).
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrUnsupportedDSN is returned when no driver matches the configured
	// connection string.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
