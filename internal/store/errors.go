package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the requested email.
	ErrUserNotFound = errors.New("user was not found")

	// ErrSectionNotFound is returned when a section has never been written.
	ErrSectionNotFound = errors.New("section was not found")

	// ErrSectionVersionConflict is returned when a conditional section write
	// names a version that is no longer the stored one, meaning another
	// write landed since the caller loaded the section.
	ErrSectionVersionConflict = errors.New("section version conflict occurred")

	// ErrProjectNotFound is returned when a project id does not exist or is
	// not a valid identifier.
	ErrProjectNotFound = errors.New("project was not found")

	// ErrStoreUnavailable is returned when the database cannot be reached.
	ErrStoreUnavailable = errors.New("store is unavailable")

	// ErrLocalSessionNotFound is returned by the client session store when no
	// session has been saved.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingPayload is returned when a JSON column value cannot be
	// encoded or decoded.
	ErrEncodingPayload = errors.New("failed to encode json column")
)
