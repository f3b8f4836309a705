package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when creating or updating a user
	// fails because another user already owns the same email address.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no active user matches the given ID.
	ErrUserNotFound = errors.New("user not found")
)

// Query specification errors. They are caused by the client's query string
// and are reported as bad requests.
var (
	// ErrUnknownField is returned when a filter, sort key or projection names
	// a field that is not exposed by the resource.
	ErrUnknownField = errors.New("invalid query field")

	// ErrUnsupportedOperator is returned when a filter uses an operator other
	// than $gt, $gte, $lt or $lte.
	ErrUnsupportedOperator = errors.New("unsupported query operator")

	// ErrInvalidFilterValue is returned when an operator is given a value it
	// cannot compare against, such as a list or a nested object.
	ErrInvalidFilterValue = errors.New("invalid filter value")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan user rows")

	// ErrUnsupportedDriver is returned by [NewDB] for a driver name other
	// than pgx or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
