package store

import "errors"

// Key-value store errors. The session core treats every one of them as a
// storage failure and applies its own fail-safe or fail-open policy.
var (
	// ErrReadingKey is returned when a value cannot be read.
	ErrReadingKey = errors.New("error reading key")

	// ErrWritingKey is returned when a value cannot be written.
	ErrWritingKey = errors.New("error writing key")

	// ErrRemovingKey is returned when a value cannot be removed.
	ErrRemovingKey = errors.New("error removing key")

	// ErrStoreClosed is returned by the in-memory store after Close.
	ErrStoreClosed = errors.New("key-value store is closed")
)

// User repository errors.
var (
	// ErrEmailAlreadyExists is returned when registering an e-mail that is
	// already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no account matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")
)

// Low-level database errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails at the driver.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan row")
)
