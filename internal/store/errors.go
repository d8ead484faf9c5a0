package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when registering a user whose
	// username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUIDAlreadyExists is returned when the provider identity is already
	// registered.
	ErrUIDAlreadyExists = errors.New("user already registered")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPostNotSaved is returned when an INSERT into posts returns no id.
	ErrPostNotSaved = errors.New("post was not saved")
)

// Content store errors.
var (
	// ErrUnknownContentType is returned by [ExtensionFor] when a MIME type
	// has no registered file extension.
	ErrUnknownContentType = errors.New("unknown content type")

	// ErrStorageWrite wraps any failure to durably write an attachment body.
	ErrStorageWrite = errors.New("storage write failed")

	// ErrContentNotServed is returned by a [ContentLinker] that has no way to
	// hand out links for its objects.
	ErrContentNotServed = errors.New("content is not served by this backend")

	// ErrContentNotFound is returned for a content path that cannot name a
	// stored object.
	ErrContentNotFound = errors.New("content not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
