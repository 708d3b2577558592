package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrFolderNotFound is returned when an operation targets a folder that
	// does not exist or is not owned by the caller. The two cases are
	// deliberately indistinguishable so that callers cannot probe for
	// other users' folder ids.
	ErrFolderNotFound = errors.New("folder was not found")

	// ErrPromptNotFound is returned when an operation targets a prompt that
	// does not exist or is not owned by the caller.
	ErrPromptNotFound = errors.New("prompt was not found")

	// ErrInvalidFolderReference is returned when a supplied folder id does
	// not resolve to an existing folder owned by the caller. The write is
	// rejected before any row is inserted or modified.
	ErrInvalidFolderReference = errors.New("folder reference is invalid")

	// ErrConstraintViolation is returned when the database rejects a write
	// that violates a declared constraint (e.g. a required column omitted).
	ErrConstraintViolation = errors.New("storage constraint violated")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back at this
	// point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared (e.g. syntax error or connection issue).
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a prepared DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
