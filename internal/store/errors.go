package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorageUnavailable is returned when the backing database cannot
	// accept the operation at all: the disk is full, the file cannot be
	// opened, or the server connection is gone. Callers must surface this
	// condition to the operator instead of queueing work on top of it.
	ErrStorageUnavailable = errors.New("local storage unavailable")

	// ErrRecordNotFound is returned when a query or update targets a pending
	// record (identified by temp_id) that does not exist in the database.
	ErrRecordNotFound = errors.New("pending record was not found")

	// ErrAttachmentNotFound is returned when a query or update targets a
	// pending attachment (identified by temp_id) that does not exist in the
	// database.
	ErrAttachmentNotFound = errors.New("pending attachment was not found")

	// ErrEntryNotFound is returned when a queue operation targets an entry id
	// that is not present in the sync queue.
	ErrEntryNotFound = errors.New("sync queue entry was not found")

	// ErrQueueEmpty is returned by PeekNext when no entry is eligible for
	// delivery: the queue is drained, or every remaining entry is either
	// parked as failed or gated behind an unsynced parent.
	ErrQueueEmpty = errors.New("sync queue has no eligible entry")

	// ErrFieldNotIndexed is returned when a lookup names a column that is not
	// part of the indexed whitelist for that entity kind. Payload fields live
	// inside the sealed blob and cannot be matched by the database.
	ErrFieldNotIndexed = errors.New("field is not indexed for lookup")

	// ErrAlreadyQueued is returned when an entry for the same kind and
	// temp_id is already present in the sync queue. One entity owns at most
	// one queue entry at a time.
	ErrAlreadyQueued = errors.New("entity is already queued for sync")
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
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
