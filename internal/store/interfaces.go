package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/akovalev/go-field-sync/models"
)

// RecordRepository persists sealed net-cleaning records in the local buffer.
type RecordRepository interface {
	// Upsert inserts the record or, when a row with the same temp_id already
	// exists, replaces it entirely. Calling it twice with the same temp_id
	// leaves exactly one row with the last write's contents.
	Upsert(ctx context.Context, record models.SealedRecord) error
	// GetByTempID returns the record identified by tempID.
	// Returns [ErrRecordNotFound] if no such row exists.
	GetByTempID(ctx context.Context, tempID string) (models.SealedRecord, error)
	// GetByField returns all records whose indexed column matches value.
	// An empty result is a valid answer, not an error. Only whitelisted
	// columns may be queried; anything else returns [ErrFieldNotIndexed].
	GetByField(ctx context.Context, field string, value any) ([]models.SealedRecord, error)
	// SetServerID stores the server-assigned id on the record and flips its
	// synced flag. Returns [ErrRecordNotFound] if the row is gone.
	SetServerID(ctx context.Context, tempID string, serverID int64) error
	// Delete removes the record. Deleting a temp_id that does not exist is
	// a no-op, not an error.
	Delete(ctx context.Context, tempID string) error
}

// AttachmentRepository persists sealed photo attachments in the local buffer.
type AttachmentRepository interface {
	Upsert(ctx context.Context, attachment models.SealedAttachment) error
	GetByTempID(ctx context.Context, tempID string) (models.SealedAttachment, error)
	GetByField(ctx context.Context, field string, value any) ([]models.SealedAttachment, error)
	// GetByParent returns every attachment belonging to the record
	// identified by parentTempID, oldest first.
	GetByParent(ctx context.Context, parentTempID string) ([]models.SealedAttachment, error)
	SetServerID(ctx context.Context, tempID string, serverID int64) error
	Delete(ctx context.Context, tempID string) error
	// DeleteByParent removes all attachments of one record in a single
	// statement. Used when a failed record is discarded by the operator.
	DeleteByParent(ctx context.Context, parentTempID string) error
}

// QueueRepository maintains the durable FIFO sync queue.
type QueueRepository interface {
	// Enqueue appends a new entry. Returns [ErrAlreadyQueued] when an entry
	// for the same kind and temp_id is already present.
	Enqueue(ctx context.Context, entry models.QueueEntry) error
	// PeekNext returns the oldest eligible entry without removing it.
	// Record entries are always eligible; attachment entries only become
	// eligible once their parent_server_id has been resolved. Parked
	// (failed) entries are never returned. Entry ids listed in skip are
	// passed over, which is how a drain pass moves beyond an entry it has
	// already attempted. Returns [ErrQueueEmpty] when nothing qualifies.
	PeekNext(ctx context.Context, skip ...string) (models.QueueEntry, error)
	// MarkDone removes a delivered entry from the queue.
	MarkDone(ctx context.Context, entryID string) error
	// MarkFailed increments the entry's retry counter and records reason.
	// Once the counter reaches ceiling the entry is parked with status
	// failed and stops being offered by PeekNext. The updated entry is
	// returned so callers can observe the transition.
	MarkFailed(ctx context.Context, entryID string, reason string, ceiling int) (models.QueueEntry, error)
	// ResolveParent writes the server-assigned record id into every
	// attachment entry that references parentTempID, unblocking them
	// for delivery.
	ResolveParent(ctx context.Context, parentTempID string, serverID int64) error
	// Requeue resets a parked entry back to pending with a zero retry
	// counter. Returns [ErrEntryNotFound] when the id does not exist or
	// the entry is not parked.
	Requeue(ctx context.Context, entryID string) error
	// GetEntry returns the entry identified by entryID.
	GetEntry(ctx context.Context, entryID string) (models.QueueEntry, error)
	// Discard removes an entry from the queue regardless of its status.
	Discard(ctx context.Context, entryID string) error
	// DiscardByParent removes all attachment entries referencing
	// parentTempID. Used when a failed record is discarded together with
	// its dependents.
	DiscardByParent(ctx context.Context, parentTempID string) error
	// ListFailed returns all parked entries, oldest first.
	ListFailed(ctx context.Context) ([]models.QueueEntry, error)
	// List returns every entry regardless of status, oldest first.
	List(ctx context.Context) ([]models.QueueEntry, error)
	// Depth returns the number of entries still waiting for delivery.
	Depth(ctx context.Context) (int64, error)
	// FailedCount returns the number of parked entries.
	FailedCount(ctx context.Context) (int64, error)
}
