package service

import (
	"context"

	"github.com/akovalev/go-field-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SubmitService is the agent's write path: it accepts a record or attachment
// from the device UI and either delivers it to the central API directly or
// buffers it for the reconciliation worker.
type SubmitService interface {
	// SubmitRecord validates payload and tries a direct delivery when the
	// link is up. If the remote is unreachable (or the monitor says
	// offline), the record is sealed, buffered and enqueued instead; the
	// response then carries the temporary id the UI must use to reference
	// the record until its server id exists.
	SubmitRecord(ctx context.Context, payload models.RecordPayload) (models.SubmitResponse, error)

	// SubmitAttachment attaches a photo to the record identified by
	// parentRef. A numeric parentRef is a server-assigned record id; any
	// other value is treated as the temporary id of a buffered record.
	// Returns [ErrParentNotFound] when parentRef matches nothing.
	SubmitAttachment(ctx context.Context, parentRef string, payload models.AttachmentPayload) (models.SubmitResponse, error)
}

// QueueService exposes the sync queue to the device UI: the status
// indicator, entry listings and manual resolution of parked entries.
type QueueService interface {
	// Status returns the connectivity snapshot together with the queue
	// counters, which is everything the UI's sync badge needs.
	Status(ctx context.Context) (models.StatusResponse, error)

	// List returns every queue entry, oldest first.
	List(ctx context.Context) ([]models.QueueEntry, error)

	// ListPending returns the unsealed view of every record still waiting
	// for delivery, together with its buffered attachments, oldest first.
	// Attachment bodies are omitted; the bytes stay sealed until replay.
	ListPending(ctx context.Context) (models.PendingListResponse, error)

	// ListFailed returns the entries parked after exhausting their retry
	// budget, oldest first.
	ListFailed(ctx context.Context) ([]models.QueueEntry, error)

	// Requeue puts a parked entry back into rotation with a fresh retry
	// budget and wakes the reconciliation worker.
	Requeue(ctx context.Context, entryID string) error

	// Discard permanently removes an entry together with its buffered
	// entity. Discarding a record entry also removes the record's
	// attachments and their entries; an orphaned photo has nothing to
	// attach to.
	Discard(ctx context.Context, entryID string) error
}

// ReconcileService replays buffered mutations against the central API.
type ReconcileService interface {
	// Drain runs one pass over the queue: entries are submitted oldest
	// first until the queue has no eligible entry left or the remote
	// becomes unreachable. Only one pass runs at a time; a call made while
	// another pass is active returns immediately without doing anything.
	//
	// The returned error reports infrastructure trouble (local storage,
	// remote unreachable mid-pass). Callers that drain on a schedule are
	// expected to ignore it: the queue keeps the work, the next trigger
	// retries.
	Drain(ctx context.Context) error
}

// SyncJob owns the background goroutine that triggers drain passes on
// connectivity recovery, on demand and on a fallback ticker.
type SyncJob interface {
	// Start launches the drain loop. Any previously running loop is
	// stopped first.
	Start(ctx context.Context)

	// Poke asks the loop for a drain pass soon. Non-blocking; pokes
	// arriving while a request is already pending coalesce into one.
	Poke()

	// Stop signals the loop to exit and blocks until it has fully
	// terminated.
	Stop()
}

// DrainTrigger is the slice of [SyncJob] the write path needs: something to
// wake after an enqueue.
type DrainTrigger interface {
	Poke()
}

// AppInfoService serves build metadata for the version endpoint.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.VersionResponse
}
