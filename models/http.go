package models

// SubmitResponse is what the facade returns for a record or attachment
// submission. Exactly one of the two shapes is populated: a direct server
// result when the call went straight through, or the queued form when the
// entity was buffered for later replay.
type SubmitResponse struct {
	// Queued is true when the entity was buffered instead of delivered.
	Queued bool `json:"queued"`

	// TemporaryID is the locally assigned identifier of the buffered
	// entity. Set only when Queued is true.
	TemporaryID string `json:"temporary_id,omitempty"`

	// ServerID is the identifier assigned by the central API.
	// Set only when Queued is false.
	ServerID int64 `json:"server_id,omitempty"`
}

// StatusResponse is the facade's snapshot for the device UI's sync
// indicator: connectivity plus queue counters.
type StatusResponse struct {
	Online      bool    `json:"online"`
	Quality     Quality `json:"quality"`
	QueueDepth  int     `json:"queue_depth"`
	FailedCount int     `json:"failed_count"`
}

// PendingListResponse is the facade's listing of buffered work in its
// unsealed, domain form: the records still waiting for delivery and the
// attachments tied to them through their parent temporary identifiers.
// Attachment payloads carry metadata only; the photo bytes stay sealed in
// the buffer until the reconciliation worker replays them.
type PendingListResponse struct {
	Records     []PendingRecord     `json:"records"`
	Attachments []PendingAttachment `json:"attachments"`
	Length      int                 `json:"length"`
}

// QueueListResponse is the facade's queue listing body.
type QueueListResponse struct {
	Entries []QueueEntry `json:"entries"`
	Length  int          `json:"length"`
}

// VersionResponse carries build metadata for diagnostics.
type VersionResponse struct {
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}

// CreateRecordRequest is the central API's record-creation body.
type CreateRecordRequest struct {
	// ClientRef is the device-side temporary identifier. The server uses
	// it to deduplicate replays of the same submission.
	ClientRef string `json:"client_ref"`

	Record RecordPayload `json:"record"`
}

// CreateRecordResponse is the central API's reply to a record creation.
type CreateRecordResponse struct {
	// ID is the server-assigned record identifier.
	ID int64 `json:"id"`
}

// CreateAttachmentRequest is the central API's attachment-creation body.
// RecordID must be a server-assigned identifier; the central API knows
// nothing about device-side temporary identifiers.
type CreateAttachmentRequest struct {
	ClientRef  string            `json:"client_ref"`
	RecordID   int64             `json:"record_id"`
	Attachment AttachmentPayload `json:"attachment"`
}

// CreateAttachmentResponse is the central API's reply to an attachment
// creation.
type CreateAttachmentResponse struct {
	ID int64 `json:"id"`
}

// APIError is the structured error body the central API returns with
// 4xx responses.
type APIError struct {
	Error string `json:"error"`
}
