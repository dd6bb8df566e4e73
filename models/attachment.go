package models

import "time"

// PendingAttachment is a photo tied to a PendingRecord through the record's
// temporary identifier. It cannot be replayed before its parent record.
type PendingAttachment struct {
	TempID       string            `json:"temp_id"`
	ServerID     int64             `json:"server_id,omitempty"`
	ParentTempID string            `json:"parent_temp_id"`
	Payload      AttachmentPayload `json:"payload"`
	Synced       bool              `json:"synced"`
	CreatedAt    time.Time         `json:"created_at"`
}

// AttachmentPayload is the binary body of an attachment. Data is carried
// base64-encoded on the wire (encoding/json does this for byte slices).
type AttachmentPayload struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}
