package models

import "time"

// SealedRecord is the at-rest form of a PendingRecord: the payload is
// sealed into an opaque base64 blob, while the fields used for indexed
// lookups (org_id, synced) stay in the clear.
type SealedRecord struct {
	TempID    string    `db:"temp_id"`
	ServerID  int64     `db:"server_id"`
	OrgID     int64     `db:"org_id"`
	Blob      string    `db:"blob"`
	Synced    bool      `db:"synced"`
	CreatedAt time.Time `db:"created_at"`
}

// SealedAttachment is the at-rest form of a PendingAttachment. The parent
// reference is kept in the clear so that attachments can be listed per
// record without opening their blobs.
type SealedAttachment struct {
	TempID       string    `db:"temp_id"`
	ServerID     int64     `db:"server_id"`
	ParentTempID string    `db:"parent_temp_id"`
	Blob         string    `db:"blob"`
	Synced       bool      `db:"synced"`
	CreatedAt    time.Time `db:"created_at"`
}
