// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/akovalev/go-field-sync/models"
)

// Queries are built with squirrel instead of hand-written constants so the
// same builder serves both engines: the SQLite handle renders ? placeholders,
// the Postgres handle renders $N. Everything emitted here sticks to syntax
// both engines accept (ON CONFLICT ... excluded, CASE WHEN).

const (
	tableRecords     = "pending_records"
	tableAttachments = "pending_attachments"
	tableQueue       = "sync_queue"
)

var (
	recordColumns     = []string{"temp_id", "server_id", "org_id", "blob", "synced", "created_at"}
	attachmentColumns = []string{"temp_id", "server_id", "parent_temp_id", "blob", "synced", "created_at"}
	queueColumns      = []string{"id", "kind", "temp_id", "parent_temp_id", "parent_server_id", "enqueued_at", "retry_count", "status", "last_error"}
)

// indexedRecordFields lists the columns GetByField may filter on. Payload
// fields are sealed inside the blob and invisible to the database.
var indexedRecordFields = map[string]struct{}{
	"org_id": {},
	"synced": {},
}

var indexedAttachmentFields = map[string]struct{}{
	"parent_temp_id": {},
	"synced":         {},
}

// ── pending_records ──

func buildUpsertRecordQuery(b sq.StatementBuilderType, record models.SealedRecord) (string, []any, error) {
	return b.Insert(tableRecords).
		Columns(recordColumns...).
		Values(record.TempID, record.ServerID, record.OrgID, record.Blob, record.Synced, record.CreatedAt).
		Suffix(`ON CONFLICT (temp_id) DO UPDATE SET
			server_id  = excluded.server_id,
			org_id     = excluded.org_id,
			blob       = excluded.blob,
			synced     = excluded.synced,
			created_at = excluded.created_at`).
		ToSql()
}

func buildSelectRecordByTempIDQuery(b sq.StatementBuilderType, tempID string) (string, []any, error) {
	return b.Select(recordColumns...).
		From(tableRecords).
		Where(sq.Eq{"temp_id": tempID}).
		ToSql()
}

func buildSelectRecordsByFieldQuery(b sq.StatementBuilderType, field string, value any) (string, []any, error) {
	return b.Select(recordColumns...).
		From(tableRecords).
		Where(sq.Eq{field: value}).
		OrderBy("created_at ASC", "temp_id ASC").
		ToSql()
}

func buildSetRecordServerIDQuery(b sq.StatementBuilderType, tempID string, serverID int64) (string, []any, error) {
	return b.Update(tableRecords).
		Set("server_id", serverID).
		Set("synced", true).
		Where(sq.Eq{"temp_id": tempID}).
		ToSql()
}

func buildDeleteRecordQuery(b sq.StatementBuilderType, tempID string) (string, []any, error) {
	return b.Delete(tableRecords).
		Where(sq.Eq{"temp_id": tempID}).
		ToSql()
}

// ── pending_attachments ──

func buildUpsertAttachmentQuery(b sq.StatementBuilderType, attachment models.SealedAttachment) (string, []any, error) {
	return b.Insert(tableAttachments).
		Columns(attachmentColumns...).
		Values(attachment.TempID, attachment.ServerID, attachment.ParentTempID, attachment.Blob, attachment.Synced, attachment.CreatedAt).
		Suffix(`ON CONFLICT (temp_id) DO UPDATE SET
			server_id      = excluded.server_id,
			parent_temp_id = excluded.parent_temp_id,
			blob           = excluded.blob,
			synced         = excluded.synced,
			created_at     = excluded.created_at`).
		ToSql()
}

func buildSelectAttachmentByTempIDQuery(b sq.StatementBuilderType, tempID string) (string, []any, error) {
	return b.Select(attachmentColumns...).
		From(tableAttachments).
		Where(sq.Eq{"temp_id": tempID}).
		ToSql()
}

func buildSelectAttachmentsByFieldQuery(b sq.StatementBuilderType, field string, value any) (string, []any, error) {
	return b.Select(attachmentColumns...).
		From(tableAttachments).
		Where(sq.Eq{field: value}).
		OrderBy("created_at ASC", "temp_id ASC").
		ToSql()
}

func buildSelectAttachmentsByParentQuery(b sq.StatementBuilderType, parentTempID string) (string, []any, error) {
	return b.Select(attachmentColumns...).
		From(tableAttachments).
		Where(sq.Eq{"parent_temp_id": parentTempID}).
		OrderBy("created_at ASC", "temp_id ASC").
		ToSql()
}

func buildSetAttachmentServerIDQuery(b sq.StatementBuilderType, tempID string, serverID int64) (string, []any, error) {
	return b.Update(tableAttachments).
		Set("server_id", serverID).
		Set("synced", true).
		Where(sq.Eq{"temp_id": tempID}).
		ToSql()
}

func buildDeleteAttachmentQuery(b sq.StatementBuilderType, tempID string) (string, []any, error) {
	return b.Delete(tableAttachments).
		Where(sq.Eq{"temp_id": tempID}).
		ToSql()
}

func buildDeleteAttachmentsByParentQuery(b sq.StatementBuilderType, parentTempID string) (string, []any, error) {
	return b.Delete(tableAttachments).
		Where(sq.Eq{"parent_temp_id": parentTempID}).
		ToSql()
}

// ── sync_queue ──

func buildEnqueueQuery(b sq.StatementBuilderType, entry models.QueueEntry) (string, []any, error) {
	return b.Insert(tableQueue).
		Columns(queueColumns...).
		Values(entry.ID, entry.Kind, entry.TempID, entry.ParentTempID, entry.ParentServerID, entry.EnqueuedAt, entry.RetryCount, entry.Status, entry.LastError).
		ToSql()
}

// buildPeekNextQuery selects the oldest deliverable entry. Attachment
// entries stay invisible until ResolveParent has written a non-zero
// parent_server_id, which is what keeps a photo from ever being sent
// before its record. UUIDv7 ids sort by creation time, so the id column
// breaks enqueued_at ties in insertion order. Entries named in skip are
// excluded so a drain pass can step past one it has already attempted.
func buildPeekNextQuery(b sq.StatementBuilderType, skip []string) (string, []any, error) {
	query := b.Select(queueColumns...).
		From(tableQueue).
		Where(sq.Eq{"status": models.StatusPending}).
		Where(sq.Or{
			sq.Eq{"kind": models.KindRecord},
			sq.NotEq{"parent_server_id": 0},
		})
	if len(skip) > 0 {
		query = query.Where(sq.NotEq{"id": skip})
	}
	return query.
		OrderBy("enqueued_at ASC", "id ASC").
		Limit(1).
		ToSql()
}

func buildDeleteEntryQuery(b sq.StatementBuilderType, entryID string) (string, []any, error) {
	return b.Delete(tableQueue).
		Where(sq.Eq{"id": entryID}).
		ToSql()
}

// buildMarkFailedQuery bumps the retry counter and parks the entry once the
// counter reaches the ceiling. Done in one statement so a crash between
// "increment" and "park" cannot leave the entry eligible beyond its budget.
func buildMarkFailedQuery(b sq.StatementBuilderType, entryID string, reason string, ceiling int) (string, []any, error) {
	return b.Update(tableQueue).
		Set("retry_count", sq.Expr("retry_count + 1")).
		Set("last_error", reason).
		Set("status", sq.Expr("CASE WHEN retry_count + 1 >= ? THEN ? ELSE status END", ceiling, models.StatusFailed)).
		Where(sq.Eq{"id": entryID}).
		ToSql()
}

func buildResolveParentQuery(b sq.StatementBuilderType, parentTempID string, serverID int64) (string, []any, error) {
	return b.Update(tableQueue).
		Set("parent_server_id", serverID).
		Where(sq.Eq{"kind": models.KindAttachment, "parent_temp_id": parentTempID}).
		ToSql()
}

func buildRequeueQuery(b sq.StatementBuilderType, entryID string) (string, []any, error) {
	return b.Update(tableQueue).
		Set("status", models.StatusPending).
		Set("retry_count", 0).
		Set("last_error", "").
		Where(sq.Eq{"id": entryID, "status": models.StatusFailed}).
		ToSql()
}

func buildGetEntryQuery(b sq.StatementBuilderType, entryID string) (string, []any, error) {
	return b.Select(queueColumns...).
		From(tableQueue).
		Where(sq.Eq{"id": entryID}).
		ToSql()
}

func buildDiscardByParentQuery(b sq.StatementBuilderType, parentTempID string) (string, []any, error) {
	return b.Delete(tableQueue).
		Where(sq.Eq{"kind": models.KindAttachment, "parent_temp_id": parentTempID}).
		ToSql()
}

func buildListFailedQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(queueColumns...).
		From(tableQueue).
		Where(sq.Eq{"status": models.StatusFailed}).
		OrderBy("enqueued_at ASC", "id ASC").
		ToSql()
}

func buildListEntriesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(queueColumns...).
		From(tableQueue).
		OrderBy("enqueued_at ASC", "id ASC").
		ToSql()
}

func buildCountByStatusQuery(b sq.StatementBuilderType, status models.EntryStatus) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(tableQueue).
		Where(sq.Eq{"status": status}).
		ToSql()
}
