// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/models"
)

type queueRepository struct {
	*DB
	logger *logger.Logger
}

func NewQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	return &queueRepository{
		DB:     db,
		logger: logger,
	}
}

func (q *queueRepository) Enqueue(ctx context.Context, entry models.QueueEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildEnqueueQuery(q.builder, entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w (kind=%s temp_id=%s)", ErrAlreadyQueued, entry.Kind, entry.TempID)
		}
		log.Err(err).
			Str("func", "queueRepository.Enqueue").
			Str("entry_id", entry.ID).
			Str("kind", string(entry.Kind)).
			Str("temp_id", entry.TempID).
			Msg("failed to insert sync queue entry")
		return fmt.Errorf("failed to enqueue (temp_id=%s): %w", entry.TempID, q.storageErr(err))
	}

	return nil
}

func (q *queueRepository) PeekNext(ctx context.Context, skip ...string) (models.QueueEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPeekNextQuery(q.builder, skip)
	if err != nil {
		return models.QueueEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, scanErr := scanQueueEntry(q.QueryRowContext(ctx, query, args...))
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.QueueEntry{}, ErrQueueEmpty
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "queueRepository.PeekNext").
			Msg("failed to scan sync queue entry")
		return models.QueueEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, q.storageErr(scanErr))
	}

	return entry, nil
}

func (q *queueRepository) MarkDone(ctx context.Context, entryID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(q.builder, entryID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.MarkDone").
			Str("entry_id", entryID).
			Msg("failed to remove delivered sync queue entry")
		return fmt.Errorf("failed to mark entry done (id=%s): %w", entryID, q.storageErr(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func (q *queueRepository) MarkFailed(ctx context.Context, entryID string, reason string, ceiling int) (models.QueueEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMarkFailedQuery(q.builder, entryID, reason, ceiling)
	if err != nil {
		return models.QueueEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.MarkFailed").
			Str("entry_id", entryID).
			Msg("failed to record sync attempt failure")
		return models.QueueEntry{}, fmt.Errorf("failed to mark entry failed (id=%s): %w", entryID, q.storageErr(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.QueueEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.QueueEntry{}, ErrEntryNotFound
	}

	// return the updated entry so the caller can see whether it got parked
	return q.GetEntry(ctx, entryID)
}

func (q *queueRepository) ResolveParent(ctx context.Context, parentTempID string, serverID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildResolveParentQuery(q.builder, parentTempID, serverID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// zero affected rows is fine: the record may have no attachments
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "queueRepository.ResolveParent").
			Str("parent_temp_id", parentTempID).
			Int64("server_id", serverID).
			Msg("failed to resolve parent server id on attachment entries")
		return fmt.Errorf("failed to resolve parent (parent_temp_id=%s): %w", parentTempID, q.storageErr(err))
	}

	return nil
}

func (q *queueRepository) Requeue(ctx context.Context, entryID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRequeueQuery(q.builder, entryID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Requeue").
			Str("entry_id", entryID).
			Msg("failed to requeue parked sync queue entry")
		return fmt.Errorf("failed to requeue entry (id=%s): %w", entryID, q.storageErr(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		// either the id is unknown or the entry is not parked
		return ErrEntryNotFound
	}

	return nil
}

func (q *queueRepository) GetEntry(ctx context.Context, entryID string) (models.QueueEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntryQuery(q.builder, entryID)
	if err != nil {
		return models.QueueEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, scanErr := scanQueueEntry(q.QueryRowContext(ctx, query, args...))
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.QueueEntry{}, ErrEntryNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "queueRepository.GetEntry").
			Str("entry_id", entryID).
			Msg("failed to scan sync queue entry")
		return models.QueueEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, q.storageErr(scanErr))
	}

	return entry, nil
}

func (q *queueRepository) Discard(ctx context.Context, entryID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(q.builder, entryID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Discard").
			Str("entry_id", entryID).
			Msg("failed to discard sync queue entry")
		return fmt.Errorf("failed to discard entry (id=%s): %w", entryID, q.storageErr(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func (q *queueRepository) DiscardByParent(ctx context.Context, parentTempID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDiscardByParentQuery(q.builder, parentTempID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "queueRepository.DiscardByParent").
			Str("parent_temp_id", parentTempID).
			Msg("failed to discard attachment entries of record")
		return fmt.Errorf("failed to discard entries (parent_temp_id=%s): %w", parentTempID, q.storageErr(err))
	}

	return nil
}

func (q *queueRepository) ListFailed(ctx context.Context) ([]models.QueueEntry, error) {
	query, args, err := buildListFailedQuery(q.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return q.listEntries(ctx, "queueRepository.ListFailed", query, args)
}

func (q *queueRepository) List(ctx context.Context) ([]models.QueueEntry, error) {
	query, args, err := buildListEntriesQuery(q.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return q.listEntries(ctx, "queueRepository.List", query, args)
}

func (q *queueRepository) listEntries(ctx context.Context, caller string, query string, args []any) ([]models.QueueEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute query for sync queue entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, q.storageErr(err))
	}
	defer rows.Close()

	var entries []models.QueueEntry
	for rows.Next() {
		entry, scanErr := scanQueueEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan sync queue entry")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, q.storageErr(err))
	}

	return entries, nil
}

func (q *queueRepository) Depth(ctx context.Context) (int64, error) {
	return q.countByStatus(ctx, "queueRepository.Depth", models.StatusPending)
}

func (q *queueRepository) FailedCount(ctx context.Context) (int64, error) {
	return q.countByStatus(ctx, "queueRepository.FailedCount", models.StatusFailed)
}

func (q *queueRepository) countByStatus(ctx context.Context, caller string, status models.EntryStatus) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountByStatusQuery(q.builder, status)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if scanErr := q.QueryRowContext(ctx, query, args...).Scan(&count); scanErr != nil {
		log.Err(scanErr).
			Str("func", caller).
			Str("status", string(status)).
			Msg("failed to count sync queue entries")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, q.storageErr(scanErr))
	}

	return count, nil
}

// scanQueueEntry reads one sync_queue row from either a *sql.Row or *sql.Rows.
func scanQueueEntry(s interface{ Scan(dest ...any) error }) (models.QueueEntry, error) {
	var entry models.QueueEntry
	err := s.Scan(
		&entry.ID,
		&entry.Kind,
		&entry.TempID,
		&entry.ParentTempID,
		&entry.ParentServerID,
		&entry.EnqueuedAt,
		&entry.RetryCount,
		&entry.Status,
		&entry.LastError,
	)
	return entry, err
}
