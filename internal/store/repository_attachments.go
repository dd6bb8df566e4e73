package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/models"
)

type attachmentRepository struct {
	*DB
	logger *logger.Logger
}

func NewAttachmentRepository(db *DB, logger *logger.Logger) AttachmentRepository {
	return &attachmentRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *attachmentRepository) Upsert(ctx context.Context, attachment models.SealedAttachment) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertAttachmentQuery(r.builder, attachment)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "attachmentRepository.Upsert").
			Str("temp_id", attachment.TempID).
			Str("parent_temp_id", attachment.ParentTempID).
			Msg("failed to execute upsert for pending attachment")
		return fmt.Errorf("failed to upsert pending attachment (temp_id=%s): %w", attachment.TempID, r.storageErr(err))
	}

	return nil
}

func (r *attachmentRepository) GetByTempID(ctx context.Context, tempID string) (models.SealedAttachment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAttachmentByTempIDQuery(r.builder, tempID)
	if err != nil {
		return models.SealedAttachment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var attachment models.SealedAttachment
	scanErr := r.QueryRowContext(ctx, query, args...).Scan(
		&attachment.TempID,
		&attachment.ServerID,
		&attachment.ParentTempID,
		&attachment.Blob,
		&attachment.Synced,
		&attachment.CreatedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.SealedAttachment{}, ErrAttachmentNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "attachmentRepository.GetByTempID").
			Str("temp_id", tempID).
			Msg("failed to scan pending attachment row")
		return models.SealedAttachment{}, fmt.Errorf("%w: %w", ErrScanningRow, r.storageErr(scanErr))
	}

	return attachment, nil
}

func (r *attachmentRepository) GetByField(ctx context.Context, field string, value any) ([]models.SealedAttachment, error) {
	if _, ok := indexedAttachmentFields[field]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotIndexed, field)
	}

	query, args, err := buildSelectAttachmentsByFieldQuery(r.builder, field, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryAttachments(ctx, "attachmentRepository.GetByField", query, args)
}

func (r *attachmentRepository) GetByParent(ctx context.Context, parentTempID string) ([]models.SealedAttachment, error) {
	query, args, err := buildSelectAttachmentsByParentQuery(r.builder, parentTempID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryAttachments(ctx, "attachmentRepository.GetByParent", query, args)
}

func (r *attachmentRepository) queryAttachments(ctx context.Context, caller string, query string, args []any) ([]models.SealedAttachment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute query for pending attachments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.storageErr(err))
	}
	defer rows.Close()

	var attachments []models.SealedAttachment
	for rows.Next() {
		var attachment models.SealedAttachment
		scanErr := rows.Scan(
			&attachment.TempID,
			&attachment.ServerID,
			&attachment.ParentTempID,
			&attachment.Blob,
			&attachment.Synced,
			&attachment.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan pending attachment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		attachments = append(attachments, attachment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.storageErr(err))
	}

	return attachments, nil
}

func (r *attachmentRepository) SetServerID(ctx context.Context, tempID string, serverID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetAttachmentServerIDQuery(r.builder, tempID, serverID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "attachmentRepository.SetServerID").
			Str("temp_id", tempID).
			Int64("server_id", serverID).
			Msg("failed to store server id on pending attachment")
		return fmt.Errorf("failed to store server id (temp_id=%s): %w", tempID, r.storageErr(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAttachmentNotFound
	}

	return nil
}

func (r *attachmentRepository) Delete(ctx context.Context, tempID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAttachmentQuery(r.builder, tempID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// deleting an absent row is a no-op, not an error
	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "attachmentRepository.Delete").
			Str("temp_id", tempID).
			Msg("failed to delete pending attachment")
		return fmt.Errorf("failed to delete pending attachment (temp_id=%s): %w", tempID, r.storageErr(err))
	}

	return nil
}

func (r *attachmentRepository) DeleteByParent(ctx context.Context, parentTempID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAttachmentsByParentQuery(r.builder, parentTempID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "attachmentRepository.DeleteByParent").
			Str("parent_temp_id", parentTempID).
			Msg("failed to delete attachments of record")
		return fmt.Errorf("failed to delete attachments (parent_temp_id=%s): %w", parentTempID, r.storageErr(err))
	}

	return nil
}
