package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/models"
)

type recordRepository struct {
	*DB
	logger *logger.Logger
}

func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *recordRepository) Upsert(ctx context.Context, record models.SealedRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertRecordQuery(r.builder, record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recordRepository.Upsert").
			Str("temp_id", record.TempID).
			Msg("failed to execute upsert for pending record")
		return fmt.Errorf("failed to upsert pending record (temp_id=%s): %w", record.TempID, r.storageErr(err))
	}

	return nil
}

func (r *recordRepository) GetByTempID(ctx context.Context, tempID string) (models.SealedRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordByTempIDQuery(r.builder, tempID)
	if err != nil {
		return models.SealedRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.SealedRecord
	scanErr := r.QueryRowContext(ctx, query, args...).Scan(
		&record.TempID,
		&record.ServerID,
		&record.OrgID,
		&record.Blob,
		&record.Synced,
		&record.CreatedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.SealedRecord{}, ErrRecordNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "recordRepository.GetByTempID").
			Str("temp_id", tempID).
			Msg("failed to scan pending record row")
		return models.SealedRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, r.storageErr(scanErr))
	}

	return record, nil
}

func (r *recordRepository) GetByField(ctx context.Context, field string, value any) ([]models.SealedRecord, error) {
	log := logger.FromContext(ctx)

	if _, ok := indexedRecordFields[field]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotIndexed, field)
	}

	query, args, err := buildSelectRecordsByFieldQuery(r.builder, field, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetByField").
			Str("field", field).
			Msg("failed to execute query for pending records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.storageErr(err))
	}
	defer rows.Close()

	var records []models.SealedRecord
	for rows.Next() {
		var record models.SealedRecord
		scanErr := rows.Scan(
			&record.TempID,
			&record.ServerID,
			&record.OrgID,
			&record.Blob,
			&record.Synced,
			&record.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "recordRepository.GetByField").
				Str("field", field).
				Msg("failed to scan pending record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.storageErr(err))
	}

	// an empty result is a valid answer
	return records, nil
}

func (r *recordRepository) SetServerID(ctx context.Context, tempID string, serverID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetRecordServerIDQuery(r.builder, tempID, serverID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.SetServerID").
			Str("temp_id", tempID).
			Int64("server_id", serverID).
			Msg("failed to store server id on pending record")
		return fmt.Errorf("failed to store server id (temp_id=%s): %w", tempID, r.storageErr(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (r *recordRepository) Delete(ctx context.Context, tempID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(r.builder, tempID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// deleting an absent row is a no-op, not an error
	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recordRepository.Delete").
			Str("temp_id", tempID).
			Msg("failed to delete pending record")
		return fmt.Errorf("failed to delete pending record (temp_id=%s): %w", tempID, r.storageErr(err))
	}

	return nil
}
