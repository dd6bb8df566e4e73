// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"

	"github.com/akovalev/go-field-sync/internal/config"
	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/migrations"
)

// ErrorClassification buckets driver errors by how callers should react.
type ErrorClassification int

const (
	// NonRetryable errors are permanent for the statement that produced
	// them: constraint violations, bad data, SQL mistakes.
	NonRetryable ErrorClassification = iota
	// Retryable errors are transient contention: locks, serialization
	// failures, deadlocks. The same statement may succeed on a later try.
	Retryable
	// Unavailable errors mean the storage itself cannot serve requests:
	// disk full, file unopenable, connection refused. Repositories promote
	// these to [ErrStorageUnavailable].
	Unavailable
)

// ErrorClassificator tells repositories how to treat a driver error.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is the shared database handle behind every repository. Besides the
// connection it carries the pieces that differ between the two supported
// engines: the placeholder format for built queries, the driver-specific
// error classifier and the driver name used to pick the migration dialect.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Open connects to the database named by cfg.DSN. A postgres:// or
// postgresql:// scheme selects the pgx driver; anything else is treated as
// a SQLite file path, created on first use.
func Open(ctx context.Context, cfg config.AgentDB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// EnsureSealSalt returns the salt used to derive the sealing key,
// generating and persisting a fresh one on first start. The salt lives next
// to the data it protects: a copied buffer file stays openable, a fresh
// file gets fresh key material.
func (db *DB) EnsureSealSalt(ctx context.Context) (string, error) {
	log := db.logger

	query, args, err := db.builder.
		Select("salt").
		From("seal_meta").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var salt string
	scanErr := db.QueryRowContext(ctx, query, args...).Scan(&salt)
	if scanErr == nil {
		return salt, nil
	}
	if !errors.Is(scanErr, sql.ErrNoRows) {
		log.Err(scanErr).Str("func", "DB.EnsureSealSalt").Msg("failed to read seal salt")
		return "", fmt.Errorf("failed to read seal salt: %w", db.storageErr(scanErr))
	}

	// first start: generate and persist
	raw := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("failed to generate seal salt: %w", err)
	}
	salt = base64.StdEncoding.EncodeToString(raw)

	query, args, err = db.builder.
		Insert("seal_meta").
		Columns("id", "salt").
		Values(1, salt).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "DB.EnsureSealSalt").Msg("failed to persist seal salt")
		return "", fmt.Errorf("failed to persist seal salt: %w", db.storageErr(err))
	}
	log.Debug().Str("func", "DB.EnsureSealSalt").Msg("generated new seal salt")

	return salt, nil
}

// storageErr promotes driver errors that mean "the database cannot take
// reads or writes at all" to [ErrStorageUnavailable] so that callers match
// one sentinel regardless of engine. All other errors pass through as-is.
func (db *DB) storageErr(err error) error {
	if err == nil {
		return nil
	}
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Unavailable {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return err
}

// isUniqueViolation reports whether err is a unique-index violation on
// either supported engine.
func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
