package store

import (
	"context"
	"fmt"

	"github.com/akovalev/go-field-sync/internal/config"
	"github.com/akovalev/go-field-sync/internal/logger"
)

// Storages groups the repositories behind the local buffer into a single
// value that can be passed around the service layer.
type Storages struct {
	// Records is the repository for sealed net-cleaning records awaiting
	// delivery.
	Records RecordRepository

	// Attachments is the repository for sealed photo attachments awaiting
	// delivery.
	Attachments AttachmentRepository

	// Queue is the durable FIFO sync queue driving the reconciliation
	// worker.
	Queue QueueRepository

	// DB is the shared handle. Exposed so the wiring code can fetch the
	// seal salt and close the connection on shutdown.
	DB *DB
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens the database named by cfg.DB.DSN: a postgres:// scheme selects
//     the pgx driver, anything else is an SQLite file path created on
//     first use.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh
//     repositories sharing the one handle.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.AgentStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := Open(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Records:     NewRecordRepository(db, logger),
		Attachments: NewAttachmentRepository(db, logger),
		Queue:       NewQueueRepository(db, logger),
		DB:          db,
	}, nil
}
