// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for the sqlite3
// driver. It inspects the primary result code of a sqlite3.Error and maps
// it to an [ErrorClassification] value.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// sqlite3.Error and delegates to [ClassifySQLiteError]. If err is nil or is
// not a SQLite driver error, [NonRetryable] is returned.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	// Attempt to unwrap to a sqlite3.Error. The driver returns it by value.
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassifySQLiteError(sqliteErr)
	}

	// Default: treat unrecognised errors as non-retryable.
	return NonRetryable
}

// ClassifySQLiteError maps a sqlite3.Error to an [ErrorClassification]
// based on the primary result code.
// See https://www.sqlite.org/rescode.html for the full list.
//
// Unavailable codes (promoted to [ErrStorageUnavailable]):
//   - SQLITE_FULL (13) — database or disk is full
//   - SQLITE_IOERR (10) — disk I/O error
//   - SQLITE_CANTOPEN (14) — unable to open the database file
//   - SQLITE_NOMEM (7) — out of memory
//   - SQLITE_READONLY (8) — attempt to write a readonly database
//   - SQLITE_CORRUPT (11) — database disk image is malformed
//
// Retryable codes:
//   - SQLITE_BUSY (5) — another connection holds the write lock
//   - SQLITE_LOCKED (6) — a table is locked within this connection
//
// Any code not listed above is classified as [NonRetryable].
func ClassifySQLiteError(sqliteErr sqlite3.Error) ErrorClassification {
	switch sqliteErr.Code {
	case sqlite3.ErrFull,
		sqlite3.ErrIoErr,
		sqlite3.ErrCantOpen,
		sqlite3.ErrNomem,
		sqlite3.ErrReadonly,
		sqlite3.ErrCorrupt:
		return Unavailable

	case sqlite3.ErrBusy,
		sqlite3.ErrLocked:
		return Retryable
	}

	// Default: constraint violations, type mismatches, SQL mistakes.
	return NonRetryable
}
