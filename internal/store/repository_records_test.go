package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/akovalev/go-field-sync/internal/logger"
	"github.com/akovalev/go-field-sync/models"
)

func newTestRecordRepo(t *testing.T) (*recordRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &recordRepository{
		DB: &DB{
			DB:                 db,
			driver:             sqliteDriverName,
			builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
			errorClassificator: NewSQLiteErrorClassifier(),
			logger:             l,
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func sqliteError(code sqlite3.ErrNo) error {
	return sqlite3.Error{Code: code}
}

func testSealedRecord() models.SealedRecord {
	return models.SealedRecord{
		TempID:    "tmp-rec-1",
		OrgID:     7,
		Blob:      "c2VhbGVkLXBheWxvYWQ=",
		Synced:    false,
		CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestRecordUpsert_Success(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	record := testSealedRecord()

	mock.ExpectExec("INSERT INTO pending_records").
		WithArgs(record.TempID, record.ServerID, record.OrgID, record.Blob, record.Synced, record.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Upsert(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordUpsert_DiskFullSurfacesStorageUnavailable(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO pending_records").
		WillReturnError(sqliteError(sqlite3.ErrFull))

	err := repo.Upsert(context.Background(), testSealedRecord())
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestRecordGetByTempID_Success(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	want := testSealedRecord()

	rows := sqlmock.
		NewRows(recordColumns).
		AddRow(want.TempID, want.ServerID, want.OrgID, want.Blob, want.Synced, want.CreatedAt)

	mock.ExpectQuery("SELECT .+ FROM pending_records").
		WithArgs(want.TempID).
		WillReturnRows(rows)

	got, err := repo.GetByTempID(context.Background(), want.TempID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TempID != want.TempID || got.OrgID != want.OrgID || got.Blob != want.Blob {
		t.Errorf("scanned record does not match: got %+v", got)
	}
}

func TestRecordGetByTempID_NotFound(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM pending_records").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByTempID(context.Background(), "missing")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRecordGetByField_UnknownFieldRejected(t *testing.T) {
	repo, _, db := newTestRecordRepo(t)
	defer db.Close()

	// payload fields live inside the sealed blob
	_, err := repo.GetByField(context.Background(), "machine_id", 3)
	if !errors.Is(err, ErrFieldNotIndexed) {
		t.Fatalf("expected ErrFieldNotIndexed, got %v", err)
	}
}

func TestRecordGetByField_EmptyResultIsNotAnError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM pending_records").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(recordColumns))

	records, err := repo.GetByField(context.Background(), "org_id", int64(99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty result, got %d records", len(records))
	}
}

func TestRecordGetByField_ReturnsMatches(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	first := testSealedRecord()
	second := testSealedRecord()
	second.TempID = "tmp-rec-2"

	rows := sqlmock.
		NewRows(recordColumns).
		AddRow(first.TempID, first.ServerID, first.OrgID, first.Blob, first.Synced, first.CreatedAt).
		AddRow(second.TempID, second.ServerID, second.OrgID, second.Blob, second.Synced, second.CreatedAt)

	mock.ExpectQuery("SELECT .+ FROM pending_records").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	records, err := repo.GetByField(context.Background(), "org_id", int64(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].TempID != "tmp-rec-1" || records[1].TempID != "tmp-rec-2" {
		t.Errorf("unexpected order: %s, %s", records[0].TempID, records[1].TempID)
	}
}

func TestRecordSetServerID_Success(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE pending_records").
		WithArgs(int64(1001), true, "tmp-rec-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetServerID(context.Background(), "tmp-rec-1", 1001); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecordSetServerID_MissingRow(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE pending_records").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetServerID(context.Background(), "missing", 1001)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRecordDelete_MissingRowIsNoOp(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM pending_records").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing"); err != nil {
		t.Fatalf("expected no-op success, got %v", err)
	}
}
