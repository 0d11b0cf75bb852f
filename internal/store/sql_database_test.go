// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voucher-sync/internal/config"
	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/migrations"
)

func TestInTx_RetriesBusyDatabase(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin().WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE vouchers").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := db.inTx(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.Exec("UPDATE vouchers SET kind = 'x'")
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_DoesNotRetryPermanentErrors(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	calls := 0
	wantErr := errors.New("validation failed")
	err := db.inTx(context.Background(), func(tx *sql.Tx) error {
		calls++
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_CommitError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("io"))

	err := db.inTx(context.Background(), func(tx *sql.Tx) error { return nil })
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		code string
		want ErrorClassification
	}{
		{pgerrcode.SerializationFailure, Retryable},
		{pgerrcode.DeadlockDetected, Retryable},
		{pgerrcode.ConnectionFailure, Retryable},
		{pgerrcode.CannotConnectNow, Retryable},
		{pgerrcode.UniqueViolation, NonRetryable},
		{pgerrcode.SyntaxError, NonRetryable},
		{"XX000", NonRetryable},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(&pgconn.PgError{Code: tt.code}))
		})
	}
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.True(t, isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}))
	assert.False(t, isUniqueViolation(errors.New("x")))
}

func TestNewDB_PlaceholderPerDialect(t *testing.T) {
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	lite := newDB(conn, migrations.DialectSQLite, nil, logger.Nop())
	query, _, err := lite.builder.Select("a").From("t").Where("b = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t WHERE b = ?", query)

	pg := newDB(conn, migrations.DialectPostgres, nil, logger.Nop())
	query, _, err = pg.builder.Select("a").From("t").Where("b = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t WHERE b = $1", query)
}

func TestSQLiteDSNHelpers(t *testing.T) {
	assert.Equal(t, "./cache.db?"+sqliteDefaultParams, sqliteDSN("./cache.db"))
	assert.Equal(t, "file:x.db?mode=ro", sqliteDSN("file:x.db?mode=ro"))
	assert.Equal(t, "x.db", sqliteFilePath("file:x.db?mode=ro"))
	assert.True(t, isPostgresDSN("postgres://u@h/db"))
	assert.True(t, isPostgresDSN("postgresql://u@h/db"))
	assert.False(t, isPostgresDSN("./cache.db"))
}

func TestNewStorages_SQLiteFile(t *testing.T) {
	dsn := t.TempDir() + "/cache.db"

	storages, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	cursor, err := storages.Cursors.GetCursor(context.Background(), "vouchers")
	require.NoError(t, err)
	assert.Zero(t, cursor)
}
