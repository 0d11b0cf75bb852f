// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/migrations"
	"github.com/MKhiriev/voucher-sync/models"
)

// newMockDB возвращает DB поверх sqlmock с плейсхолдерами sqlite.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, migrations.DialectSQLite, NewSQLiteErrorClassifier(), logger.Nop()), mock
}

// newSQLiteDB открывает отдельную in-memory базу sqlite и накатывает миграции.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	conn, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, migrations.Migrate(conn, migrations.DialectSQLite))

	return newDB(conn, migrations.DialectSQLite, NewSQLiteErrorClassifier(), logger.Nop())
}

func testVoucher(globalID string, seq int64) models.Voucher {
	return models.Voucher{
		GlobalID:         globalID,
		RemoteID:         "10" + globalID,
		ChangeSequence:   seq,
		Kind:             "Sales",
		Number:           "S-1",
		Date:             time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CounterpartyName: "Acme Traders",
		Amount:           decimal.RequireFromString("1250.50"),
		Note:             "first",
		PaymentModes: models.PaymentBreakdown{
			Cash: decimal.RequireFromString("250.50"),
			UPI:  decimal.RequireFromString("1000"),
		},
	}
}
