// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/voucher-sync/internal/config"
	"github.com/MKhiriev/voucher-sync/internal/logger"
)

// Storages groups every repository of the local cache. All of them share one
// connection pool.
type Storages struct {
	Vouchers   VoucherRepository
	Cursors    CursorRepository
	MasterData MasterDataRepository
	Pending    PendingRepository
	SyncState  SyncStateRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories. A postgres:// DSN selects PostgreSQL, anything
// else is treated as a SQLite path.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	connect := NewConnectSQLite
	if isPostgresDSN(cfg.DB.DSN) {
		connect = NewConnectPostgres
	}

	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories on an already migrated database.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Vouchers:   NewVoucherRepository(db, log),
		Cursors:    NewCursorRepository(db, log),
		MasterData: NewMasterDataRepository(db, log),
		Pending:    NewPendingRepository(db, log),
		SyncState:  NewSyncStateRepository(db, log),
		db:         db,
	}
}

func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Dialect names the cache backend, "" when built without a connection.
func (s *Storages) Dialect() string {
	if s.db == nil {
		return ""
	}
	return s.db.Dialect()
}
