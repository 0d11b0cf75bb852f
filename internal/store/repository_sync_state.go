// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/voucher-sync/internal/logger"
)

const syncStateTable = "sync_state"

type syncStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncStateRepository(db *DB, log *logger.Logger) SyncStateRepository {
	return &syncStateRepository{DB: db, logger: log}
}

func (r *syncStateRepository) GetState(ctx context.Context, key string) (string, bool, error) {
	query, args, err := r.builder.
		Select("state_value").
		From(syncStateTable).
		Where(sq.Eq{"state_key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		r.logger.Err(err).Str("func", "syncStateRepository.GetState").Str("key", key).Msg("error reading sync state")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value, true, nil
}

func (r *syncStateRepository) SetState(ctx context.Context, key, value string) error {
	query, args, err := r.builder.
		Insert(syncStateTable).
		Columns("state_key", "state_value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (state_key) DO UPDATE SET state_value = excluded.state_value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "syncStateRepository.SetState").Str("key", key).Msg("error writing sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
