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
	"github.com/MKhiriev/voucher-sync/models"
)

const cursorsTable = "sync_cursors"

type cursorRepository struct {
	*DB
	logger *logger.Logger
}

func NewCursorRepository(db *DB, log *logger.Logger) CursorRepository {
	return &cursorRepository{DB: db, logger: log}
}

func (r *cursorRepository) GetCursor(ctx context.Context, entity models.EntityClass) (int64, error) {
	query, args, err := r.builder.
		Select("last_seen_change_sequence").
		From(cursorsTable).
		Where(sq.Eq{"entity_class": string(entity)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var cursor int64
	err = r.QueryRowContext(ctx, query, args...).Scan(&cursor)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		r.logger.Err(err).Str("func", "cursorRepository.GetCursor").Str("entity", string(entity)).Msg("error reading cursor")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return cursor, nil
}

func (r *cursorRepository) SetCursor(ctx context.Context, entity models.EntityClass, value int64) (bool, error) {
	if value <= 0 {
		return false, nil
	}

	query, args, err := r.builder.
		Insert(cursorsTable).
		Columns("entity_class", "last_seen_change_sequence", "updated_at").
		Values(string(entity), value, time.Now().UTC()).
		Suffix("ON CONFLICT (entity_class) DO UPDATE SET " +
			"last_seen_change_sequence = excluded.last_seen_change_sequence, " +
			"updated_at = excluded.updated_at " +
			"WHERE sync_cursors.last_seen_change_sequence < excluded.last_seen_change_sequence").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "cursorRepository.SetCursor").Str("entity", string(entity)).Msg("error writing cursor")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected > 0, nil
}
