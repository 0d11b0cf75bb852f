// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/models"
)

const pendingTable = "pending_vouchers"

type pendingRepository struct {
	*DB
	logger *logger.Logger
}

func NewPendingRepository(db *DB, log *logger.Logger) PendingRepository {
	return &pendingRepository{DB: db, logger: log}
}

func (r *pendingRepository) Enqueue(ctx context.Context, pending models.PendingVoucher) error {
	payload, err := json.Marshal(pending.Payload)
	if err != nil {
		return fmt.Errorf("error encoding pending payload: %w", err)
	}

	createdAt := pending.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query, args, err := r.builder.
		Insert(pendingTable).
		Columns("id", "payload", "attempts", "last_error", "created_at", "updated_at").
		Values(pending.ID, string(payload), pending.Attempts, pending.LastError, createdAt.UTC(), time.Now().UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrPendingAlreadyQueued
		}
		r.logger.Err(err).Str("func", "pendingRepository.Enqueue").Str("id", pending.ID).Msg("error queueing voucher")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *pendingRepository) ListPending(ctx context.Context) ([]models.PendingVoucher, error) {
	query, args, err := r.builder.
		Select("id", "payload", "attempts", "last_error", "created_at").
		From(pendingTable).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "pendingRepository.ListPending").Msg("error listing pending vouchers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var queue []models.PendingVoucher
	for rows.Next() {
		var (
			p       models.PendingVoucher
			payload string
		)
		if err = rows.Scan(&p.ID, &payload, &p.Attempts, &p.LastError, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if err = json.Unmarshal([]byte(payload), &p.Payload); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodingStoredValue, err)
		}
		queue = append(queue, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return queue, nil
}

func (r *pendingRepository) RemovePending(ctx context.Context, id string) error {
	query, args, err := r.builder.
		Delete(pendingTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "pendingRepository.RemovePending").Str("id", id).Msg("error removing pending voucher")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrPendingNotFound
	}
	return nil
}

func (r *pendingRepository) RecordFailure(ctx context.Context, id string, reason string) error {
	query, args, err := r.builder.
		Update(pendingTable).
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_error", reason).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "pendingRepository.RecordFailure").Str("id", id).Msg("error recording push failure")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrPendingNotFound
	}
	return nil
}
