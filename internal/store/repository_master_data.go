// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/models"
)

const (
	stockItemsTable = "stock_items"
	partiesTable    = "parties"
)

type masterDataRepository struct {
	*DB
	logger *logger.Logger
}

func NewMasterDataRepository(db *DB, log *logger.Logger) MasterDataRepository {
	return &masterDataRepository{DB: db, logger: log}
}

// UpsertStockItems writes the batch in one transaction and returns the number
// of rows inserted or updated. Rows with an equal or newer cached change
// sequence are skipped.
func (r *masterDataRepository) UpsertStockItems(ctx context.Context, items []models.StockItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	applied := 0
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		applied = 0
		for _, item := range items {
			query, args, err := r.builder.
				Insert(stockItemsTable).
				Columns("global_id", "name", "unit", "item_group", "change_sequence", "synced_at").
				Values(item.GlobalID, item.Name, item.Unit, item.Group, item.ChangeSequence, now).
				Suffix("ON CONFLICT (global_id) DO UPDATE SET " +
					"name = excluded.name, unit = excluded.unit, item_group = excluded.item_group, " +
					"change_sequence = excluded.change_sequence, synced_at = excluded.synced_at " +
					"WHERE stock_items.change_sequence < excluded.change_sequence").
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			n, err := execAffected(ctx, tx, query, args)
			if err != nil {
				return err
			}
			applied += n
		}
		return nil
	})
	if err != nil {
		r.logger.Err(err).Str("func", "masterDataRepository.UpsertStockItems").Msg("error upserting stock items")
		return 0, err
	}
	return applied, nil
}

func (r *masterDataRepository) UpsertParties(ctx context.Context, parties []models.Party) (int, error) {
	if len(parties) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	applied := 0
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		applied = 0
		for _, p := range parties {
			query, args, err := r.builder.
				Insert(partiesTable).
				Columns("global_id", "name", "party_group", "phone", "tax_id", "change_sequence", "synced_at").
				Values(p.GlobalID, p.Name, p.Group, p.Phone, p.TaxID, p.ChangeSequence, now).
				Suffix("ON CONFLICT (global_id) DO UPDATE SET " +
					"name = excluded.name, party_group = excluded.party_group, phone = excluded.phone, " +
					"tax_id = excluded.tax_id, change_sequence = excluded.change_sequence, synced_at = excluded.synced_at " +
					"WHERE parties.change_sequence < excluded.change_sequence").
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			n, err := execAffected(ctx, tx, query, args)
			if err != nil {
				return err
			}
			applied += n
		}
		return nil
	})
	if err != nil {
		r.logger.Err(err).Str("func", "masterDataRepository.UpsertParties").Msg("error upserting parties")
		return 0, err
	}
	return applied, nil
}

func execAffected(ctx context.Context, tx *sql.Tx, query string, args []any) (int, error) {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return int(affected), nil
}
