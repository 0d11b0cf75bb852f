// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/models"
)

// RunMasterDataSync pulls catalog items and party ledgers with their own
// cursors, then retries the vouchers queued while the remote was offline.
func (s *syncService) RunMasterDataSync(ctx context.Context) models.MasterDataResult {
	if !s.state.begin(passMasterData) {
		return models.MasterDataResult{Error: ErrAlreadySyncing.Error()}
	}

	log := s.logger.ForPass(passMasterData)
	var res models.MasterDataResult
	err := s.runGuarded(ctx, passMasterData, log, func() (summary string, err error) {
		res, err = s.masterDataPass(ctx, log)
		return fmt.Sprintf("stock items %d, parties %d, pending pushed %d, pending failed %d",
			res.StockItems, res.Parties, res.PendingPushed, res.PendingFailed), err
	})
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

func (s *syncService) masterDataPass(ctx context.Context, log *logger.Logger) (models.MasterDataResult, error) {
	var res models.MasterDataResult

	// stock items
	cursor, err := s.cursors.GetCursor(ctx, models.EntityStockItems)
	if err != nil {
		return res, fmt.Errorf("error reading stock item cursor: %w", err)
	}
	items, err := s.adapter.FetchStockItemsSince(ctx, cursor)
	if err != nil {
		log.Err(err).Str("func", "syncService.masterDataPass").Msg("error fetching stock items")
		return res, err
	}
	if res.StockItems, err = s.masterData.UpsertStockItems(ctx, items); err != nil {
		return res, fmt.Errorf("error caching stock items: %w", err)
	}
	var maxSeq int64
	for _, item := range items {
		maxSeq = max(maxSeq, item.ChangeSequence)
	}
	if err = s.advanceCursor(ctx, models.EntityStockItems, cursor, maxSeq); err != nil {
		return res, err
	}

	// parties
	cursor, err = s.cursors.GetCursor(ctx, models.EntityParties)
	if err != nil {
		return res, fmt.Errorf("error reading party cursor: %w", err)
	}
	parties, err := s.adapter.FetchPartiesSince(ctx, cursor)
	if err != nil {
		log.Err(err).Str("func", "syncService.masterDataPass").Msg("error fetching parties")
		return res, err
	}
	if res.Parties, err = s.masterData.UpsertParties(ctx, parties); err != nil {
		return res, fmt.Errorf("error caching parties: %w", err)
	}
	maxSeq = 0
	for _, p := range parties {
		maxSeq = max(maxSeq, p.ChangeSequence)
	}
	if err = s.advanceCursor(ctx, models.EntityParties, cursor, maxSeq); err != nil {
		return res, err
	}

	res.PendingPushed, res.PendingFailed = s.pushPending(ctx, log)
	return res, nil
}

func (s *syncService) advanceCursor(ctx context.Context, entity models.EntityClass, current, observed int64) error {
	if observed <= current {
		return nil
	}
	if _, err := s.cursors.SetCursor(ctx, entity, observed); err != nil {
		return fmt.Errorf("error advancing %s cursor: %w", entity, err)
	}
	return nil
}

// pushPending retries every queued voucher independently. Failures are
// recorded on the queue entry and never fail the pass.
func (s *syncService) pushPending(ctx context.Context, log *logger.Logger) (pushed, failed int) {
	queue, err := s.pending.ListPending(ctx)
	if err != nil {
		log.Err(err).Str("func", "syncService.pushPending").Msg("error listing pending vouchers")
		return 0, 0
	}

	for _, p := range queue {
		result, err := s.adapter.CreateVoucher(ctx, p.Payload)
		if err == nil && !result.Success {
			err = fmt.Errorf("remote did not confirm the voucher: %s", result.Error)
		}
		if err != nil {
			failed++
			log.Warn().Err(err).Str("func", "syncService.pushPending").Str("pending_id", p.ID).Int("attempts", p.Attempts+1).Msg("pending voucher push failed")
			if recErr := s.pending.RecordFailure(ctx, p.ID, err.Error()); recErr != nil {
				log.Err(recErr).Str("func", "syncService.pushPending").Str("pending_id", p.ID).Msg("error recording push failure")
			}
			continue
		}

		if err = s.pending.RemovePending(ctx, p.ID); err != nil {
			log.Err(err).Str("func", "syncService.pushPending").Str("pending_id", p.ID).Msg("pushed voucher stays queued")
		}
		pushed++
		log.Info().Str("func", "syncService.pushPending").Str("pending_id", p.ID).Str("remote_id", result.RemoteID).Msg("pending voucher pushed")
	}

	return pushed, failed
}
