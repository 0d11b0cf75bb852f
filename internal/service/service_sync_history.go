// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/voucher-sync/internal/config"
	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/models"
)

func (s *syncService) RunFullHistorySync(ctx context.Context, start *time.Time, batchDays int) models.FullHistoryResult {
	if !s.state.begin(passFullHistory) {
		return models.FullHistoryResult{Error: ErrAlreadySyncing.Error()}
	}
	return s.runFullHistory(ctx, start, batchDays)
}

func (s *syncService) StartFullHistorySync(ctx context.Context, start *time.Time, batchDays int) models.FullHistoryResult {
	if !s.state.begin(passFullHistory) {
		return models.FullHistoryResult{Error: ErrAlreadySyncing.Error()}
	}

	// the pass outlives the caller's request but not Stop
	bgCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.bgMu.Lock()
	s.bgCancel = cancel
	s.bg.Add(1)
	s.bgMu.Unlock()

	go func() {
		defer s.bg.Done()
		defer cancel()
		s.runFullHistory(bgCtx, start, batchDays)
	}()

	return models.FullHistoryResult{Success: true, Started: true}
}

// stopBackground cancels a running background pass and waits until it has
// released the guard and stopped writing to the cache.
func (s *syncService) stopBackground() {
	s.bgMu.Lock()
	if s.bgCancel != nil {
		s.bgCancel()
		s.bgCancel = nil
	}
	s.bgMu.Unlock()

	s.bg.Wait()
}

// runFullHistory expects the guard to be held and releases it.
func (s *syncService) runFullHistory(ctx context.Context, start *time.Time, batchDays int) models.FullHistoryResult {
	log := s.logger.ForPass(passFullHistory)

	var res models.FullHistoryResult
	err := s.runGuarded(ctx, passFullHistory, log, func() (summary string, err error) {
		res, err = s.fullHistoryPass(ctx, start, batchDays, log)
		return fmt.Sprintf("batches %d, synced %d, next %s",
			res.Progress.BatchesCompleted, res.Progress.TotalSynced, res.Progress.CurrentDate.Format(time.DateOnly)), err
	})
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

// fullHistoryPass walks from the start date to today in batches of
// batchDays, persisting progress after every completed batch so an
// interrupted pass resumes where it stopped.
func (s *syncService) fullHistoryPass(ctx context.Context, start *time.Time, batchDays int, log *logger.Logger) (models.FullHistoryResult, error) {
	var res models.FullHistoryResult

	if batchDays <= 0 {
		batchDays = s.workersCfg.HistoryBatchDays
	}
	if batchDays <= 0 {
		batchDays = config.DefaultHistoryBatchDays
	}

	today := truncateDay(s.now())
	progress, resumed, err := s.loadProgress(ctx)
	if err != nil {
		return res, err
	}

	switch {
	case resumed && !progress.Completed && (start == nil || truncateDay(*start).Equal(progress.StartDate)):
		res.Resumed = true
		if progress.BatchDays <= 0 {
			progress.BatchDays = batchDays
		}
		log.Info().
			Str("func", "syncService.fullHistoryPass").
			Time("current_date", progress.CurrentDate).
			Int("batches_completed", progress.BatchesCompleted).
			Msg("resuming full history sync")
	default:
		from := today.AddDate(-1, 0, 0)
		if start != nil {
			from = truncateDay(*start)
		}
		progress = models.FullHistoryProgress{StartDate: from, CurrentDate: from, BatchDays: batchDays}
	}
	res.Progress = progress

	for !progress.CurrentDate.After(today) {
		batchEnd := progress.CurrentDate.AddDate(0, 0, progress.BatchDays-1)
		if batchEnd.After(today) {
			batchEnd = today
		}

		vouchers, err := s.adapter.FetchVouchersInRange(ctx, progress.CurrentDate, batchEnd, s.syncCfg.VoucherKinds)
		if err != nil {
			log.Err(err).
				Str("func", "syncService.fullHistoryPass").
				Time("from", progress.CurrentDate).
				Time("to", batchEnd).
				Msg("error fetching history batch")
			return res, err
		}

		var stats passStats
		s.applyVouchers(ctx, vouchers, &stats, log)

		progress.CurrentDate = batchEnd.AddDate(0, 0, 1)
		progress.BatchesCompleted++
		progress.TotalSynced += stats.NewCount + stats.UpdatedCount
		progress.Completed = progress.CurrentDate.After(today)
		res.Progress = progress

		if err = s.saveProgress(ctx, progress); err != nil {
			return res, err
		}

		s.notifier.Publish(ctx, models.EventSyncProgress, models.ProgressEvent{
			Pass:    passFullHistory,
			Message: fmt.Sprintf("synced up to %s", batchEnd.Format(time.DateOnly)),
			Done:    progress.BatchesCompleted,
			Total:   totalBatches(progress.StartDate, today, progress.BatchDays),
		})

		if !progress.Completed {
			if err = s.sleep(ctx, s.workersCfg.HistoryBatchDelay); err != nil {
				return res, err
			}
		}
	}

	if !progress.Completed {
		// start date in the future: nothing to fetch
		progress.Completed = true
		res.Progress = progress
		if err = s.saveProgress(ctx, progress); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (s *syncService) loadProgress(ctx context.Context) (models.FullHistoryProgress, bool, error) {
	var progress models.FullHistoryProgress

	raw, found, err := s.syncState.GetState(ctx, stateKeyFullHistory)
	if err != nil {
		return progress, false, fmt.Errorf("error loading full history progress: %w", err)
	}
	if !found || raw == "" {
		return progress, false, nil
	}

	if err = json.Unmarshal([]byte(raw), &progress); err != nil {
		s.logger.Warn().Err(err).Str("func", "syncService.loadProgress").Msg("discarding unreadable full history progress")
		return models.FullHistoryProgress{}, false, nil
	}
	return progress, true, nil
}

func (s *syncService) saveProgress(ctx context.Context, progress models.FullHistoryProgress) error {
	raw, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("error encoding full history progress: %w", err)
	}
	if err = s.syncState.SetState(ctx, stateKeyFullHistory, string(raw)); err != nil {
		return fmt.Errorf("error saving full history progress: %w", err)
	}
	return nil
}

func totalBatches(from, to time.Time, batchDays int) int {
	if batchDays <= 0 || to.Before(from) {
		return 0
	}
	days := int(to.Sub(from).Hours()/24) + 1
	return (days + batchDays - 1) / batchDays
}
