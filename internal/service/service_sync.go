// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/MKhiriev/voucher-sync/internal/adapter"
	"github.com/MKhiriev/voucher-sync/internal/config"
	"github.com/MKhiriev/voucher-sync/internal/events"
	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/internal/store"
	"github.com/MKhiriev/voucher-sync/internal/validators"
	"github.com/MKhiriev/voucher-sync/internal/workers"
	"github.com/MKhiriev/voucher-sync/models"
)

// Keys of the persisted sync state.
const (
	stateKeyStatus      = "sync.status"
	stateKeyLastError   = "sync.last_error"
	stateKeyFullHistory = "sync.full_history_progress"
)

const (
	passIncremental = "incremental"
	passRange       = "range"
	passReconcile   = "reconciliation"
	passFullHistory = "full_history"
	passMasterData  = "master_data"
)

type syncService struct {
	adapter    adapter.LedgerAdapter
	vouchers   store.VoucherRepository
	cursors    store.CursorRepository
	masterData store.MasterDataRepository
	pending    store.PendingRepository
	syncState  store.SyncStateRepository
	notifier   events.Notifier
	validator  validators.Validator

	syncCfg    config.Sync
	workersCfg config.Workers

	state   *runState
	workers *workers.Workers
	// lifecycle serializes Start and Stop.
	lifecycle sync.Mutex

	// bg tracks the background full-history pass; Stop cancels it through
	// bgCancel and waits for it to return.
	bg       sync.WaitGroup
	bgMu     sync.Mutex
	bgCancel context.CancelFunc

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	logger *logger.Logger
}

// NewSyncService builds the orchestrator. The returned service is idle until
// Start is called. Manual passes work without Start.
func NewSyncService(
	ledger adapter.LedgerAdapter,
	storages *store.Storages,
	notifier events.Notifier,
	cfg config.StructuredConfig,
	log *logger.Logger,
) SyncService {
	s := &syncService{
		adapter:    ledger,
		vouchers:   storages.Vouchers,
		cursors:    storages.Cursors,
		masterData: storages.MasterData,
		pending:    storages.Pending,
		syncState:  storages.SyncState,
		notifier:   notifier,
		validator:  validators.NewVoucherValidator(),
		syncCfg:    cfg.Sync,
		workersCfg: cfg.Workers,
		state:      newRunState(),
		now:        time.Now,
		sleep:      sleepContext,
		logger:     log,
	}

	s.workers = workers.NewWorkers(
		workers.NewTickerWorker(passIncremental, cfg.Workers.SyncInterval, s.pollTask, log),
		workers.NewTickerWorker(passReconcile, cfg.Workers.ReconcileInterval, s.reconcileTask, log),
	)
	return s
}

// RestoreState reloads the persisted status so a restart reports the last
// known error.
func (s *syncService) RestoreState(ctx context.Context) error {
	status, _, err := s.syncState.GetState(ctx, stateKeyStatus)
	if err != nil {
		return fmt.Errorf("error restoring sync status: %w", err)
	}
	lastError, _, err := s.syncState.GetState(ctx, stateKeyLastError)
	if err != nil {
		return fmt.Errorf("error restoring sync status: %w", err)
	}

	s.state.restore(models.SyncStatus(status), lastError)
	return nil
}

func (s *syncService) Start(ctx context.Context) bool {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	log := s.logger.ForPass("start")

	conn := s.adapter.CheckConnectivity(ctx)
	if !conn.Connected {
		err := fmt.Errorf("%w: %s", ErrRemoteOffline, conn.Error)
		log.Error().Err(err).Str("func", "syncService.Start").Msg("remote ledger is not reachable")
		s.state.fail(err)
		s.persistState(ctx)
		return false
	}

	s.state.recover()
	s.persistState(ctx)

	if res := s.RunMasterDataSync(ctx); !res.Success {
		log.Warn().Str("func", "syncService.Start").Str("error", res.Error).Msg("initial master data sync failed")
	}

	if s.workersCfg.SyncInterval > 0 {
		if res := s.RunIncrementalSync(ctx); !res.Success {
			log.Warn().Str("func", "syncService.Start").Str("error", res.Error).Msg("initial incremental sync failed")
		}
	} else {
		log.Info().Str("func", "syncService.Start").Msg("poll interval is zero, manual trigger mode")
	}

	// workers outlive the caller's request
	s.workers.Start(context.WithoutCancel(ctx))
	s.state.setRunning(true)

	log.Info().Str("func", "syncService.Start").Strs("companies", conn.AvailableCompanies).Msg("sync service started")
	return true
}

func (s *syncService) Stop() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.workers.Stop()
	s.stopBackground()
	s.state.setRunning(false)
	s.logger.Info().Str("func", "syncService.Stop").Msg("sync service stopped")
}

func (s *syncService) Status(ctx context.Context) models.SyncRunState {
	return s.state.snapshot()
}

func (s *syncService) CheckConnectivity(ctx context.Context) models.Connectivity {
	return s.adapter.CheckConnectivity(ctx)
}

func (s *syncService) pollTask(ctx context.Context) error {
	res := s.RunIncrementalSync(ctx)
	if !res.Success {
		return fmt.Errorf("incremental sync: %s", res.Error)
	}
	return nil
}

func (s *syncService) reconcileTask(ctx context.Context) error {
	res := s.RunDeletionReconciliation(ctx, s.syncCfg.VoucherKinds)
	if !res.Success {
		return fmt.Errorf("reconciliation: %s", res.Error)
	}
	return nil
}

// RunIncrementalSync pulls every voucher changed after the stored cursor.
func (s *syncService) RunIncrementalSync(ctx context.Context) models.SyncResult {
	if !s.state.begin(passIncremental) {
		return models.SyncResult{Error: ErrAlreadySyncing.Error()}
	}

	log := s.logger.ForPass(passIncremental)
	var res passStats
	err := s.runGuarded(ctx, passIncremental, log, func() (summary string, err error) {
		res, err = s.incrementalPass(ctx, log)
		return res.summary(), err
	})
	if err != nil {
		res.Error = err.Error()
		return res.SyncResult
	}

	res.Success = true
	return res.SyncResult
}

func (s *syncService) incrementalPass(ctx context.Context, log *logger.Logger) (passStats, error) {
	var res passStats

	cursor, err := s.cursors.GetCursor(ctx, models.EntityVouchers)
	if err != nil {
		return res, fmt.Errorf("error reading voucher cursor: %w", err)
	}
	res.Cursor = cursor

	vouchers, err := s.adapter.FetchVouchersSince(ctx, cursor, s.syncCfg.VoucherKinds)
	if err != nil {
		log.Err(err).Str("func", "syncService.incrementalPass").Int64("cursor", cursor).Msg("error fetching vouchers")
		return res, err
	}

	maxSeq := s.applyVouchers(ctx, vouchers, &res, log)
	if maxSeq > cursor {
		if _, err = s.cursors.SetCursor(ctx, models.EntityVouchers, maxSeq); err != nil {
			return res, fmt.Errorf("error advancing voucher cursor: %w", err)
		}
		res.Cursor = maxSeq
	}

	log.Info().
		Str("func", "syncService.incrementalPass").
		Int64("cursor", res.Cursor).
		Int("fetched", res.TotalFetched).
		Int("new", res.NewCount).
		Int("updated", res.UpdatedCount).
		Int("failed", res.FailedCount).
		Msg("incremental pass done")
	return res, nil
}

// RunRangeSync backfills vouchers dated within [from, to]. The incremental
// cursor is never touched.
func (s *syncService) RunRangeSync(ctx context.Context, from, to time.Time) models.SyncResult {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return models.SyncResult{Error: fmt.Sprintf("%s: from %s to %s", ErrInvalidDateRange, from.Format(time.DateOnly), to.Format(time.DateOnly))}
	}
	if !s.state.begin(passRange) {
		return models.SyncResult{Error: ErrAlreadySyncing.Error()}
	}

	log := s.logger.ForPass(passRange)
	var res passStats
	err := s.runGuarded(ctx, passRange, log, func() (summary string, err error) {
		res, err = s.rangePass(ctx, from, to, log)
		return res.summary(), err
	})
	if err != nil {
		res.Error = err.Error()
		return res.SyncResult
	}

	res.Success = true
	return res.SyncResult
}

func (s *syncService) rangePass(ctx context.Context, from, to time.Time, log *logger.Logger) (passStats, error) {
	var res passStats

	cursor, err := s.cursors.GetCursor(ctx, models.EntityVouchers)
	if err != nil {
		return res, fmt.Errorf("error reading voucher cursor: %w", err)
	}
	res.Cursor = cursor

	vouchers, err := s.adapter.FetchVouchersInRange(ctx, from, to, s.syncCfg.VoucherKinds)
	if err != nil {
		log.Err(err).Str("func", "syncService.rangePass").Msg("error fetching vouchers")
		return res, err
	}

	s.applyVouchers(ctx, vouchers, &res, log)
	return res, nil
}

// passStats accumulates per-item outcomes of one pull.
type passStats struct {
	models.SyncResult
}

func (p passStats) summary() string {
	return fmt.Sprintf("fetched %d, new %d, updated %d, skipped %d, failed %d",
		p.TotalFetched, p.NewCount, p.UpdatedCount, p.SkippedCount, p.FailedCount)
}

// applyVouchers upserts every record and notifies listeners. A record that
// fails validation or storage is counted and skipped. It returns the highest
// change sequence among records that were applied without error.
func (s *syncService) applyVouchers(ctx context.Context, vouchers []models.Voucher, res *passStats, log *logger.Logger) int64 {
	var maxSeq int64
	res.TotalFetched += len(vouchers)

	for _, v := range vouchers {
		if err := s.validator.Validate(ctx, v); err != nil {
			res.FailedCount++
			log.Warn().Err(err).Str("func", "syncService.applyVouchers").Str("global_id", v.GlobalID).Msg("skipping invalid voucher")
			continue
		}

		outcome, err := s.vouchers.UpsertVoucher(ctx, v)
		if err != nil {
			res.FailedCount++
			log.Err(err).Str("func", "syncService.applyVouchers").Str("global_id", v.GlobalID).Msg("error caching voucher")
			continue
		}

		switch outcome {
		case models.UpsertInserted:
			res.NewCount++
			s.notifier.Publish(ctx, models.EventVoucherCreated, v)
		case models.UpsertUpdated:
			res.UpdatedCount++
			s.notifier.Publish(ctx, models.EventVoucherUpdated, v)
		default:
			res.SkippedCount++
		}

		if v.ChangeSequence > maxSeq {
			maxSeq = v.ChangeSequence
		}
	}

	return maxSeq
}

// runGuarded runs pass while the guard taken by begin is held and releases
// the guard on every exit. A panic in pass is recovered and becomes the pass
// error.
func (s *syncService) runGuarded(ctx context.Context, name string, log *logger.Logger, pass func() (string, error)) (err error) {
	var summary string
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPassPanicked, r)
			log.Error().
				Str("func", "syncService.runGuarded").
				Str("pass", name).
				Bytes("stack", debug.Stack()).
				Msg("sync pass panicked")
		}
		s.complete(ctx, name, summary, err, log)
	}()

	summary, err = pass()
	return err
}

// complete releases the guard, persists the status and notifies listeners
// about the end of a pass.
func (s *syncService) complete(ctx context.Context, pass, summary string, err error, log *logger.Logger) {
	s.state.finish(pass+": "+summary, err, s.now().UTC())
	s.persistState(ctx)

	if err != nil {
		log.Error().Err(err).Str("func", "syncService.complete").Str("kind", string(adapter.KindOf(err))).Msg("sync pass failed")
		s.notifier.Publish(ctx, models.EventSyncFailed, models.ProgressEvent{Pass: pass, Message: err.Error()})
		return
	}
	s.notifier.Publish(ctx, models.EventSyncCompleted, models.ProgressEvent{Pass: pass, Message: summary})
}

func (s *syncService) persistState(ctx context.Context) {
	snapshot := s.state.snapshot()
	ctx = context.WithoutCancel(ctx)

	if err := s.syncState.SetState(ctx, stateKeyStatus, string(snapshot.Status)); err != nil {
		s.logger.Err(err).Str("func", "syncService.persistState").Msg("error persisting sync status")
		return
	}
	if err := s.syncState.SetState(ctx, stateKeyLastError, snapshot.LastError); err != nil {
		s.logger.Err(err).Str("func", "syncService.persistState").Msg("error persisting last error")
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var _ SyncService = (*syncService)(nil)
