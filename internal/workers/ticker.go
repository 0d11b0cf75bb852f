// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/voucher-sync/internal/logger"
)

// TickerWorker calls its task every interval. A non-positive interval turns
// the worker into a no-op so the daemon runs in manual-trigger mode.
type TickerWorker struct {
	name     string
	interval time.Duration
	task     Task
	logger   *logger.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

func NewTickerWorker(name string, interval time.Duration, task Task, log *logger.Logger) *TickerWorker {
	return &TickerWorker{
		name:     name,
		interval: interval,
		task:     task,
		logger:   log,
	}
}

// Start implements [Worker]. It stops a previously started loop first, so
// repeated starts never leave two tickers behind.
func (w *TickerWorker) Start(ctx context.Context) {
	w.Stop()

	if w.interval <= 0 {
		w.logger.Info().Str("func", "TickerWorker.Start").Str("worker", w.name).Msg("interval is zero, worker disabled")
		return
	}

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.running = true
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Info().Str("func", "TickerWorker.Start").Str("worker", w.name).Dur("interval", w.interval).Msg("worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := w.task(jobCtx); err != nil {
					w.logger.Warn().Err(err).Str("func", "TickerWorker.run").Str("worker", w.name).Msg("scheduled pass failed")
				}
			}
		}
	}()
}

// Stop implements [Worker].
func (w *TickerWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()

	if wasRunning {
		w.logger.Info().Str("func", "TickerWorker.Stop").Str("worker", w.name).Msg("worker stopped")
	}
}

// Running reports whether the ticker loop is active.
func (w *TickerWorker) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
