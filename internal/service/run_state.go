// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/voucher-sync/models"
)

// runState is the process-wide orchestrator state. The syncing flag is the
// single-flight guard: it is checked and set under one lock by begin and
// always cleared by finish.
type runState struct {
	mu          sync.Mutex
	running     bool
	syncing     bool
	pass        string
	status      models.SyncStatus
	lastError   string
	lastSummary string
	lastRunAt   *time.Time
}

func newRunState() *runState {
	return &runState{status: models.SyncStatusIdle}
}

// begin moves the state machine to Syncing. It fails when a pass is
// already in flight.
func (s *runState) begin(pass string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.syncing {
		return false
	}
	s.syncing = true
	s.pass = pass
	s.status = models.SyncStatusSyncing
	return true
}

// finish releases the guard. A nil err moves to Idle, anything else to Error
// with the diagnostic kept for the next status query.
func (s *runState) finish(summary string, err error, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.syncing = false
	s.pass = ""
	s.lastRunAt = &at
	if err != nil {
		s.status = models.SyncStatusError
		s.lastError = err.Error()
		s.lastSummary = summary
		return
	}
	s.status = models.SyncStatusIdle
	s.lastError = ""
	s.lastSummary = summary
}

// fail records an error outside of a pass, e.g. a failed connectivity check.
func (s *runState) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastError = err.Error()
	if !s.syncing {
		s.status = models.SyncStatusError
	}
}

// recover clears a previous error once the remote is reachable again.
func (s *runState) recover() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.syncing {
		return
	}
	s.status = models.SyncStatusIdle
	s.lastError = ""
}

func (s *runState) setRunning(running bool) {
	s.mu.Lock()
	s.running = running
	s.mu.Unlock()
}

func (s *runState) restore(status models.SyncStatus, lastError string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// a pass interrupted by a restart is not in flight anymore
	if status == models.SyncStatusSyncing || status == "" {
		status = models.SyncStatusIdle
	}
	s.status = status
	s.lastError = lastError
}

func (s *runState) snapshot() models.SyncRunState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := models.SyncRunState{
		IsRunning:      s.running,
		IsSyncing:      s.syncing,
		Status:         s.status,
		LastError:      s.lastError,
		LastRunSummary: s.lastSummary,
	}
	if s.lastRunAt != nil {
		at := *s.lastRunAt
		state.LastRunAt = &at
	}
	return state
}
