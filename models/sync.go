// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EntityClass names a tracked entity type that owns its own sync cursor.
type EntityClass string

const (
	EntityVouchers   EntityClass = "vouchers"
	EntityStockItems EntityClass = "stock_items"
	EntityParties    EntityClass = "ledgers"
)

// SyncStatus is the orchestrator state machine value.
type SyncStatus string

const (
	SyncStatusIdle    SyncStatus = "idle"
	SyncStatusSyncing SyncStatus = "syncing"
	SyncStatusError   SyncStatus = "error"
)

// SyncRunState is the process-wide orchestrator state. Only Status and
// LastError survive a restart.
type SyncRunState struct {
	IsRunning      bool       `json:"is_running"`
	IsSyncing      bool       `json:"is_syncing"`
	Status         SyncStatus `json:"status"`
	LastError      string     `json:"last_error,omitempty"`
	LastRunSummary string     `json:"last_run_summary,omitempty"`
	LastRunAt      *time.Time `json:"last_run_at,omitempty"`
}

// Connectivity is the outcome of a remote connectivity check.
type Connectivity struct {
	Connected          bool     `json:"connected"`
	AvailableCompanies []string `json:"available_companies"`
	Error              string   `json:"error,omitempty"`
}

// SyncResult is returned by incremental and range passes.
type SyncResult struct {
	Success      bool   `json:"success"`
	TotalFetched int    `json:"total_fetched"`
	NewCount     int    `json:"new_count"`
	UpdatedCount int    `json:"updated_count"`
	SkippedCount int    `json:"skipped_count"`
	FailedCount  int    `json:"failed_count"`
	Cursor       int64  `json:"cursor"`
	Error        string `json:"error,omitempty"`
}

// ReconciliationResult is returned by a deletion reconciliation pass.
type ReconciliationResult struct {
	Success     bool   `json:"success"`
	RemoteCount int    `json:"remote_count"`
	LocalCount  int    `json:"local_count"`
	Deleted     int    `json:"deleted"`
	Converted   int    `json:"converted"`
	KindChanged int    `json:"kind_changed"`
	Ambiguous   int    `json:"ambiguous"`
	Pulled      int    `json:"pulled"`
	Deferred    int    `json:"deferred"`
	Failed      int    `json:"failed"`
	Error       string `json:"error,omitempty"`
}

// FullHistoryProgress is the resumable marker of a full-history pass. It is
// persisted after every completed batch.
type FullHistoryProgress struct {
	StartDate        time.Time `json:"start_date"`
	CurrentDate      time.Time `json:"current_date"`
	BatchDays        int       `json:"batch_days"`
	BatchesCompleted int       `json:"batches_completed"`
	TotalSynced      int       `json:"total_synced"`
	Completed        bool      `json:"completed"`
}

// FullHistoryResult is returned by a full-history pass.
type FullHistoryResult struct {
	Success  bool                `json:"success"`
	Started  bool                `json:"started,omitempty"`
	Resumed  bool                `json:"resumed"`
	Progress FullHistoryProgress `json:"progress"`
	Error    string              `json:"error,omitempty"`
}

// MasterDataResult is returned by a master-data pass.
type MasterDataResult struct {
	Success       bool   `json:"success"`
	StockItems    int    `json:"stock_items"`
	Parties       int    `json:"parties"`
	PendingPushed int    `json:"pending_pushed"`
	PendingFailed int    `json:"pending_failed"`
	Error         string `json:"error,omitempty"`
}

// BatchResult reports a batch soft-delete or convert. Applied+Failed always
// equals Requested.
type BatchResult struct {
	Requested int      `json:"requested"`
	Applied   int      `json:"applied"`
	Failed    int      `json:"failed"`
	FailedIDs []string `json:"failed_ids,omitempty"`
}

// UpsertOutcome tells the caller what an upsert did.
type UpsertOutcome int

const (
	UpsertInserted UpsertOutcome = iota + 1
	UpsertUpdated
	// UpsertStale means the cached row already had an equal or newer change
	// sequence and was left untouched.
	UpsertStale
)
