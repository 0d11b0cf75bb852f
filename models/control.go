// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RangeSyncRequest is the body of POST /api/sync/range. Dates use the
// YYYY-MM-DD layout.
type RangeSyncRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ReconcileRequest is the body of POST /api/sync/reconcile. Empty Kinds
// falls back to the configured voucher kinds.
type ReconcileRequest struct {
	Kinds []string `json:"kinds,omitempty"`
}

// FullHistoryRequest is the body of POST /api/sync/full-history.
type FullHistoryRequest struct {
	StartDate string `json:"start_date,omitempty"`
	BatchDays int    `json:"batch_days,omitempty"`
	// Wait runs the pass inside the request instead of in the background.
	Wait bool `json:"wait,omitempty"`
}

// PurgeRequest is the body of POST /api/admin/vouchers/purge.
type PurgeRequest struct {
	GlobalIDs []string `json:"global_ids"`
}

// ControlResponse is returned by start/stop.
type ControlResponse struct {
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	Status  *SyncRunState `json:"status,omitempty"`
}

// VoucherResponse wraps a single cached voucher.
type VoucherResponse struct {
	Success bool     `json:"success"`
	Voucher *Voucher `json:"voucher,omitempty"`
	Error   string   `json:"error,omitempty"`
}
