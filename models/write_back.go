// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherPayload is the write-back representation of a voucher created or
// altered locally and pushed to the remote ledger.
type VoucherPayload struct {
	// RemoteID is empty for creation and required for alteration.
	RemoteID string `json:"remote_id,omitempty"`
	// GlobalID identifies the cached voucher an alteration belongs to.
	GlobalID string `json:"global_id,omitempty"`

	Kind             string          `json:"kind"`
	Number           string          `json:"number,omitempty"`
	Date             time.Time       `json:"date"`
	CounterpartyName string          `json:"counterparty_name"`
	Amount           decimal.Decimal `json:"amount"`
	Note             string          `json:"note,omitempty"`
	LineItems        []LineItem      `json:"line_items,omitempty"`
}

// MutationResult is the outcome of a create/alter/delete call against the
// remote ledger. Success is only set when the remote system confirmed the
// write explicitly.
type MutationResult struct {
	Success      bool   `json:"success"`
	RemoteID     string `json:"remote_id,omitempty"`
	ChangedCount int    `json:"changed_count"`
	Error        string `json:"error,omitempty"`
}

// PendingVoucher is a locally created voucher that could not be pushed
// because the remote ledger was unreachable.
type PendingVoucher struct {
	ID        string         `json:"id"`
	Payload   VoucherPayload `json:"payload"`
	Attempts  int            `json:"attempts"`
	LastError string         `json:"last_error,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// VoucherDetailResult is returned by a detail fetch.
type VoucherDetailResult struct {
	Success bool     `json:"success"`
	Voucher *Voucher `json:"voucher,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// PurgeResult reports an administrative hard delete.
type PurgeResult struct {
	Success bool   `json:"success"`
	Purged  int    `json:"purged"`
	Failed  int    `json:"failed"`
	Error   string `json:"error,omitempty"`
}

// VoucherWriteResult is returned by the write-back service.
type VoucherWriteResult struct {
	Success  bool   `json:"success"`
	RemoteID string `json:"remote_id,omitempty"`
	// Queued is set when the remote ledger was unreachable and the voucher
	// was stored in the pending push queue instead.
	Queued    bool   `json:"queued"`
	PendingID string `json:"pending_id,omitempty"`
	Error     string `json:"error,omitempty"`
}
