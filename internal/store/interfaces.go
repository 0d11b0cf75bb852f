// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the local cache of the voucher ledger. Every write runs in
// one transaction per logical unit of work; readers never observe a partially
// applied unit.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/voucher-sync/models"
)

// VoucherRepository stores vouchers and their line items.
type VoucherRepository interface {
	// UpsertVoucher inserts an unseen voucher or updates every mutable field
	// of a cached one. A row whose change sequence is equal or newer is left
	// untouched and [models.UpsertStale] is returned. On insert or update
	// v.LineItems replaces the cached line items in the same transaction; an
	// update without line items clears them.
	UpsertVoucher(ctx context.Context, v models.Voucher) (models.UpsertOutcome, error)

	// GetVoucherByGlobalID returns the cached voucher with its line items or
	// ErrVoucherNotFound.
	GetVoucherByGlobalID(ctx context.Context, globalID string) (models.Voucher, error)

	// ListIdentitiesForReconciliation returns the identities of all active
	// vouchers, optionally restricted to kinds.
	ListIdentitiesForReconciliation(ctx context.Context, kinds []string) ([]models.VoucherIdentity, error)

	// ListActiveByDate returns active vouchers dated on the given day.
	ListActiveByDate(ctx context.Context, day time.Time) ([]models.Voucher, error)

	// MarkDeleted soft-deletes the batch. Rows already deleted or converted
	// are reported as failed.
	MarkDeleted(ctx context.Context, globalIDs []string, reason string) (models.BatchResult, error)

	// MarkConverted flags the batch as converted. Rows already deleted are
	// reported as failed.
	MarkConverted(ctx context.Context, conversions []models.Conversion) (models.BatchResult, error)

	UpdateKind(ctx context.Context, globalID, kind string) error

	// ReplaceLineItems deletes the cached line items and inserts items.
	ReplaceLineItems(ctx context.Context, globalID string, items []models.LineItem) error
	GetLineItems(ctx context.Context, globalID string) ([]models.LineItem, error)

	// PurgeDeleted hard-deletes vouchers that are already soft-deleted.
	PurgeDeleted(ctx context.Context, globalIDs []string) (models.PurgeResult, error)
}

// CursorRepository stores one last-seen change sequence per entity class.
type CursorRepository interface {
	// GetCursor returns 0 for an entity class never synced.
	GetCursor(ctx context.Context, entity models.EntityClass) (int64, error)

	// SetCursor stores value only if it is greater than the stored cursor
	// and reports whether the cursor moved.
	SetCursor(ctx context.Context, entity models.EntityClass, value int64) (bool, error)
}

// MasterDataRepository stores catalog items and counterparty ledgers.
type MasterDataRepository interface {
	UpsertStockItems(ctx context.Context, items []models.StockItem) (int, error)
	UpsertParties(ctx context.Context, parties []models.Party) (int, error)
}

// PendingRepository is the queue of vouchers created while the remote ledger
// was unreachable.
type PendingRepository interface {
	Enqueue(ctx context.Context, pending models.PendingVoucher) error
	ListPending(ctx context.Context) ([]models.PendingVoucher, error)
	RemovePending(ctx context.Context, id string) error
	RecordFailure(ctx context.Context, id string, reason string) error
}

// SyncStateRepository is a small key/value table for the persisted sync
// status and the full-history progress marker.
type SyncStateRepository interface {
	GetState(ctx context.Context, key string) (string, bool, error)
	SetState(ctx context.Context, key, value string) error
}

// ErrorClassificator classifies driver errors as retryable or not.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
