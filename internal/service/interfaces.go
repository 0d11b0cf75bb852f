// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/voucher-sync/models"
)

// SyncService is the control surface of the sync orchestrator. None of its
// methods return errors: every failure is reported in the result's Success
// and Error fields.
type SyncService interface {
	// Start checks connectivity, runs one master-data pass and, when a poll
	// interval is configured, an initial incremental pass before scheduling
	// the background workers. Returns false when the remote is offline.
	Start(ctx context.Context) bool
	// Stop cancels the background workers. Restarting afterwards is safe.
	Stop()
	// RestoreState reloads the status persisted by a previous process.
	RestoreState(ctx context.Context) error
	Status(ctx context.Context) models.SyncRunState
	CheckConnectivity(ctx context.Context) models.Connectivity

	RunIncrementalSync(ctx context.Context) models.SyncResult
	RunRangeSync(ctx context.Context, from, to time.Time) models.SyncResult
	RunDeletionReconciliation(ctx context.Context, kinds []string) models.ReconciliationResult
	// RunFullHistorySync blocks until every batch is done. A nil start
	// resumes a persisted unfinished pass or begins one year back.
	RunFullHistorySync(ctx context.Context, start *time.Time, batchDays int) models.FullHistoryResult
	// StartFullHistorySync acquires the sync guard and runs the full-history
	// pass in the background.
	StartFullHistorySync(ctx context.Context, start *time.Time, batchDays int) models.FullHistoryResult
	RunMasterDataSync(ctx context.Context) models.MasterDataResult
}

// VoucherService writes vouchers back to the remote ledger and serves cached
// vouchers.
type VoucherService interface {
	Get(ctx context.Context, globalID string) (models.Voucher, error)
	Detail(ctx context.Context, globalID string) models.VoucherDetailResult
	Create(ctx context.Context, payload models.VoucherPayload) models.VoucherWriteResult
	Update(ctx context.Context, payload models.VoucherPayload) models.VoucherWriteResult
	Delete(ctx context.Context, globalID string) models.VoucherWriteResult
	Purge(ctx context.Context, globalIDs []string) models.PurgeResult
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}
