// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/voucher-sync/internal/adapter"
	"github.com/MKhiriev/voucher-sync/internal/config"
	"github.com/MKhiriev/voucher-sync/internal/events"
	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/internal/store"
)

// Services is the explicit application context: every long-lived service is
// built once here and handed to the transport layer.
type Services struct {
	SyncService    SyncService
	VoucherService VoucherService
	AppInfoService AppInfoService
}

func NewServices(
	ctx context.Context,
	storages *store.Storages,
	ledger adapter.LedgerAdapter,
	notifier events.Notifier,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	if notifier == nil {
		notifier = events.Nop{}
	}

	appInfo, err := NewAppInfoService(cfg, storages.Dialect(), logger)
	if err != nil {
		return nil, err
	}

	syncService := NewSyncService(ledger, storages, notifier, cfg, logger)
	if err = syncService.RestoreState(ctx); err != nil {
		return nil, err
	}

	return &Services{
		SyncService:    syncService,
		VoucherService: NewVoucherService(ledger, storages, notifier, logger),
		AppInfoService: appInfo,
	}, nil
}
