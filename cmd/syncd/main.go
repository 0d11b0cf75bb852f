// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/voucher-sync/internal/adapter"
	"github.com/MKhiriev/voucher-sync/internal/config"
	"github.com/MKhiriev/voucher-sync/internal/events"
	"github.com/MKhiriev/voucher-sync/internal/handler"
	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/internal/server"
	"github.com/MKhiriev/voucher-sync/internal/service"
	"github.com/MKhiriev/voucher-sync/internal/store"
	"github.com/MKhiriev/voucher-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("voucher-syncd", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}
	cfg.App.BuildDate, cfg.App.BuildCommit = buildInfo.Date, buildInfo.Commit

	log := logger.NewLogger("voucher-syncd", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	ledger, err := adapter.NewHTTPLedgerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating remote ledger adapter")
	}

	bus := events.NewBus(log)
	bus.Subscribe(logEvent(log), models.EventSyncFailed, models.EventVoucherDeleted, models.EventVoucherConverted)

	services, err := service.NewServices(ctx, storages, ledger, bus, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, bus, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	// an unreachable remote at boot is not fatal: status reports the error
	// and the next start call retries
	if !services.SyncService.Start(ctx) {
		log.Warn().Str("error", services.SyncService.Status(ctx).LastError).Msg("sync service did not start")
	}

	srv.RunServer(ctx)
	services.SyncService.Stop()
}

func logEvent(log *logger.Logger) events.Handler {
	return func(_ context.Context, event models.Event) error {
		log.Info().
			Str("event_id", event.ID).
			Str("event_kind", string(event.Kind)).
			Any("data", event.Data).
			Msg("sync event")
		return nil
	}
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(info)
	return info
}
