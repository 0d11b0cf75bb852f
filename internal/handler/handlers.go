// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/voucher-sync/internal/config"
	"github.com/MKhiriev/voucher-sync/internal/events"
	"github.com/MKhiriev/voucher-sync/internal/handler/http"
	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, subscriber events.Subscriber, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, subscriber, logger),
	}, nil
}
