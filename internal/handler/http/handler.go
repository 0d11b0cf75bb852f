// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/voucher-sync/internal/events"
	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/internal/service"
)

type Handler struct {
	services *service.Services
	events   events.Subscriber

	logger *logger.Logger
}

func NewHandler(services *service.Services, subscriber events.Subscriber, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		events:   subscriber,
		logger:   logger,
	}
}
