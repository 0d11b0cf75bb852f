// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/voucher-sync/internal/config"
	"github.com/MKhiriev/voucher-sync/internal/handler"
	"github.com/MKhiriev/voucher-sync/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("control server created")
	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer returns after a termination signal, cancellation of ctx, or a
// listener failure such as a busy port.
func (s *server) RunServer(ctx context.Context) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- s.httpServer.RunServer()
	}()
	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("control server listening")

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-listenErr
		s.logger.Info().Msg("control server stopped gracefully")
	case err := <-listenErr:
		s.logger.Err(err).Msg("control server stopped")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
