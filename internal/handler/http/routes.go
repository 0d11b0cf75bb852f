// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/info", h.getServerInfo)
		r.Get("/api/connectivity", h.checkConnectivity)

		r.Route("/api/sync", func(r chi.Router) {
			r.Get("/status", h.syncStatus)
			r.Post("/start", h.startSync)
			r.Post("/stop", h.stopSync)
			r.Post("/incremental", h.runIncremental)
			r.Post("/range", h.runRange)
			r.Post("/reconcile", h.runReconciliation)
			r.Post("/full-history", h.runFullHistory)
			r.Post("/master-data", h.runMasterData)
		})

		r.Route("/api/vouchers", func(r chi.Router) {
			r.Post("/", h.createVoucher)
			r.Put("/", h.updateVoucher)
			r.Get("/{guid}", h.getVoucher)
			r.Get("/{guid}/detail", h.getVoucherDetail)
			r.Delete("/{guid}", h.deleteVoucher)
		})

		r.Post("/api/admin/vouchers/purge", h.purgeVouchers)
	})

	// streaming responses bypass compression
	if h.events != nil {
		router.Get("/api/events", h.streamEvents)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
