// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/internal/utils"
	"github.com/MKhiriev/voucher-sync/models"
)

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.SyncService.Status(r.Context()), http.StatusOK)
}

func (h *Handler) checkConnectivity(w http.ResponseWriter, r *http.Request) {
	conn := h.services.SyncService.CheckConnectivity(r.Context())

	status := http.StatusOK
	if !conn.Connected {
		status = http.StatusBadGateway
	}
	utils.WriteJSON(w, conn, status)
}

func (h *Handler) startSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ok := h.services.SyncService.Start(ctx)
	state := h.services.SyncService.Status(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.startSync").Str("error", state.LastError).Msg("sync service did not start")
		utils.WriteJSON(w, models.ControlResponse{Error: state.LastError, Status: &state}, statusFromMessage(state.LastError))
		return
	}

	utils.WriteJSON(w, models.ControlResponse{Success: true, Status: &state}, http.StatusOK)
}

func (h *Handler) stopSync(w http.ResponseWriter, r *http.Request) {
	h.services.SyncService.Stop()
	state := h.services.SyncService.Status(r.Context())

	utils.WriteJSON(w, models.ControlResponse{Success: true, Status: &state}, http.StatusOK)
}

func (h *Handler) runIncremental(w http.ResponseWriter, r *http.Request) {
	res := h.services.SyncService.RunIncrementalSync(r.Context())
	utils.WriteJSON(w, res, statusFromMessage(res.Error))
}

func (h *Handler) runRange(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RangeSyncRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.runRange").Msg(ErrInvalidJSON.Error())
		writeError(w, ErrInvalidJSON)
		return
	}

	from, err := parseDate(req.From)
	if err != nil {
		writeError(w, err)
		return
	}
	to, err := parseDate(req.To)
	if err != nil {
		writeError(w, err)
		return
	}

	res := h.services.SyncService.RunRangeSync(r.Context(), from, to)
	utils.WriteJSON(w, res, statusFromMessage(res.Error))
}

func (h *Handler) runReconciliation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ReconcileRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.runReconciliation").Msg(ErrInvalidJSON.Error())
		writeError(w, ErrInvalidJSON)
		return
	}

	res := h.services.SyncService.RunDeletionReconciliation(r.Context(), req.Kinds)
	utils.WriteJSON(w, res, statusFromMessage(res.Error))
}

func (h *Handler) runFullHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.FullHistoryRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.runFullHistory").Msg(ErrInvalidJSON.Error())
		writeError(w, ErrInvalidJSON)
		return
	}

	var start *time.Time
	if req.StartDate != "" {
		d, err := parseDate(req.StartDate)
		if err != nil {
			writeError(w, err)
			return
		}
		start = &d
	}

	if req.Wait {
		res := h.services.SyncService.RunFullHistorySync(r.Context(), start, req.BatchDays)
		utils.WriteJSON(w, res, statusFromMessage(res.Error))
		return
	}

	res := h.services.SyncService.StartFullHistorySync(r.Context(), start, req.BatchDays)
	status := http.StatusAccepted
	if !res.Success {
		status = statusFromMessage(res.Error)
	}
	utils.WriteJSON(w, res, status)
}

func (h *Handler) runMasterData(w http.ResponseWriter, r *http.Request) {
	res := h.services.SyncService.RunMasterDataSync(r.Context())
	utils.WriteJSON(w, res, statusFromMessage(res.Error))
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, errorResponse{Error: err.Error()}, statusFromError(err))
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}
