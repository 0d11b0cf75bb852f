// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/internal/utils"
	"github.com/MKhiriev/voucher-sync/models"
)

func (h *Handler) getVoucher(w http.ResponseWriter, r *http.Request) {
	guid := chi.URLParam(r, "guid")

	v, err := h.services.VoucherService.Get(r.Context(), guid)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getVoucher").Str("global_id", guid).Msg("error getting voucher")
		utils.WriteJSON(w, models.VoucherResponse{Error: err.Error()}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.VoucherResponse{Success: true, Voucher: &v}, http.StatusOK)
}

func (h *Handler) getVoucherDetail(w http.ResponseWriter, r *http.Request) {
	res := h.services.VoucherService.Detail(r.Context(), chi.URLParam(r, "guid"))
	utils.WriteJSON(w, res, statusFromMessage(res.Error))
}

func (h *Handler) createVoucher(w http.ResponseWriter, r *http.Request) {
	var payload models.VoucherPayload
	if err := utils.DecodeJSON(r, &payload); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createVoucher").Msg(ErrInvalidJSON.Error())
		writeError(w, ErrInvalidJSON)
		return
	}

	res := h.services.VoucherService.Create(r.Context(), payload)
	status := statusFromMessage(res.Error)
	switch {
	case res.Queued:
		status = http.StatusAccepted
	case res.Success:
		status = http.StatusCreated
	}
	utils.WriteJSON(w, res, status)
}

func (h *Handler) updateVoucher(w http.ResponseWriter, r *http.Request) {
	var payload models.VoucherPayload
	if err := utils.DecodeJSON(r, &payload); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateVoucher").Msg(ErrInvalidJSON.Error())
		writeError(w, ErrInvalidJSON)
		return
	}

	res := h.services.VoucherService.Update(r.Context(), payload)
	status := http.StatusOK
	if !res.Success {
		status = statusFromMessage(res.Error)
	}
	utils.WriteJSON(w, res, status)
}

func (h *Handler) deleteVoucher(w http.ResponseWriter, r *http.Request) {
	res := h.services.VoucherService.Delete(r.Context(), chi.URLParam(r, "guid"))
	utils.WriteJSON(w, res, statusFromMessage(res.Error))
}

func (h *Handler) purgeVouchers(w http.ResponseWriter, r *http.Request) {
	var req models.PurgeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.purgeVouchers").Msg(ErrInvalidJSON.Error())
		writeError(w, ErrInvalidJSON)
		return
	}
	if len(req.GlobalIDs) == 0 {
		writeError(w, ErrEmptyGlobalID)
		return
	}

	res := h.services.VoucherService.Purge(r.Context(), req.GlobalIDs)
	status := http.StatusOK
	if res.Purged == 0 && res.Error != "" {
		status = statusFromMessage(res.Error)
	}
	utils.WriteJSON(w, res, status)
}
