// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/voucher-sync/internal/adapter"
	"github.com/MKhiriev/voucher-sync/internal/service"
	"github.com/MKhiriev/voucher-sync/internal/store"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is ordered: the first sentinel found in the message wins.
var errorStatuses = []errorStatus{
	{service.ErrAlreadySyncing, http.StatusConflict},
	{service.ErrInvalidDateRange, http.StatusBadRequest},
	{service.ErrInvalidPayload, http.StatusBadRequest},
	{service.ErrVoucherNotFound, http.StatusNotFound},
	{service.ErrEmptyRemoteSet, http.StatusBadGateway},
	{service.ErrRemoteOffline, http.StatusBadGateway},

	{adapter.ErrConnectionRefused, http.StatusBadGateway},
	{adapter.ErrTimeout, http.StatusGatewayTimeout},
	{adapter.ErrMalformedResponse, http.StatusBadGateway},
	{adapter.ErrRemoteRejected, http.StatusUnprocessableEntity},

	{store.ErrNotSoftDeleted, http.StatusConflict},

	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidDate, http.StatusBadRequest},
	{ErrEmptyGlobalID, http.StatusBadRequest},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// statusFromMessage maps the Error field of a service result. Results carry
// strings, so the sentinel text is looked up inside the message.
func statusFromMessage(msg string) int {
	if msg == "" {
		return http.StatusOK
	}
	for _, e := range errorStatuses {
		if strings.Contains(msg, e.err.Error()) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
