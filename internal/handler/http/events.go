// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/voucher-sync/internal/app"
	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/models"
)

const eventStreamBuffer = 64

// streamEvents writes change notifications as server-sent events until the
// client disconnects. ?kinds=voucherCreated,syncFailed narrows the stream.
func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, app.MsgStreamingNotSupported, http.StatusInternalServerError)
		return
	}

	var kinds []models.EventKind
	if raw := r.URL.Query().Get("kinds"); raw != "" {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				kinds = append(kinds, models.EventKind(k))
			}
		}
	}

	stream, unsubscribe := h.events.SubscribeChan(eventStreamBuffer, kinds...)
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-stream:
			if !open {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				log.Err(err).Str("func", "*Handler.streamEvents").Str("event_id", event.ID).Msg("error encoding event")
				continue
			}
			if _, err = fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Kind, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
