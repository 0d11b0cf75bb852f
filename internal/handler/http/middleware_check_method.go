// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/voucher-sync/internal/app"
	"github.com/MKhiriev/voucher-sync/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A path requested with a method it does not serve answers 404 with a JSON
// body instead of chi's bare 405.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}
		utils.WriteJSON(w, errorResponse{Error: app.MsgRouteNotFound}, http.StatusNotFound)
	}
}
