// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/poem-catalog/internal/logger"
	"github.com/MKhiriev/poem-catalog/internal/utils"
)

// relay forwards the request body to the configured third-party webhook and
// returns the upstream response verbatim. The endpoint is POST-only: any
// other method yields 405, with the permissive CORS headers already attached
// by the middleware chain. Relay failure yields 500 with a JSON error body.
func (h *Handler) relay(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if r.Method != http.MethodPost {
		utils.WriteJSON(w, map[string]string{"error": "method not allowed"}, http.StatusMethodNotAllowed)
		return
	}

	if h.relayCfg.WebhookURL == "" {
		log.Warn().Msg("relay request received but no webhook URL is configured")
		utils.WriteJSON(w, map[string]string{"error": "relay is not configured"}, http.StatusInternalServerError)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("failed to read relay request body")
		utils.WriteJSON(w, map[string]string{"error": "failed to read request body"}, http.StatusInternalServerError)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	resp, err := h.httpClient.R().
		SetContext(r.Context()).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		Post(h.relayCfg.WebhookURL)
	if err != nil {
		log.Err(err).Str("webhook", h.relayCfg.WebhookURL).Msg("relay request failed")
		utils.WriteJSON(w, map[string]string{"error": "relay request failed"}, http.StatusInternalServerError)
		return
	}

	if upstreamType := resp.Header().Get("Content-Type"); upstreamType != "" {
		w.Header().Set("Content-Type", upstreamType)
	}
	w.WriteHeader(resp.StatusCode())
	w.Write(resp.Body())
}
