// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/poem-catalog/internal/config"
	"github.com/MKhiriev/poem-catalog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelay_ForwardsBodyToWebhook(t *testing.T) {
	var forwardedBody string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		forwardedBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"delivered":true}`))
	}))
	defer upstream.Close()

	cfg := testConfig()
	cfg.Relay = config.Relay{WebhookURL: upstream.URL}
	router := newTestRouter(t, &service.Services{}, cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/relay", strings.NewReader(`{"event":"poem_added"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// upstream status and body pass through verbatim
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"delivered":true}`, rec.Body.String())
	assert.JSONEq(t, `{"event":"poem_added"}`, forwardedBody)
}

func TestRelay_NonPOSTMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, &service.Services{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/relay", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRelay_UnconfiguredWebhook(t *testing.T) {
	router := newTestRouter(t, &service.Services{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/relay", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestRelay_UpstreamUnreachable(t *testing.T) {
	// a closed server guarantees a connection failure
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	cfg := testConfig()
	cfg.Relay = config.Relay{WebhookURL: upstream.URL}
	router := newTestRouter(t, &service.Services{}, cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/relay", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "relay request failed")
}
