// Package http implements the HTTP transport layer of the poem catalog.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and CORS concerns are
// all handled at this layer before requests are forwarded to the service
// layer.
package http

import (
	"github.com/MKhiriev/poem-catalog/internal/config"
	"github.com/MKhiriev/poem-catalog/internal/logger"
	"github.com/MKhiriev/poem-catalog/internal/service"
	"github.com/MKhiriev/poem-catalog/internal/utils"
)

type Handler struct {
	services *service.Services

	relayCfg   config.Relay
	version    string
	httpClient *utils.HTTPClient

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	client := utils.NewHTTPClient()
	if cfg.Relay.Timeout > 0 {
		client.SetTimeout(cfg.Relay.Timeout)
	}

	return &Handler{
		services:   services,
		relayCfg:   cfg.Relay,
		version:    cfg.App.Version,
		httpClient: client,
		logger:     logger,
	}
}
