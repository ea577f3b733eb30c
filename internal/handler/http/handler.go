package http

import (
	"time"

	"github.com/MKhiriev/bbp-gateway/internal/config"
	"github.com/MKhiriev/bbp-gateway/internal/gateway"
	"github.com/MKhiriev/bbp-gateway/internal/logger"
	"github.com/MKhiriev/bbp-gateway/models"
)

type Handler struct {
	gateway *gateway.Gateway

	app            config.App
	buildInfo      models.AppBuildInfo
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. A zero requestTimeout disables the
// per-request timeout middleware.
func NewHandler(gw *gateway.Gateway, app config.App, requestTimeout time.Duration, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		gateway:        gw,
		app:            app,
		buildInfo:      buildInfo,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
