package handler

import (
	"github.com/MKhiriev/bbp-gateway/internal/config"
	"github.com/MKhiriev/bbp-gateway/internal/gateway"
	"github.com/MKhiriev/bbp-gateway/internal/handler/grpc"
	"github.com/MKhiriev/bbp-gateway/internal/handler/http"
	"github.com/MKhiriev/bbp-gateway/internal/logger"
	"github.com/MKhiriev/bbp-gateway/models"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(gw *gateway.Gateway, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(gw, cfg.App, cfg.Server.RequestTimeout, buildInfo, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
