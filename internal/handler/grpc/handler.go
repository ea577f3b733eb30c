// Package grpc implements the gRPC transport of the gateway: the standard
// health service and server reflection.
package grpc

import (
	"github.com/MKhiriev/bbp-gateway/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health-checked service name. The empty name reports the
// overall server status and is kept in sync with it.
const ServiceName = "bbp.gateway.v1.Gateway"

// Handler is the root gRPC transport handler.
//
// It owns the health server so that the server lifecycle can flip the
// reported status. A handler instance is created once at startup and shared
// by the gRPC server.
type Handler struct {
	health *health.Server

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts as NOT_SERVING
// until [Handler.SetServing] is called.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(false)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service and reflection to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// SetServing switches the reported health status.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)

	h.logger.Info().Stringer("status", status).Msg("gRPC health status changed")
}

// Shutdown reports NOT_SERVING for good; later status updates are ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
	h.logger.Info().Msg("gRPC health service shut down")
}
