package grpc

import (
	"context"
	"time"

	"github.com/architeacher/device-registry/internal/ports"
	"github.com/architeacher/device-registry/pkg/logger"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthHandler mirrors the registry health onto the standard gRPC health
// service. The empty service name and serviceName always carry the same status.
type HealthHandler struct {
	server      *health.Server
	checker     ports.HealthChecker
	serviceName string
	interval    time.Duration
	logger      logger.Logger
}

func NewHealthHandler(
	checker ports.HealthChecker,
	serviceName string,
	interval time.Duration,
	log logger.Logger,
) *HealthHandler {
	server := health.NewServer()
	server.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	server.SetServingStatus(serviceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &HealthHandler{
		server:      server,
		checker:     checker,
		serviceName: serviceName,
		interval:    interval,
		logger:      log.Component("grpc_health"),
	}
}

// Server returns the health service to register on a grpc.Server.
func (h *HealthHandler) Server() healthpb.HealthServer {
	return h.server
}

// Refresh checks the registry once and publishes the result.
func (h *HealthHandler) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if !h.checker.IsHealthy(ctx) {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(h.serviceName, status)

	return status
}

// Run refreshes the status on every interval tick until ctx is done.
func (h *HealthHandler) Run(ctx context.Context) {
	last := h.Refresh(ctx)

	if h.interval <= 0 {
		return
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			status := h.Refresh(ctx)
			if status != last {
				h.logger.Info().Str("status", status.String()).Msg("serving status changed")
				last = status
			}
		}
	}
}

// Shutdown marks every service NOT_SERVING and ignores further updates.
func (h *HealthHandler) Shutdown() {
	h.server.Shutdown()
}
