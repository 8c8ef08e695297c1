package grpc

import (
	"github.com/architeacher/device-registry/internal/config"
	"github.com/architeacher/device-registry/pkg/logger"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	otelTrace "go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type AdminServerConfig struct {
	Health         *HealthHandler
	Logger         logger.Logger
	TracerProvider otelTrace.TracerProvider
	Config         *config.ServiceConfig
}

// NewAdminServer builds the admin gRPC server exposing the standard health
// service and, optionally, server reflection.
func NewAdminServer(cfg AdminServerConfig) *grpc.Server {
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			RecoveryInterceptor(cfg.Logger),
			ContextExtractorInterceptor(),
			AccessLogInterceptor(cfg.Logger, cfg.Config.Logging.AccessLog),
		),
		grpc.ChainStreamInterceptor(
			RecoveryStreamInterceptor(cfg.Logger),
			ContextExtractorStreamInterceptor(),
			AccessLogStreamInterceptor(cfg.Logger, cfg.Config.Logging.AccessLog),
		),
	}

	if cfg.TracerProvider != nil && cfg.Config.Telemetry.Traces.Enabled {
		opts = append(opts, grpc.StatsHandler(otelgrpc.NewServerHandler(
			otelgrpc.WithTracerProvider(cfg.TracerProvider),
		)))
	}

	server := grpc.NewServer(opts...)

	healthpb.RegisterHealthServer(server, cfg.Health.Server())

	if cfg.Config.AdminGRPC.Reflection {
		reflection.Register(server)
	}

	return server
}
