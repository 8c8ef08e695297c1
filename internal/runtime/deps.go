package runtime

import (
	"context"
	"fmt"
	"net/http"

	inboundgrpc "github.com/architeacher/device-registry/internal/adapters/inbound/grpc"
	"github.com/architeacher/device-registry/internal/adapters/repos"
	"github.com/architeacher/device-registry/internal/config"
	"github.com/architeacher/device-registry/internal/infrastructure"
	"github.com/architeacher/device-registry/internal/ports"
	"github.com/architeacher/device-registry/internal/usecases"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/architeacher/device-registry/pkg/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/sdk/resource"
	otelTrace "go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

type (
	infrastructureDep struct {
		httpServer     *http.Server
		adminServer    *grpc.Server
		grpcHealth     *inboundgrpc.HealthHandler
		cacheClient    *infrastructure.KeydbClient
		dbPool         *pgxpool.Pool
		logger         logger.Logger
		metricsClient  metrics.Client
		tracerProvider otelTrace.TracerProvider
		resource       *resource.Resource
	}

	repositories struct {
		secretsRepo ports.SecretsRepository
		store       ports.DeviceStore
		storePinger ports.Pinger
		cache       repos.PingableCache
	}

	servicesDep struct {
		registry      ports.DeviceRegistry
		healthChecker ports.HealthChecker
	}

	// cleanup releases one resource during shutdown.
	cleanup struct {
		name string
		fn   func(ctx context.Context) error
	}

	dependencies struct {
		config       *config.ServiceConfig
		configLoader *config.Loader

		infra infrastructureDep

		repos repositories

		services servicesDep

		app *usecases.Application

		// cleanups run in reverse registration order.
		cleanups []cleanup
	}

	DependencyOption func(*dependencies) error
)

func initializeDependencies(ctx context.Context, opts ...DependencyOption) (*dependencies, error) {
	deps := &dependencies{}

	allOpts := append(defaultOptions(ctx), opts...)

	for _, opt := range allOpts {
		if err := opt(deps); err != nil {
			// Release whatever was acquired before the failing option.
			deps.runCleanups(ctx)

			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	return deps, nil
}

func (d *dependencies) onShutdown(name string, fn func(ctx context.Context) error) {
	d.cleanups = append(d.cleanups, cleanup{name: name, fn: fn})
}

func (d *dependencies) runCleanups(ctx context.Context) {
	for i := len(d.cleanups) - 1; i >= 0; i-- {
		c := d.cleanups[i]

		if err := c.fn(ctx); err != nil {
			d.infra.logger.Error().
				Err(err).
				Str("resource", c.name).
				Msg("failed to shutdown the resource gracefully")
		}
	}

	d.cleanups = nil
}
