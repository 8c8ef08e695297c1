package runtime

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	inboundgrpc "github.com/architeacher/device-registry/internal/adapters/inbound/grpc"
	inboundhttp "github.com/architeacher/device-registry/internal/adapters/inbound/http"
	"github.com/architeacher/device-registry/internal/adapters/repos"
	"github.com/architeacher/device-registry/internal/config"
	"github.com/architeacher/device-registry/internal/infrastructure"
	infraPostgres "github.com/architeacher/device-registry/internal/infrastructure/postgres"
	"github.com/architeacher/device-registry/internal/services"
	"github.com/architeacher/device-registry/internal/usecases"
	"github.com/architeacher/device-registry/pkg/circuitbreaker"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/architeacher/device-registry/pkg/metrics/noop"
	metricsotel "github.com/architeacher/device-registry/pkg/metrics/otel"
	"github.com/hashicorp/vault/api"
	"go.opentelemetry.io/otel/sdk/resource"
)

const (
	healthCheckTimeout = 2 * time.Second
	cacheBreakerName   = "keydb"
)

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithConfig(),
		WithLogger(),
		WithSecretsRepository(),
		WithConfigLoader(ctx),
		WithTracing(ctx),
		WithMetrics(ctx),
		WithStore(ctx),
		WithCache(ctx),
		WithRegistry(),
		WithHealth(),
		WithApplication(),
		WithHTTPServer(),
		WithAdminServer(),
	}
}

func WithConfig() DependencyOption {
	return func(d *dependencies) error {
		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("initializing configuration: %w", err)
		}

		d.config = cfg

		return nil
	}
}

func WithLogger() DependencyOption {
	return func(d *dependencies) error {
		d.infra.logger = logger.New(d.config.Logging.Level, d.config.Logging.Format)

		return nil
	}
}

func WithSecretsRepository() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.SecretsStorage.Enabled {
			return nil
		}

		vaultConfig := api.DefaultConfig()
		vaultConfig.Address = d.config.SecretsStorage.Address
		vaultConfig.Timeout = d.config.SecretsStorage.Timeout

		if d.config.SecretsStorage.TLSSkipVerify {
			vaultConfig.HttpClient.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // opt-in for local Vault
			}
		}

		client, err := api.NewClient(vaultConfig)
		if err != nil {
			return fmt.Errorf("creating Vault client: %w", err)
		}

		if d.config.SecretsStorage.Namespace != "" {
			client.SetNamespace(d.config.SecretsStorage.Namespace)
		}

		d.repos.secretsRepo = repos.NewVaultRepository(client)

		return nil
	}
}

// WithConfigLoader overlays Vault secrets on the environment configuration.
// It must run after WithSecretsRepository.
func WithConfigLoader(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if d.repos.secretsRepo == nil {
			return nil
		}

		loader := config.NewLoader(d.config, d.repos.secretsRepo, 0)

		version, err := loader.Load(ctx)
		if err != nil {
			return fmt.Errorf("loading secrets from Vault: %w", err)
		}

		d.configLoader = loader

		d.infra.logger.Info().
			Uint("version", version).
			Msg("secrets loaded from Vault")

		return nil
	}
}

func WithTracing(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Telemetry.Enabled || !d.config.Telemetry.Traces.Enabled {
			d.infra.tracerProvider = infrastructure.NewNoopTracerProvider()

			return nil
		}

		res, err := d.telemetryResource(ctx)
		if err != nil {
			return err
		}

		tp, shutdown, err := infrastructure.NewTracerProvider(ctx, d.config.Telemetry, res)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}

		d.infra.tracerProvider = tp
		d.onShutdown("tracer", shutdown)

		return nil
	}
}

func WithMetrics(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Telemetry.Metrics.Enabled {
			d.infra.metricsClient = noop.NewMetricsClient()

			return nil
		}

		res, err := d.telemetryResource(ctx)
		if err != nil {
			return err
		}

		metricsLogger := d.infra.logger.Component("metrics")

		client := metricsotel.NewMetricsClient(res, metricsotel.WithErrorHandler(func(err error) {
			metricsLogger.Warn().Err(err).Msg("metrics instrument error")
		}))

		d.infra.metricsClient = client
		d.onShutdown("metrics", client.Shutdown)

		return nil
	}
}

func WithStore(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if d.config.Store.Driver == config.StoreDriverMemory {
			store := repos.NewMemoryStore()

			d.repos.store = store
			d.repos.storePinger = store

			d.infra.logger.Warn().Msg("using the in-memory store, devices are lost on restart")

			return nil
		}

		pool, err := infraPostgres.NewPool(ctx, d.config.Database, d.config.Backoff, d.infra.logger)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}

		d.infra.dbPool = pool
		d.onShutdown("postgres", func(context.Context) error {
			pool.Close()

			return nil
		})

		store := repos.NewDevicesStore(
			pool,
			repos.NewPgxScanner(),
			repos.NewSpecTranslator(),
			d.infra.logger.Component("devices_store"),
		)

		d.repos.store = store
		d.repos.storePinger = store

		return nil
	}
}

// WithCache wires KeyDB behind a circuit breaker. An unreachable cache never
// blocks startup since the registry serves every read from the store.
func WithCache(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Cache.Enabled {
			d.repos.cache = repos.NopCache{}

			return nil
		}

		cacheLogger := d.infra.logger.Component("keydb")

		client := infrastructure.NewKeyDBClient(d.config.Cache, cacheLogger)
		if err := client.WaitReady(ctx, d.config.Backoff); err != nil {
			cacheLogger.Warn().
				Err(err).
				Str("address", d.config.Cache.Address).
				Msg("cache is not reachable, starting without it")
		}

		d.infra.cacheClient = client
		d.onShutdown("keydb", func(context.Context) error {
			return client.Close()
		})

		breakerCfg := d.config.Cache.CircuitBreaker

		d.repos.cache = repos.NewBreakerCache(repos.NewDevicesCache(client), circuitbreaker.Config{
			Name:             cacheBreakerName,
			Enabled:          breakerCfg.Enabled,
			MaxRequests:      breakerCfg.MaxRequests,
			Interval:         breakerCfg.Interval,
			Timeout:          breakerCfg.Timeout,
			FailureThreshold: breakerCfg.FailureThreshold,
			OnStateChange: func(name string, from, to circuitbreaker.State) {
				cacheLogger.Warn().
					Str("breaker", name).
					Str("from", string(from)).
					Str("to", string(to)).
					Msg("cache circuit breaker changed state")
			},
		})

		return nil
	}
}

func WithRegistry() DependencyOption {
	return func(d *dependencies) error {
		d.services.registry = services.NewDeviceRegistry(
			d.repos.store,
			d.repos.cache,
			d.infra.logger.Component("registry"),
			d.infra.metricsClient,
		)

		return nil
	}
}

func WithHealth() DependencyOption {
	return func(d *dependencies) error {
		dependencies := []services.Dependency{
			{Name: "store", Pinger: d.repos.storePinger, Critical: true},
		}

		if d.config.Cache.Enabled {
			dependencies = append(dependencies, services.Dependency{Name: "cache", Pinger: d.repos.cache})
		}

		d.services.healthChecker = services.NewHealthService(healthCheckTimeout, dependencies...)

		return nil
	}
}

func WithApplication() DependencyOption {
	return func(d *dependencies) error {
		d.app = usecases.NewApplication(
			d.services.registry,
			d.services.healthChecker,
			d.infra.logger,
			d.infra.tracerProvider,
			d.infra.metricsClient,
		)

		return nil
	}
}

func WithHTTPServer() DependencyOption {
	return func(d *dependencies) error {
		router := inboundhttp.NewRouter(inboundhttp.RouterConfig{
			App:            d.app,
			Logger:         d.infra.logger,
			MetricsClient:  d.infra.metricsClient,
			TracerProvider: d.infra.tracerProvider,
			Config:         d.config,
		})

		cfg := d.config.HTTPServer

		d.infra.httpServer = &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, strconv.FormatUint(uint64(cfg.Port), 10)),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		}

		return nil
	}
}

func WithAdminServer() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.AdminGRPC.Enabled {
			return nil
		}

		d.infra.grpcHealth = inboundgrpc.NewHealthHandler(
			d.services.healthChecker,
			d.config.App.ServiceName,
			d.config.AdminGRPC.CheckInterval,
			d.infra.logger,
		)

		d.infra.adminServer = inboundgrpc.NewAdminServer(inboundgrpc.AdminServerConfig{
			Health:         d.infra.grpcHealth,
			Logger:         d.infra.logger,
			TracerProvider: d.infra.tracerProvider,
			Config:         d.config,
		})

		return nil
	}
}

func (d *dependencies) telemetryResource(ctx context.Context) (*resource.Resource, error) {
	if d.infra.resource != nil {
		return d.infra.resource, nil
	}

	res, err := infrastructure.NewResource(ctx, d.config.Telemetry, d.config.App.Env.Name)
	if err != nil {
		return nil, fmt.Errorf("building telemetry resource: %w", err)
	}

	d.infra.resource = res

	return res, nil
}
