package http

import (
	"net/http"

	"github.com/architeacher/device-registry/internal/adapters/inbound/http/handlers"
	"github.com/architeacher/device-registry/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/device-registry/internal/config"
	"github.com/architeacher/device-registry/internal/usecases"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/architeacher/device-registry/pkg/metrics"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	otelTrace "go.opentelemetry.io/otel/trace"
)

const (
	baseURL     = "/v1"
	metricsPath = "/metrics"
	openAPIPath = "/openapi.yaml"
)

var healthPaths = []string{baseURL + "/liveness", baseURL + "/readiness", baseURL + "/health"}

type (
	// MetricsHandler is implemented by metrics clients that can render themselves.
	MetricsHandler interface {
		Handler() http.Handler
	}

	RouterConfig struct {
		App            *usecases.Application
		Logger         logger.Logger
		MetricsClient  metrics.Client
		TracerProvider otelTrace.TracerProvider
		Config         *config.ServiceConfig
	}
)

func NewRouter(cfg RouterConfig) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RealIP)
	router.Use(middleware.RequestTracking())
	router.Use(middleware.Recovery(cfg.Logger, handlers.InternalError))

	if cfg.Config.Telemetry.Metrics.Enabled && cfg.MetricsClient != nil {
		router.Use(middleware.NewMetricsMiddleware(cfg.MetricsClient).Middleware)
		cfg.Logger.Info().Msg("HTTP metrics collection enabled")
	}

	if cfg.Config.Logging.AccessLog.Enabled {
		if !cfg.Config.Logging.AccessLog.LogHealthChecks {
			router.Use(middleware.QuietPaths(healthPaths...))
		}

		router.Use(middleware.AccessLogger(cfg.Logger, cfg.Config.Logging.AccessLog.IncludeQueryParams))
		cfg.Logger.Info().
			Bool("log_health_checks", cfg.Config.Logging.AccessLog.LogHealthChecks).
			Msg("structured access logging enabled")
	}

	devices := handlers.NewDeviceHandler(cfg.App, cfg.Logger, cfg.Config.HTTPServer.MaxBodyBytes)
	health := handlers.NewHealthHandler(cfg.App)
	conditional := middleware.ConditionalGET()

	swagger, err := handlers.GetSwagger()
	if err != nil {
		cfg.Logger.Fatal().Err(err).Msg("failed to load OpenAPI document")
	}

	requestValidator := middleware.RequestValidator(cfg.Logger, swagger, middleware.RequestValidatorOptions{
		Options:      openapi3filter.Options{MultiError: false},
		MaxBodyBytes: cfg.Config.HTTPServer.MaxBodyBytes,
		Reject:       handlers.RequestRejected,
	})

	router.Route(baseURL, func(r chi.Router) {
		r.Get("/liveness", health.LivenessCheck)
		r.Get("/readiness", health.ReadinessCheck)
		r.Get("/health", health.HealthCheck)
		r.Get(openAPIPath, handlers.OpenAPIDocument)

		r.Route("/devices", func(r chi.Router) {
			r.Use(requestValidator)

			r.With(conditional).Get("/", devices.ListDevices)
			r.With(conditional).Head("/", devices.ListDevices)
			r.Post("/", devices.CreateDevice)
			r.Options("/", devices.OptionsDevices)

			r.Route("/{"+handlers.DeviceIDParam+"}", func(r chi.Router) {
				r.With(conditional).Get("/", devices.GetDevice)
				r.With(conditional).Head("/", devices.GetDevice)
				r.Put("/", devices.ReplaceDevice)
				r.Patch("/", devices.PatchDevice)
				r.Delete("/", devices.DeleteDevice)
				r.Options("/", devices.OptionsDevice)
			})
		})
	})

	if renderer, ok := cfg.MetricsClient.(MetricsHandler); ok && cfg.Config.Telemetry.Metrics.Enabled {
		router.Method(http.MethodGet, metricsPath, renderer.Handler())
	}

	if cfg.TracerProvider == nil || !cfg.Config.Telemetry.Traces.Enabled {
		return router
	}

	cfg.Logger.Info().Msg("distributed tracing enabled")

	return otelhttp.NewHandler(router, cfg.Config.App.ServiceName,
		otelhttp.WithTracerProvider(cfg.TracerProvider),
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
