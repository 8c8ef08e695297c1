package queries

import (
	"context"

	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/internal/ports"
	"github.com/architeacher/device-registry/pkg/decorator"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/architeacher/device-registry/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	// ListDevicesQuery filters by at most one attribute. Brand takes
	// precedence when both are set.
	ListDevicesQuery struct {
		Brand string
		State model.State
	}

	ListDevicesQueryHandler = decorator.QueryHandler[ListDevicesQuery, []*model.Device]

	listDevicesQueryHandler struct {
		registry ports.DeviceRegistry
	}
)

func NewListDevicesQueryHandler(
	registry ports.DeviceRegistry,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListDevicesQueryHandler {
	return decorator.ApplyQueryDecorators[ListDevicesQuery, []*model.Device](
		listDevicesQueryHandler{registry: registry},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h listDevicesQueryHandler) Execute(ctx context.Context, query ListDevicesQuery) ([]*model.Device, error) {
	switch {
	case query.Brand != "":
		return h.registry.ListByBrand(ctx, query.Brand)
	case query.State != "":
		return h.registry.ListByState(ctx, query.State)
	default:
		return h.registry.List(ctx)
	}
}
