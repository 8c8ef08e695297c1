// Package otel provides a metrics.Client backed by the OpenTelemetry SDK.
// Instruments are registered lazily on first use and read back through a
// manual reader, so the admin endpoint can render a snapshot without an
// external collector.
package otel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/architeacher/device-registry/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/resource"
)

const meterName = "github.com/architeacher/device-registry"

type (
	MetricsClient struct {
		provider *sdkmetric.MeterProvider
		reader   *sdkmetric.ManualReader
		meter    metric.Meter
		onError  func(error)

		mu         sync.Mutex
		counters   map[string]metric.Int64Counter
		histograms map[string]metric.Float64Histogram
	}

	Option func(*MetricsClient)

	// HistogramSnapshot is the rendered form of a histogram instrument.
	HistogramSnapshot struct {
		Count uint64  `json:"count"`
		Sum   float64 `json:"sum"`
	}
)

// WithErrorHandler routes instrument registration and collection errors to fn.
func WithErrorHandler(fn func(error)) Option {
	return func(c *MetricsClient) {
		c.onError = fn
	}
}

func NewMetricsClient(res *resource.Resource, opts ...Option) *MetricsClient {
	reader := sdkmetric.NewManualReader()

	providerOpts := []sdkmetric.Option{sdkmetric.WithReader(reader)}
	if res != nil {
		providerOpts = append(providerOpts, sdkmetric.WithResource(res))
	}

	provider := sdkmetric.NewMeterProvider(providerOpts...)

	client := &MetricsClient{
		provider:   provider,
		reader:     reader,
		meter:      provider.Meter(meterName),
		onError:    func(error) {},
		counters:   make(map[string]metric.Int64Counter),
		histograms: make(map[string]metric.Float64Histogram),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (c *MetricsClient) Inc(ctx context.Context, key string, value any, attributes ...attribute.KeyValue) {
	attrs := metric.WithAttributes(attributes...)

	switch v := value.(type) {
	case int:
		c.add(ctx, key, int64(v), attrs)
	case int64:
		c.add(ctx, key, v, attrs)
	case uint64:
		c.add(ctx, key, int64(v), attrs)
	case float64:
		c.record(ctx, key, v, attrs)
	case float32:
		c.record(ctx, key, float64(v), attrs)
	default:
		c.onError(fmt.Errorf("metric %s: unsupported value type %T", key, value))
	}
}

func (c *MetricsClient) add(ctx context.Context, key string, value int64, attrs metric.AddOption) {
	c.mu.Lock()
	counter, ok := c.counters[key]

	if !ok {
		var err error

		counter, err = metrics.RegisterInt64Counter(c.meter, metrics.Descriptor{Unit: "1"}, key)
		if err != nil {
			c.mu.Unlock()
			c.onError(err)

			return
		}

		c.counters[key] = counter
	}
	c.mu.Unlock()

	counter.Add(ctx, value, attrs)
}

func (c *MetricsClient) record(ctx context.Context, key string, value float64, attrs metric.RecordOption) {
	c.mu.Lock()
	histogram, ok := c.histograms[key]

	if !ok {
		var err error

		histogram, err = metrics.RegisterFloat64Histogram(c.meter, metrics.Descriptor{Unit: "s"}, key)
		if err != nil {
			c.mu.Unlock()
			c.onError(err)

			return
		}

		c.histograms[key] = histogram
	}
	c.mu.Unlock()

	histogram.Record(ctx, value, attrs)
}

// Snapshot collects the current value of every instrument, summed across
// attribute sets.
func (c *MetricsClient) Snapshot(ctx context.Context) (map[string]any, error) {
	var rm metricdata.ResourceMetrics
	if err := c.reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("failed to collect metrics: %w", err)
	}

	snapshot := make(map[string]any)

	for _, scope := range rm.ScopeMetrics {
		if scope.Scope.Name != meterName {
			continue
		}

		for _, m := range scope.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				var total int64
				for _, dp := range data.DataPoints {
					total += dp.Value
				}

				snapshot[m.Name] = total
			case metricdata.Histogram[float64]:
				var h HistogramSnapshot
				for _, dp := range data.DataPoints {
					h.Count += dp.Count
					h.Sum += dp.Sum
				}

				snapshot[m.Name] = h
			}
		}
	}

	return snapshot, nil
}

func (c *MetricsClient) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := c.Snapshot(r.Context())
		if err != nil {
			c.onError(err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(snapshot)
	})
}

func (c *MetricsClient) Shutdown(ctx context.Context) error {
	return c.provider.Shutdown(ctx)
}
