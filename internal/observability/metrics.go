package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// MetricsConfig holds configuration for the metrics provider.
type MetricsConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	OTLPEndpoint   string // Empty string disables OTLP export
}

// MetricsProvider wraps the OpenTelemetry meter provider with shutdown capabilities.
type MetricsProvider struct {
	provider *sdkmetric.MeterProvider
}

// InitMetrics initializes the OpenTelemetry meter provider.
// Returns a MetricsProvider that must be shut down on application exit.
func InitMetrics(ctx context.Context, cfg MetricsConfig) (*MetricsProvider, error) {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironment(cfg.Environment),
	)

	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}

	if cfg.OTLPEndpoint != "" {
		exporter, err := otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(cfg.OTLPEndpoint),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("create OTLP metric exporter: %w", err)
		}
		opts = append(opts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)))
	}

	provider := sdkmetric.NewMeterProvider(opts...)
	otel.SetMeterProvider(provider)

	return &MetricsProvider{provider: provider}, nil
}

// Shutdown flushes any remaining metrics and shuts down the provider.
func (mp *MetricsProvider) Shutdown(ctx context.Context) error {
	if mp.provider == nil {
		return nil
	}
	return mp.provider.Shutdown(ctx)
}

// Meter returns a meter for the given instrumentation name.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Instrument names.
const (
	MetricConversions    = "civiltime.conversions"
	MetricLocaleFallback = "civiltime.locale.fallbacks"
	MetricClockFailures  = "civiltime.clock.failures"
)

// ClockMetrics counts conversions, locale fallbacks and failed clock reads.
// A nil *ClockMetrics is valid and records nothing.
type ClockMetrics struct {
	conversions   metric.Int64Counter
	fallbacks     metric.Int64Counter
	clockFailures metric.Int64Counter
}

// NewClockMetrics registers the counters on m.
func NewClockMetrics(m metric.Meter) (*ClockMetrics, error) {
	conversions, err := m.Int64Counter(MetricConversions,
		metric.WithDescription("Epoch readings converted to civil time"),
		metric.WithUnit("{conversion}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s counter: %w", MetricConversions, err)
	}

	fallbacks, err := m.Int64Counter(MetricLocaleFallback,
		metric.WithDescription("Locale lookups that fell back to the default locale"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s counter: %w", MetricLocaleFallback, err)
	}

	clockFailures, err := m.Int64Counter(MetricClockFailures,
		metric.WithDescription("Clock reads rejected as before the epoch"),
		metric.WithUnit("{read}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s counter: %w", MetricClockFailures, err)
	}

	return &ClockMetrics{
		conversions:   conversions,
		fallbacks:     fallbacks,
		clockFailures: clockFailures,
	}, nil
}

// RecordConversion counts one conversion in locale. fallback marks that
// the default locale was substituted.
func (m *ClockMetrics) RecordConversion(ctx context.Context, locale string, fallback bool) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("locale", locale))
	m.conversions.Add(ctx, 1, attrs)
	if fallback {
		m.fallbacks.Add(ctx, 1)
	}
}

// RecordClockFailure counts one rejected clock read.
func (m *ClockMetrics) RecordClockFailure(ctx context.Context) {
	if m == nil {
		return
	}
	m.clockFailures.Add(ctx, 1)
}
