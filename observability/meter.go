package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/skillsenselab/speakerkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry metric instruments for the analysis engine.
type Metrics struct {
	analysisTotal    metric.Int64Counter
	analysisDuration metric.Float64Histogram
	analysisActive   metric.Int64UpDownCounter
	segmentsTotal    metric.Int64Counter
	speakersDetected metric.Int64Histogram
	degradedTotal    metric.Int64Counter
	errorTotal       metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	analysisTotal, err := meter.Int64Counter("analysis.total",
		metric.WithDescription("Total number of analysis runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating analysis.total counter: %w", err)
	}

	analysisDuration, err := meter.Float64Histogram("analysis.duration",
		metric.WithDescription("Wall-clock duration of analysis runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating analysis.duration histogram: %w", err)
	}

	analysisActive, err := meter.Int64UpDownCounter("analysis.active",
		metric.WithDescription("Number of currently running analyses"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating analysis.active gauge: %w", err)
	}

	segmentsTotal, err := meter.Int64Counter("analysis.segments.total",
		metric.WithDescription("Total transcript segments processed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating analysis.segments.total counter: %w", err)
	}

	speakersDetected, err := meter.Int64Histogram("analysis.speakers",
		metric.WithDescription("Speakers detected per analysis run"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating analysis.speakers histogram: %w", err)
	}

	degradedTotal, err := meter.Int64Counter("analysis.degraded.total",
		metric.WithDescription("Speakers whose characteristics fell back to placeholder values"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating analysis.degraded.total counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("error.total",
		metric.WithDescription("Total errors by type and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating error.total counter: %w", err)
	}

	return &Metrics{
		analysisTotal:    analysisTotal,
		analysisDuration: analysisDuration,
		analysisActive:   analysisActive,
		segmentsTotal:    segmentsTotal,
		speakersDetected: speakersDetected,
		degradedTotal:    degradedTotal,
		errorTotal:       errorTotal,
	}, nil
}

// RecordAnalysisStart increments the active analysis count.
func (m *Metrics) RecordAnalysisStart(ctx context.Context) {
	m.analysisActive.Add(ctx, 1)
}

// RecordAnalysisEnd decrements active analyses and records the completed run.
func (m *Metrics) RecordAnalysisEnd(ctx context.Context, status string, segments, speakers int, duration time.Duration) {
	m.analysisActive.Add(ctx, -1)
	m.analysisTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", status),
	))
	m.analysisDuration.Record(ctx, duration.Seconds())
	m.segmentsTotal.Add(ctx, int64(segments))
	m.speakersDetected.Record(ctx, int64(speakers))
}

// RecordDegraded records a speaker whose acoustic measurement failed and
// fell back to placeholder characteristics.
func (m *Metrics) RecordDegraded(ctx context.Context, speakerID string) {
	m.degradedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("speaker", speakerID),
	))
}

// RecordError records an error by type and component.
func (m *Metrics) RecordError(ctx context.Context, errType, component string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", errType),
		attribute.String("component", component),
	))
}
