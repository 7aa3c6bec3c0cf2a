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

	"github.com/soundscribe/soundscribe/logger"
)

// InitMeter initializes the OpenTelemetry meter provider.
// The returned provider should be shut down on application exit.
func InitMeter(ctx context.Context, cfg Config) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", cfg.ServiceName,
		"endpoint", cfg.Endpoint,
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the metric instruments recorded by the transcription pipeline.
type Metrics struct {
	transcriptionTotal    metric.Int64Counter
	transcriptionDuration metric.Float64Histogram
	transcriptionActive   metric.Int64UpDownCounter
	errorTotal            metric.Int64Counter
	audioBytes            metric.Int64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	transcriptionTotal, err := meter.Int64Counter("transcription.total",
		metric.WithDescription("Total number of transcription requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transcription.total counter: %w", err)
	}

	transcriptionDuration, err := meter.Float64Histogram("transcription.duration",
		metric.WithDescription("Duration of transcription requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transcription.duration histogram: %w", err)
	}

	transcriptionActive, err := meter.Int64UpDownCounter("transcription.active",
		metric.WithDescription("Number of in-flight transcription requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transcription.active gauge: %w", err)
	}

	errorTotal, err := meter.Int64Counter("transcription.errors",
		metric.WithDescription("Total transcription errors by code and provider"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transcription.errors counter: %w", err)
	}

	audioBytes, err := meter.Int64Histogram("transcription.audio_bytes",
		metric.WithDescription("Size of uploaded audio files in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transcription.audio_bytes histogram: %w", err)
	}

	return &Metrics{
		transcriptionTotal:    transcriptionTotal,
		transcriptionDuration: transcriptionDuration,
		transcriptionActive:   transcriptionActive,
		errorTotal:            errorTotal,
		audioBytes:            audioBytes,
	}, nil
}

// RecordStart increments the in-flight request count.
func (m *Metrics) RecordStart(ctx context.Context) {
	if m == nil {
		return
	}
	m.transcriptionActive.Add(ctx, 1)
}

// RecordEnd decrements in-flight requests and records the completed request.
func (m *Metrics) RecordEnd(ctx context.Context, provider, model, status string, audioBytes int64, duration time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("model", model),
		attribute.String("status", status),
	)
	m.transcriptionActive.Add(ctx, -1)
	m.transcriptionTotal.Add(ctx, 1, attrs)
	m.transcriptionDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("model", model),
	))
	if audioBytes > 0 {
		m.audioBytes.Record(ctx, audioBytes, metric.WithAttributes(
			attribute.String("provider", provider),
		))
	}
}

// RecordError records an error by code and provider.
func (m *Metrics) RecordError(ctx context.Context, code, provider string) {
	if m == nil {
		return
	}
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("code", code),
		attribute.String("provider", provider),
	))
}
