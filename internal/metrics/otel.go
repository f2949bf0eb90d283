package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultServiceName = "teaminfo"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
	writeTextfile     = prometheus.WriteToTextfile
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	TextfilePath string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics backed by a Prometheus registry and
// an optional OTLP exporter. The returned flush function must be called once
// the run is over: it writes the registry to TextfilePath (node-exporter
// textfile format) when set, then shuts the meter provider down, pushing any
// pending OTLP data.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, gatherer, err := promReaderFactory()
	if err != nil {
		return nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, err
	}

	rec := newRecorder(otelInst)
	flush := func(c context.Context) error {
		var textErr error
		if cfg.TextfilePath != "" {
			textErr = writeTextfile(cfg.TextfilePath, gatherer)
		}
		return errors.Join(textErr, provider.Shutdown(c))
	}

	return rec, flush, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, prometheus.Gatherer, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, reg, nil
}

type otelInstruments struct {
	ctx               context.Context
	meter             metric.Meter
	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram
	permitWaitMs      metric.Float64Histogram
	batchRuns         metric.Int64Counter
	teamsProcessed    metric.Int64Counter
	batchLatencyMs    metric.Float64Histogram
	outputBytes       metric.Int64Counter
	outputWriteErrors metric.Int64Counter
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(defaultServiceName)
	ctx := context.Background()

	providerAttempts, err := meter.Int64Counter("provider_attempts_total")
	if err != nil {
		return nil, err
	}
	providerErrors, err := meter.Int64Counter("provider_errors_total")
	if err != nil {
		return nil, err
	}
	providerLatency, err := meter.Float64Histogram("provider_duration_ms")
	if err != nil {
		return nil, err
	}
	permitWait, err := meter.Float64Histogram("rate_limit_wait_ms")
	if err != nil {
		return nil, err
	}
	batchRuns, err := meter.Int64Counter("batch_runs_total")
	if err != nil {
		return nil, err
	}
	teamsProcessed, err := meter.Int64Counter("batch_teams_total")
	if err != nil {
		return nil, err
	}
	batchLatency, err := meter.Float64Histogram("batch_duration_ms")
	if err != nil {
		return nil, err
	}
	outputBytes, err := meter.Int64Counter("output_bytes_total")
	if err != nil {
		return nil, err
	}
	outputWriteErrors, err := meter.Int64Counter("output_write_errors_total")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:               ctx,
		meter:             meter,
		providerAttempts:  providerAttempts,
		providerErrors:    providerErrors,
		providerLatencyMs: providerLatency,
		permitWaitMs:      permitWait,
		batchRuns:         batchRuns,
		teamsProcessed:    teamsProcessed,
		batchLatencyMs:    batchLatency,
		outputBytes:       outputBytes,
		outputWriteErrors: outputWriteErrors,
	}, nil
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.recordCounter(o.providerAttempts, 1, attrs...)
	o.recordHistogram(o.providerLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.providerErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordPermitWait(provider string, wait time.Duration) {
	if o == nil {
		return
	}
	o.recordHistogram(o.permitWaitMs, float64(wait.Milliseconds()), attribute.String(AttrProvider, provider))
}

func (o *otelInstruments) recordBatch(requested, succeeded, failed int, duration time.Duration) {
	if o == nil {
		return
	}
	_ = requested
	o.recordCounter(o.batchRuns, 1)
	o.recordCounter(o.teamsProcessed, int64(succeeded), attribute.String(AttrOutcome, outcomeSuccess))
	o.recordCounter(o.teamsProcessed, int64(failed), attribute.String(AttrOutcome, outcomeFailure))
	o.recordHistogram(o.batchLatencyMs, float64(duration.Milliseconds()))
}

func (o *otelInstruments) recordOutputWrite(bytes int, err error) {
	if o == nil {
		return
	}
	if err != nil {
		o.recordCounter(o.outputWriteErrors, 1)
		return
	}
	o.recordCounter(o.outputBytes, int64(bytes))
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
