package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultServiceName = "nhl-gamebot"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
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

// otelInstruments mirrors the Recorder's counters onto an OpenTelemetry meter.
// Durations are exported in milliseconds.
type otelInstruments struct {
	ctx context.Context

	requests          metric.Int64Counter
	requestLatencyMs  metric.Float64Histogram
	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram
	rateLimitHits     metric.Int64Counter
	retryAfterMs      metric.Float64Histogram
	cycles            metric.Int64Counter
	cycleErrors       metric.Int64Counter
	cycleLatencyMs    metric.Float64Histogram
	transitions       metric.Int64Counter
	notifications     metric.Int64Counter
	deliveryLatencyMs metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

// instrumentBuilder collects creation errors so construction reads as a list.
type instrumentBuilder struct {
	meter metric.Meter
	errs  []error
}

func (b *instrumentBuilder) counter(name, desc string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc))
	b.errs = append(b.errs, err)
	return c
}

func (b *instrumentBuilder) histogram(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc))
	b.errs = append(b.errs, err)
	return h
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	b := &instrumentBuilder{meter: provider.Meter(defaultServiceName)}
	inst := &otelInstruments{
		ctx: context.Background(),

		requests:         b.counter("http_requests_total", "Status API requests."),
		requestLatencyMs: b.histogram("http_request_duration_ms", "Status API latency in milliseconds."),

		providerAttempts:  b.counter("provider_attempts_total", "Upstream fetch attempts, retries included."),
		providerErrors:    b.counter("provider_errors_total", "Failed upstream fetch attempts."),
		providerLatencyMs: b.histogram("provider_duration_ms", "Upstream fetch latency in milliseconds."),
		rateLimitHits:     b.counter("provider_rate_limit_hits_total", "Upstream 429 responses."),
		retryAfterMs:      b.histogram("provider_retry_after_ms", "Retry-After hints in milliseconds."),

		cycles:         b.counter("lifecycle_cycles_total", "Lifecycle steps by phase."),
		cycleErrors:    b.counter("lifecycle_cycle_errors_total", "Lifecycle steps that returned an error."),
		cycleLatencyMs: b.histogram("lifecycle_cycle_duration_ms", "Lifecycle step duration in milliseconds."),
		transitions:    b.counter("lifecycle_phase_transitions_total", "Phase changes by source and target."),

		notifications:     b.counter("notifications_total", "Notification attempts by channel and outcome."),
		deliveryLatencyMs: b.histogram("notification_delivery_duration_ms", "Channel send latency in milliseconds."),
	}
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	return inst, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.recordCounter(o.requests, 1, attrs...)
	o.recordHistogram(o.requestLatencyMs, duration, attrs...)
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.recordCounter(o.providerAttempts, 1, attrs...)
	o.recordHistogram(o.providerLatencyMs, duration, attrs...)
	if err != nil {
		o.recordCounter(o.providerErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordRateLimit(provider string, retryAfter time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.recordCounter(o.rateLimitHits, 1, attrs...)
	if retryAfter > 0 {
		o.recordHistogram(o.retryAfterMs, retryAfter, attrs...)
	}
}

func (o *otelInstruments) recordCycle(phase string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrPhase, phase)}
	o.recordCounter(o.cycles, 1, attrs...)
	o.recordHistogram(o.cycleLatencyMs, duration, attrs...)
	if err != nil {
		o.recordCounter(o.cycleErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordTransition(from, to string) {
	if o == nil {
		return
	}
	o.recordCounter(o.transitions, 1, attribute.String(AttrFrom, from), attribute.String(AttrTo, to))
}

func (o *otelInstruments) recordDelivery(channel string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	outcome := outcomeDelivered
	if err != nil {
		outcome = outcomeFailed
	}
	o.recordCounter(o.notifications, 1, attribute.String(AttrChannel, channel), attribute.String(AttrOutcome, outcome))
	o.recordHistogram(o.deliveryLatencyMs, duration, attribute.String(AttrChannel, channel))
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, d time.Duration, attrs ...attribute.KeyValue) {
	hist.Record(o.ctx, float64(d)/float64(time.Millisecond), metric.WithAttributes(attrs...))
}
