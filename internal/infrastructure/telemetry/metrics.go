package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// ErrMeterNil is returned when an instrument set is built without a meter
var ErrMeterNil = errors.New("telemetry: meter is nil")

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Enabled           bool
	CollectorEndpoint string
	ExportInterval    time.Duration
	ServiceName       string
	Insecure          bool
}

// MeterProvider owns the SDK meter provider when metrics are enabled
type MeterProvider struct {
	provider *sdkmetric.MeterProvider
	logger   *zap.Logger
	config   MetricsConfig
}

// NewMeterProvider pushes metrics over OTLP/gRPC on a fixed interval
func NewMeterProvider(ctx context.Context, cfg MetricsConfig, logger *zap.Logger) (*MeterProvider, error) {
	mp := &MeterProvider{logger: logger, config: cfg}
	if !cfg.Enabled {
		logger.Info("Metrics disabled")
		return mp, nil
	}

	interval := cfg.ExportInterval
	if interval <= 0 {
		interval = 60 * time.Second
	}

	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.CollectorEndpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create OTLP metric exporter: %w", err)
	}

	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	mp.provider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))),
	)
	otel.SetMeterProvider(mp.provider)

	logger.Info("Metrics initialized",
		zap.String("collector_endpoint", cfg.CollectorEndpoint),
		zap.Duration("export_interval", interval),
	)
	return mp, nil
}

// Shutdown flushes pending metrics
func (mp *MeterProvider) Shutdown(ctx context.Context) error {
	if mp.provider == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := mp.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown meter provider: %w", err)
	}
	mp.logger.Info("Meter provider stopped")
	return nil
}

// Meter returns a named meter, falling back to the global provider
func (mp *MeterProvider) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	if mp.provider == nil {
		return otel.GetMeterProvider().Meter(name, opts...)
	}
	return mp.provider.Meter(name, opts...)
}

// IsEnabled reports whether metrics are exported
func (mp *MeterProvider) IsEnabled() bool {
	return mp.provider != nil
}

// LedgerMetrics counts writes and times report assembly
type LedgerMetrics struct {
	writes         metric.Int64Counter
	amount         metric.Float64Histogram
	reportDuration metric.Float64Histogram
	reportErrors   metric.Int64Counter
}

// NewLedgerMetrics registers the ledger instruments on meter
func NewLedgerMetrics(meter metric.Meter) (*LedgerMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	writes, err := meter.Int64Counter("ledger_writes_total",
		metric.WithDescription("Income and spend records created, updated or deleted"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create ledger_writes_total: %w", err)
	}

	amount, err := meter.Float64Histogram("ledger_write_amount",
		metric.WithDescription("Value of created or updated records"),
		metric.WithExplicitBucketBoundaries(1, 10, 50, 100, 500, 1000, 5000, 10000, 100000),
	)
	if err != nil {
		return nil, fmt.Errorf("create ledger_write_amount: %w", err)
	}

	duration, err := meter.Float64Histogram("report_duration_seconds",
		metric.WithDescription("Time spent assembling a report"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5),
	)
	if err != nil {
		return nil, fmt.Errorf("create report_duration_seconds: %w", err)
	}

	reportErrors, err := meter.Int64Counter("report_errors_total",
		metric.WithDescription("Reports that failed because a sub-query failed"),
	)
	if err != nil {
		return nil, fmt.Errorf("create report_errors_total: %w", err)
	}

	return &LedgerMetrics{
		writes:         writes,
		amount:         amount,
		reportDuration: duration,
		reportErrors:   reportErrors,
	}, nil
}

// RecordWrite counts one write of kind ("income", "spend") with op
// ("create", "update", "delete"). Zero amounts are not sampled.
func (m *LedgerMetrics) RecordWrite(ctx context.Context, kind, op string, amount decimal.Decimal) {
	attrs := metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("op", op),
	)
	m.writes.Add(ctx, 1, attrs)
	if !amount.IsZero() {
		m.amount.Record(ctx, amount.Abs().InexactFloat64(), metric.WithAttributes(attribute.String("kind", kind)))
	}
}

// RecordReport observes one report build
func (m *LedgerMetrics) RecordReport(ctx context.Context, report string, elapsed time.Duration, err error) {
	attrs := metric.WithAttributes(
		attribute.String("report", report),
		attribute.Bool("error", err != nil),
	)
	m.reportDuration.Record(ctx, elapsed.Seconds(), attrs)
	if err != nil {
		m.reportErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("report", report)))
	}
}
