package telemetry

import (
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const queryStartKey = "telemetry:query_start"

// DBTracingConfig controls gorm span creation
type DBTracingConfig struct {
	Enabled         bool
	DBSystem        string
	IncludeSQLVars  bool
	SlowQueryThresh time.Duration
	// TracerProvider overrides the global provider, mainly for tests
	TracerProvider trace.TracerProvider
}

// DefaultDBTracingConfig hides bind variables and flags queries over 200ms
func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{
		DBSystem:        "postgresql",
		SlowQueryThresh: 200 * time.Millisecond,
	}
}

// RegisterDBTracing installs the otelgorm plugin plus a slow query marker
// on db. It is a no-op when cfg is disabled.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBSystem)}
	if cfg.TracerProvider != nil {
		opts = append(opts, otelgorm.WithTracerProvider(cfg.TracerProvider))
	}
	if !cfg.IncludeSQLVars {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	if cfg.SlowQueryThresh > 0 {
		if err := registerSlowQueryMarker(db, cfg.SlowQueryThresh, logger); err != nil {
			return err
		}
	}

	logger.Info("Database tracing enabled",
		zap.String("db_system", cfg.DBSystem),
		zap.Duration("slow_query_threshold", cfg.SlowQueryThresh),
	)
	return nil
}

func registerSlowQueryMarker(db *gorm.DB, threshold time.Duration, logger *zap.Logger) error {
	start := func(tx *gorm.DB) {
		tx.InstanceSet(queryStartKey, time.Now())
	}
	finish := func(tx *gorm.DB) {
		v, ok := tx.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		began, ok := v.(time.Time)
		if !ok {
			return
		}
		elapsed := time.Since(began)
		if elapsed < threshold {
			return
		}
		span := trace.SpanFromContext(tx.Statement.Context)
		if span.IsRecording() {
			span.SetAttributes(
				attribute.Bool("db.slow_query", true),
				attribute.Int64("db.duration_ms", elapsed.Milliseconds()),
			)
		}
		logger.Warn("Slow query",
			zap.String("table", tx.Statement.Table),
			zap.Duration("elapsed", elapsed),
		)
	}

	cb := db.Callback()
	steps := []struct {
		name   string
		before func(string) error
		after  func(string) error
	}{
		{"create", func(n string) error { return cb.Create().Before("gorm:create").Register(n, start) },
			func(n string) error { return cb.Create().After("gorm:create").Register(n, finish) }},
		{"query", func(n string) error { return cb.Query().Before("gorm:query").Register(n, start) },
			func(n string) error { return cb.Query().After("gorm:query").Register(n, finish) }},
		{"update", func(n string) error { return cb.Update().Before("gorm:update").Register(n, start) },
			func(n string) error { return cb.Update().After("gorm:update").Register(n, finish) }},
		{"delete", func(n string) error { return cb.Delete().Before("gorm:delete").Register(n, start) },
			func(n string) error { return cb.Delete().After("gorm:delete").Register(n, finish) }},
		{"row", func(n string) error { return cb.Row().Before("gorm:row").Register(n, start) },
			func(n string) error { return cb.Row().After("gorm:row").Register(n, finish) }},
		{"raw", func(n string) error { return cb.Raw().Before("gorm:raw").Register(n, start) },
			func(n string) error { return cb.Raw().After("gorm:raw").Register(n, finish) }},
	}
	for _, s := range steps {
		if err := s.before("telemetry:slow_start_" + s.name); err != nil {
			return err
		}
		if err := s.after("telemetry:slow_finish_" + s.name); err != nil {
			return err
		}
	}
	return nil
}
