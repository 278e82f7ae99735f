package config

import (
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/philipp01105/levelgate/core"
	"github.com/philipp01105/levelgate/sink"
)

// FXModule defines the Fx module for levelgate.
// This module integrates a configured sink and ThresholdLogger into an
// Fx-based application.
//
// The module:
//  1. Provides core.Sink built by NewSink from the Config in the container
//  2. Provides *logger.ThresholdLogger built by NewThresholdLogger
//  3. Invokes RegisterLifecycle to flush the sink during shutdown
//  4. Invokes RegisterMetrics to expose call counters when configured
//
// Usage:
//
//	app := fx.New(
//	    fx.Supply(cfg),
//	    config.FXModule,
//	    // other modules...
//	)
//
// Dependencies required by this module:
//   - A config.Config instance must be available in the container
//   - An io.Writer is optional (default: os.Stderr)
//   - A prometheus.Registerer is optional; without one no metrics are registered
var FXModule = fx.Module("levelgate",
	fx.Provide(
		ProvideSink,
		NewThresholdLogger,
	),
	fx.Invoke(RegisterLifecycle, RegisterMetrics),
)

// SinkParams groups the dependencies of ProvideSink
type SinkParams struct {
	fx.In

	Config Config
	Writer io.Writer `optional:"true"`
}

// ProvideSink adapts NewSink to the Fx container
func ProvideSink(p SinkParams) (core.Sink, error) {
	return NewSink(p.Config, p.Writer)
}

// RegisterLifecycle flushes buffered sinks when the application stops.
//
// The lifecycle hook:
//   - OnStop: calls sink.Sync, which flushes sinks with a Sync method
//     (zap) and does nothing for the others
func RegisterLifecycle(lc fx.Lifecycle, s core.Sink) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return sink.Sync(s)
		},
	})
}

// MetricsParams groups the dependencies of RegisterMetrics
type MetricsParams struct {
	fx.In

	Config     Config
	Sink       core.Sink
	Registerer prometheus.Registerer `optional:"true"`
}

// RegisterMetrics registers a sink.Collector for the counting sink built by
// NewSink. It does nothing without a Registerer or a MetricsNamespace.
func RegisterMetrics(p MetricsParams) error {
	if p.Registerer == nil || p.Config.MetricsNamespace == "" {
		return nil
	}
	counting, ok := p.Sink.(*sink.CountingSink)
	if !ok {
		return nil
	}
	return p.Registerer.Register(sink.NewCollector(counting.Stats(), p.Config.MetricsNamespace))
}
