/*
Package config builds levelgate loggers from YAML configuration.

A minimal file:

	level: info
	prefix: "api:"
	sink: zap
	mapping:
	  cache-miss: debug
	  evict: warn

Load or Parse read the file, NewSink creates the configured backend and
NewThresholdLogger wires both into a ThresholdLogger. Keyed loggers take
their per-key overrides from the mapping section through NewKeyedLogger.

For fx applications, FXModule provides core.Sink and *logger.ThresholdLogger
from a Config in the container and flushes the sink on shutdown:

	app := fx.New(
		fx.Supply(cfg),
		config.FXModule,
	)
*/
package config
