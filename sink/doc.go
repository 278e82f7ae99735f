// Package sink holds what sink implementations share: console-style text
// rendering, per-level call counters and their Prometheus collector.
//
// The implementations themselves live in subpackages, one per backend:
//
//   - consolesink writes text lines to any io.Writer (default: stderr).
//   - multisink fans a call out to several sinks.
//   - slogsink logs through a *slog.Logger, and adapts any core.Sink to
//     slog.Handler for the other direction.
//   - zapsink logs through a *zap.Logger. zap has no trace level, so the
//     zap sink does not implement core.TraceSink.
//   - logrussink and zerologsink log through logrus and zerolog.
//
// Every backend receives console-style calls: a message followed by
// arbitrary arguments. Backends that want one message string get it from
// Text, which joins everything with single spaces.
package sink
