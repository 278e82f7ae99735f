// Package slogsink connects levelgate and log/slog in both directions.
//
// Sink logs through a *slog.Logger, so any policy can write to an slog
// backend. Trace maps to LevelTrace (-8), below slog.LevelDebug.
//
// Handler is an slog.Handler that delivers records into any core.Sink,
// usually a policy. This lets code written against slog go through the
// same thresholds, prefixes and counters as the rest of an application.
package slogsink
