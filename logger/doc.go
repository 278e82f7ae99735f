// Package logger is the public API of levelgate. It wraps any core.Sink
// in a policy that decides whether, and how, each call reaches it.
//
// Three policies are provided:
//
//   - ThresholdLogger drops calls below a mutable threshold. The threshold
//     it was built with is remembered and restored by ResetLevel.
//   - KeyedLogger resolves the level from an application-defined key, so
//     call sites name what happened ("cache-miss") and configuration
//     decides how loud it is. SetAll/ResetAll temporarily force every key
//     to one level.
//   - PrefixingLogger forwards everything with a fixed label as the first
//     argument.
//
// Every policy is itself a sink, so they stack:
//
//	s := consolesink.New(consolesink.Config{})
//	log, err := logger.NewBuilder().
//	    WithSink(s).
//	    WithLevel(logger.InfoLevel).
//	    WithPrefix("billing:").
//	    Build()
//
// A policy with no sink is silent: every call is a no-op and nothing
// returns an error. Validation errors (invalid level, unknown key, nested
// SetAll) are returned to the caller and never logged.
//
// Policies hold plain fields and do no locking. Share one across
// goroutines only if its level, mapping and sink are not changed
// concurrently with logging.
//
// The package initializes a default ThresholdLogger (InfoLevel, console
// sink on stderr). The package-level functions Info, Error, etc. delegate
// to it:
//
//	logger.Info("ready on", addr)
package logger
