// Package core defines the shared types used across levelgate.
//
// It provides the Level type, the fixed ordered severity scale
// (None < Trace < Debug < Info < Warn < Error), the Sink interface that
// every underlying logger must satisfy, and Forward, the single rule all
// policies use to hand a call to a sink.
//
// Sinks are console-shaped: each method takes a message followed by any
// number of supplementary arguments. Trace is optional; a sink opts in by
// also implementing TraceSink, and Forward checks for it before calling.
//
// Forward never adds arguments of its own. A call with no supplementary
// arguments reaches the sink with exactly one argument, so sinks and mocks
// that assert on arity see what the caller wrote.
//
// Validation failures are reported with typed errors that match the
// sentinels ErrInvalidSeverity and ErrUnknownLogKey through errors.Is.
package core
