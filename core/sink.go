package core

// Sink is the underlying logger a policy dispatches to. It matches the
// shape of console-like loggers: a message followed by any number of
// supplementary arguments.
//
//go:generate mockgen -source=sink.go -destination=mock_sink.go -package=core
type Sink interface {
	Debug(message any, args ...any)
	Info(message any, args ...any)
	Warn(message any, args ...any)
	Error(message any, args ...any)
}

// TraceSink is an optional interface that sinks can implement to receive
// trace calls. Trace calls to a sink without it are dropped.
type TraceSink interface {
	Trace(message any, args ...any)
}
