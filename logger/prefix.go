package logger

import (
	"strconv"

	"github.com/philipp01105/levelgate/core"
)

// PrefixingLogger forwards every call with a fixed label as the first
// argument. It never filters.
type PrefixingLogger struct {
	prefix string
	sink   core.Sink
}

// NewPrefixingLogger creates a PrefixingLogger. sink may be nil.
func NewPrefixingLogger(prefix string, sink core.Sink) *PrefixingLogger {
	return &PrefixingLogger{prefix: prefix, sink: core.Attachable(sink)}
}

// Prefix returns the label
func (l *PrefixingLogger) Prefix() string {
	return l.prefix
}

// SetSink replaces the sink. nil, or a typed nil such as
// (*consolesink.Sink)(nil), detaches it.
func (l *PrefixingLogger) SetSink(s core.Sink) {
	l.sink = core.Attachable(s)
}

// Sink returns the current sink
func (l *PrefixingLogger) Sink() core.Sink {
	return l.sink
}

func (l *PrefixingLogger) handleLogCall(level Level, message any, args []any) {
	core.ForwardPrefixed(l.sink, level, l.prefix, message, args)
}

// Log logs a message at the specified level
func (l *PrefixingLogger) Log(level Level, message any, args ...any) {
	l.handleLogCall(level, message, args)
}

// Trace logs a trace message
func (l *PrefixingLogger) Trace(message any, args ...any) {
	l.handleLogCall(TraceLevel, message, args)
}

// Debug logs a debug message
func (l *PrefixingLogger) Debug(message any, args ...any) {
	l.handleLogCall(DebugLevel, message, args)
}

// Info logs an info message
func (l *PrefixingLogger) Info(message any, args ...any) {
	l.handleLogCall(InfoLevel, message, args)
}

// Warn logs a warning message
func (l *PrefixingLogger) Warn(message any, args ...any) {
	l.handleLogCall(WarnLevel, message, args)
}

// Error logs an error message
func (l *PrefixingLogger) Error(message any, args ...any) {
	l.handleLogCall(ErrorLevel, message, args)
}

// Snapshot returns a structured description of the logger
func (l *PrefixingLogger) Snapshot() Snapshot {
	return Snapshot{
		Type:    PrefixingType,
		HasSink: l.sink != nil,
		Prefix:  l.prefix,
	}
}

func (l *PrefixingLogger) String() string {
	return describe(PrefixingType, l.sink != nil, "prefix="+strconv.Quote(l.prefix))
}
