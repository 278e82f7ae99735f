package multisink

import (
	"github.com/philipp01105/levelgate/core"
)

// MultiSink sends calls to multiple sinks
type MultiSink struct {
	sinks []core.Sink
}

var _ core.TraceSink = (*MultiSink)(nil)

// New creates a new multi-sink. Nil children, typed nils included, are skipped.
func New(sinks ...core.Sink) *MultiSink {
	m := &MultiSink{sinks: make([]core.Sink, 0, len(sinks))}
	for _, s := range sinks {
		if !core.IsNil(s) {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Len returns the number of children
func (m *MultiSink) Len() int {
	return len(m.sinks)
}

func (m *MultiSink) forward(level core.Level, message any, args []any) {
	for _, s := range m.sinks {
		core.Forward(s, level, message, args)
	}
}

func (m *MultiSink) Trace(message any, args ...any) {
	m.forward(core.TraceLevel, message, args)
}

func (m *MultiSink) Debug(message any, args ...any) {
	m.forward(core.DebugLevel, message, args)
}

func (m *MultiSink) Info(message any, args ...any) {
	m.forward(core.InfoLevel, message, args)
}

func (m *MultiSink) Warn(message any, args ...any) {
	m.forward(core.WarnLevel, message, args)
}

func (m *MultiSink) Error(message any, args ...any) {
	m.forward(core.ErrorLevel, message, args)
}

// Sync flushes every child that supports it and returns the last error.
func (m *MultiSink) Sync() error {
	var lastErr error
	for _, s := range m.sinks {
		if syncer, ok := s.(interface{ Sync() error }); ok {
			if err := syncer.Sync(); err != nil {
				lastErr = err
			}
		}
	}
	return lastErr
}
