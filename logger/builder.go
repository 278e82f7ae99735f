package logger

import (
	"github.com/philipp01105/levelgate/core"
)

// Builder provides a fluent API for building ThresholdLogger instances
type Builder struct {
	sink   core.Sink
	level  Level
	prefix string
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: DebugLevel, // Default threshold
	}
}

// WithSink sets the sink
func (b *Builder) WithSink(s core.Sink) *Builder {
	b.sink = s
	return b
}

// WithLevel sets the threshold
func (b *Builder) WithLevel(level Level) *Builder {
	b.level = level
	return b
}

// WithPrefix labels every forwarded call. The prefix is applied after the
// threshold, so dropped calls never reach the PrefixingLogger. It is kept on
// the built logger and applied to sinks attached later with SetSink.
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.prefix = prefix
	return b
}

// Build creates the ThresholdLogger. It fails when the level is invalid.
func (b *Builder) Build() (*ThresholdLogger, error) {
	l, err := NewThresholdLogger(nil, b.level)
	if err != nil {
		return nil, err
	}
	l.prefix = b.prefix
	l.SetSink(b.sink)
	return l, nil
}
