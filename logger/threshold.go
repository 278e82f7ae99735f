package logger

import (
	"github.com/philipp01105/levelgate/core"
)

// ThresholdLogger forwards calls whose level is at or above its current
// threshold and drops the rest.
//
// A ThresholdLogger is not safe for concurrent mutation; callers that change
// the level or sink from several goroutines must synchronize.
type ThresholdLogger struct {
	sink     core.Sink
	level    Level
	original Level
	// prefix, when set, wraps every attached sink in a PrefixingLogger
	prefix string
}

// NewThresholdLogger creates a ThresholdLogger. The level is validated
// before anything else; an invalid level returns an *InvalidSeverityError
// and no logger. sink may be nil.
func NewThresholdLogger(sink core.Sink, level Level) (*ThresholdLogger, error) {
	if err := core.AssertValid(level); err != nil {
		return nil, err
	}
	return &ThresholdLogger{
		sink:     core.Attachable(sink),
		level:    level,
		original: level,
	}, nil
}

// SetLevel changes the threshold and returns it. An invalid level leaves
// the threshold unchanged.
func (l *ThresholdLogger) SetLevel(level Level) (Level, error) {
	if err := core.AssertValid(level); err != nil {
		return l.level, err
	}
	l.level = level
	return l.level, nil
}

// ResetLevel restores the threshold the logger was constructed with.
func (l *ThresholdLogger) ResetLevel() Level {
	l.level = l.original
	return l.level
}

// Level returns the current threshold
func (l *ThresholdLogger) Level() Level {
	return l.level
}

// Enabled reports whether a call at level would be forwarded
func (l *ThresholdLogger) Enabled(level Level) bool {
	return l.level <= level
}

// SetSink replaces the sink. nil, or a typed nil such as
// (*consolesink.Sink)(nil), detaches it.
//
// A logger built with a prefix wraps s in a PrefixingLogger, so the prefix
// survives sink changes.
func (l *ThresholdLogger) SetSink(s core.Sink) {
	s = core.Attachable(s)
	if s != nil && l.prefix != "" {
		s = NewPrefixingLogger(l.prefix, s)
	}
	l.sink = s
}

// Prefix returns the prefix set by Builder.WithPrefix, or ""
func (l *ThresholdLogger) Prefix() string {
	return l.prefix
}

// Sink returns the current sink, including the PrefixingLogger added for a
// prefix
func (l *ThresholdLogger) Sink() core.Sink {
	return l.sink
}

func (l *ThresholdLogger) handleLogCall(level Level, message any, args []any) {
	// Level check first, no work for dropped calls
	if !l.Enabled(level) {
		return
	}
	core.Forward(l.sink, level, message, args)
}

// Log logs a message at the specified level
func (l *ThresholdLogger) Log(level Level, message any, args ...any) {
	l.handleLogCall(level, message, args)
}

// Trace logs a trace message
func (l *ThresholdLogger) Trace(message any, args ...any) {
	l.handleLogCall(TraceLevel, message, args)
}

// Debug logs a debug message
func (l *ThresholdLogger) Debug(message any, args ...any) {
	l.handleLogCall(DebugLevel, message, args)
}

// Info logs an info message
func (l *ThresholdLogger) Info(message any, args ...any) {
	l.handleLogCall(InfoLevel, message, args)
}

// Warn logs a warning message
func (l *ThresholdLogger) Warn(message any, args ...any) {
	l.handleLogCall(WarnLevel, message, args)
}

// Error logs an error message
func (l *ThresholdLogger) Error(message any, args ...any) {
	l.handleLogCall(ErrorLevel, message, args)
}

// Snapshot returns a structured description of the logger
func (l *ThresholdLogger) Snapshot() Snapshot {
	return Snapshot{
		Type:    ThresholdType,
		HasSink: l.sink != nil,
		Level:   l.level.String(),
		Prefix:  l.prefix,
	}
}

func (l *ThresholdLogger) String() string {
	return describe(ThresholdType, l.sink != nil, levelDetail(l.level))
}
