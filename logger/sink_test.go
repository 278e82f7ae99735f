package logger

import (
	"github.com/philipp01105/levelgate/core"
)

// call is one invocation recorded by recordingSink
type call struct {
	level Level
	args  []any
}

// recordingSink records every call with its exact argument list
type recordingSink struct {
	calls []call
}

func (r *recordingSink) record(level Level, message any, args []any) {
	all := append([]any{message}, args...)
	r.calls = append(r.calls, call{level: level, args: all})
}

func (r *recordingSink) Trace(message any, args ...any) { r.record(TraceLevel, message, args) }
func (r *recordingSink) Debug(message any, args ...any) { r.record(DebugLevel, message, args) }
func (r *recordingSink) Info(message any, args ...any)  { r.record(InfoLevel, message, args) }
func (r *recordingSink) Warn(message any, args ...any)  { r.record(WarnLevel, message, args) }
func (r *recordingSink) Error(message any, args ...any) { r.record(ErrorLevel, message, args) }

func (r *recordingSink) levels() []Level {
	out := make([]Level, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.level
	}
	return out
}

func (r *recordingSink) reset() {
	r.calls = nil
}

// consoleOnly is a sink without Trace, like a minimal console object
type consoleOnly struct {
	r *recordingSink
}

func (c consoleOnly) Debug(message any, args ...any) { c.r.Debug(message, args...) }
func (c consoleOnly) Info(message any, args ...any)  { c.r.Info(message, args...) }
func (c consoleOnly) Warn(message any, args ...any)  { c.r.Warn(message, args...) }
func (c consoleOnly) Error(message any, args ...any) { c.r.Error(message, args...) }

var (
	_ core.TraceSink = (*recordingSink)(nil)
	_ core.Sink      = consoleOnly{}
)

// logAll calls every leveled method of l once with message
func logAll(l Interface, message string) {
	l.Trace(message)
	l.Debug(message)
	l.Info(message)
	l.Warn(message)
	l.Error(message)
}

func levelsAtOrAbove(min Level) []Level {
	var out []Level
	for _, l := range []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel} {
		if min <= l {
			out = append(out, l)
		}
	}
	return out
}
