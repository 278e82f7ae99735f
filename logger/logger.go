package logger

import (
	"fmt"
	"strings"

	"github.com/philipp01105/levelgate/core"
)

// Interface is the leveled API shared by every policy in this package.
// Policies satisfy core.Sink and core.TraceSink themselves, so one policy
// can be the sink of another.
type Interface interface {
	core.Sink
	core.TraceSink

	// Log dispatches at an explicit level
	Log(level Level, message any, args ...any)

	// SetSink replaces the underlying sink; nil detaches it
	SetSink(s core.Sink)
	// Sink returns the current sink, or nil
	Sink() core.Sink

	// Snapshot returns a structured description of the policy
	Snapshot() Snapshot
}

var (
	_ Interface = (*ThresholdLogger)(nil)
	_ Interface = (*KeyedLogger[string])(nil)
	_ Interface = (*PrefixingLogger)(nil)
)

// describe renders the String form shared by all policies.
func describe(typ string, hasSink bool, details ...string) string {
	var b strings.Builder
	b.WriteString(typ)
	b.WriteByte('(')
	if hasSink {
		b.WriteString("sink=attached")
	} else {
		b.WriteString("sink=none")
	}
	for _, d := range details {
		b.WriteString(", ")
		b.WriteString(d)
	}
	b.WriteByte(')')
	return b.String()
}

func levelDetail(l Level) string {
	return fmt.Sprintf("level=%s", l)
}
