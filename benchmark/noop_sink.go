// Package benchmark compares levelgate dispatch overhead across sink
// backends. It holds benchmarks only.
package benchmark

import "github.com/philipp01105/levelgate/core"

// noopSink touches its message and drops the call
type noopSink struct{}

var _ core.TraceSink = noopSink{}

func newNoopSink() core.Sink {
	return noopSink{}
}

func (noopSink) Trace(message any, args ...any) { _ = message; _ = len(args) }
func (noopSink) Debug(message any, args ...any) { _ = message; _ = len(args) }
func (noopSink) Info(message any, args ...any)  { _ = message; _ = len(args) }
func (noopSink) Warn(message any, args ...any)  { _ = message; _ = len(args) }
func (noopSink) Error(message any, args ...any) { _ = message; _ = len(args) }
