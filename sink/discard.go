package sink

import "github.com/philipp01105/levelgate/core"

// Discard accepts every call, Trace included, and does nothing with it.
var Discard core.TraceSink = discard{}

type discard struct{}

func (discard) Trace(any, ...any) {}
func (discard) Debug(any, ...any) {}
func (discard) Info(any, ...any)  {}
func (discard) Warn(any, ...any)  {}
func (discard) Error(any, ...any) {}

// Syncer is implemented by sinks that buffer output, such as the zap sink.
type Syncer interface {
	Sync() error
}

// Sync flushes s. Wrapping sinks that expose Unwrap are followed until a
// Syncer is found; a sink without one is left alone.
func Sync(s core.Sink) error {
	for s != nil {
		if syncer, ok := s.(Syncer); ok {
			return syncer.Sync()
		}
		u, ok := s.(interface{ Unwrap() core.Sink })
		if !ok {
			return nil
		}
		s = u.Unwrap()
	}
	return nil
}
