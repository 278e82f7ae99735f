package zerologsink

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/levelgate/core"
	"github.com/philipp01105/levelgate/sink"
)

// Sink logs console-style calls through zerolog
type Sink struct {
	logger zerolog.Logger
}

var _ core.TraceSink = (*Sink)(nil)

// New creates a Sink
func New(l zerolog.Logger) *Sink {
	return &Sink{logger: l}
}

func (s *Sink) log(e *zerolog.Event, message any, args []any) {
	// nil event: level disabled
	if e == nil {
		return
	}
	e.Msg(sink.Text(message, args))
}

func (s *Sink) Trace(message any, args ...any) {
	s.log(s.logger.Trace(), message, args)
}

func (s *Sink) Debug(message any, args ...any) {
	s.log(s.logger.Debug(), message, args)
}

func (s *Sink) Info(message any, args ...any) {
	s.log(s.logger.Info(), message, args)
}

func (s *Sink) Warn(message any, args ...any) {
	s.log(s.logger.Warn(), message, args)
}

func (s *Sink) Error(message any, args ...any) {
	s.log(s.logger.Error(), message, args)
}
