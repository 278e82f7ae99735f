package logrussink

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/levelgate/core"
	"github.com/philipp01105/levelgate/sink"
)

// Sink logs console-style calls through logrus
type Sink struct {
	logger *logrus.Entry
}

var _ core.TraceSink = (*Sink)(nil)

// New creates a Sink over a logger. A nil logger uses logrus.StandardLogger().
func New(l *logrus.Logger) *Sink {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Sink{logger: logrus.NewEntry(l)}
}

// NewWithEntry creates a Sink that keeps the fields bound to entry.
func NewWithEntry(entry *logrus.Entry) *Sink {
	return &Sink{logger: entry}
}

func (s *Sink) log(level logrus.Level, message any, args []any) {
	if !s.logger.Logger.IsLevelEnabled(level) {
		return
	}
	s.logger.Log(level, sink.Text(message, args))
}

func (s *Sink) Trace(message any, args ...any) {
	s.log(logrus.TraceLevel, message, args)
}

func (s *Sink) Debug(message any, args ...any) {
	s.log(logrus.DebugLevel, message, args)
}

func (s *Sink) Info(message any, args ...any) {
	s.log(logrus.InfoLevel, message, args)
}

func (s *Sink) Warn(message any, args ...any) {
	s.log(logrus.WarnLevel, message, args)
}

func (s *Sink) Error(message any, args ...any) {
	s.log(logrus.ErrorLevel, message, args)
}
