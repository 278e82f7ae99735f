package zapsink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/levelgate/sink"
)

// Sink logs console-style calls through zap
type Sink struct {
	logger *zap.Logger
}

// Frame counts for WithCallerSkip. Add PrefixCallerSkip once per
// PrefixingLogger in the stack.
const (
	// DirectCallerSkip is for code calling the Sink methods itself
	DirectCallerSkip = 0
	// PolicyCallerSkip is for one ThresholdLogger or KeyedLogger in front
	PolicyCallerSkip = 3
	// PrefixCallerSkip is what each PrefixingLogger adds
	PrefixCallerSkip = 4
)

// own frames of the sink above zap's Check: Sink.X and log
const sinkFrames = 2

// Option configures a Sink
type Option func(*options)

type options struct {
	callerSkip int
}

// WithCallerSkip sets how many frames sit between the user's call site and
// the Sink method, so zap's caller annotation points at the user's code.
// Defaults to PolicyCallerSkip.
func WithCallerSkip(n int) Option {
	return func(o *options) {
		o.callerSkip = n
	}
}

// New creates a Sink. A nil logger discards everything.
func New(l *zap.Logger, opts ...Option) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	o := options{callerSkip: PolicyCallerSkip}
	for _, opt := range opts {
		opt(&o)
	}
	return &Sink{logger: l.WithOptions(zap.AddCallerSkip(sinkFrames + o.callerSkip))}
}

// Logger returns the wrapped zap logger
func (s *Sink) Logger() *zap.Logger {
	return s.logger
}

func (s *Sink) log(level zapcore.Level, message any, args []any) {
	// Skip rendering when zap would drop the entry anyway
	if !s.logger.Core().Enabled(level) {
		return
	}
	if ce := s.logger.Check(level, sink.Text(message, args)); ce != nil {
		ce.Write()
	}
}

func (s *Sink) Debug(message any, args ...any) {
	s.log(zapcore.DebugLevel, message, args)
}

func (s *Sink) Info(message any, args ...any) {
	s.log(zapcore.InfoLevel, message, args)
}

func (s *Sink) Warn(message any, args ...any) {
	s.log(zapcore.WarnLevel, message, args)
}

func (s *Sink) Error(message any, args ...any) {
	s.log(zapcore.ErrorLevel, message, args)
}

// Sync flushes any buffered log entries
func (s *Sink) Sync() error {
	return s.logger.Sync()
}
