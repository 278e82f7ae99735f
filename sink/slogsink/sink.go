package slogsink

import (
	"context"
	"log/slog"

	"github.com/philipp01105/levelgate/core"
	"github.com/philipp01105/levelgate/sink"
)

// LevelTrace is the slog level used for trace calls
const LevelTrace = slog.Level(-8)

// Sink logs console-style calls through a *slog.Logger
type Sink struct {
	logger *slog.Logger
}

var _ core.TraceSink = (*Sink)(nil)

// New creates a Sink. A nil logger uses slog.Default().
func New(l *slog.Logger) *Sink {
	if l == nil {
		l = slog.Default()
	}
	return &Sink{logger: l}
}

func (s *Sink) log(level slog.Level, message any, args []any) {
	ctx := context.Background()
	if !s.logger.Enabled(ctx, level) {
		return
	}
	s.logger.Log(ctx, level, sink.Text(message, args))
}

func (s *Sink) Trace(message any, args ...any) {
	s.log(LevelTrace, message, args)
}

func (s *Sink) Debug(message any, args ...any) {
	s.log(slog.LevelDebug, message, args)
}

func (s *Sink) Info(message any, args ...any) {
	s.log(slog.LevelInfo, message, args)
}

func (s *Sink) Warn(message any, args ...any) {
	s.log(slog.LevelWarn, message, args)
}

func (s *Sink) Error(message any, args ...any) {
	s.log(slog.LevelError, message, args)
}

// ToSlog converts a core.Level to a slog.Level. NoneLevel and invalid
// levels map above slog.LevelError.
func ToSlog(level core.Level) slog.Level {
	switch level {
	case core.TraceLevel:
		return LevelTrace
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelError + 4
	}
}

// FromSlog converts a slog.Level to the closest core.Level at or below it.
func FromSlog(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
