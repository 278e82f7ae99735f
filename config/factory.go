package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/levelgate/core"
	"github.com/philipp01105/levelgate/logger"
	"github.com/philipp01105/levelgate/sink"
	"github.com/philipp01105/levelgate/sink/consolesink"
	"github.com/philipp01105/levelgate/sink/logrussink"
	"github.com/philipp01105/levelgate/sink/slogsink"
	"github.com/philipp01105/levelgate/sink/zapsink"
	"github.com/philipp01105/levelgate/sink/zerologsink"
)

// NewSink creates the backend selected by cfg.Sink writing to w (default:
// os.Stderr). Backends are opened at their most verbose level; filtering is
// left to the policies in front of them.
//
// With a MetricsNamespace the sink is wrapped in a sink.CountingSink.
func NewSink(cfg Config, w io.Writer) (core.Sink, error) {
	if w == nil {
		w = os.Stderr
	}

	var s core.Sink
	switch cfg.Sink {
	case SinkConsole, "":
		s = consolesink.New(consolesink.Config{
			Writer:  w,
			NoColor: cfg.NoColor,
		})
	case SinkSlog:
		s = slogsink.New(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slogsink.LevelTrace,
		})))
	case SinkZap:
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "timestamp"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		zc := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(w), zapcore.DebugLevel)
		skip := zapsink.PolicyCallerSkip
		if cfg.Prefix != "" {
			skip += zapsink.PrefixCallerSkip
		}
		s = zapsink.New(zap.New(zc, zap.AddCaller()), zapsink.WithCallerSkip(skip))
	case SinkLogrus:
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(logrus.TraceLevel)
		l.SetFormatter(&logrus.TextFormatter{DisableColors: cfg.NoColor})
		s = logrussink.New(l)
	case SinkZerolog:
		s = zerologsink.New(zerolog.New(w).Level(zerolog.TraceLevel).With().Timestamp().Logger())
	case SinkDiscard:
		s = sink.Discard
	default:
		return nil, fmt.Errorf("%w %q, expected one of %v", ErrUnknownSink, cfg.Sink, sinkKinds)
	}

	if cfg.MetricsNamespace != "" {
		s = sink.NewCountingSink(s, nil)
	}
	return s, nil
}

// NewThresholdLogger creates a ThresholdLogger at cfg.Level over s, with a
// PrefixingLogger in between when cfg.Prefix is set.
func NewThresholdLogger(cfg Config, s core.Sink) (*logger.ThresholdLogger, error) {
	level, err := cfg.Threshold()
	if err != nil {
		return nil, err
	}
	return logger.NewBuilder().
		WithSink(s).
		WithLevel(level).
		WithPrefix(cfg.Prefix).
		Build()
}

// NewKeyedLogger creates a KeyedLogger with defaults and applies the
// mapping section of cfg as overrides.
func NewKeyedLogger[K ~string](cfg Config, s core.Sink, defaults map[K]core.Level) (*logger.KeyedLogger[K], error) {
	overrides, err := Overrides[K](cfg)
	if err != nil {
		return nil, err
	}
	l := logger.NewKeyedLogger(s, defaults)
	l.SetMapping(overrides)
	return l, nil
}
