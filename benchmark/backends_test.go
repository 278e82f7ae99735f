package benchmark

import (
	"io"
	"log/slog"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/levelgate/core"
	"github.com/philipp01105/levelgate/sink/consolesink"
	"github.com/philipp01105/levelgate/sink/logrussink"
	"github.com/philipp01105/levelgate/sink/slogsink"
	"github.com/philipp01105/levelgate/sink/zapsink"
	"github.com/philipp01105/levelgate/sink/zerologsink"
)

// ---------------------------------------------------------------------------
// Helpers – every backend writes to io.Discard
// ---------------------------------------------------------------------------

// newZapLogger returns a zap.Logger that writes JSON to io.Discard.
func newZapLogger() *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	zc := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(zc)
}

// newSlogLogger returns an slog.Logger that writes JSON to io.Discard.
func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slogsink.LevelTrace}))
}

// newLogrusLogger returns a logrus.Logger that writes JSON to io.Discard.
func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.TraceLevel)
	return l
}

// newZerologLogger returns a zerolog.Logger that writes JSON to io.Discard.
func newZerologLogger() zerolog.Logger {
	return zerolog.New(io.Discard).With().Timestamp().Logger().Level(zerolog.TraceLevel)
}

type backend struct {
	name    string
	newSink func() core.Sink
}

var backends = []backend{
	{"noop", newNoopSink},
	{"console", func() core.Sink {
		return consolesink.New(consolesink.Config{Writer: io.Discard, NoColor: true})
	}},
	{"zap", func() core.Sink { return zapsink.New(newZapLogger()) }},
	{"slog", func() core.Sink { return slogsink.New(newSlogLogger()) }},
	{"logrus", func() core.Sink { return logrussink.New(newLogrusLogger()) }},
	{"zerolog", func() core.Sink { return zerologsink.New(newZerologLogger()) }},
}
