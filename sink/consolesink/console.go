package consolesink

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/philipp01105/levelgate/core"
	"github.com/philipp01105/levelgate/sink"
)

// Config holds configuration for the console sink
type Config struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// TimestampFormat specifies the time format (default: time.RFC3339)
	TimestampFormat string
	// DisableTimestamp omits the timestamp
	DisableTimestamp bool
	// NoColor disables colored level tags
	NoColor bool
}

// Sink writes console-style lines to a writer
type Sink struct {
	writer     io.Writer
	timeFormat string
	noTime     bool
	tags       [core.ErrorLevel + 1]string
	now        func() time.Time

	mu  sync.Mutex // protects buf and writer
	buf bytes.Buffer
}

var _ core.TraceSink = (*Sink)(nil)

var levelColors = [...]color.Attribute{
	core.TraceLevel: color.FgHiBlack,
	core.DebugLevel: color.FgCyan,
	core.InfoLevel:  color.FgGreen,
	core.WarnLevel:  color.FgYellow,
	core.ErrorLevel: color.FgRed,
}

var levelTags = [...]string{
	core.TraceLevel: "[TRACE]",
	core.DebugLevel: "[DEBUG]",
	core.InfoLevel:  "[INFO]",
	core.WarnLevel:  "[WARN]",
	core.ErrorLevel: "[ERROR]",
}

// New creates a console sink
func New(cfg Config) *Sink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}

	s := &Sink{
		writer:     cfg.Writer,
		timeFormat: cfg.TimestampFormat,
		noTime:     cfg.DisableTimestamp,
		now:        time.Now,
	}

	// pre-render level tags once
	for l := core.TraceLevel; l <= core.ErrorLevel; l++ {
		c := color.New(levelColors[l])
		if cfg.NoColor {
			c.DisableColor()
		}
		s.tags[l] = c.Sprint(levelTags[l])
	}
	s.buf.Grow(256)
	return s
}

func (s *Sink) write(level core.Level, message any, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()
	if !s.noTime {
		s.buf.Write(s.now().AppendFormat(s.buf.AvailableBuffer(), s.timeFormat))
		s.buf.WriteByte(' ')
	}
	s.buf.WriteString(s.tags[level])
	s.buf.WriteByte(' ')
	s.buf.WriteString(sink.Text(message, args))
	s.buf.WriteByte('\n')

	// Write errors have nowhere to go from a logging call
	_, _ = s.writer.Write(s.buf.Bytes())
}

func (s *Sink) Trace(message any, args ...any) {
	s.write(core.TraceLevel, message, args)
}

func (s *Sink) Debug(message any, args ...any) {
	s.write(core.DebugLevel, message, args)
}

func (s *Sink) Info(message any, args ...any) {
	s.write(core.InfoLevel, message, args)
}

func (s *Sink) Warn(message any, args ...any) {
	s.write(core.WarnLevel, message, args)
}

func (s *Sink) Error(message any, args ...any) {
	s.write(core.ErrorLevel, message, args)
}
