package zerologsink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSink_Levels(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer zerolog.SetGlobalLevel(prev)

	var buf bytes.Buffer
	s := New(zerolog.New(&buf).Level(zerolog.TraceLevel))

	s.Trace("t")
	s.Debug("d")
	s.Info("i")
	s.Warn("w")
	s.Error("e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		`{"level":"trace","message":"t"}`,
		`{"level":"debug","message":"d"}`,
		`{"level":"info","message":"i"}`,
		`{"level":"warn","message":"w"}`,
		`{"level":"error","message":"e"}`,
	}, lines)
}

func TestSink_JoinsArgs(t *testing.T) {
	var buf bytes.Buffer
	New(zerolog.New(&buf)).Info("svc:", "hello", 42)

	assert.Equal(t, `{"level":"info","message":"svc: hello 42"}`+"\n", buf.String())
}

func TestSink_RespectsZerologLevel(t *testing.T) {
	var buf bytes.Buffer
	s := New(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	s.Trace("dropped")
	s.Warn("dropped")
	assert.Empty(t, buf.String())

	s.Error("kept")
	assert.Contains(t, buf.String(), "kept")
}
