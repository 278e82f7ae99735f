package logrussink

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level logrus.Level) (*logrus.Logger, *test.Hook) {
	l, hook := test.NewNullLogger()
	l.SetLevel(level)
	return l, hook
}

func TestSink_Levels(t *testing.T) {
	l, hook := newTestLogger(logrus.TraceLevel)
	s := New(l)

	s.Trace("t")
	s.Debug("d")
	s.Info("i")
	s.Warn("w")
	s.Error("e")

	entries := hook.AllEntries()
	require.Len(t, entries, 5)
	want := []logrus.Level{logrus.TraceLevel, logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel}
	for i, level := range want {
		assert.Equal(t, level, entries[i].Level)
	}
	assert.Equal(t, "e", hook.LastEntry().Message)
}

func TestSink_JoinsArgs(t *testing.T) {
	l, hook := newTestLogger(logrus.InfoLevel)
	New(l).Info("svc:", "hello", 42)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "svc: hello 42", hook.LastEntry().Message)
}

func TestSink_RespectsLogrusLevel(t *testing.T) {
	l, hook := newTestLogger(logrus.WarnLevel)
	s := New(l)

	s.Trace("dropped")
	s.Info("dropped")
	s.Error("kept")

	assert.Len(t, hook.AllEntries(), 1)
}

func TestNewWithEntry(t *testing.T) {
	l, hook := newTestLogger(logrus.InfoLevel)
	s := NewWithEntry(l.WithField("component", "cache"))

	s.Warn("evicted", 3)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "cache", entry.Data["component"])
	assert.Equal(t, "evicted 3", entry.Message)
}

func TestNew_NilUsesStandardLogger(t *testing.T) {
	std := logrus.StandardLogger()
	out := std.Out
	std.SetOutput(io.Discard)
	defer std.SetOutput(out)

	s := New(nil)
	assert.Same(t, std, s.logger.Logger)
}
