package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/philipp01105/levelgate/sink/consolesink"
)

func newConsole(buf *bytes.Buffer) *consolesink.Sink {
	return consolesink.New(consolesink.Config{
		Writer:           buf,
		DisableTimestamp: true,
		NoColor:          true,
	})
}

func TestLogger_ConsoleLevelGate(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewThresholdLogger(newConsole(&buf), InfoLevel)
	if err != nil {
		t.Fatal(err)
	}

	// Debug should not be logged (below Info level)
	log.Debug("debug message")
	if buf.Len() > 0 {
		t.Error("Debug message was logged when level is Info")
	}

	log.Info("info message")
	if got, want := buf.String(), "[INFO] info message\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	buf.Reset()

	log.Warn("warn message", 42)
	if got, want := buf.String(), "[WARN] warn message 42\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLogger_Stacked(t *testing.T) {
	var buf bytes.Buffer

	// keyed -> threshold -> prefix -> console
	prefix := NewPrefixingLogger("db:", newConsole(&buf))
	threshold, err := NewThresholdLogger(prefix, WarnLevel)
	if err != nil {
		t.Fatal(err)
	}
	keyed := NewKeyedLogger(threshold, map[string]Level{
		"slow-query": InfoLevel,
		"deadlock":   ErrorLevel,
	})

	if err := keyed.LogKey("slow-query", "took", "250ms"); err != nil {
		t.Fatal(err)
	}
	if buf.Len() > 0 {
		t.Errorf("Info key passed a Warn threshold: %q", buf.String())
	}

	if err := keyed.LogKey("deadlock", "victim", 7); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "[ERROR] db: victim 7\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	buf.Reset()
	keyed.SetMapping(map[string]Level{"slow-query": WarnLevel})
	_ = keyed.LogKey("slow-query", "took", "900ms")
	if !strings.Contains(buf.String(), "[WARN] db: took 900ms") {
		t.Errorf("output = %q, want retuned key to reach the console", buf.String())
	}
}

func TestLogger_TraceThroughStack(t *testing.T) {
	rec := &recordingSink{}
	threshold, _ := NewThresholdLogger(NewPrefixingLogger("p", rec), TraceLevel)

	threshold.Trace("deep")

	if len(rec.calls) != 1 || rec.calls[0].level != TraceLevel {
		t.Fatalf("calls = %+v, want one trace call", rec.calls)
	}

	// a policy in the middle always offers Trace, but the end sink decides
	rec.reset()
	threshold.SetSink(NewPrefixingLogger("p", consoleOnly{r: rec}))
	threshold.Trace("dropped")
	if len(rec.calls) != 0 {
		t.Errorf("calls = %+v, want none", rec.calls)
	}
}
