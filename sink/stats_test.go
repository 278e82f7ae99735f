package sink

import (
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/philipp01105/levelgate/core"
)

func TestStats(t *testing.T) {
	s := NewStats()
	s.Increment(core.InfoLevel)
	s.Increment(core.InfoLevel)
	s.Increment(core.ErrorLevel)
	s.Increment(core.Level(-1))
	s.Increment(core.Level(9))

	assert.Equal(t, uint64(2), s.Get(core.InfoLevel))
	assert.Equal(t, uint64(1), s.Get(core.ErrorLevel))
	assert.Equal(t, uint64(0), s.Get(core.Level(9)))
	assert.Equal(t, uint64(3), s.Total())

	snap := s.Snapshot()
	assert.Len(t, snap, 5)
	assert.Equal(t, uint64(2), snap[core.InfoLevel])

	s.Reset()
	assert.Equal(t, uint64(0), s.Total())
}

func TestStats_Concurrent(t *testing.T) {
	s := NewStats()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				s.Increment(core.WarnLevel)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(8000), s.Get(core.WarnLevel))
}

func TestCountingSink(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := core.NewMockSink(ctrl)
	next.EXPECT().Info("hello").Times(1)
	next.EXPECT().Error("failed", 42).Times(1)

	c := NewCountingSink(next, nil)
	c.Info("hello")
	c.Error("failed", 42)
	// next has no Trace method: neither forwarded nor counted
	c.Trace("dropped")

	assert.Equal(t, uint64(1), c.Stats().Get(core.InfoLevel))
	assert.Equal(t, uint64(1), c.Stats().Get(core.ErrorLevel))
	assert.Equal(t, uint64(0), c.Stats().Get(core.TraceLevel))
}

func TestCountingSink_NilNext(t *testing.T) {
	c := NewCountingSink(nil, nil)
	c.Warn("nowhere")
	assert.Equal(t, uint64(0), c.Stats().Total())
}

func TestCollector(t *testing.T) {
	stats := NewStats()
	stats.Increment(core.DebugLevel)
	stats.Increment(core.WarnLevel)
	stats.Increment(core.WarnLevel)

	c := NewCollector(stats, "levelgate")

	expected := `
# HELP levelgate_log_calls_total Total number of log calls forwarded to the sink, by level
# TYPE levelgate_log_calls_total counter
levelgate_log_calls_total{level="debug"} 1
levelgate_log_calls_total{level="error"} 0
levelgate_log_calls_total{level="info"} 0
levelgate_log_calls_total{level="trace"} 0
levelgate_log_calls_total{level="warn"} 2
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
	assert.Equal(t, 5, testutil.CollectAndCount(c))
}
