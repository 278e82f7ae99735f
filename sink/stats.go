package sink

import (
	"sync/atomic"

	"github.com/philipp01105/levelgate/core"
)

// Stats tracks forwarded calls per level
type Stats struct {
	// One counter per level, indexed by core.Level
	calls [core.ErrorLevel + 1]atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// Increment atomically increments the counter for a level. Invalid levels
// are ignored.
func (s *Stats) Increment(level core.Level) {
	if !level.Valid() {
		return
	}
	s.calls[level].Add(1)
}

// Get returns the count for a level
func (s *Stats) Get(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.calls[level].Load()
}

// Total returns the count across all levels
func (s *Stats) Total() uint64 {
	var total uint64
	for i := range s.calls {
		total += s.calls[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.calls {
		s.calls[i].Store(0)
	}
}

// Snapshot returns the current counts of the levels that can be forwarded
func (s *Stats) Snapshot() map[core.Level]uint64 {
	return map[core.Level]uint64{
		core.TraceLevel: s.Get(core.TraceLevel),
		core.DebugLevel: s.Get(core.DebugLevel),
		core.InfoLevel:  s.Get(core.InfoLevel),
		core.WarnLevel:  s.Get(core.WarnLevel),
		core.ErrorLevel: s.Get(core.ErrorLevel),
	}
}

// CountingSink counts every call it forwards to the wrapped sink. Trace
// calls are counted only when the wrapped sink takes them.
type CountingSink struct {
	next  core.Sink
	stats *Stats
}

// NewCountingSink wraps next. A nil stats allocates a fresh one.
func NewCountingSink(next core.Sink, stats *Stats) *CountingSink {
	if stats == nil {
		stats = NewStats()
	}
	return &CountingSink{next: core.Attachable(next), stats: stats}
}

// Stats returns the counters
func (c *CountingSink) Stats() *Stats {
	return c.stats
}

// Unwrap returns the wrapped sink
func (c *CountingSink) Unwrap() core.Sink {
	return c.next
}

func (c *CountingSink) forward(level core.Level, message any, args []any) {
	if c.next == nil {
		return
	}
	if level == core.TraceLevel {
		if _, ok := c.next.(core.TraceSink); !ok {
			return
		}
	}
	c.stats.Increment(level)
	core.Forward(c.next, level, message, args)
}

func (c *CountingSink) Trace(message any, args ...any) {
	c.forward(core.TraceLevel, message, args)
}

func (c *CountingSink) Debug(message any, args ...any) {
	c.forward(core.DebugLevel, message, args)
}

func (c *CountingSink) Info(message any, args ...any) {
	c.forward(core.InfoLevel, message, args)
}

func (c *CountingSink) Warn(message any, args ...any) {
	c.forward(core.WarnLevel, message, args)
}

func (c *CountingSink) Error(message any, args ...any) {
	c.forward(core.ErrorLevel, message, args)
}
