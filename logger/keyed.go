package logger

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/philipp01105/levelgate/core"
)

// KeyedLogger decides the level of a call from an application-defined key
// rather than from the call site. K is usually a string type whose values
// name the log points of one component:
//
//	type storeKey string
//
//	log := logger.NewKeyedLogger(sink, map[storeKey]logger.Level{
//		"cache-miss": logger.DebugLevel,
//		"evict":      logger.InfoLevel,
//	})
//	log.LogKey("cache-miss", "miss", key)
//
// Operators can then retune each key at runtime with SetMapping, or silence
// or raise everything temporarily with SetAll and ResetAll.
type KeyedLogger[K ~string] struct {
	sink     core.Sink
	defaults map[K]Level
	active   map[K]Level
	// saved is non-nil only while a SetAll override is active
	saved map[K]Level
}

// NewKeyedLogger creates a KeyedLogger. defaults is copied; later changes
// to the caller's map have no effect. sink may be nil.
func NewKeyedLogger[K ~string](sink core.Sink, defaults map[K]Level) *KeyedLogger[K] {
	d := maps.Clone(defaults)
	if d == nil {
		d = make(map[K]Level)
	}
	return &KeyedLogger[K]{
		sink:     core.Attachable(sink),
		defaults: d,
		active:   maps.Clone(d),
	}
}

// SetMapping rebuilds the active mapping from the defaults with overrides
// applied on top. Overrides from earlier calls are discarded.
func (l *KeyedLogger[K]) SetMapping(overrides map[K]Level) {
	active := maps.Clone(l.defaults)
	maps.Copy(active, overrides)
	l.active = active
}

// Mapping returns a copy of the active mapping
func (l *KeyedLogger[K]) Mapping() map[K]Level {
	return maps.Clone(l.active)
}

// SetAll saves the active mapping and sets every key to level until
// ResetAll is called. Only one override can be active at a time.
func (l *KeyedLogger[K]) SetAll(level Level) error {
	if l.saved != nil {
		return core.ErrOverrideAlreadyActive
	}
	if err := core.AssertValid(level); err != nil {
		return err
	}
	l.saved = l.active
	all := make(map[K]Level, len(l.saved))
	for k := range l.saved {
		all[k] = level
	}
	l.active = all
	return nil
}

// ResetAll ends a SetAll override and restores the mapping saved by it.
// Without an active override it does nothing.
func (l *KeyedLogger[K]) ResetAll() {
	if l.saved == nil {
		return
	}
	l.active = l.saved
	l.saved = nil
}

// OverrideActive reports whether a SetAll override is in effect
func (l *KeyedLogger[K]) OverrideActive() bool {
	return l.saved != nil
}

// LogKey logs message at the level mapped to key.
//
// Without a sink LogKey does nothing and returns nil, even for unknown keys.
// It returns an *UnknownLogKeyError when key is not mapped and an
// *InvalidSeverityError when the mapped value is not a valid level.
func (l *KeyedLogger[K]) LogKey(key K, message any, args ...any) error {
	if l.sink == nil {
		return nil
	}
	level, ok := l.active[key]
	if !ok {
		return &core.UnknownLogKeyError{Key: string(key)}
	}
	if err := core.AssertValid(level); err != nil {
		return err
	}
	l.handleLogCall(level, message, args)
	return nil
}

// SetSink replaces the sink. nil, or a typed nil such as
// (*consolesink.Sink)(nil), detaches it.
func (l *KeyedLogger[K]) SetSink(s core.Sink) {
	l.sink = core.Attachable(s)
}

// Sink returns the current sink
func (l *KeyedLogger[K]) Sink() core.Sink {
	return l.sink
}

// Leveled calls bypass the mapping and are always forwarded.
func (l *KeyedLogger[K]) handleLogCall(level Level, message any, args []any) {
	core.Forward(l.sink, level, message, args)
}

// Log logs a message at the specified level
func (l *KeyedLogger[K]) Log(level Level, message any, args ...any) {
	l.handleLogCall(level, message, args)
}

// Trace logs a trace message
func (l *KeyedLogger[K]) Trace(message any, args ...any) {
	l.handleLogCall(TraceLevel, message, args)
}

// Debug logs a debug message
func (l *KeyedLogger[K]) Debug(message any, args ...any) {
	l.handleLogCall(DebugLevel, message, args)
}

// Info logs an info message
func (l *KeyedLogger[K]) Info(message any, args ...any) {
	l.handleLogCall(InfoLevel, message, args)
}

// Warn logs a warning message
func (l *KeyedLogger[K]) Warn(message any, args ...any) {
	l.handleLogCall(WarnLevel, message, args)
}

// Error logs an error message
func (l *KeyedLogger[K]) Error(message any, args ...any) {
	l.handleLogCall(ErrorLevel, message, args)
}

// Snapshot returns a structured description of the logger
func (l *KeyedLogger[K]) Snapshot() Snapshot {
	mapping := make(map[string]string, len(l.active))
	for k, v := range l.active {
		mapping[string(k)] = v.String()
	}
	return Snapshot{
		Type:    KeyedType,
		HasSink: l.sink != nil,
		Mapping: mapping,
	}
}

func (l *KeyedLogger[K]) String() string {
	keys := slices.Sorted(maps.Keys(l.active))
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s:%s", string(k), l.active[k])
	}
	return describe(KeyedType, l.sink != nil, "mapping={"+strings.Join(pairs, " ")+"}")
}
