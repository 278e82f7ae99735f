package logger

import (
	"log/slog"
	"maps"
	"slices"

	"go.uber.org/zap/zapcore"
)

// Type tags carried by Snapshot.Type
const (
	ThresholdType = "ThresholdLogger"
	KeyedType     = "KeyedLogger"
	PrefixingType = "PrefixingLogger"
)

// Snapshot describes a policy for diagnostics. It is meant for logs about
// the logger itself and plays no part in dispatch.
type Snapshot struct {
	Type    string `json:"type"`
	HasSink bool   `json:"has_sink"`
	// Level is the current threshold name (ThresholdLogger)
	Level string `json:"level,omitempty"`
	// Mapping maps each key to its level name (KeyedLogger)
	Mapping map[string]string `json:"mapping,omitempty"`
	// Prefix is the label (PrefixingLogger)
	Prefix string `json:"prefix,omitempty"`
}

// MarshalLogObject implements zapcore.ObjectMarshaler so a snapshot can be
// logged with zap.Object.
func (s Snapshot) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("type", s.Type)
	enc.AddBool("has_sink", s.HasSink)
	if s.Level != "" {
		enc.AddString("level", s.Level)
	}
	if s.Prefix != "" {
		enc.AddString("prefix", s.Prefix)
	}
	if len(s.Mapping) > 0 {
		return enc.AddObject("mapping", zapcore.ObjectMarshalerFunc(func(e zapcore.ObjectEncoder) error {
			for _, k := range slices.Sorted(maps.Keys(s.Mapping)) {
				e.AddString(k, s.Mapping[k])
			}
			return nil
		}))
	}
	return nil
}

// LogValue implements slog.LogValuer.
func (s Snapshot) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", s.Type),
		slog.Bool("has_sink", s.HasSink),
	}
	if s.Level != "" {
		attrs = append(attrs, slog.String("level", s.Level))
	}
	if s.Prefix != "" {
		attrs = append(attrs, slog.String("prefix", s.Prefix))
	}
	if len(s.Mapping) > 0 {
		mapping := make([]any, 0, len(s.Mapping))
		for _, k := range slices.Sorted(maps.Keys(s.Mapping)) {
			mapping = append(mapping, slog.String(k, s.Mapping[k]))
		}
		attrs = append(attrs, slog.Group("mapping", mapping...))
	}
	return slog.GroupValue(attrs...)
}
