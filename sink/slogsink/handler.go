package slogsink

import (
	"context"
	"log/slog"

	"github.com/philipp01105/levelgate/core"
)

// Handler is an slog.Handler that forwards records to a core.Sink. The
// record message becomes the sink message and each attribute becomes one
// "key=value" argument.
type Handler struct {
	sink  core.Sink
	level core.Level
	attrs []any
	group string
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler creates a Handler that passes records at or above level.
func NewHandler(s core.Sink, level core.Level) *Handler {
	return &Handler{
		sink:  s,
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.sink != nil && FromSlog(level) >= h.level
}

// Handle converts the record into a single sink call.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	args := make([]any, 0, len(h.attrs)+record.NumAttrs())
	args = append(args, h.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		args = appendAttr(args, h.group, a)
		return true
	})
	core.Forward(h.sink, FromSlog(record.Level), record.Message, args)
	return nil
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]any, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, h.group, a)
	}
	return &Handler{
		sink:  h.sink,
		level: h.level,
		attrs: newAttrs,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	return &Handler{
		sink:  h.sink,
		level: h.level,
		attrs: h.attrs,
		group: newGroup,
	}
}

// appendAttr renders a as "key=value", flattening groups into dotted keys.
func appendAttr(dst []any, group string, a slog.Attr) []any {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, key, ga)
		}
		return dst
	}
	return append(dst, key+"="+a.Value.String())
}
