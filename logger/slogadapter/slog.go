// Package slogadapter bridges goatl loggers and the standard library
// log/slog in both directions. Adapter routes goatl records into an
// existing slog.Logger; Handler exposes any goatl Logger as a
// slog.Handler so slog callers can share the same sink.
package slogadapter

import (
	"context"
	"log/slog"

	"github.com/goatl/goatl-go/core"
	"github.com/goatl/goatl-go/logger"
)

// Adapter implements logger.Logger on top of a slog.Logger
type Adapter struct {
	l *slog.Logger
}

// New creates an adapter around l
func New(l *slog.Logger) *Adapter {
	return &Adapter{l: l}
}

// Emit implements logger.Logger
func (a *Adapter) Emit(level core.Level, msg string, fields ...core.Field) error {
	attrs := make([]any, 0, len(fields))
	for _, f := range fields {
		attrs = append(attrs, slog.Any(f.Key, f.Value()))
	}
	a.l.Log(context.Background(), toSlogLevel(level), msg, attrs...)
	return nil
}

// toSlogLevel maps core levels onto slog levels. Critical sits above
// slog's Error the same distance Error sits above Warn.
func toSlogLevel(level core.Level) slog.Level {
	switch level {
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelError + 4
	}
}

// Handler is a slog.Handler that forwards records to a goatl Logger.
// This allows goatl to act as the backend for code written against
// log/slog.
type Handler struct {
	logger logger.Logger
	level  core.Level
	attrs  []core.Field
	group  string
}

// NewHandler creates a slog.Handler forwarding to l. Records below
// level are dropped.
func NewHandler(l logger.Logger, level core.Level) *Handler {
	return &Handler{
		logger: l,
		level:  level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= h.level
}

// Handle converts a slog.Record and forwards it to the wrapped logger.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	fields := make([]core.Field, 0, len(h.attrs)+record.NumAttrs())
	fields = append(fields, h.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		fields = append(fields, slogAttrToField(h.group, a))
		return true
	})
	return h.logger.Emit(slogLevelToCore(record.Level), record.Message, fields...)
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		newAttrs = append(newAttrs, slogAttrToField(h.group, a))
	}
	return &Handler{
		logger: h.logger,
		level:  h.level,
		attrs:  newAttrs,
		group:  h.group,
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
	newAttrs := make([]core.Field, len(h.attrs))
	copy(newAttrs, h.attrs)
	return &Handler{
		logger: h.logger,
		level:  h.level,
		attrs:  newAttrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+4:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// slogAttrToField converts a slog.Attr to a core.Field, prepending the
// group prefix if present. Group attrs are flattened with the group
// name as a key prefix.
func slogAttrToField(group string, a slog.Attr) core.Field {
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindString:
		return core.Field{Key: key, Type: core.StringType, Str: a.Value.String()}
	case slog.KindInt64:
		return core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()}
	case slog.KindFloat64:
		return core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()}
	case slog.KindBool:
		val := int64(0)
		if a.Value.Bool() {
			val = 1
		}
		return core.Field{Key: key, Type: core.BoolType, Int64: val}
	case slog.KindTime:
		return core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()}
	case slog.KindDuration:
		return core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())}
	case slog.KindGroup:
		attrs := a.Value.Group()
		if len(attrs) > 0 {
			return slogAttrToField(key, attrs[0])
		}
		return core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()}
	default:
		return core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()}
	}
}
