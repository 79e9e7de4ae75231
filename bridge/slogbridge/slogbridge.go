// Package slogbridge adapts a udplog Logger to log/slog.
package slogbridge

import (
	"context"
	"log/slog"

	"github.com/philipp01105/udplog/core"
	"github.com/philipp01105/udplog/logger"
)

// LevelTrace is the slog level mapped to core.TraceLevel.
const LevelTrace = slog.LevelDebug - 4

// Handler implements slog.Handler on top of a udplog Logger.
type Handler struct {
	logger *logger.Logger
	attrs  []core.Field
	group  string
}

// NewHandler creates a slog.Handler that emits through l.
func NewHandler(l *logger.Logger) *Handler {
	return &Handler{logger: l}
}

// Install makes a slog logger backed by l the slog default and returns it.
func Install(l *logger.Logger) *slog.Logger {
	sl := slog.New(NewHandler(l))
	slog.SetDefault(sl)
	return sl
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(LevelToCore(level))
}

// Handle converts the record's attributes and logs it.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	fields := make([]core.Field, 0, len(h.attrs)+record.NumAttrs())
	fields = append(fields, h.attrs...)

	record.Attrs(func(a slog.Attr) bool {
		fields = appendAttr(fields, h.group, a)
		return true
	})

	h.logger.LogAt(record.Time, LevelToCore(record.Level), record.Message, fields)
	return nil
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, h.group, a)
	}
	return &Handler{
		logger: h.logger,
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
	return &Handler{
		logger: h.logger,
		attrs:  h.attrs,
		group:  newGroup,
	}
}

// LevelToCore converts a slog.Level to a core.Level.
func LevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr converts a to fields, flattening groups into dotted keys.
func appendAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	switch a.Value.Kind() {
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, key, ga)
		}
		return fields
	case slog.KindString:
		return append(fields, core.String(key, a.Value.String()))
	case slog.KindInt64:
		return append(fields, core.Int64(key, a.Value.Int64()))
	case slog.KindUint64:
		return append(fields, core.Uint64(key, a.Value.Uint64()))
	case slog.KindFloat64:
		return append(fields, core.Float64(key, a.Value.Float64()))
	case slog.KindBool:
		return append(fields, core.Bool(key, a.Value.Bool()))
	case slog.KindTime:
		return append(fields, core.Time(key, a.Value.Time()))
	case slog.KindDuration:
		return append(fields, core.Duration(key, a.Value.Duration()))
	default:
		return append(fields, core.FieldOf(key, a.Value.Any()))
	}
}
