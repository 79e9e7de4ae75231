// Package zerologbridge routes zerolog events into a udplog Logger.
//
// zerolog encodes events as JSON before handing them to its writer, so the
// bridge decodes each event, lifts out the level, time and message fields
// and forwards the remaining keys as fields.
package zerologbridge

import (
	"bytes"
	"encoding/json"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/philipp01105/udplog/core"
	"github.com/philipp01105/udplog/logger"
)

// Writer is a zerolog.LevelWriter backed by a udplog Logger.
type Writer struct {
	logger *logger.Logger
}

var _ zerolog.LevelWriter = (*Writer)(nil)

// NewWriter creates a zerolog writer that emits through l.
func NewWriter(l *logger.Logger) *Writer {
	return &Writer{logger: l}
}

// New returns a zerolog.Logger writing through l with timestamps enabled.
func New(l *logger.Logger) zerolog.Logger {
	return zerolog.New(NewWriter(l)).Level(LevelFromCore(l.Level())).With().Timestamp().Logger()
}

// Write handles events without a level. They are logged at Info.
func (w *Writer) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel decodes one JSON event and logs it.
func (w *Writer) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level == zerolog.Disabled {
		return len(p), nil
	}
	lvl := LevelToCore(level)
	if !w.logger.Enabled(lvl) {
		return len(p), nil
	}

	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()
	var event map[string]interface{}
	if err := dec.Decode(&event); err != nil {
		return 0, errors.Wrap(err, "decode zerolog event")
	}

	var msg string
	if m, ok := event[zerolog.MessageFieldName].(string); ok {
		msg = m
	}
	var at time.Time
	if ts, ok := event[zerolog.TimestampFieldName].(string); ok {
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			at = parsed
		}
	}
	delete(event, zerolog.MessageFieldName)
	delete(event, zerolog.TimestampFieldName)
	delete(event, zerolog.LevelFieldName)

	keys := make([]string, 0, len(event))
	for k := range event {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var fields []core.Field
	for _, k := range keys {
		fields = append(fields, fieldOf(k, event[k]))
	}

	w.logger.LogAt(at, lvl, msg, fields)
	return len(p), nil
}

// LevelToCore converts a zerolog.Level to a core.Level. NoLevel maps to Info.
func LevelToCore(level zerolog.Level) core.Level {
	switch level {
	case zerolog.TraceLevel:
		return core.TraceLevel
	case zerolog.DebugLevel:
		return core.DebugLevel
	case zerolog.WarnLevel:
		return core.WarnLevel
	case zerolog.ErrorLevel:
		return core.ErrorLevel
	case zerolog.FatalLevel:
		return core.FatalLevel
	case zerolog.PanicLevel:
		return core.PanicLevel
	default:
		return core.InfoLevel
	}
}

// LevelFromCore converts a core.Level to the matching zerolog.Level.
func LevelFromCore(level core.Level) zerolog.Level {
	switch level {
	case core.TraceLevel:
		return zerolog.TraceLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	case core.FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.PanicLevel
	}
}

// fieldOf keeps zerolog numbers numeric; other decoded values go through
// core.FieldOf.
func fieldOf(key string, v interface{}) core.Field {
	n, ok := v.(json.Number)
	if !ok {
		return core.FieldOf(key, v)
	}
	if i, err := n.Int64(); err == nil {
		return core.Int64(key, i)
	}
	if f, err := n.Float64(); err == nil {
		return core.Float64(key, f)
	}
	return core.String(key, n.String())
}
