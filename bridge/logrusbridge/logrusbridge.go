// Package logrusbridge forwards logrus entries to a udplog Logger through
// a logrus.Hook.
package logrusbridge

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/udplog/core"
	"github.com/philipp01105/udplog/logger"
)

// Hook is a logrus.Hook that emits every fired entry through a udplog Logger.
type Hook struct {
	logger *logger.Logger
}

var _ logrus.Hook = (*Hook)(nil)

// NewHook creates a hook emitting through l.
func NewHook(l *logger.Logger) *Hook {
	return &Hook{logger: l}
}

// Install adds a hook for l to target. target's own output is left alone;
// set it to io.Discard to send only over UDP.
func Install(target *logrus.Logger, l *logger.Logger) *Hook {
	h := NewHook(l)
	target.AddHook(h)
	return h
}

// Levels returns all logrus levels; filtering happens in the udplog Logger.
func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire logs the entry.
func (h *Hook) Fire(entry *logrus.Entry) error {
	lvl := LevelToCore(entry.Level)
	if !h.logger.Enabled(lvl) {
		return nil
	}

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := make([]core.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, core.FieldOf(k, entry.Data[k]))
	}

	h.logger.LogAt(entry.Time, lvl, entry.Message, fields)
	return nil
}

// LevelToCore converts a logrus.Level to a core.Level.
func LevelToCore(level logrus.Level) core.Level {
	switch level {
	case logrus.PanicLevel:
		return core.PanicLevel
	case logrus.FatalLevel:
		return core.FatalLevel
	case logrus.ErrorLevel:
		return core.ErrorLevel
	case logrus.WarnLevel:
		return core.WarnLevel
	case logrus.InfoLevel:
		return core.InfoLevel
	case logrus.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
