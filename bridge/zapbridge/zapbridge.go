// Package zapbridge lets a zap.Logger emit through a udplog Logger by
// implementing zapcore.Core.
package zapbridge

import (
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/udplog/core"
	"github.com/philipp01105/udplog/logger"
)

// Core is a zapcore.Core backed by a udplog Logger.
type Core struct {
	logger *logger.Logger
	fields []zapcore.Field
}

// NewCore creates a zapcore.Core that emits through l.
func NewCore(l *logger.Logger) *Core {
	return &Core{logger: l}
}

// New returns a zap.Logger writing through l.
func New(l *logger.Logger, opts ...zap.Option) *zap.Logger {
	return zap.New(NewCore(l), opts...)
}

// Install makes a zap logger backed by l the zap globals (zap.L, zap.S).
// The returned function restores the previous globals.
func Install(l *logger.Logger, opts ...zap.Option) (*zap.Logger, func()) {
	zl := New(l, opts...)
	return zl, zap.ReplaceGlobals(zl)
}

// Enabled implements zapcore.LevelEnabler.
func (c *Core) Enabled(level zapcore.Level) bool {
	return c.logger.Enabled(LevelToCore(level))
}

// With returns a Core carrying additional fields.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &Core{logger: c.logger, fields: merged}
}

// Check adds this core to ce when the entry's level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the entry and its fields and logs it.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	msg := ent.Message
	if ent.LoggerName != "" {
		msg = ent.LoggerName + ": " + msg
	}
	c.logger.LogAt(ent.Time, LevelToCore(ent.Level), msg, convertFields(c.fields, fields))
	return nil
}

// Sync is a no-op; see Logger.Flush.
func (c *Core) Sync() error {
	c.logger.Flush()
	return nil
}

// LevelToCore converts a zapcore.Level to a core.Level. DPanic maps to
// Error; zap itself decides whether to panic or exit after Write.
func LevelToCore(level zapcore.Level) core.Level {
	switch level {
	case zapcore.DebugLevel:
		return core.DebugLevel
	case zapcore.InfoLevel:
		return core.InfoLevel
	case zapcore.WarnLevel:
		return core.WarnLevel
	case zapcore.ErrorLevel, zapcore.DPanicLevel:
		return core.ErrorLevel
	case zapcore.PanicLevel:
		return core.PanicLevel
	case zapcore.FatalLevel:
		return core.FatalLevel
	}
	if level < zapcore.DebugLevel {
		return core.TraceLevel
	}
	return core.FatalLevel
}

// convertFields encodes zap fields through a map encoder and returns them
// as core fields, context fields first, each group sorted by key.
func convertFields(context, fields []zapcore.Field) []core.Field {
	if len(context) == 0 && len(fields) == 0 {
		return nil
	}
	out := make([]core.Field, 0, len(context)+len(fields))
	out = appendEncoded(out, context)
	out = appendEncoded(out, fields)
	return out
}

func appendEncoded(out []core.Field, fields []zapcore.Field) []core.Field {
	if len(fields) == 0 {
		return out
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, core.FieldOf(k, enc.Fields[k]))
	}
	return out
}
