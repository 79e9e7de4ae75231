package logger

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/philipp01105/udplog/core"
	"github.com/philipp01105/udplog/formatter"
	"github.com/philipp01105/udplog/writer"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Logger filters events by level, formats them and pushes each line to
// its Writer. A Logger is immutable after Build.
type Logger struct {
	writer        writer.Writer
	formatter     formatter.Formatter
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	errorLog      *zap.Logger
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	writer        writer.Writer
	formatter     formatter.Formatter
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	udp           writer.UDPConfig
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default level
		callerSkip: 2,              // log + level helper
	}
}

// WithWriter sets the writer. When set, the UDP options are ignored.
func (b *Builder) WithWriter(w writer.Writer) *Builder {
	b.writer = w
	return b
}

// WithDestination sets the host:port the UDP writer sends to
func (b *Builder) WithDestination(dest string) *Builder {
	b.udp.Destination = dest
	return b
}

// WithBuffered selects the buffered (queue + background worker) strategy
func (b *Builder) WithBuffered(buffered bool) *Builder {
	b.udp.Buffered = buffered
	return b
}

// WithDrainInterval sets the pause between drain cycles of a buffered writer
func (b *Builder) WithDrainInterval(d time.Duration) *Builder {
	b.udp.DrainInterval = d
	return b
}

// WithDrainTimeout bounds the final drain when a buffered writer is closed
func (b *Builder) WithDrainTimeout(d time.Duration) *Builder {
	b.udp.DrainTimeout = d
	return b
}

// WithErrorLog sets the logger that receives send and format failure
// diagnostics (default: writer.NewErrorLog)
func (b *Builder) WithErrorLog(l *zap.Logger) *Builder {
	b.udp.ErrorLog = l
	return b
}

// WithFormatter sets the formatter (default: LineFormatter)
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Logger instance. Without an explicit writer it opens
// a UDP writer for the configured destination; resolve and bind errors
// are returned here.
func (b *Builder) Build() (*Logger, error) {
	if b.udp.ErrorLog == nil {
		b.udp.ErrorLog = writer.NewErrorLog()
	}

	w := b.writer
	if w == nil {
		udp, err := writer.NewUDPWriter(b.udp)
		if err != nil {
			return nil, err
		}
		w = udp
	}

	f := b.formatter
	if f == nil {
		f = formatter.NewLineFormatter(formatter.Config{IncludeCaller: b.includeCaller})
	}

	return &Logger{
		writer:        w,
		formatter:     f,
		level:         b.level,
		fields:        b.fields,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		errorLog:      b.udp.ErrorLog,
	}, nil
}

// New creates an unbuffered Logger at InfoLevel sending to destination.
func New(destination string) (*Logger, error) {
	return NewBuilder().WithDestination(destination).Build()
}

// NewBuffered creates a buffered Logger at InfoLevel sending to destination.
func NewBuffered(destination string) (*Logger, error) {
	return NewBuilder().WithDestination(destination).WithBuffered(true).Build()
}

// With creates a new Logger with additional fields (immutable operation).
// The child shares the parent's writer; close only one of them.
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &Logger{
		writer:        l.writer,
		formatter:     l.formatter,
		level:         l.level,
		fields:        newFields,
		includeCaller: l.includeCaller,
		callerSkip:    l.callerSkip,
		errorLog:      l.errorLog,
	}
}

// Level returns the minimum level this logger emits
func (l *Logger) Level() core.Level {
	return l.level
}

// Writer returns the writer owned by this logger
func (l *Logger) Writer() writer.Writer {
	return l.writer
}

// Stats returns the writer's delivery counters. ok is false when the
// writer does not keep any.
func (l *Logger) Stats() (snap writer.Snapshot, ok bool) {
	sp, ok := l.writer.(writer.StatsProvider)
	if !ok {
		return writer.Snapshot{}, false
	}
	return sp.Stats(), true
}

// Enabled reports whether an event at level would be emitted
func (l *Logger) Enabled(level core.Level) bool {
	return level.Enabled(l.level)
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	// Level check optimization - exit early BEFORE any allocations
	if !level.Enabled(l.level) {
		return
	}
	l.log(time.Now(), level, msg, fields)
}

// LogAt logs a message captured at t. Facade bridges use it to keep the
// host framework's capture time.
func (l *Logger) LogAt(t time.Time, level core.Level, msg string, fields []core.Field) {
	if !level.Enabled(l.level) {
		return
	}
	if t.IsZero() {
		t = time.Now()
	}
	l.log(t, level, msg, fields)
}

// log formats the entry and pushes the resulting line. Push errors are
// dropped: logging calls have no error return. An entry the formatter
// rejects is reported to the error log.
func (l *Logger) log(t time.Time, level core.Level, msg string, fields []core.Field) {
	if l.writer == nil {
		return
	}

	entry := core.Entry{
		Time:    t,
		Level:   level,
		Message: msg,
		Fields:  fields,
	}
	if len(l.fields) > 0 {
		entry.Fields = make([]core.Field, 0, len(l.fields)+len(fields))
		entry.Fields = append(entry.Fields, l.fields...)
		entry.Fields = append(entry.Fields, fields...)
	}
	if l.includeCaller {
		entry.Caller = core.CallerAt(l.callerSkip)
	}

	payload, err := formatter.FormatString(l.formatter, &entry)
	if err != nil {
		l.errorLog.Warn("format entry", zap.Error(err), zap.Stringer("level", level))
		return
	}

	_ = l.writer.Push(payload)
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	if core.TraceLevel < l.level {
		return
	}
	l.log(time.Now(), core.TraceLevel, msg, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(time.Now(), core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(time.Now(), core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(time.Now(), core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(time.Now(), core.ErrorLevel, msg, fields)
}

// Fatal logs a fatal message, closes the writer so queued lines are
// sent, and exits the program with os.Exit(1)
func (l *Logger) Fatal(msg string, fields ...core.Field) {
	l.log(time.Now(), core.FatalLevel, msg, fields)
	_ = l.Close()
	osExit(1)
}

// Panic logs a panic message and panics
func (l *Logger) Panic(msg string, fields ...core.Field) {
	l.log(time.Now(), core.PanicLevel, msg, fields)
	panic(msg)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if core.TraceLevel < l.level {
		return
	}
	l.log(time.Now(), core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(time.Now(), core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(time.Now(), core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(time.Now(), core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(time.Now(), core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Fatalf logs a fatal message with formatting, closes the writer and
// exits the program with os.Exit(1)
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.log(time.Now(), core.FatalLevel, fmt.Sprintf(format, args...), nil)
	_ = l.Close()
	osExit(1)
}

// Panicf logs a panic message with formatting and panics
func (l *Logger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.log(time.Now(), core.PanicLevel, msg, nil)
	panic(msg)
}

// Flush is a no-op. Buffered lines are sent by the drain worker on its
// own schedule; use Close to guarantee delivery before exit.
func (l *Logger) Flush() {}

// Close closes the logger's writer. For a buffered writer this drains
// the queue and waits for the background worker to stop.
func (l *Logger) Close() error {
	if l.writer != nil {
		return l.writer.Close()
	}
	return nil
}
