package logger

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/udplog/core"
)

// ErrAlreadyRegistered is returned by Register when a default logger is
// already installed.
var ErrAlreadyRegistered = errors.New("a default logger is already registered")

var defaultLogger atomic.Pointer[Logger]

// Register installs l as the process default logger. It succeeds once;
// later calls return ErrAlreadyRegistered and leave the first logger in
// place.
func Register(l *Logger) error {
	if l == nil {
		return errors.New("register nil logger")
	}
	if !defaultLogger.CompareAndSwap(nil, l) {
		return ErrAlreadyRegistered
	}
	return nil
}

// Default returns the registered logger, or nil when none is registered.
func Default() *Logger {
	return defaultLogger.Load()
}

// TryInit creates an unbuffered logger for destination at level and
// registers it as the default. The logger is returned so the caller can
// Close it.
func TryInit(destination string, level Level) (*Logger, error) {
	l, err := NewBuilder().
		WithDestination(destination).
		WithLevel(level).
		Build()
	if err != nil {
		return nil, errors.Wrap(err, "init udp logger")
	}
	return register(l)
}

// TryBufferedInit creates a buffered logger for destination at level and
// registers it as the default. Close the returned logger before exit to
// send whatever is still queued.
func TryBufferedInit(destination string, level Level) (*Logger, error) {
	l, err := NewBuilder().
		WithDestination(destination).
		WithLevel(level).
		WithBuffered(true).
		Build()
	if err != nil {
		return nil, errors.Wrap(err, "init buffered udp logger")
	}
	return register(l)
}

func register(l *Logger) (*Logger, error) {
	if err := Register(l); err != nil {
		return nil, multierr.Append(err, l.Close())
	}
	return l, nil
}

// Package-level convenience functions using the registered logger. They
// do nothing when no logger is registered.

// Trace logs a trace message using the default logger
func Trace(msg string, fields ...core.Field) {
	if l := Default(); l != nil {
		l.Trace(msg, fields...)
	}
}

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...core.Field) {
	if l := Default(); l != nil {
		l.Debug(msg, fields...)
	}
}

// Info logs an info message using the default logger
func Info(msg string, fields ...core.Field) {
	if l := Default(); l != nil {
		l.Info(msg, fields...)
	}
}

// Warn logs a warning message using the default logger
func Warn(msg string, fields ...core.Field) {
	if l := Default(); l != nil {
		l.Warn(msg, fields...)
	}
}

// Error logs an error message using the default logger
func Error(msg string, fields ...core.Field) {
	if l := Default(); l != nil {
		l.Error(msg, fields...)
	}
}

// Fatal logs a fatal message using the default logger and exits the program
func Fatal(msg string, fields ...core.Field) {
	if l := Default(); l != nil {
		l.Fatal(msg, fields...)
		return
	}
	osExit(1)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...interface{}) {
	if l := Default(); l != nil {
		l.Tracef(format, args...)
	}
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	if l := Default(); l != nil {
		l.Debugf(format, args...)
	}
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	if l := Default(); l != nil {
		l.Infof(format, args...)
	}
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	if l := Default(); l != nil {
		l.Warnf(format, args...)
	}
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	if l := Default(); l != nil {
		l.Errorf(format, args...)
	}
}

// Fatalf logs a formatted fatal message using the default logger and exits the program
func Fatalf(format string, args ...interface{}) {
	if l := Default(); l != nil {
		l.Fatalf(format, args...)
		return
	}
	osExit(1)
}
