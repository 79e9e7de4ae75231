package core

import (
	"path/filepath"
	"runtime"
	"strconv"
	"time"
)

// Entry is one event on its way to a datagram. It holds exactly what the
// wire line renders: capture time, level, message, fields and, when
// enabled, the call site.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Fields  []Field
	Caller  Caller
}

// Caller is the call site of an event as the wire shows it: the file's
// base name and the line. The zero value means unknown.
type Caller struct {
	File string
	Line int
}

// Defined reports whether the call site is known.
func (c Caller) Defined() bool {
	return c.Line > 0
}

// String renders the call site as "file.go:42".
func (c Caller) String() string {
	if !c.Defined() {
		return ""
	}
	return c.File + ":" + strconv.Itoa(c.Line)
}

// CallerAt returns the call site skip frames above the caller of
// CallerAt, as runtime.Caller counts them.
func CallerAt(skip int) Caller {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Caller{}
	}
	return Caller{File: filepath.Base(file), Line: line}
}
