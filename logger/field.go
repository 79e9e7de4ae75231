package logger

import (
	"time"

	"github.com/philipp01105/udplog/core"
)

// Field constructors. Each value is rendered to its wire text here, at
// the call site, so a queued line never refers back to caller memory.

// String creates a string field
func String(key, val string) core.Field { return core.String(key, val) }

// Int creates an integer field
func Int(key string, val int) core.Field { return core.Int64(key, int64(val)) }

// Int64 creates an integer field
func Int64(key string, val int64) core.Field { return core.Int64(key, val) }

// Uint64 creates an unsigned integer field
func Uint64(key string, val uint64) core.Field { return core.Uint64(key, val) }

// Float64 creates a float field
func Float64(key string, val float64) core.Field { return core.Float64(key, val) }

// Bool creates a boolean field
func Bool(key string, val bool) core.Field { return core.Bool(key, val) }

// Time creates a time field in UTC RFC3339, like the line timestamp
func Time(key string, val time.Time) core.Field { return core.Time(key, val) }

// Duration creates a duration field
func Duration(key string, val time.Duration) core.Field { return core.Duration(key, val) }

// Err creates an error field keyed "error"
func Err(err error) core.Field { return core.Error("error", err) }

// Stringer creates a field from val.String(), e.g. a net.Addr.
func Stringer(key string, val interface{ String() string }) core.Field {
	return core.String(key, val.String())
}

// Any creates a field from any value. Numbers and booleans stay JSON
// literals; everything else is rendered as text.
func Any(key string, val interface{}) core.Field { return core.FieldOf(key, val) }
