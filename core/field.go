package core

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Field is a key and its value in wire form. The value is rendered when
// the field is built, so the line and JSON formatters and every receiver
// see the same text for it.
type Field struct {
	Key   string
	Value string
	// Literal marks Value as a bare JSON literal (a finite number or a
	// boolean). Other values are strings on the JSON wire.
	Literal bool
}

// String builds a string field.
func String(key, v string) Field {
	return Field{Key: key, Value: v}
}

// Int64 builds an integer field.
func Int64(key string, v int64) Field {
	return Field{Key: key, Value: strconv.FormatInt(v, 10), Literal: true}
}

// Uint64 builds an unsigned integer field.
func Uint64(key string, v uint64) Field {
	return Field{Key: key, Value: strconv.FormatUint(v, 10), Literal: true}
}

// Float64 builds a float field. NaN and infinities are not valid JSON
// numbers and travel as strings.
func Float64(key string, v float64) Field {
	finite := !math.IsNaN(v) && !math.IsInf(v, 0)
	return Field{Key: key, Value: strconv.FormatFloat(v, 'f', -1, 64), Literal: finite}
}

// Bool builds a boolean field.
func Bool(key string, v bool) Field {
	return Field{Key: key, Value: strconv.FormatBool(v), Literal: true}
}

// Time builds a time field rendered in UTC as RFC3339 with nanoseconds,
// matching the line timestamp.
func Time(key string, v time.Time) Field {
	return Field{Key: key, Value: v.UTC().Format(time.RFC3339Nano)}
}

// Duration builds a duration field rendered like "1.5s".
func Duration(key string, v time.Duration) Field {
	return Field{Key: key, Value: v.String()}
}

// Error builds an error field. A nil error renders as "<nil>".
func Error(key string, err error) Field {
	if err == nil {
		return Field{Key: key, Value: "<nil>"}
	}
	return Field{Key: key, Value: err.Error()}
}

// FieldOf builds a Field from an arbitrary value. Bridges use it for
// host-framework attributes whose static type is unknown.
func FieldOf(key string, v interface{}) Field {
	switch val := v.(type) {
	case string:
		return String(key, val)
	case int:
		return Int64(key, int64(val))
	case int8:
		return Int64(key, int64(val))
	case int16:
		return Int64(key, int64(val))
	case int32:
		return Int64(key, int64(val))
	case int64:
		return Int64(key, val)
	case uint:
		return Uint64(key, uint64(val))
	case uint8:
		return Uint64(key, uint64(val))
	case uint16:
		return Uint64(key, uint64(val))
	case uint32:
		return Uint64(key, uint64(val))
	case uint64:
		return Uint64(key, val)
	case float32:
		return Float64(key, float64(val))
	case float64:
		return Float64(key, val)
	case bool:
		return Bool(key, val)
	case time.Time:
		return Time(key, val)
	case time.Duration:
		return Duration(key, val)
	case error:
		return Error(key, val)
	case fmt.Stringer:
		return String(key, val.String())
	default:
		return String(key, fmt.Sprintf("%v", v))
	}
}
