package formatter

import (
	"strconv"
	"time"

	"github.com/philipp01105/udplog/core"
)

// JSONFormatter renders one JSON object per datagram with the same
// level, time and message the wire line carries:
//
//	{"level":"INFO","time":"2026-01-15T12:00:00Z","message":"hi","fields":{"status":200}}
//
// "caller" ("file.go:42") appears when enabled, "fields" only when the
// entry has fields. Fields that would push the object past the payload
// limit are omitted and counted in "fields_dropped".
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format formats an entry as JSON
func (f *JSONFormatter) Format(entry *core.Entry) ([]byte, error) {
	return f.fit(entry, f.appendEntry)
}

func (f *JSONFormatter) appendEntry(dst []byte, entry *core.Entry, dropped int) []byte {
	dst = append(dst, `{"level":"`...)
	dst = append(dst, entry.Level.String()...)
	dst = append(dst, `","time":"`...)
	dst = f.timestamp(entry.Time).AppendFormat(dst, f.TimestampFormat)
	dst = append(dst, `","message":`...)
	dst = appendJSONString(dst, entry.Message)

	if f.IncludeCaller && entry.Caller.Defined() {
		dst = append(dst, `,"caller":`...)
		dst = appendJSONString(dst, entry.Caller.String())
	}

	if len(entry.Fields) > 0 {
		dst = append(dst, `,"fields":{`...)
		for i, field := range entry.Fields {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendJSONString(dst, field.Key)
			dst = append(dst, ':')
			if field.Literal {
				dst = append(dst, field.Value...)
			} else {
				dst = appendJSONString(dst, field.Value)
			}
		}
		dst = append(dst, '}')
	}
	if dropped > 0 {
		dst = append(dst, `,"fields_dropped":`...)
		dst = strconv.AppendInt(dst, int64(dropped), 10)
	}

	return append(dst, "}\n"...)
}

const hexChars = "0123456789abcdef"

// appendJSONString appends s as a quoted JSON string.
func appendJSONString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		dst = append(dst, s[start:i]...)
		switch c {
		case '"', '\\':
			dst = append(dst, '\\', c)
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexChars[c>>4], hexChars[c&0x0f])
		}
		start = i + 1
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}
