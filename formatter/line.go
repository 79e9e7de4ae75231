package formatter

import (
	"strconv"
	"time"

	"github.com/philipp01105/udplog/core"
)

// LineFormatter renders the datagram wire format:
//
//	<LEVEL> [<timestamp>] <message>\n
//
// Structured fields, when present, are appended after the message as
// space-separated key=value pairs. Fields that would push the line past
// the payload limit are replaced by fields_dropped=<n>.
type LineFormatter struct {
	Config
}

// NewLineFormatter creates a new line formatter
func NewLineFormatter(cfg Config) *LineFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &LineFormatter{Config: cfg}
}

// Format formats an entry as a single line
func (f *LineFormatter) Format(entry *core.Entry) ([]byte, error) {
	return f.fit(entry, f.appendEntry)
}

func (f *LineFormatter) appendEntry(dst []byte, entry *core.Entry, dropped int) []byte {
	dst = append(dst, entry.Level.String()...)
	dst = append(dst, " ["...)
	dst = f.timestamp(entry.Time).AppendFormat(dst, f.TimestampFormat)
	dst = append(dst, "] "...)

	if f.IncludeCaller && entry.Caller.Defined() {
		dst = append(dst, '[')
		dst = append(dst, entry.Caller.File...)
		dst = append(dst, ':')
		dst = strconv.AppendInt(dst, int64(entry.Caller.Line), 10)
		dst = append(dst, "] "...)
	}

	dst = append(dst, entry.Message...)

	for _, field := range entry.Fields {
		dst = append(dst, ' ')
		dst = append(dst, field.Key...)
		dst = append(dst, '=')
		dst = append(dst, field.Value...)
	}
	if dropped > 0 {
		dst = append(dst, " fields_dropped="...)
		dst = strconv.AppendInt(dst, int64(dropped), 10)
	}

	return append(dst, '\n')
}
