package formatter

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/philipp01105/udplog/core"
	"github.com/philipp01105/udplog/transport"
)

// ErrEntryTooLarge matches every *SizeError.
var ErrEntryTooLarge = errors.New("entry does not fit in one datagram")

// SizeError is returned when an entry exceeds the payload limit even with
// its fields dropped, i.e. the message alone is too long.
type SizeError struct {
	Size  int
	Limit int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%v: %d bytes, limit %d", ErrEntryTooLarge, e.Size, e.Limit)
}

// Is lets errors.Is(err, ErrEntryTooLarge) match.
func (e *SizeError) Is(target error) bool {
	return target == ErrEntryTooLarge
}

// Formatter turns a log entry into one datagram payload. The payload must
// be self-contained: one entry, trailing newline included, no longer
// than the configured limit.
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// TimestampFormat specifies the time format (empty for RFC3339Nano)
	TimestampFormat string
	// LocalTime renders timestamps in the local zone instead of UTC
	LocalTime bool
	// MaxSize caps a payload in bytes. Zero means
	// transport.MaxDatagramSize, the largest UDP payload.
	MaxSize int
}

func (c Config) timestamp(t time.Time) time.Time {
	if c.LocalTime {
		return t
	}
	return t.UTC()
}

func (c Config) limit() int {
	if c.MaxSize <= 0 || c.MaxSize > transport.MaxDatagramSize {
		return transport.MaxDatagramSize
	}
	return c.MaxSize
}

// appendFunc appends the payload for entry to dst. dropped is the number
// of fields left out to fit the limit; zero renders the entry as is.
type appendFunc func(dst []byte, entry *core.Entry, dropped int) []byte

// fit renders entry and enforces the size limit. An oversized payload is
// rendered again without fields, recording how many were dropped; if the
// bare entry still does not fit it is rejected with a *SizeError.
func (c Config) fit(entry *core.Entry, render appendFunc) ([]byte, error) {
	limit := c.limit()
	out := render(make([]byte, 0, 256), entry, 0)
	if len(out) <= limit {
		return out, nil
	}
	if n := len(entry.Fields); n > 0 {
		bare := *entry
		bare.Fields = nil
		out = render(out[:0], &bare, n)
		if len(out) <= limit {
			return out, nil
		}
	}
	return nil, &SizeError{Size: len(out), Limit: limit}
}

// FormatString formats entry with f and returns the payload as an
// immutable string, ready to be queued or sent.
func FormatString(f Formatter, entry *core.Entry) (string, error) {
	b, err := f.Format(entry)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
