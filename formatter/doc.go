// Package formatter defines how log entries are serialized into datagram
// payloads.
//
// Every payload is exactly one entry: the formatters never coalesce
// entries, and each output ends with a single '\n'. LineFormatter
// produces the default wire format
//
//	INFO [2026-01-15T12:00:00Z] hello world
//
// and JSONFormatter produces one JSON object per datagram with the same
// level, time and message. Timestamps are rendered in UTC unless
// Config.LocalTime is set.
//
// A payload never exceeds Config.MaxSize (at most the largest UDP
// payload). When fields push an entry past the limit they are dropped and
// counted; when the message alone is too long Format returns a
// *SizeError, which matches ErrEntryTooLarge.
package formatter
