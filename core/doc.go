// Package core defines the shared types used across udplog.
//
// Level orders severities from TraceLevel (least severe) to PanicLevel;
// a logger admits an event when the event's level is at least its
// threshold, a single integer comparison.
//
// Entry is a single event before it becomes a datagram payload. It
// carries only what the wire renders. Field values are rendered to text
// when the field is built, so formatting an Entry is concatenation and
// the queued payload never refers back to caller memory.
package core
