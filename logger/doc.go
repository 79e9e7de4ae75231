// Package logger is the public API of udplog. Most users only need to
// import this package.
//
// A Logger filters events against a fixed minimum level, formats each
// enabled event as one line and pushes it to the Writer it owns. The
// default line format is
//
//	INFO [2026-01-15T12:00:00.123456789Z] hello
//
// and each line becomes exactly one UDP datagram.
//
// Two strategies are available, chosen once when the Logger is built:
//
//	// Unbuffered: the calling goroutine sends the datagram.
//	log, err := logger.New("127.0.0.1:1999")
//
//	// Buffered: lines are queued and sent by a background worker.
//	log, err := logger.NewBuilder().
//	    WithDestination("127.0.0.1:1999").
//	    WithBuffered(true).
//	    WithLevel(logger.DebugLevel).
//	    Build()
//	defer log.Close()
//
// Build fails if the destination cannot be resolved or the local socket
// cannot be bound. After that, logging never returns errors: a datagram
// that cannot be sent is reported on the diagnostic logger and dropped.
//
// A Logger is immutable after construction and holds no global state.
// Programs that want package-level calls such as logger.Info register a
// logger explicitly with Register, or with TryInit / TryBufferedInit,
// which build and register in one step. Registration succeeds once;
// further attempts return ErrAlreadyRegistered. Bridges for log/slog,
// zap, zerolog and logrus live under the bridge directory.
//
// Flush is a no-op. Close the logger before exit to have a buffered
// writer send what is still queued.
package logger
