// Package writer provides the Writer contract and its two UDP
// strategies.
//
// UnbufferedWriter sends each message on the caller's goroutine: Push
// returns after the datagram has been written to the socket, and returns
// the send error.
//
// BufferedWriter decouples producers from the network. Push appends the
// message to an unbounded, mutex-guarded FIFO Queue and returns at once.
// A single drain goroutine, started when the writer is created, wakes
// every DrainInterval (50ms by default), takes the entire queue in one
// DrainAll and sends each message in order through the sender it owns.
// The sender's local endpoint is bound once, before the goroutine starts.
//
// Send failures never reach producers. The worker counts them, logs them
// through the configured zap logger and moves on to the next message, so
// one bad datagram cannot abort a batch or stop the loop. Nothing is
// retried or re-queued.
//
// Close stops the worker, performs a last drain bounded by DrainTimeout,
// waits for the goroutine to exit and closes the sender. Without Close,
// messages still queued when the process exits are lost.
//
// The queue has no capacity limit and applies no backpressure: under a
// sustained send stall memory grows with the backlog.
package writer
