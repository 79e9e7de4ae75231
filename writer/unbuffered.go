package writer

import (
	"go.uber.org/zap"

	"github.com/philipp01105/udplog/transport"
)

// UnbufferedWriter sends each message on the calling goroutine. Push
// returns only after the datagram has been handed to the socket.
type UnbufferedWriter struct {
	sender   transport.Sender
	stats    *Stats
	errorLog *zap.Logger
}

func newUnbufferedWriter(cfg UDPConfig, sender transport.Sender) *UnbufferedWriter {
	return &UnbufferedWriter{
		sender:   sender,
		stats:    NewStats(),
		errorLog: cfg.ErrorLog,
	}
}

// Push sends msg synchronously and returns the send error, if any.
func (w *UnbufferedWriter) Push(msg string) error {
	w.stats.IncrementEnqueued()
	if err := w.sender.Send([]byte(msg)); err != nil {
		w.stats.IncrementFailed()
		w.errorLog.Warn("send datagram", zap.Error(err), zap.Int("bytes", len(msg)))
		return err
	}
	w.stats.IncrementSent()
	return nil
}

// Stats returns a snapshot of the current statistics
func (w *UnbufferedWriter) Stats() Snapshot {
	return w.stats.GetSnapshot()
}

// Close closes the sender.
func (w *UnbufferedWriter) Close() error {
	return w.sender.Close()
}
