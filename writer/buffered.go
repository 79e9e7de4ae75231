package writer

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/philipp01105/udplog/transport"
)

// BufferedWriter queues messages and sends them from a single background
// goroutine. Push never touches the network; the drain worker wakes every
// DrainInterval, takes the whole queue and sends it in order.
type BufferedWriter struct {
	queue        Queue
	stats        *Stats
	interval     time.Duration
	drainTimeout time.Duration
	errorLog     *zap.Logger
	done         chan struct{}
	wg           sync.WaitGroup
	closeOnce    sync.Once
	closeErr     error

	// sender is used only by the drain goroutine after construction.
	sender transport.Sender
}

// newBufferedWriter creates a buffered writer and starts its drain worker.
func newBufferedWriter(cfg UDPConfig, sender transport.Sender) *BufferedWriter {
	w := &BufferedWriter{
		stats:        NewStats(),
		interval:     cfg.DrainInterval,
		drainTimeout: cfg.DrainTimeout,
		errorLog:     cfg.ErrorLog,
		done:         make(chan struct{}),
		sender:       sender,
	}

	w.wg.Add(1)
	go w.run()

	return w
}

// Push enqueues msg and returns immediately.
func (w *BufferedWriter) Push(msg string) error {
	if !w.queue.Enqueue(msg) {
		w.stats.IncrementDropped()
		return ErrClosed
	}
	w.stats.IncrementEnqueued()
	return nil
}

// Pending returns the number of messages waiting for the next drain.
func (w *BufferedWriter) Pending() int {
	return w.queue.Len()
}

// Stats returns a snapshot of the current statistics
func (w *BufferedWriter) Stats() Snapshot {
	return w.stats.GetSnapshot()
}

// run is the drain worker loop
func (w *BufferedWriter) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.drain(time.Time{})
		case <-w.done:
			w.drain(time.Now().Add(w.drainTimeout))
			return
		}
	}
}

// drain sends every queued message. A send failure is logged and the
// message dropped; the rest of the batch is still attempted. A non-zero
// deadline stops the batch once passed and counts the remainder as
// dropped.
func (w *BufferedWriter) drain(deadline time.Time) {
	batch := w.queue.DrainAll()
	for i, msg := range batch {
		if !deadline.IsZero() && time.Now().After(deadline) {
			dropped := len(batch) - i
			w.stats.AddDropped(uint64(dropped))
			w.errorLog.Warn("drain timeout, dropping queued messages", zap.Int("dropped", dropped))
			return
		}
		w.send(msg)
	}
}

func (w *BufferedWriter) send(msg string) {
	if err := w.sender.Send([]byte(msg)); err != nil {
		w.stats.IncrementFailed()
		w.errorLog.Warn("send datagram", zap.Error(err), zap.Int("bytes", len(msg)))
		return
	}
	w.stats.IncrementSent()
}

// Close stops the drain worker after a final drain bounded by the drain
// timeout, waits for it to exit and closes the sender. Messages pushed
// after Close are rejected with ErrClosed.
func (w *BufferedWriter) Close() error {
	w.closeOnce.Do(func() {
		// The queue refuses Push before the worker is told to stop, so
		// the worker's final drain sees every accepted message.
		w.queue.Close()
		close(w.done)
		w.wg.Wait()

		w.closeErr = w.sender.Close()
		_ = w.errorLog.Sync()
	})
	return w.closeErr
}
