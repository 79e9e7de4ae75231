package writer

import "go.uber.org/multierr"

// MultiWriter sends every message to several writers, e.g. a buffered
// UDP writer for the collector plus an unbuffered one for a local agent.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a new multi-writer
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Push hands msg to every writer. One writer failing does not stop the
// others; all errors are combined.
func (m *MultiWriter) Push(msg string) error {
	var err error
	for _, w := range m.writers {
		err = multierr.Append(err, w.Push(msg))
	}
	return err
}

// Close closes all writers
func (m *MultiWriter) Close() error {
	var err error
	for _, w := range m.writers {
		err = multierr.Append(err, w.Close())
	}
	return err
}

// Stats sums the counters of every child writer that exposes them.
func (m *MultiWriter) Stats() Snapshot {
	var total Snapshot
	for _, w := range m.writers {
		if sp, ok := w.(StatsProvider); ok {
			total = total.add(sp.Stats())
		}
	}
	return total
}
