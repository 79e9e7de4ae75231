package writer

import "sync/atomic"

// Stats tracks writer statistics
type Stats struct {
	// EnqueuedTotal counts messages accepted by Push
	EnqueuedTotal uint64
	// SentTotal counts datagrams handed to the socket without error
	SentTotal uint64
	// FailedTotal counts send attempts that returned an error
	FailedTotal uint64
	// DroppedTotal counts messages discarded without a send attempt
	DroppedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementEnqueued atomically increments the enqueued counter
func (s *Stats) IncrementEnqueued() {
	atomic.AddUint64(&s.EnqueuedTotal, 1)
}

// IncrementSent atomically increments the sent counter
func (s *Stats) IncrementSent() {
	atomic.AddUint64(&s.SentTotal, 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// IncrementDropped atomically increments the dropped counter
func (s *Stats) IncrementDropped() {
	atomic.AddUint64(&s.DroppedTotal, 1)
}

// AddDropped atomically adds n to the dropped counter
func (s *Stats) AddDropped(n uint64) {
	atomic.AddUint64(&s.DroppedTotal, n)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Enqueued uint64
	Sent     uint64
	Failed   uint64
	Dropped  uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Enqueued: atomic.LoadUint64(&s.EnqueuedTotal),
		Sent:     atomic.LoadUint64(&s.SentTotal),
		Failed:   atomic.LoadUint64(&s.FailedTotal),
		Dropped:  atomic.LoadUint64(&s.DroppedTotal),
	}
}

// StatsProvider is implemented by writers that expose counters. Both UDP
// writers and MultiWriter implement it.
type StatsProvider interface {
	Stats() Snapshot
}

// add returns the field-wise sum of s and o.
func (s Snapshot) add(o Snapshot) Snapshot {
	return Snapshot{
		Enqueued: s.Enqueued + o.Enqueued,
		Sent:     s.Sent + o.Sent,
		Failed:   s.Failed + o.Failed,
		Dropped:  s.Dropped + o.Dropped,
	}
}
