package writer

import "sync"

// Queue is an unbounded FIFO of formatted messages. Any number of
// goroutines may Enqueue; only the drain worker calls DrainAll.
//
// Once Close has been called Enqueue refuses new messages. The check and
// the append happen under the same lock, so a message is either visible
// to the drain that follows Close or rejected.
type Queue struct {
	mu     sync.Mutex
	items  []string
	closed bool
}

// Enqueue appends msg to the tail. It reports false, leaving the queue
// unchanged, after Close.
func (q *Queue) Enqueue(msg string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.items = append(q.items, msg)
	return true
}

// DrainAll removes and returns every queued message in FIFO order,
// leaving the queue empty.
func (q *Queue) DrainAll() []string {
	q.mu.Lock()
	items := q.items
	q.items = nil
	q.mu.Unlock()
	return items
}

// Close stops the queue from accepting messages. Queued messages stay
// until drained.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}

// Len returns the number of queued messages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
