package writer

import (
	"errors"
	"sync"
	"time"
)

var errInjected = errors.New("injected send failure")

// fakeSender records send attempts and can fail or stall on demand.
type fakeSender struct {
	mu       sync.Mutex
	attempts []string
	sent     []string
	failOn   map[int]bool // 1-based attempt numbers
	delay    time.Duration
	closed   bool
}

func (s *fakeSender) Send(payload []byte) error {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = append(s.attempts, string(payload))
	if s.failOn[len(s.attempts)] {
		return errInjected
	}
	s.sent = append(s.sent, string(payload))
	return nil
}

func (s *fakeSender) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

func (s *fakeSender) Sent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}

func (s *fakeSender) Attempts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.attempts...)
}

func (s *fakeSender) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
