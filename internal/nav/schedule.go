package nav

import (
	"sync"
	"time"
)

// CancelFunc cancels a deferred focus application. Calling it after the
// callback has run is a no-op.
type CancelFunc func()

// Scheduler defers a focus side effect by one rendering frame. The engine
// keeps at most one deferral outstanding, canceling the previous one before
// registering a new one.
type Scheduler interface {
	Defer(fn func()) CancelFunc
}

// DefaultFrameInterval approximates one rendering frame.
const DefaultFrameInterval = 16 * time.Millisecond

// FrameScheduler defers callbacks on a timer. The zero value uses
// DefaultFrameInterval.
type FrameScheduler struct {
	Interval time.Duration
}

// Defer runs fn after one frame interval unless canceled first.
func (s FrameScheduler) Defer(fn func()) CancelFunc {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	t := time.AfterFunc(interval, fn)
	return func() { t.Stop() }
}

// ManualScheduler holds a single pending callback until Flush is called.
// The UI event loop flushes it on its next frame message; tests flush it
// directly. The zero value is ready to use.
type ManualScheduler struct {
	mu      sync.Mutex
	pending func()
	gen     uint64
}

// Defer replaces any pending callback with fn.
func (s *ManualScheduler) Defer(fn func()) CancelFunc {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	gen := s.gen
	s.pending = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen == gen {
			s.pending = nil
		}
	}
}

// Pending reports whether a callback is waiting for Flush.
func (s *ManualScheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Flush runs the pending callback, if any.
func (s *ManualScheduler) Flush() {
	s.mu.Lock()
	fn := s.pending
	s.pending = nil
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}
