package layout

import (
	"sync"
	"time"

	"github.com/gbtux/teammanager/internal/domain"
)

// DefaultQuietPeriod is how long positions must stay unchanged before
// dependency paths are recomputed.
const DefaultQuietPeriod = 100 * time.Millisecond

// Settler debounces position snapshots. Each Notify restarts the quiet
// period; when it elapses the callback runs once with the latest snapshot.
// A timer superseded by a newer Notify is discarded.
type Settler struct {
	mu      sync.Mutex
	quiet   time.Duration
	fn      func(map[string]domain.FeaturePosition)
	timer   *time.Timer
	pending map[string]domain.FeaturePosition
	gen     uint64
	stopped bool
}

func NewSettler(quiet time.Duration, fn func(map[string]domain.FeaturePosition)) *Settler {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Settler{quiet: quiet, fn: fn}
}

// Notify schedules fn for snapshot, replacing any pending snapshot.
func (s *Settler) Notify(snapshot map[string]domain.FeaturePosition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.gen++
	gen := s.gen
	s.pending = snapshot
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.quiet, func() { s.fire(gen) })
}

func (s *Settler) fire(gen uint64) {
	s.mu.Lock()
	if s.stopped || gen != s.gen || s.pending == nil {
		s.mu.Unlock()
		return
	}
	snapshot := s.pending
	s.pending = nil
	s.mu.Unlock()

	s.fn(snapshot)
}

// Flush runs fn now with the pending snapshot, if any, instead of waiting
// for the quiet period. It reports whether fn ran.
func (s *Settler) Flush() bool {
	s.mu.Lock()
	if s.stopped || s.pending == nil {
		s.mu.Unlock()
		return false
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	snapshot := s.pending
	s.pending = nil
	s.mu.Unlock()

	s.fn(snapshot)
	return true
}

// Stop drops any pending snapshot; later Notify calls are ignored.
func (s *Settler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
	}
}
