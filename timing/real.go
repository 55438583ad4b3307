package timing

import (
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// RealScheduler schedules callbacks against an injected clock.Clock. Each
// scheduled callback runs on its own goroutine; components serialize
// re-entry through their own locks and a generation check (see rhythm.Clock),
// so a handle cancelled mid-flight can never mutate stale state.
type RealScheduler struct {
	clock clock.Clock
}

// NewRealScheduler returns a scheduler backed by the system clock.
func NewRealScheduler() *RealScheduler {
	return &RealScheduler{clock: clock.RealClock{}}
}

// NewSchedulerWithClock returns a scheduler backed by the given clock.
func NewSchedulerWithClock(c clock.Clock) *RealScheduler {
	return &RealScheduler{clock: c}
}

func (s *RealScheduler) Now() time.Time {
	return s.clock.Now()
}

func (s *RealScheduler) ScheduleOnce(delay time.Duration, fn func()) Handle {
	h := newRealHandle()
	t := s.clock.NewTimer(delay)
	go func() {
		defer t.Stop()
		select {
		case <-t.C():
			h.run(fn)
		case <-h.stop:
		}
	}()
	return h
}

func (s *RealScheduler) ScheduleRepeating(interval time.Duration, fn func()) Handle {
	h := newRealHandle()
	base := s.clock.Now()
	t := s.clock.NewTimer(interval)
	go func() {
		defer t.Stop()
		for n := int64(1); ; n++ {
			select {
			case <-t.C():
				h.run(fn)
				// re-arm relative to the installation instant rather than
				// "now", so callback latency is corrected on the next tick
				next := base.Add(time.Duration(n+1) * interval)
				t.Reset(next.Sub(s.clock.Now()))
			case <-h.stop:
				return
			}
		}
	}()
	return h
}

type realHandle struct {
	mu        sync.Mutex
	cancelled bool
	stop      chan struct{}
}

func newRealHandle() *realHandle {
	return &realHandle{stop: make(chan struct{})}
}

func (h *realHandle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancelled {
		return
	}
	h.cancelled = true
	close(h.stop)
}

func (h *realHandle) run(fn func()) {
	h.mu.Lock()
	if h.cancelled {
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()
	fn()
}
