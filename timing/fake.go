package timing

import (
	"time"
)

// FakeScheduler is a deterministic scheduler for tests. Time only moves when
// Advance is called, and due callbacks run synchronously on the calling
// goroutine in due-time order (FIFO on ties). It is not safe for concurrent
// use; tests drive everything from one goroutine.
type FakeScheduler struct {
	now     time.Time
	entries []*fakeEntry
	nextSeq int
}

type fakeEntry struct {
	due       time.Time
	interval  time.Duration
	fn        func()
	repeating bool
	cancelled bool
	seq       int
}

// NewFakeScheduler returns a fake scheduler starting at the Unix epoch.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{now: time.Unix(0, 0)}
}

func (s *FakeScheduler) Now() time.Time {
	return s.now
}

func (s *FakeScheduler) ScheduleOnce(delay time.Duration, fn func()) Handle {
	return s.add(delay, fn, false)
}

func (s *FakeScheduler) ScheduleRepeating(interval time.Duration, fn func()) Handle {
	return s.add(interval, fn, true)
}

func (s *FakeScheduler) add(d time.Duration, fn func(), repeating bool) Handle {
	e := &fakeEntry{
		due:       s.now.Add(d),
		interval:  d,
		fn:        fn,
		repeating: repeating,
		seq:       s.nextSeq,
	}
	s.nextSeq++
	s.entries = append(s.entries, e)
	return e
}

// Advance moves the fake time forward, running every callback that falls due
// along the way. Callbacks may schedule or cancel further work.
func (s *FakeScheduler) Advance(d time.Duration) {
	target := s.now.Add(d)
	for {
		e := s.nextDue(target)
		if e == nil {
			break
		}
		s.now = e.due
		if e.repeating {
			e.due = e.due.Add(e.interval)
		} else {
			e.cancelled = true
		}
		e.fn()
	}
	s.now = target
	s.compact()
}

// Pending reports the number of live (not yet cancelled) scheduled entries.
// Idempotence tests lean on this to prove no duplicate timers exist.
func (s *FakeScheduler) Pending() int {
	n := 0
	for _, e := range s.entries {
		if !e.cancelled {
			n++
		}
	}
	return n
}

func (s *FakeScheduler) nextDue(limit time.Time) *fakeEntry {
	var best *fakeEntry
	for _, e := range s.entries {
		if e.cancelled || e.due.After(limit) {
			continue
		}
		if best == nil || e.due.Before(best.due) || (e.due.Equal(best.due) && e.seq < best.seq) {
			best = e
		}
	}
	return best
}

func (s *FakeScheduler) compact() {
	live := s.entries[:0]
	for _, e := range s.entries {
		if !e.cancelled {
			live = append(live, e)
		}
	}
	s.entries = live
}

func (e *fakeEntry) Cancel() {
	e.cancelled = true
}
