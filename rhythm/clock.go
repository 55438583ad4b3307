package rhythm

import (
	"math"
	"sync"
	"time"

	"github.com/robmorgan/cadence/logger"
	"github.com/robmorgan/cadence/timing"
)

const (
	// MinBPM and MaxBPM bound the accepted tempo range. Values outside are
	// rejected silently.
	MinBPM = 30
	MaxBPM = 300

	// tapWindowCap bounds the number of remembered tap timestamps.
	tapWindowCap = 5

	// tapStale: a gap longer than this between taps starts a fresh session.
	tapStale = 3000 * time.Millisecond
)

// Clock is the tempo clock: it owns the tempo state and exactly one live
// repeating tick source at any moment. Every parameter change that affects
// the tick interval cancels the old source before installing a new one, and
// each installed source carries a generation number so a stale handle that
// fires late can never produce a double tick.
type Clock struct {
	mu     sync.Mutex
	sched  timing.Scheduler
	bpm    int
	subdiv int

	running bool
	gen     uint64
	handle  timing.Handle
	onTick  func()

	taps []time.Time
}

// NewClock creates a stopped clock at 120 bpm with quarter-note clicks.
func NewClock(sched timing.Scheduler) *Clock {
	return &Clock{
		sched:  sched,
		bpm:    120,
		subdiv: 1,
	}
}

// OnTick registers the callback re-entered on every tick. Must be set
// before Start.
func (c *Clock) OnTick(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onTick = fn
}

// Start fires one tick synchronously (the first beat sounds with zero
// latency) and installs the recurring tick source. Starting a running clock
// is a no-op.
func (c *Clock) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.gen++
	gen := c.gen
	interval := c.intervalLocked()
	fn := c.onTick
	c.handle = c.sched.ScheduleRepeating(interval, func() {
		c.tick(gen)
	})
	c.mu.Unlock()

	logger.GetProjectLogger().Debugf("tempo clock started: %d bpm, tick every %v", c.BPM(), interval)
	if fn != nil {
		fn()
	}
}

// Stop cancels the tick source. Idempotent.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.running = false
	c.gen++
	c.handle.Cancel()
	c.handle = nil
}

// Running reports whether the clock is ticking.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// BPM returns the current tempo.
func (c *Clock) BPM() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bpm
}

// SetBPM applies a new tempo. Out-of-range values are rejected without any
// state change. A running clock is seamlessly re-timed.
func (c *Clock) SetBPM(bpm int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setBPMLocked(bpm)
}

// Subdivision returns the number of clicks per beat.
func (c *Clock) Subdivision() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subdiv
}

// SetSubdivision changes the clicks-per-beat count. Values below 1 are
// rejected. A running clock is re-timed.
func (c *Clock) SetSubdivision(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 1 {
		return
	}
	c.subdiv = n
	c.rearmLocked()
}

// SetNoteUnit is SetSubdivision in note-value terms.
func (c *Clock) SetNoteUnit(u NoteUnit) {
	c.SetSubdivision(u.ClicksPerBeat())
}

// Rearm replaces the current tick source with a fresh one at the current
// interval. Used by callers whose own parameter changes (e.g. the meter)
// must restart the tick phase without touching the tempo state.
func (c *Clock) Rearm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rearmLocked()
}

// Interval returns the current tick interval, always recomputed from the
// tempo state: 60000 ms / bpm / subdivision.
func (c *Clock) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.intervalLocked()
}

// Tap records a tap-tempo timestamp. Once two or more taps are in the
// window the tempo inferred from the mean inter-tap gap is applied through
// the same validated path as SetBPM.
func (c *Clock) Tap() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.sched.Now()
	if len(c.taps) > 0 && now.Sub(c.taps[len(c.taps)-1]) > tapStale {
		c.taps = c.taps[:0]
	}
	c.taps = append(c.taps, now)
	if len(c.taps) > tapWindowCap {
		c.taps = c.taps[1:]
	}
	if len(c.taps) < 2 {
		return
	}

	span := c.taps[len(c.taps)-1].Sub(c.taps[0])
	meanGapMs := float64(span.Microseconds()) / 1000.0 / float64(len(c.taps)-1)
	c.setBPMLocked(int(math.Round(60000.0 / meanGapMs)))
}

func (c *Clock) setBPMLocked(bpm int) {
	if bpm < MinBPM || bpm > MaxBPM {
		return
	}
	c.bpm = bpm
	c.rearmLocked()
}

func (c *Clock) rearmLocked() {
	if !c.running {
		return
	}
	c.handle.Cancel()
	c.gen++
	gen := c.gen
	c.handle = c.sched.ScheduleRepeating(c.intervalLocked(), func() {
		c.tick(gen)
	})
}

func (c *Clock) intervalLocked() time.Duration {
	ms := 60000.0 / float64(c.bpm) / float64(c.subdiv)
	return time.Duration(ms * float64(time.Millisecond))
}

func (c *Clock) tick(gen uint64) {
	c.mu.Lock()
	if !c.running || gen != c.gen {
		c.mu.Unlock()
		return
	}
	fn := c.onTick
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}
