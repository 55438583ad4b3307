package rhythm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robmorgan/cadence/timing"
)

func TestClockInterval(t *testing.T) {
	t.Parallel()

	c := NewClock(timing.NewFakeScheduler())
	c.SetBPM(120)
	c.SetSubdivision(1)
	assert.Equal(t, 500*time.Millisecond, c.Interval())

	c.SetBPM(60)
	c.SetSubdivision(2)
	assert.Equal(t, 500*time.Millisecond, c.Interval())

	c.SetBPM(128)
	c.SetSubdivision(1)
	assert.Equal(t, 468750*time.Microsecond, c.Interval())
}

func TestClockRejectsOutOfRangeBPM(t *testing.T) {
	t.Parallel()

	c := NewClock(timing.NewFakeScheduler())
	c.SetBPM(120)

	c.SetBPM(29)
	assert.Equal(t, 120, c.BPM())
	c.SetBPM(301)
	assert.Equal(t, 120, c.BPM())
	c.SetBPM(0)
	assert.Equal(t, 120, c.BPM())

	c.SetSubdivision(0)
	assert.Equal(t, 1, c.Subdivision())
}

func TestClockStartFiresSynchronousFirstTick(t *testing.T) {
	t.Parallel()

	sched := timing.NewFakeScheduler()
	c := NewClock(sched)
	ticks := 0
	c.OnTick(func() { ticks++ })

	c.Start()
	assert.Equal(t, 1, ticks, "first tick must fire without waiting for the timer")

	sched.Advance(500 * time.Millisecond)
	assert.Equal(t, 2, ticks)
}

func TestClockStartIsIdempotent(t *testing.T) {
	t.Parallel()

	sched := timing.NewFakeScheduler()
	c := NewClock(sched)
	ticks := 0
	c.OnTick(func() { ticks++ })

	c.Start()
	c.Start()
	assert.Equal(t, 1, sched.Pending(), "double start must not double-schedule")
	assert.Equal(t, 1, ticks, "second start must not replay the first beat")

	sched.Advance(1 * time.Second)
	assert.Equal(t, 3, ticks)
}

func TestClockStopCancelsTicks(t *testing.T) {
	t.Parallel()

	sched := timing.NewFakeScheduler()
	c := NewClock(sched)
	ticks := 0
	c.OnTick(func() { ticks++ })

	c.Start()
	sched.Advance(time.Second)
	require.Equal(t, 3, ticks)

	c.Stop()
	c.Stop() // idempotent
	assert.False(t, c.Running())
	assert.Equal(t, 0, sched.Pending())

	sched.Advance(5 * time.Second)
	assert.Equal(t, 3, ticks, "stale handles must not fire after stop")
}

func TestClockLiveBPMChangeRetimes(t *testing.T) {
	t.Parallel()

	sched := timing.NewFakeScheduler()
	c := NewClock(sched)
	ticks := 0
	c.OnTick(func() { ticks++ })

	c.Start() // 120 bpm, tick every 500ms; synchronous first tick
	sched.Advance(500 * time.Millisecond)
	require.Equal(t, 2, ticks)

	c.SetBPM(60) // re-arm at 1000ms
	assert.Equal(t, 1, sched.Pending(), "old tick source must be replaced, not duplicated")

	sched.Advance(999 * time.Millisecond)
	assert.Equal(t, 2, ticks)
	sched.Advance(1 * time.Millisecond)
	assert.Equal(t, 3, ticks)
}

func TestClockTapTempo(t *testing.T) {
	t.Parallel()

	sched := timing.NewFakeScheduler()
	c := NewClock(sched)

	// taps at 0, 500, 1000, 1500 ms infer 120 bpm
	c.SetBPM(60)
	c.Tap()
	for i := 0; i < 3; i++ {
		sched.Advance(500 * time.Millisecond)
		c.Tap()
	}
	assert.Equal(t, 120, c.BPM())
}

func TestClockTapStaleSessionResets(t *testing.T) {
	t.Parallel()

	sched := timing.NewFakeScheduler()
	c := NewClock(sched)
	c.SetBPM(60)

	c.Tap()
	sched.Advance(4 * time.Second) // beyond the 3s staleness cutoff
	c.Tap()
	assert.Equal(t, 60, c.BPM(), "a stale tap must start a new session, not infer 15 bpm")

	sched.Advance(250 * time.Millisecond)
	c.Tap()
	assert.Equal(t, 240, c.BPM())
}

func TestClockTapOutOfRangeDiscarded(t *testing.T) {
	t.Parallel()

	sched := timing.NewFakeScheduler()
	c := NewClock(sched)
	c.SetBPM(90)

	// 100ms gaps would be 600 bpm; outside [30,300], so ignored
	c.Tap()
	sched.Advance(100 * time.Millisecond)
	c.Tap()
	assert.Equal(t, 90, c.BPM())
}

func TestClockTapWindowIsBounded(t *testing.T) {
	t.Parallel()

	sched := timing.NewFakeScheduler()
	c := NewClock(sched)

	// six taps at a slow pace followed by four at a fast one: only the most
	// recent five timestamps may influence the estimate
	c.Tap()
	for i := 0; i < 5; i++ {
		sched.Advance(600 * time.Millisecond)
		c.Tap()
	}
	for i := 0; i < 4; i++ {
		sched.Advance(300 * time.Millisecond)
		c.Tap()
	}
	assert.Equal(t, 200, c.BPM())
}
