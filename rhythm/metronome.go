// Package rhythm implements the metronome engine: a tempo clock computing
// drift-free tick intervals from {bpm, subdivision}, and a beat sequencer
// layering a beats x clicks grid on top of the ticks.
package rhythm

import (
	"sync"
	"time"

	"github.com/robmorgan/cadence/sink"
	"github.com/robmorgan/cadence/timing"
)

// Click presets. The downbeat gets a higher, louder, slightly longer click.
const (
	accentFreq     = 1200.0
	accentDuration = 50 * time.Millisecond
	accentVolume   = 0.3

	clickFreq     = 800.0
	clickDuration = 30 * time.Millisecond
	clickVolume   = 0.2
)

// Metronome wires a tempo Clock into a beat Sequencer and dispatches one
// click per tick to the audio sink.
type Metronome struct {
	mu           sync.Mutex
	clock        *Clock
	seq          *Sequencer
	out          sink.Sink
	sig          TimeSignature
	unit         NoteUnit
	soundEnabled bool
	onTrigger    func(Trigger)
}

// Snapshot is the read-only state the UI layer renders after each
// transition.
type Snapshot struct {
	Running       bool
	BPM           int
	TimeSignature TimeSignature
	NoteUnit      NoteUnit
	Beat          int
	Click         int
	Interval      time.Duration
	SoundEnabled  bool
	AccentEnabled bool
}

// NewMetronome creates a stopped 4/4 quarter-note metronome at 120 bpm.
func NewMetronome(sched timing.Scheduler, out sink.Sink) *Metronome {
	m := &Metronome{
		clock:        NewClock(sched),
		seq:          NewSequencer(4, 1),
		out:          out,
		sig:          FourFour,
		unit:         Quarter,
		soundEnabled: true,
	}
	m.clock.OnTick(m.tick)
	return m
}

// Start resets the grid and starts the clock; the first click sounds
// immediately. No-op when already running.
func (m *Metronome) Start() {
	if m.clock.Running() {
		return
	}
	m.seq.Reset()
	m.clock.Start()
}

// Stop halts the clock. The grid position is kept so a restart resumes a
// fresh measure via Start's reset. Idempotent.
func (m *Metronome) Stop() {
	m.clock.Stop()
}

// Running reports whether the metronome is ticking.
func (m *Metronome) Running() bool {
	return m.clock.Running()
}

// SetBPM changes the tempo. The grid position is preserved; only the tick
// interval is recomputed.
func (m *Metronome) SetBPM(bpm int) {
	m.clock.SetBPM(bpm)
}

// Tap records a tap-tempo timestamp.
func (m *Metronome) Tap() {
	m.clock.Tap()
}

// SetTimeSignature changes the meter, resetting the grid to the first
// position of the new shape.
func (m *Metronome) SetTimeSignature(sig TimeSignature) {
	m.mu.Lock()
	m.sig = sig
	m.mu.Unlock()
	m.seq.SetBeatsPerMeasure(sig.BeatsPerMeasure())
	m.clock.Rearm()
}

// SetNoteUnit changes the click subdivision, re-timing the clock and
// resetting the grid.
func (m *Metronome) SetNoteUnit(unit NoteUnit) {
	m.mu.Lock()
	m.unit = unit
	m.mu.Unlock()
	m.seq.SetClicksPerBeat(unit.ClicksPerBeat())
	m.clock.SetSubdivision(unit.ClicksPerBeat())
}

// SetAccentEnabled toggles the audible downbeat accent.
func (m *Metronome) SetAccentEnabled(enabled bool) {
	m.seq.SetAccentEnabled(enabled)
}

// SetSoundEnabled toggles click playback without touching grid logic.
func (m *Metronome) SetSoundEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.soundEnabled = enabled
}

// OnTrigger registers the redraw callback invoked after every tick.
func (m *Metronome) OnTrigger(fn func(Trigger)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onTrigger = fn
}

// Snapshot returns the current state for display.
func (m *Metronome) Snapshot() Snapshot {
	m.mu.Lock()
	sig, unit, sound := m.sig, m.unit, m.soundEnabled
	m.mu.Unlock()
	beat, click := m.seq.Position()
	return Snapshot{
		Running:       m.clock.Running(),
		BPM:           m.clock.BPM(),
		TimeSignature: sig,
		NoteUnit:      unit,
		Beat:          beat,
		Click:         click,
		Interval:      m.clock.Interval(),
		SoundEnabled:  sound,
		AccentEnabled: m.seq.AccentEnabled(),
	}
}

func (m *Metronome) tick() {
	trig := m.seq.Tick()

	m.mu.Lock()
	sound := m.soundEnabled
	fn := m.onTrigger
	m.mu.Unlock()

	if sound {
		if trig.Accented {
			m.out.Play(accentFreq, accentDuration, sink.Decay(accentVolume))
		} else {
			m.out.Play(clickFreq, clickDuration, sink.Decay(clickVolume))
		}
	}
	if fn != nil {
		fn(trig)
	}
}
