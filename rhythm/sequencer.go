package rhythm

import (
	"sync"
)

// Trigger is the event the sequencer emits on every tick.
type Trigger struct {
	Beat  int
	Click int

	// Downbeat marks grid position (0,0), the first click of the measure.
	Downbeat bool

	// Accented is Downbeat gated by the accent toggle; it selects the
	// audible click preset.
	Accented bool

	// Total counts ticks since the last reset, for animation interpolation.
	Total uint64
}

// Sequencer layers a repeating beats x clicks grid on top of the tempo
// clock's ticks and tracks the current position within it.
type Sequencer struct {
	mu              sync.Mutex
	beatsPerMeasure int
	clicksPerBeat   int
	beat            int
	click           int
	total           uint64
	fresh           bool
	accentEnabled   bool
}

// NewSequencer creates a sequencer at position (0,0) with the accent
// enabled.
func NewSequencer(beatsPerMeasure, clicksPerBeat int) *Sequencer {
	s := &Sequencer{
		beatsPerMeasure: 4,
		clicksPerBeat:   1,
		fresh:           true,
		accentEnabled:   true,
	}
	s.SetBeatsPerMeasure(beatsPerMeasure)
	s.SetClicksPerBeat(clicksPerBeat)
	return s
}

// Tick advances the grid position and reports the resulting trigger. The
// first tick after a reset reports (0,0) without advancing, so the
// synchronous first beat of the clock lands on the downbeat.
func (s *Sequencer) Tick() Trigger {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fresh {
		s.fresh = false
	} else if s.click >= s.clicksPerBeat-1 {
		s.click = 0
		s.beat = (s.beat + 1) % s.beatsPerMeasure
	} else {
		s.click++
	}
	s.total++

	downbeat := s.beat == 0 && s.click == 0
	return Trigger{
		Beat:     s.beat,
		Click:    s.click,
		Downbeat: downbeat,
		Accented: downbeat && s.accentEnabled,
		Total:    s.total,
	}
}

// Reset moves the grid back to the first position.
func (s *Sequencer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// Position returns the current (beat, click) pair.
func (s *Sequencer) Position() (beat, click int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.beat, s.click
}

// SetBeatsPerMeasure changes the measure length and resets the grid.
// Values below 1 are rejected.
func (s *Sequencer) SetBeatsPerMeasure(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 {
		return
	}
	s.beatsPerMeasure = n
	s.resetLocked()
}

// SetClicksPerBeat changes the subdivision count and resets the grid.
// Values below 1 are rejected.
func (s *Sequencer) SetClicksPerBeat(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 {
		return
	}
	s.clicksPerBeat = n
	s.resetLocked()
}

// SetAccentEnabled toggles whether the downbeat is audibly accented. This
// gates the click preset only; grid logic is unaffected.
func (s *Sequencer) SetAccentEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accentEnabled = enabled
}

// AccentEnabled reports the accent toggle.
func (s *Sequencer) AccentEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accentEnabled
}

func (s *Sequencer) resetLocked() {
	s.beat = 0
	s.click = 0
	s.total = 0
	s.fresh = true
}
