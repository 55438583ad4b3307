package pitch

import (
	"github.com/robmorgan/cadence/music"
)

// historyCap bounds the rolling window of recent frequency estimates.
const historyCap = 5

// Reading is one smoothed output of the analyzer pipeline: the mean of the
// current window mapped onto the nearest pitch class.
type Reading struct {
	Class     string
	Note      music.Note
	InRange   bool
	Frequency float64
}

// Smoother averages successive frequency estimates over a small rolling
// window to suppress jitter. An absent estimate clears the window, so the
// average never blends across a detected silence.
type Smoother struct {
	history []float64
}

// NewSmoother returns an empty smoother.
func NewSmoother() *Smoother {
	return &Smoother{history: make([]float64, 0, historyCap)}
}

// Observe feeds one estimate into the window. With ok=false the window is
// cleared and no reading is produced; otherwise the smoothed reading over
// the updated window is returned.
func (s *Smoother) Observe(freq float64, ok bool) (Reading, bool) {
	if !ok {
		s.Reset()
		return Reading{}, false
	}

	if len(s.history) == historyCap {
		s.history = s.history[1:]
	}
	s.history = append(s.history, freq)

	mean := 0.0
	for _, f := range s.history {
		mean += f
	}
	mean /= float64(len(s.history))

	note, inRange := music.NoteForFrequency(mean)
	return Reading{
		Class:     music.PitchClassForFrequency(mean),
		Note:      note,
		InRange:   inRange,
		Frequency: mean,
	}, true
}

// Reset drops all accumulated history.
func (s *Smoother) Reset() {
	s.history = s.history[:0]
}

// Len reports the current window size.
func (s *Smoother) Len() int {
	return len(s.history)
}
