package pitch

import (
	"sync"
	"time"

	"github.com/robmorgan/cadence/logger"
	"github.com/robmorgan/cadence/timing"
)

const (
	// DefaultWindowSize is the number of samples analyzed per refresh.
	DefaultWindowSize = 2048

	// DefaultRefresh caps the analysis rate at roughly 10 Hz; autocorrelation
	// is too expensive to run per audio callback.
	DefaultRefresh = 100 * time.Millisecond
)

// Capture is the audio-capture capability the analyzer pulls samples from.
type Capture interface {
	// Read fills buf with the most recent time-domain samples.
	Read(buf []float64) error

	// SampleRate returns the capture sample rate in Hz.
	SampleRate() float64

	// Close releases the capture session.
	Close() error
}

// Snapshot is the read-only state the UI layer renders.
type Snapshot struct {
	Running   bool
	Stable    bool
	Class     string
	Note      string
	Frequency float64
}

// Analyzer runs the live tuner session: a repeating refresh pulls a sample
// window from the capture, estimates its pitch and smooths successive
// estimates into a stable reading.
type Analyzer struct {
	mu        sync.Mutex
	sched     timing.Scheduler
	estimator *Estimator
	smoother  *Smoother
	window    []float64

	capture Capture
	running bool
	gen     uint64
	handle  timing.Handle

	current Snapshot
}

// NewAnalyzer creates an analyzer scheduling its refreshes on sched.
func NewAnalyzer(sched timing.Scheduler) *Analyzer {
	return &Analyzer{
		sched:     sched,
		estimator: NewEstimator(),
		smoother:  NewSmoother(),
		window:    make([]float64, DefaultWindowSize),
	}
}

// SetNoiseFloor adjusts the estimator sensitivity.
func (a *Analyzer) SetNoiseFloor(floor float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.estimator.NoiseFloor = floor
}

// Start begins analyzing the given capture session. Starting an already
// running analyzer is a no-op; the existing refresh keeps its schedule.
func (a *Analyzer) Start(c Capture) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running {
		return
	}

	a.capture = c
	a.running = true
	a.smoother.Reset()
	a.current = Snapshot{Running: true}
	a.gen++
	gen := a.gen
	a.handle = a.sched.ScheduleRepeating(DefaultRefresh, func() {
		a.refresh(gen)
	})

	logger.GetProjectLogger().Debugf("pitch analyzer started (refresh=%v window=%d)", DefaultRefresh, len(a.window))
}

// Stop cancels the refresh and resets smoothing state. Idempotent. The
// capture session stays open; it belongs to the caller.
func (a *Analyzer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running {
		return
	}
	a.running = false
	a.gen++
	a.handle.Cancel()
	a.handle = nil
	a.capture = nil
	a.smoother.Reset()
	a.current = Snapshot{}
}

// Running reports whether a session is active.
func (a *Analyzer) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Snapshot returns the latest smoothed reading.
func (a *Analyzer) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

func (a *Analyzer) refresh(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running || gen != a.gen {
		return
	}

	if err := a.capture.Read(a.window); err != nil {
		// capture not warmed up yet, or a transient device hiccup; keep the
		// session alive and try again on the next refresh
		a.smoother.Reset()
		a.current = Snapshot{Running: true}
		return
	}

	freq, ok := a.estimator.Estimate(a.window, a.capture.SampleRate())
	reading, stable := a.smoother.Observe(freq, ok)
	if !stable {
		a.current = Snapshot{Running: true}
		return
	}

	a.current = Snapshot{
		Running:   true,
		Stable:    true,
		Class:     reading.Class,
		Frequency: reading.Frequency,
	}
	if reading.InRange {
		a.current.Note = reading.Note.String()
	}
}
