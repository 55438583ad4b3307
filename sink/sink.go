// Package sink abstracts the audio-output capability: a sink accepts a
// (frequency, duration, envelope) triple and plays it asynchronously.
package sink

import (
	"time"

	"github.com/fogleman/ease"
)

// Sink plays a tone. Implementations must return promptly; playback happens
// in the background.
type Sink interface {
	Play(freq float64, duration time.Duration, env Envelope)
}

// Envelope shapes the amplitude of a tone over its duration. Curve maps
// playback progress [0,1] to decay progress [0,1]; nil means constant
// amplitude.
type Envelope struct {
	Amplitude float64
	Curve     func(float64) float64
}

// Decay returns a percussive envelope: full amplitude at onset, eased down
// to silence by the end.
func Decay(amplitude float64) Envelope {
	return Envelope{Amplitude: amplitude, Curve: ease.OutQuart}
}

// Sustain returns a flat envelope.
func Sustain(amplitude float64) Envelope {
	return Envelope{Amplitude: amplitude}
}

// Gain returns the amplitude multiplier at playback progress p.
func (e Envelope) Gain(p float64) float64 {
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	if e.Curve == nil {
		return e.Amplitude
	}
	return e.Amplitude * (1 - e.Curve(p))
}

// Null is a sink that discards everything. Used in tests and when sound is
// unavailable.
type Null struct{}

func (Null) Play(freq float64, duration time.Duration, env Envelope) {}

// Recorder captures plays for assertions in tests.
type Recorder struct {
	Plays []RecordedPlay
}

// RecordedPlay is one captured Play call.
type RecordedPlay struct {
	Freq     float64
	Duration time.Duration
	Env      Envelope
}

func (r *Recorder) Play(freq float64, duration time.Duration, env Envelope) {
	r.Plays = append(r.Plays, RecordedPlay{Freq: freq, Duration: duration, Env: env})
}
