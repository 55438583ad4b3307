package sink

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
	"github.com/gruntwork-io/go-commons/errors"

	"github.com/robmorgan/cadence/logger"
)

// ToneSink synthesizes sine tones through the system speaker.
type ToneSink struct {
	sr beep.SampleRate
}

// NewToneSink initializes the speaker at the given sample rate. The speaker
// buffer is kept short so clicks land close to their scheduled instant.
func NewToneSink(sampleRate int) (*ToneSink, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(50*time.Millisecond)); err != nil {
		return nil, errors.WithStackTrace(err)
	}
	return &ToneSink{sr: sr}, nil
}

// Play synthesizes a sine tone at freq for the given duration, shaped by the
// envelope. Returns immediately; the speaker mixes in the background.
func (s *ToneSink) Play(freq float64, duration time.Duration, env Envelope) {
	tone, err := generators.SinTone(s.sr, int(math.Round(freq)))
	if err != nil {
		logger.GetProjectLogger().Debugf("cannot synthesize %0.1f Hz tone: %v", freq, err)
		return
	}
	n := s.sr.N(duration)
	speaker.Play(&shapedTone{s: beep.Take(n, tone), total: n, env: env})
}

// shapedTone applies an amplitude envelope across a finite streamer.
type shapedTone struct {
	s     beep.Streamer
	total int
	pos   int
	env   Envelope
}

func (t *shapedTone) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := t.env.Gain(float64(t.pos+i) / float64(t.total))
		samples[i][0] *= g
		samples[i][1] *= g
	}
	t.pos += n
	return n, ok
}

func (t *shapedTone) Err() error {
	return t.s.Err()
}
