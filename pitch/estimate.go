// Package pitch turns raw sample buffers into smoothed musical-note
// estimates using time-domain autocorrelation.
package pitch

import (
	"math"
)

const (
	// DefaultNoiseFloor is the RMS level below which a buffer is considered
	// too quiet to carry a pitched signal.
	DefaultNoiseFloor = 0.002

	// MinFrequency and MaxFrequency bound the musical band searched for a
	// correlation peak.
	MinFrequency = 50.0
	MaxFrequency = 1000.0
)

// Estimator detects the fundamental frequency of a sample buffer. The zero
// value is not usable; construct with NewEstimator.
type Estimator struct {
	// NoiseFloor is the RMS gate. Exposed so a caller can trade sensitivity
	// against noise rejection.
	NoiseFloor float64
}

// NewEstimator returns an estimator with the default noise floor.
func NewEstimator() *Estimator {
	return &Estimator{NoiseFloor: DefaultNoiseFloor}
}

// Estimate returns the detected fundamental frequency of buf in Hz, or
// ok=false when the buffer holds no usable pitch: too quiet, no correlation
// peak, or a peak outside the musical band.
func (e *Estimator) Estimate(buf []float64, sampleRate float64) (float64, bool) {
	if len(buf) == 0 || rms(buf) < e.NoiseFloor {
		return 0, false
	}

	minLag := int(sampleRate / MaxFrequency)
	maxLag := int(sampleRate / MinFrequency)

	bestLag := 0
	maxCorr := 0.0
	for lag := minLag; lag <= maxLag; lag++ {
		sum := 0.0
		for i := 0; i+lag < len(buf); i++ {
			sum += buf[i] * buf[i+lag]
		}
		// strictly greater keeps the smallest winning lag on ties, i.e. the
		// highest candidate frequency
		if sum > maxCorr {
			maxCorr = sum
			bestLag = lag
		}
	}

	if bestLag == 0 {
		return 0, false
	}

	freq := sampleRate / float64(bestLag)
	if freq < MinFrequency || freq > MaxFrequency {
		return 0, false
	}
	return freq, true
}

// Estimate runs a one-off estimation with the default noise floor.
func Estimate(buf []float64, sampleRate float64) (float64, bool) {
	return NewEstimator().Estimate(buf, sampleRate)
}

func rms(buf []float64) float64 {
	sum := 0.0
	for _, x := range buf {
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(buf)))
}
