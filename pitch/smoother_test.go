package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmootherMeansWindow(t *testing.T) {
	t.Parallel()

	s := NewSmoother()
	var reading Reading
	var ok bool
	for _, f := range []float64{440, 442, 438, 441, 439} {
		reading, ok = s.Observe(f, true)
		require.True(t, ok)
	}

	assert.Equal(t, 440.0, reading.Frequency)
	assert.Equal(t, "A", reading.Class)
	assert.Equal(t, "A4", reading.Note.String())
	assert.Equal(t, 5, s.Len())
}

func TestSmootherEvictsOldest(t *testing.T) {
	t.Parallel()

	s := NewSmoother()
	for _, f := range []float64{100, 440, 440, 440, 440, 440} {
		s.Observe(f, true)
	}

	// the initial 100 Hz estimate fell out of the window
	reading, ok := s.Observe(440, true)
	require.True(t, ok)
	assert.Equal(t, 440.0, reading.Frequency)
}

func TestSmootherClearsOnAbsent(t *testing.T) {
	t.Parallel()

	s := NewSmoother()
	s.Observe(440, true)
	s.Observe(442, true)

	_, ok := s.Observe(0, false)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())

	// the next estimate alone becomes the new mean
	reading, ok := s.Observe(330, true)
	require.True(t, ok)
	assert.Equal(t, 330.0, reading.Frequency)
	assert.Equal(t, "E", reading.Class)
}
