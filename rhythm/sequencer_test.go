package rhythm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencerFirstTickIsDownbeat(t *testing.T) {
	t.Parallel()

	s := NewSequencer(4, 1)
	trig := s.Tick()
	assert.Equal(t, 0, trig.Beat)
	assert.Equal(t, 0, trig.Click)
	assert.True(t, trig.Downbeat)
	assert.True(t, trig.Accented)
}

func TestSequencerWrapsMeasure(t *testing.T) {
	t.Parallel()

	s := NewSequencer(4, 1)
	s.Tick() // (0,0)

	// four more ticks from (0,0) land back on the accented first position
	var trig Trigger
	for i := 0; i < 4; i++ {
		trig = s.Tick()
	}
	assert.Equal(t, 0, trig.Beat)
	assert.Equal(t, 0, trig.Click)
	assert.True(t, trig.Downbeat)
}

func TestSequencerSubdivisions(t *testing.T) {
	t.Parallel()

	s := NewSequencer(3, 2)
	positions := make([][2]int, 0, 7)
	for i := 0; i < 7; i++ {
		trig := s.Tick()
		positions = append(positions, [2]int{trig.Beat, trig.Click})
	}
	assert.Equal(t, [][2]int{
		{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}, {0, 0},
	}, positions)
}

func TestSequencerAccentToggle(t *testing.T) {
	t.Parallel()

	s := NewSequencer(2, 1)
	s.SetAccentEnabled(false)

	trig := s.Tick()
	require.True(t, trig.Downbeat, "the grid fact is independent of the toggle")
	assert.False(t, trig.Accented)

	s.SetAccentEnabled(true)
	s.Tick() // (1,0)
	trig = s.Tick()
	assert.True(t, trig.Accented)
}

func TestSequencerShapeChangeResetsGrid(t *testing.T) {
	t.Parallel()

	s := NewSequencer(4, 1)
	s.Tick()
	s.Tick()
	s.Tick()

	s.SetBeatsPerMeasure(3)
	trig := s.Tick()
	assert.Equal(t, 0, trig.Beat)
	assert.True(t, trig.Downbeat)

	s.Tick()
	s.SetClicksPerBeat(2)
	trig = s.Tick()
	assert.Equal(t, [2]int{0, 0}, [2]int{trig.Beat, trig.Click})
}

func TestSequencerRejectsInvalidShape(t *testing.T) {
	t.Parallel()

	s := NewSequencer(4, 1)
	s.Tick()
	s.Tick()

	s.SetBeatsPerMeasure(0)
	s.SetClicksPerBeat(-1)
	beat, _ := s.Position()
	assert.Equal(t, 1, beat, "invalid shapes must not reset the grid")
}
