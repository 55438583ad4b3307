package music

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitchClassForFrequency(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A", PitchClassForFrequency(440.0))
	assert.Equal(t, "A", PitchClassForFrequency(220.0))
	assert.Equal(t, "C", PitchClassForFrequency(261.63))
	assert.Equal(t, "E", PitchClassForFrequency(82.41))
}

func TestNoteForFrequency(t *testing.T) {
	t.Parallel()

	n, ok := NoteForFrequency(440.0)
	require.True(t, ok)
	assert.Equal(t, "A4", n.String())

	n, ok = NoteForFrequency(261.63)
	require.True(t, ok)
	assert.Equal(t, "C4", n.String())

	// below C1 and above C7 are out of the displayable range
	_, ok = NoteForFrequency(20.0)
	assert.False(t, ok)
	_, ok = NoteForFrequency(4200.0)
	assert.False(t, ok)
}

func TestNoteMIDIRoundTrip(t *testing.T) {
	t.Parallel()

	c4 := NewNote("C", 4)
	require.Equal(t, 60, c4.MIDI())
	assert.Equal(t, c4, NoteFromMIDI(60))

	a4 := NewNote("A", 4)
	require.Equal(t, 69, a4.MIDI())
	assert.InDelta(t, 440.0, a4.Frequency(), 1e-9)

	assert.True(t, c4.Less(a4))
	assert.Equal(t, "D#4", c4.Transpose(3).String())
}

func TestParseNote(t *testing.T) {
	t.Parallel()

	n, err := ParseNote("F#3")
	require.NoError(t, err)
	assert.Equal(t, NewNote("F#", 3), n)

	n, err = ParseNote("Bb2")
	require.NoError(t, err)
	assert.Equal(t, "A#2", n.String())

	_, err = ParseNote("4")
	assert.Error(t, err)
	_, err = ParseNote("X4")
	assert.Error(t, err)
	_, err = ParseNote("C")
	assert.Error(t, err)
}

func TestIntervalSemitones(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, IntervalSemitones("1"))
	assert.Equal(t, 4, IntervalSemitones("3"))
	assert.Equal(t, 7, IntervalSemitones("5"))
	assert.Equal(t, 24, IntervalSemitones("15"))

	// unknown symbols fall back to the root
	assert.Equal(t, 0, IntervalSemitones("banana"))
	assert.False(t, IsIntervalSymbol("banana"))
	assert.True(t, IsIntervalSymbol("b13"))
}
