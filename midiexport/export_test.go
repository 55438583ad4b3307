package midiexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/robmorgan/cadence/music"
	"github.com/robmorgan/cadence/scale"
)

func TestWriteEncodesNotesAndRests(t *testing.T) {
	t.Parallel()

	entries := scale.Build(music.NewNote("C", 4), music.NewNote("C#", 4), []string{"1"}, scale.Ascending)
	require.Len(t, entries, 3, "C4, boundary, C#4")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, entries, 90))

	parsed, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, parsed.Tracks, 2)

	tempos := parsed.TempoChanges()
	require.NotEmpty(t, tempos)
	assert.InDelta(t, 90.0, tempos[0].BPM, 0.01)

	var keys []uint8
	var onDeltas []uint32
	for _, ev := range parsed.Tracks[1] {
		var ch, key, vel uint8
		if ev.Message.GetNoteOn(&ch, &key, &vel) && vel > 0 {
			keys = append(keys, key)
			onDeltas = append(onDeltas, ev.Delta)
		}
	}
	assert.Equal(t, []uint8{60, 61}, keys)
	require.Len(t, onDeltas, 2)
	assert.Equal(t, uint32(0), onDeltas[0])
	assert.Equal(t, uint32(restBeats*ticksPerBeat), onDeltas[1], "boundary becomes a four-beat rest")
}

func TestWriteRejectsEmptySequence(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Error(t, Write(&buf, nil, 120))
}
