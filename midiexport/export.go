// Package midiexport renders a built practice sequence to a Standard MIDI
// File so it can be loaded into a DAW or notation tool.
package midiexport

import (
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/robmorgan/cadence/scale"
)

const (
	ticksPerBeat = 960
	restBeats    = 4
	velocity     = 100
	channel      = 0
)

// Write renders entries as a two-track SMF at the given tempo. Each note
// lasts one beat; a set boundary becomes a four-beat rest, matching live
// playback pacing.
func Write(w io.Writer, entries []scale.Entry, bpm int) error {
	if len(entries) == 0 {
		return fmt.Errorf("nothing to export: sequence is empty")
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerBeat)

	var tempo smf.Track
	tempo.Add(0, smf.MetaMeter(4, 4))
	tempo.Add(0, smf.MetaTempo(float64(bpm)))
	tempo.Close(0)
	if err := s.Add(tempo); err != nil {
		return fmt.Errorf("error adding tempo track: %w", err)
	}

	var notes smf.Track
	rest := uint32(0)
	for _, entry := range entries {
		if entry.IsBoundary() {
			rest += restBeats * ticksPerBeat
			continue
		}
		key := entry.Note().MIDI()
		if key < 0 || key > 127 {
			return fmt.Errorf("note %s is outside the MIDI key range", entry.Note())
		}
		notes.Add(rest, midi.NoteOn(channel, uint8(key), velocity))
		notes.Add(ticksPerBeat, midi.NoteOff(channel, uint8(key)))
		rest = 0
	}
	notes.Close(0)
	if err := s.Add(notes); err != nil {
		return fmt.Errorf("error adding note track: %w", err)
	}

	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("error writing midi data: %w", err)
	}
	return nil
}

// WriteFile renders entries to a file on disk.
func WriteFile(path string, entries []scale.Entry, bpm int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	if err := Write(f, entries, bpm); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
