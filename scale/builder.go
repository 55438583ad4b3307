package scale

import (
	"github.com/robmorgan/cadence/music"
)

// Build produces the ordered sequence for a practice run: every chromatic
// root between start and end (inclusive), each expanded through the interval
// set, with boundaries separating the groups. Argument order of start/end
// does not matter; the direction parameter alone controls playback order.
//
// The result never starts or ends with a boundary and never holds two
// boundaries in a row.
func Build(start, end music.Note, intervals []string, dir Direction) []Entry {
	if len(intervals) == 0 {
		intervals = []string{"1"}
	}

	lo, hi := start.MIDI(), end.MIDI()
	if lo > hi {
		lo, hi = hi, lo
	}
	ascending := make([]music.Note, 0, hi-lo+1)
	for midi := lo; midi <= hi; midi++ {
		ascending = append(ascending, music.NoteFromMIDI(midi))
	}
	descending := reversed(ascending)

	var passes [][]music.Note
	switch dir {
	case Descending:
		passes = [][]music.Note{descending}
	case AscendingDescending:
		// the turn note is shared by both passes; play it once
		passes = [][]music.Note{ascending, descending[1:]}
	case DescendingAscending:
		passes = [][]music.Note{descending, ascending[1:]}
	default:
		passes = [][]music.Note{ascending}
	}

	var entries []Entry
	for _, pass := range passes {
		for i, root := range pass {
			if i > 0 || len(entries) > 0 {
				entries = append(entries, BoundaryEntry())
			}
			for _, symbol := range intervals {
				note := root.Transpose(music.IntervalSemitones(symbol))
				entries = append(entries, NoteEntry(note))
			}
		}
	}
	return entries
}

func reversed(notes []music.Note) []music.Note {
	out := make([]music.Note, len(notes))
	for i, n := range notes {
		out[len(notes)-1-i] = n
	}
	return out
}
