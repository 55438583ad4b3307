// Package scale builds practice sequences from a note range and an interval
// set, and plays them back one entry at a time.
package scale

import (
	"fmt"

	"github.com/robmorgan/cadence/music"
)

// Entry is one step of a built sequence: either a playable note or a set
// boundary. A boundary marks the longer pause between interval groups and is
// never played as audio.
type Entry struct {
	note     music.Note
	boundary bool
}

// NoteEntry wraps a playable note.
func NoteEntry(n music.Note) Entry {
	return Entry{note: n}
}

// BoundaryEntry returns the set-boundary sentinel.
func BoundaryEntry() Entry {
	return Entry{boundary: true}
}

// IsBoundary reports whether the entry is a set boundary.
func (e Entry) IsBoundary() bool {
	return e.boundary
}

// Note returns the wrapped note. Only meaningful when IsBoundary is false.
func (e Entry) Note() music.Note {
	return e.note
}

func (e Entry) String() string {
	if e.boundary {
		return "|"
	}
	return e.note.String()
}

// Direction selects the playback order over the chromatic root range.
type Direction int

const (
	Ascending Direction = iota
	Descending
	AscendingDescending
	DescendingAscending
)

func (d Direction) String() string {
	switch d {
	case Descending:
		return "descending"
	case AscendingDescending:
		return "both"
	case DescendingAscending:
		return "both-descending-first"
	default:
		return "ascending"
	}
}

// ParseDirection parses the names returned by String.
func ParseDirection(s string) (Direction, error) {
	for _, d := range []Direction{Ascending, Descending, AscendingDescending, DescendingAscending} {
		if d.String() == s {
			return d, nil
		}
	}
	return Ascending, fmt.Errorf("unsupported direction %q", s)
}
