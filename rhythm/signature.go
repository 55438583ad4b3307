package rhythm

import (
	"fmt"
)

// TimeSignature is one of the supported meter settings.
type TimeSignature int

const (
	FourFour TimeSignature = iota
	ThreeFour
	TwoFour
	SixEight
	NineEight
	TwelveEight
)

// BeatsPerMeasure returns the upper numeral of the signature.
func (ts TimeSignature) BeatsPerMeasure() int {
	switch ts {
	case ThreeFour:
		return 3
	case TwoFour:
		return 2
	case SixEight:
		return 6
	case NineEight:
		return 9
	case TwelveEight:
		return 12
	default:
		return 4
	}
}

// BeatUnit returns the lower numeral of the signature.
func (ts TimeSignature) BeatUnit() int {
	switch ts {
	case SixEight, NineEight, TwelveEight:
		return 8
	default:
		return 4
	}
}

func (ts TimeSignature) String() string {
	return fmt.Sprintf("%d/%d", ts.BeatsPerMeasure(), ts.BeatUnit())
}

// ParseTimeSignature parses strings like "4/4" or "6/8".
func ParseTimeSignature(s string) (TimeSignature, error) {
	for _, ts := range []TimeSignature{FourFour, ThreeFour, TwoFour, SixEight, NineEight, TwelveEight} {
		if ts.String() == s {
			return ts, nil
		}
	}
	return FourFour, fmt.Errorf("unsupported time signature %q", s)
}

// NoteUnit is the note value one metronome click represents.
type NoteUnit int

const (
	Quarter NoteUnit = iota
	Eighth
	Triplet
	Sixteenth
)

// ClicksPerBeat returns how many clicks subdivide one beat.
func (u NoteUnit) ClicksPerBeat() int {
	switch u {
	case Eighth:
		return 2
	case Triplet:
		return 3
	case Sixteenth:
		return 4
	default:
		return 1
	}
}

func (u NoteUnit) String() string {
	switch u {
	case Eighth:
		return "eighth"
	case Triplet:
		return "triplet"
	case Sixteenth:
		return "sixteenth"
	default:
		return "quarter"
	}
}

// ParseNoteUnit parses the names returned by String.
func ParseNoteUnit(s string) (NoteUnit, error) {
	for _, u := range []NoteUnit{Quarter, Eighth, Triplet, Sixteenth} {
		if u.String() == s {
			return u, nil
		}
	}
	return Quarter, fmt.Errorf("unsupported note unit %q", s)
}
