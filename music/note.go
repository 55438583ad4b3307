package music

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PitchClasses are the 12 note names of the equal-tempered chromatic scale,
// in semitone order starting from C.
var PitchClasses = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// flatAliases maps enharmonic flat spellings onto the sharp names used above.
var flatAliases = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

const (
	// A4 is the reference pitch for all frequency math.
	A4Frequency = 440.0
	// MIDI note number of A4.
	a4MIDI = 69
)

// Note is a pitch class plus an octave, e.g. C4 (middle C).
type Note struct {
	Class  string
	Octave int
}

// NewNote builds a note from a pitch-class name and octave. Flat spellings
// are normalized to sharps. An unknown name falls back to C, mirroring how
// interval parsing treats unknown symbols.
func NewNote(class string, octave int) Note {
	return Note{Class: normalizeClass(class), Octave: octave}
}

// NoteFromMIDI converts a MIDI note number into a note.
func NoteFromMIDI(midi int) Note {
	class := PitchClasses[((midi%12)+12)%12]
	return Note{Class: class, Octave: midi/12 - 1}
}

// ParseNote parses strings like "C4", "F#3" or "Bb2".
func ParseNote(s string) (Note, error) {
	i := strings.IndexFunc(s, func(r rune) bool {
		return (r >= '0' && r <= '9') || r == '-'
	})
	if i <= 0 {
		return Note{}, fmt.Errorf("invalid note %q", s)
	}
	class := s[:i]
	if _, ok := semitoneOf(class); !ok {
		return Note{}, fmt.Errorf("invalid pitch class %q", class)
	}
	octave, err := strconv.Atoi(s[i:])
	if err != nil {
		return Note{}, fmt.Errorf("invalid octave in %q", s)
	}
	return NewNote(class, octave), nil
}

// MIDI returns the MIDI note number: (octave+1)*12 + semitone offset from C.
func (n Note) MIDI() int {
	semi, _ := semitoneOf(n.Class)
	return (n.Octave+1)*12 + semi
}

// Frequency returns the equal-temperament frequency in Hz (A4 = 440 Hz).
func (n Note) Frequency() float64 {
	return A4Frequency * math.Pow(2, float64(n.MIDI()-a4MIDI)/12.0)
}

// Less orders notes by pitch.
func (n Note) Less(other Note) bool {
	return n.MIDI() < other.MIDI()
}

// Transpose returns the note the given number of semitones away.
func (n Note) Transpose(semitones int) Note {
	return NoteFromMIDI(n.MIDI() + semitones)
}

func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Class, n.Octave)
}

// PitchClassForFrequency maps a frequency onto the nearest pitch-class name.
// The octave is deliberately ignored, which is what a tuner display wants.
func PitchClassForFrequency(freq float64) string {
	n := int(math.Round(12 * math.Log2(freq/A4Frequency)))
	idx := ((n+a4MIDI)%12 + 12) % 12
	return PitchClasses[idx]
}

// NoteForFrequency maps a frequency onto the nearest note including its
// octave. Frequencies resolving outside the displayable range (MIDI 24..96,
// i.e. C1..C7) report ok=false.
func NoteForFrequency(freq float64) (Note, bool) {
	midi := int(math.Round(12*math.Log2(freq/A4Frequency))) + a4MIDI
	if midi < 24 || midi > 96 {
		return Note{}, false
	}
	return NoteFromMIDI(midi), true
}

func normalizeClass(class string) string {
	if sharp, ok := flatAliases[class]; ok {
		return sharp
	}
	if _, ok := semitoneIndex[class]; ok {
		return class
	}
	return "C"
}

var semitoneIndex = func() map[string]int {
	m := make(map[string]int, 17)
	for i, name := range PitchClasses {
		m[name] = i
	}
	for flat, sharp := range flatAliases {
		m[flat] = m[sharp]
	}
	return m
}()

func semitoneOf(class string) (int, bool) {
	semi, ok := semitoneIndex[class]
	return semi, ok
}
