package music

// intervalSemitones maps interval symbols onto semitone offsets from the
// root, covering alterations and compound intervals up to a 15th.
var intervalSemitones = map[string]int{
	"1":   0,  // unison
	"b2":  1,  // minor second
	"2":   2,  // major second
	"b3":  3,  // minor third
	"3":   4,  // major third
	"4":   5,  // perfect fourth
	"b5":  6,  // diminished fifth
	"5":   7,  // perfect fifth
	"#5":  8,  // augmented fifth
	"6":   9,  // major sixth
	"b7":  10, // minor seventh
	"7":   11, // major seventh
	"8":   12, // octave
	"b9":  13,
	"9":   14,
	"#9":  15,
	"b10": 15,
	"10":  16,
	"11":  17,
	"#11": 18,
	"b12": 18,
	"12":  19,
	"#12": 20,
	"b13": 20,
	"13":  21,
	"b14": 22,
	"14":  23,
	"15":  24, // double octave
}

// IntervalSemitones returns the semitone offset for an interval symbol.
// Unknown symbols resolve to the root (0), never an error.
func IntervalSemitones(symbol string) int {
	return intervalSemitones[symbol]
}

// IsIntervalSymbol reports whether the symbol names a known interval.
func IsIntervalSymbol(symbol string) bool {
	_, ok := intervalSemitones[symbol]
	return ok
}
