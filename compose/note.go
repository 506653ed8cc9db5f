package compose

import (
	"fmt"
	"math"
	"strconv"
)

// letter offsets within an octave, C-based.
var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// noteNumber parses names like "C4", "F#3" or "Bb2" into a MIDI note
// number (A4 = 69).
func noteNumber(name string) (int, error) {
	if len(name) < 2 {
		return 0, fmt.Errorf("note name too short: %q", name)
	}

	offset, ok := letterSemitones[name[0]]
	if !ok {
		return 0, fmt.Errorf("unknown note letter in %q", name)
	}

	rest := name[1:]
	switch rest[0] {
	case '#':
		offset++
		rest = rest[1:]
	case 'b':
		offset--
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("bad octave in note %q", name)
	}

	return (octave+1)*12 + offset, nil
}

// NoteFrequency returns the 12-TET frequency (A4 = 440 Hz) of a note name
// like "C4", "F#3" or "Bb2".
func NoteFrequency(name string) (float64, error) {
	n, err := noteNumber(name)
	if err != nil {
		return 0, err
	}
	return 440 * math.Pow(2, float64(n-69)/12), nil
}

// MustNote is NoteFrequency for score literals; it panics on a malformed
// name.
func MustNote(name string) float64 {
	f, err := NoteFrequency(name)
	if err != nil {
		panic(err)
	}
	return f
}

// SemitoneDistance returns the signed semitone interval from one note
// name to another.
func SemitoneDistance(from, to string) (float64, error) {
	a, err := noteNumber(from)
	if err != nil {
		return 0, err
	}
	b, err := noteNumber(to)
	if err != nil {
		return 0, err
	}
	return float64(b - a), nil
}
