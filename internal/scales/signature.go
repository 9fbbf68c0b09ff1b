package scales

import (
	"fmt"

	"github.com/Conceptual-Machines/tonalflow-api/internal/musicxml"
	"github.com/Conceptual-Machines/tonalflow-api/internal/theory"
)

const (
	defaultBeats = 4
	BeatType     = 4
)

// Beats per measure for "eighth two sixteenths", by octave count. The
// grouping yields a note count per octave span that does not fit 4/4, so
// the measure is sized to hold the phrase before the cadence.
var eighthTwoSixteenthsBeats = map[int]int{
	1: 6,
	2: 5,
	3: 7,
}

// KeyFifths returns the key signature for the key and mode. All minor
// modes share the natural minor signature.
func KeyFifths(key string, mode Mode) (int, error) {
	tonic, err := theory.ParseKey(key)
	if err != nil {
		return 0, err
	}
	if _, err := mode.scaleType(); err != nil {
		return 0, err
	}
	return theory.KeySignatureFifths(tonic, mode.IsMinorFamily()), nil
}

// AvailableModes lists, in declared order, the modes whose key signature
// for this key needs no more than seven sharps or flats.
func AvailableModes(key string) ([]Mode, error) {
	available := make([]Mode, 0, len(modes))
	for _, m := range modes {
		fifths, err := KeyFifths(key, m)
		if err != nil {
			return nil, err
		}
		if fifths >= -theory.MaxFifths && fifths <= theory.MaxFifths {
			available = append(available, m)
		}
	}
	return available, nil
}

// TimeSignatureBeats returns the numerator of the time signature; the
// denominator is always BeatType.
func TimeSignatureBeats(pattern RhythmPattern, octaves int) (int, error) {
	if _, ok := rhythmRules[pattern]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRhythm, string(pattern))
	}
	if pattern != RhythmEighthTwoSixteenths {
		return defaultBeats, nil
	}

	beats, ok := eighthTwoSixteenthsBeats[octaves]
	if !ok {
		return 0, fmt.Errorf("%w: %d octaves", ErrInvalidRange, octaves)
	}
	return beats, nil
}

// MeasureDuration converts a numerator over quarter-note beats to divisions
func MeasureDuration(beats int) int {
	return beats * musicxml.DivisionsPerQuarter
}
