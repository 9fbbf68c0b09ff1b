package scales

import (
	"fmt"

	"github.com/Conceptual-Machines/tonalflow-api/internal/musicxml"
	"github.com/Conceptual-Machines/tonalflow-api/internal/theory"
)

// TimedPitch is a pitch with its duration in divisions
type TimedPitch struct {
	Pitch    theory.Pitch
	Duration int
}

// rhythmRule gives the duration of the note at position i of the run
type rhythmRule func(i int) int

var rhythmRules = map[RhythmPattern]rhythmRule{
	// an eighth every seven notes, so each tonic of the plain run is held
	RhythmLongOctave: func(i int) int {
		if i%7 == 0 {
			return musicxml.Eighth
		}
		return musicxml.Sixteenth
	},
	RhythmSixteenths: func(int) int {
		return musicxml.Sixteenth
	},
	RhythmEighthTwoSixteenths: func(i int) int {
		if i%3 == 0 {
			return musicxml.Eighth
		}
		return musicxml.Sixteenth
	},
}

// ApplyRhythm pairs every pitch with a duration from the pattern, keeping order
func ApplyRhythm(pitches []theory.Pitch, pattern RhythmPattern) ([]TimedPitch, error) {
	rule, ok := rhythmRules[pattern]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRhythm, string(pattern))
	}

	timed := make([]TimedPitch, len(pitches))
	for i, p := range pitches {
		timed[i] = TimedPitch{Pitch: p, Duration: rule(i)}
	}
	return timed, nil
}
