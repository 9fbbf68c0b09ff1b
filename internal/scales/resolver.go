package scales

import (
	"github.com/Conceptual-Machines/tonalflow-api/internal/theory"
)

// degreeLookup resolves one scale degree; false means the degree could not be spelled
type degreeLookup func(tonic theory.PitchClass, octave int, scale theory.ScaleType, degree int) (theory.Pitch, bool)

// ResolveScale returns the exercise's pitches: up from the tonic at
// startOctave through the given number of octaves, then back down to the
// tonic. With overshoot the run climbs one degree past the top tonic
// before turning. Melodic minor descends through the natural minor.
func ResolveScale(key string, mode Mode, startOctave, octaves int, overshoot bool) ([]theory.Pitch, error) {
	return resolveScale(theory.ScaleDegreePitch, key, mode, startOctave, octaves, overshoot)
}

func resolveScale(lookup degreeLookup, key string, mode Mode, startOctave, octaves int, overshoot bool) ([]theory.Pitch, error) {
	tonic, err := theory.ParseKey(key)
	if err != nil {
		return nil, err
	}
	scale, err := mode.scaleType()
	if err != nil {
		return nil, err
	}

	top := 7 * octaves
	if overshoot {
		top++
	}

	ascending := make([]theory.Pitch, 0, top+1)
	for degree := 0; degree <= top; degree++ {
		if p, ok := lookup(tonic, startOctave, scale, degree); ok {
			ascending = append(ascending, p)
		}
	}

	var descending []theory.Pitch
	if mode == ModeMelodicMinor {
		descending = make([]theory.Pitch, 0, top+1)
		for degree := top; degree >= 0; degree-- {
			if p, ok := lookup(tonic, startOctave, theory.NaturalMinor, degree); ok {
				descending = append(descending, p)
			}
		}
	} else {
		descending = make([]theory.Pitch, len(ascending))
		for i, p := range ascending {
			descending[len(ascending)-1-i] = p
		}
	}

	// the turnaround pitch already ends the ascending leg
	if len(descending) > 0 {
		descending = descending[1:]
	}

	return append(ascending, descending...), nil
}
