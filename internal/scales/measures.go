package scales

import (
	"github.com/Conceptual-Machines/tonalflow-api/internal/musicxml"
	"github.com/Conceptual-Machines/tonalflow-api/internal/theory"
)

// Cadence names how the final measure of an exercise was resolved
type Cadence string

const (
	CadenceExact      Cadence = "exact"      // last measure filled with no tail
	CadenceTurn       Cadence = "turn"       // third, fifth, third, then tonic whole note
	CadenceFifth      Cadence = "fifth"      // fifth, then tonic whole note
	CadenceExtend     Cadence = "extend"     // lone note stretched to a whole note
	CadencePad        Cadence = "pad"        // last pitch repeated to fill, then held
	CadenceUnresolved Cadence = "unresolved" // left under-filled
)

// BuildMeasures groups timed pitches into measures of measureDuration
// divisions and resolves the trailing partial measure with a cadential
// tail. The third in the tail is major or minor to match the mode.
func BuildMeasures(timed []TimedPitch, measureDuration int, mode Mode) ([]musicxml.Measure, Cadence) {
	measures := make([]musicxml.Measure, 0, len(timed)/measureDuration+2)
	current := musicxml.Measure{}
	elapsed := 0

	for _, tp := range timed {
		current.Notes = append(current.Notes, musicxml.Note{Pitch: tp.Pitch, Duration: tp.Duration})
		elapsed += tp.Duration

		// >= guards against a duration that does not divide the measure
		if elapsed >= measureDuration {
			measures = append(measures, current)
			current = musicxml.Measure{}
			elapsed = 0
		}
	}

	third := theory.MajorThird
	if mode.IsMinorFamily() {
		third = theory.MinorThird
	}

	return resolveFinalMeasure(measures, current, measureDuration, third)
}

// resolveFinalMeasure applies the first matching rule, in this order:
// 3 divisions short, 1 division short, a single note, more than two notes.
// Two notes with any other gap match nothing and are emitted as they are.
func resolveFinalMeasure(measures []musicxml.Measure, last musicxml.Measure, measureDuration int, third theory.Interval) ([]musicxml.Measure, Cadence) {
	if len(last.Notes) == 0 {
		return measures, CadenceExact
	}

	remaining := measureDuration - last.Duration()
	final := last.Notes[len(last.Notes)-1].Pitch

	switch {
	case remaining == 3:
		last.Notes = append(last.Notes,
			sixteenth(theory.Transpose(final, third)),
			sixteenth(theory.Transpose(final, theory.PerfectFifth)),
			sixteenth(theory.Transpose(final, third)),
		)
		return append(measures, last, wholeNoteMeasure(final)), CadenceTurn

	case remaining == 1:
		last.Notes = append(last.Notes, sixteenth(theory.Transpose(final, theory.PerfectFifth)))
		return append(measures, last, wholeNoteMeasure(final)), CadenceFifth

	case len(last.Notes) == 1:
		last.Notes[0].Duration = musicxml.Whole
		return append(measures, last), CadenceExtend

	case len(last.Notes) > 2:
		for filled := last.Duration(); filled < measureDuration; filled += musicxml.Sixteenth {
			last.Notes = append(last.Notes, sixteenth(final))
		}
		return append(measures, last, wholeNoteMeasure(final)), CadencePad
	}

	return append(measures, last), CadenceUnresolved
}

func sixteenth(p theory.Pitch) musicxml.Note {
	return musicxml.Note{Pitch: p, Duration: musicxml.Sixteenth}
}

func wholeNoteMeasure(p theory.Pitch) musicxml.Measure {
	return musicxml.Measure{Notes: []musicxml.Note{{Pitch: p, Duration: musicxml.Whole}}}
}
