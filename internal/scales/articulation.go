package scales

import (
	"fmt"

	"github.com/Conceptual-Machines/tonalflow-api/internal/musicxml"
)

// slurRule lists the offsets within a quarter-note beat (0-3 divisions)
// where a slur starts or stops
type slurRule struct {
	start []int
	stop  []int
}

var slurRules = map[SlurPattern]slurRule{
	SlurTwoTongueTwo:          {start: []int{0}, stop: []int{1}},
	TongueTwoSlurTwo:          {start: []int{2}, stop: []int{3}},
	SlurTwoSlurTwo:            {start: []int{0, 2}, stop: []int{1, 3}},
	TongueOneSlurTwoTongueOne: {start: []int{1}, stop: []int{2}},
	SlurThreeTongueOne:        {start: []int{0}, stop: []int{2}},
	TongueOneSlurThree:        {start: []int{1}, stop: []int{3}},
	SlurFour:                  {start: []int{0}, stop: []int{3}},
	Tongued:                   {},
}

func (r slurRule) stateAt(offset int) musicxml.SlurState {
	for _, o := range r.start {
		if o == offset {
			return musicxml.SlurStart
		}
	}
	for _, o := range r.stop {
		if o == offset {
			return musicxml.SlurStop
		}
	}
	return musicxml.SlurNone
}

// ApplySlurs marks slur starts and stops on every note that is not a whole
// note, by the note's position within its beat. Positions restart at each
// measure.
func ApplySlurs(measures []musicxml.Measure, pattern SlurPattern) error {
	rule, ok := slurRules[pattern]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSlur, string(pattern))
	}

	for m := range measures {
		elapsed := 0
		notes := measures[m].Notes
		for i := range notes {
			if notes[i].Duration != musicxml.Whole {
				notes[i].Slur = rule.stateAt(elapsed % musicxml.DivisionsPerQuarter)
			}
			elapsed += notes[i].Duration
		}
	}
	return nil
}
