package musicxml

import "github.com/Conceptual-Machines/tonalflow-api/internal/theory"

// DivisionsPerQuarter is the number of duration units in a quarter note
const DivisionsPerQuarter = 4

// Note values in divisions
const (
	Sixteenth = DivisionsPerQuarter / 4
	Eighth    = DivisionsPerQuarter / 2
	Quarter   = DivisionsPerQuarter
	Half      = DivisionsPerQuarter * 2
	Whole     = DivisionsPerQuarter * 4
)

// Note type names keyed by duration
var typeNames = map[int]string{
	Sixteenth: "16th",
	Eighth:    "eighth",
	Quarter:   "quarter",
	Half:      "half",
	Whole:     "whole",
}

// TypeName maps a duration in divisions to its note type. Durations outside
// the table render as "quarter"; the measure builder never produces them.
func TypeName(duration int) string {
	if name, ok := typeNames[duration]; ok {
		return name
	}
	return "quarter"
}

// SlurState marks a note as the start or end of a slur
type SlurState string

const (
	SlurNone  SlurState = ""
	SlurStart SlurState = "start"
	SlurStop  SlurState = "stop"
)

// Note is a single pitched note inside a measure.
// Slur is the only field written after the note is built.
type Note struct {
	Pitch    theory.Pitch
	Duration int
	Slur     SlurState
}

type Key struct {
	Fifths int
	Mode   string // "major" or "minor", optional
}

type Time struct {
	Beats    int
	BeatType int
}

type Clef struct {
	Sign string
	Line int
}

// TrebleClef is the G clef on the second line
var TrebleClef = Clef{Sign: "G", Line: 2}

// Attributes carries key, time and clef; only the first measure has them
type Attributes struct {
	Key  Key
	Time Time
	Clef Clef
}

type Measure struct {
	Attributes *Attributes
	Notes      []Note
	DoubleBar  bool
}

// Duration sums the durations of the measure's notes
func (m *Measure) Duration() int {
	total := 0
	for _, n := range m.Notes {
		total += n.Duration
	}
	return total
}
