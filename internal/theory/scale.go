package theory

// ScaleType selects the interval pattern used to resolve scale degrees
type ScaleType int

const (
	Major ScaleType = iota
	NaturalMinor
	HarmonicMinor
	MelodicMinor // ascending form
)

// Semitones above the tonic for degrees 0-6
var scaleIntervals = map[ScaleType][7]int{
	Major:         {0, 2, 4, 5, 7, 9, 11},
	NaturalMinor:  {0, 2, 3, 5, 7, 8, 10},
	HarmonicMinor: {0, 2, 3, 5, 7, 8, 11},
	MelodicMinor:  {0, 2, 3, 5, 7, 9, 11},
}

func (s ScaleType) String() string {
	switch s {
	case Major:
		return "major"
	case NaturalMinor:
		return "minor"
	case HarmonicMinor:
		return "harmonic minor"
	case MelodicMinor:
		return "melodic minor"
	}
	return "unknown"
}

// Intervals returns the semitone offsets of the seven degrees
func (s ScaleType) Intervals() ([7]int, bool) {
	intervals, ok := scaleIntervals[s]
	return intervals, ok
}

// IsMinor reports whether the scale shares the natural minor key signature
func (s ScaleType) IsMinor() bool {
	return s == NaturalMinor || s == HarmonicMinor || s == MelodicMinor
}

// ScaleDegreePitch resolves degree N of the scale built on tonic at the
// given octave. Degree 0 is the tonic itself, 7 the tonic an octave up;
// negative degrees walk down. Returns false for an unknown scale or a
// degree that cannot be spelled with at most a double accidental.
func ScaleDegreePitch(tonic PitchClass, octave int, scale ScaleType, degree int) (Pitch, bool) {
	intervals, ok := scale.Intervals()
	if !ok || letterIndex(tonic.Letter) < 0 {
		return Pitch{}, false
	}

	root := Pitch{Letter: tonic.Letter, Alter: tonic.Alter, Octave: octave}
	step := mod(degree, 7)
	octaves := floorDiv(degree, 7)

	return spell(root.diatonic()+degree, root.Semitone()+octaves*12+intervals[step])
}

// Interval is a diatonic distance: letter steps plus the exact semitone size
type Interval struct {
	Steps     int
	Semitones int
}

var (
	MinorThird   = Interval{Steps: 2, Semitones: 3}
	MajorThird   = Interval{Steps: 2, Semitones: 4}
	PerfectFifth = Interval{Steps: 4, Semitones: 7}
)

// Transpose moves p by the interval keeping diatonic spelling. If the
// result would need a triple accidental it falls back to the nearest
// sharp spelling of the same sound.
func Transpose(p Pitch, iv Interval) Pitch {
	semitone := p.Semitone() + iv.Semitones
	if out, ok := spell(p.diatonic()+iv.Steps, semitone); ok {
		return out
	}
	return spellSharp(semitone)
}

// spellSharp spells a MIDI note number with naturals and sharps only
func spellSharp(semitone int) Pitch {
	octave := floorDiv(semitone, 12) - 1
	pc := mod(semitone, 12)
	for i := len(letterSemitones) - 1; i >= 0; i-- {
		if letterSemitones[i] <= pc {
			return Pitch{Letter: letters[i], Alter: pc - letterSemitones[i], Octave: octave}
		}
	}
	return Pitch{Letter: 'C', Octave: octave}
}
