package scales

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/tonalflow-api/internal/theory"
)

var (
	ErrUnknownMode   = errors.New("unknown mode")
	ErrUnknownRhythm = errors.New("unknown rhythm pattern")
	ErrUnknownSlur   = errors.New("unknown slur pattern")
	ErrInvalidRange  = errors.New("invalid octave range")
	ErrNoModeForKey  = errors.New("no mode available for key")
)

// Mode is the scale quality of the exercise
type Mode string

const (
	ModeMajor         Mode = "major"
	ModeMinor         Mode = "minor"
	ModeHarmonicMinor Mode = "harmonic minor"
	ModeMelodicMinor  Mode = "melodic minor"
)

// RhythmPattern decides the duration of each note in the run
type RhythmPattern string

const (
	RhythmLongOctave          RhythmPattern = "long octave"
	RhythmSixteenths          RhythmPattern = "sixteenths"
	RhythmEighthTwoSixteenths RhythmPattern = "eighth two sixteenths"
)

// SlurPattern decides where slurs start and stop within each beat
type SlurPattern string

const (
	SlurTwoTongueTwo          SlurPattern = "slur two tongue two"
	TongueTwoSlurTwo          SlurPattern = "tongue two slur two"
	SlurTwoSlurTwo            SlurPattern = "slur two slur two"
	TongueOneSlurTwoTongueOne SlurPattern = "tongue one slur two tongue one"
	TongueOneSlurThree        SlurPattern = "tongue one slur three"
	SlurThreeTongueOne        SlurPattern = "slur three tongue one"
	Tongued                   SlurPattern = "tongued"
	SlurFour                  SlurPattern = "slur four"
)

// Declared presentation order
var (
	modes = []Mode{ModeMajor, ModeMinor, ModeHarmonicMinor, ModeMelodicMinor}

	rhythmPatterns = []RhythmPattern{RhythmLongOctave, RhythmSixteenths, RhythmEighthTwoSixteenths}

	slurPatterns = []SlurPattern{
		SlurTwoTongueTwo,
		TongueTwoSlurTwo,
		SlurTwoSlurTwo,
		TongueOneSlurTwoTongueOne,
		TongueOneSlurThree,
		SlurThreeTongueOne,
		Tongued,
		SlurFour,
	}

	// Keys offered to players, enharmonic pairs included
	keys = []string{
		"C", "C#", "Db", "D", "D#", "Eb", "E", "F", "F#",
		"Gb", "G", "G#", "Ab", "A", "A#", "Bb", "B",
	}
)

const (
	MinOctaves     = 1
	MaxOctaves     = 3
	MinStartOctave = 3
	MaxStartOctave = 4
)

func AllModes() []Mode                   { return append([]Mode(nil), modes...) }
func AllRhythmPatterns() []RhythmPattern { return append([]RhythmPattern(nil), rhythmPatterns...) }
func AllSlurPatterns() []SlurPattern     { return append([]SlurPattern(nil), slurPatterns...) }
func AllKeys() []string                  { return append([]string(nil), keys...) }

// scaleType maps the mode onto the theory scale used for the ascending run
func (m Mode) scaleType() (theory.ScaleType, error) {
	switch m {
	case ModeMajor:
		return theory.Major, nil
	case ModeMinor:
		return theory.NaturalMinor, nil
	case ModeHarmonicMinor:
		return theory.HarmonicMinor, nil
	case ModeMelodicMinor:
		return theory.MelodicMinor, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, string(m))
}

// IsMinorFamily reports whether the mode uses the natural minor key signature
func (m Mode) IsMinorFamily() bool {
	return m == ModeMinor || m == ModeHarmonicMinor || m == ModeMelodicMinor
}

// normalizeName lets callers write "harmonic_minor" or "Harmonic Minor"
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}

func ParseMode(s string) (Mode, error) {
	name := Mode(normalizeName(s))
	for _, m := range modes {
		if m == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func ParseRhythmPattern(s string) (RhythmPattern, error) {
	name := RhythmPattern(normalizeName(s))
	for _, r := range rhythmPatterns {
		if r == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRhythm, s)
}

func ParseSlurPattern(s string) (SlurPattern, error) {
	name := SlurPattern(normalizeName(s))
	for _, p := range slurPatterns {
		if p == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSlur, s)
}

// Options is everything a player picks for one exercise
type Options struct {
	Key         string        `json:"key" toml:"key"`
	Mode        Mode          `json:"mode" toml:"mode"`
	Rhythm      RhythmPattern `json:"rhythm" toml:"rhythm"`
	SlurPattern SlurPattern   `json:"slur_pattern" toml:"slur_pattern"`
	Octaves     int           `json:"octaves" toml:"octaves"`
	StartOctave int           `json:"start_octave" toml:"start_octave"`
}

// DefaultOptions is the exercise shown before the player changes anything
func DefaultOptions() Options {
	return Options{
		Key:         "C",
		Mode:        ModeMajor,
		Rhythm:      RhythmLongOctave,
		SlurPattern: Tongued,
		Octaves:     1,
		StartOctave: 4,
	}
}

// Validate checks every field against its closed set or range
func (o Options) Validate() error {
	if _, err := theory.ParseKey(o.Key); err != nil {
		return err
	}
	if _, err := ParseMode(string(o.Mode)); err != nil {
		return err
	}
	if _, err := ParseRhythmPattern(string(o.Rhythm)); err != nil {
		return err
	}
	if _, err := ParseSlurPattern(string(o.SlurPattern)); err != nil {
		return err
	}
	if o.Octaves < MinOctaves || o.Octaves > MaxOctaves {
		return fmt.Errorf("%w: octaves must be %d-%d, got %d", ErrInvalidRange, MinOctaves, MaxOctaves, o.Octaves)
	}
	if o.StartOctave < MinStartOctave || o.StartOctave > MaxStartOctave {
		return fmt.Errorf("%w: start octave must be %d-%d, got %d", ErrInvalidRange, MinStartOctave, MaxStartOctave, o.StartOctave)
	}
	return nil
}

// Normalize canonicalizes enum spellings and, when the selected mode cannot
// be written for the key, switches to the first mode that can. The second
// return value reports whether the mode was changed.
func (o Options) Normalize() (Options, bool, error) {
	out, err := o.canonical()
	if err != nil {
		return o, false, err
	}

	available, err := AvailableModes(out.Key)
	if err != nil {
		return o, false, err
	}
	if len(available) == 0 {
		return o, false, fmt.Errorf("%w: %s", ErrNoModeForKey, out.Key)
	}

	for _, m := range available {
		if m == out.Mode {
			return out, false, out.Validate()
		}
	}

	out.Mode = available[0]
	return out, true, out.Validate()
}

// canonical rewrites the key and enum fields in their declared spelling
func (o Options) canonical() (Options, error) {
	out := o

	tonic, err := theory.ParseKey(o.Key)
	if err != nil {
		return o, err
	}
	out.Key = tonic.String()

	if out.Mode, err = ParseMode(string(o.Mode)); err != nil {
		return o, err
	}
	if out.Rhythm, err = ParseRhythmPattern(string(o.Rhythm)); err != nil {
		return o, err
	}
	if out.SlurPattern, err = ParseSlurPattern(string(o.SlurPattern)); err != nil {
		return o, err
	}
	return out, nil
}

// String renders options the way presets and logs show them
func (o Options) String() string {
	return fmt.Sprintf("%s %s, %s, %s, %d octave(s) from %d",
		o.Key, o.Mode, o.Rhythm, o.SlurPattern, o.Octaves, o.StartOctave)
}
