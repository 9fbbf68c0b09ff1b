package theory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidKey   = errors.New("invalid key")
	ErrInvalidPitch = errors.New("invalid pitch")
)

// letters in diatonic order, starting from C
const letters = "CDEFGAB"

// Semitone offsets from C for each natural letter
var letterSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

// maxAlter is the largest alteration a pitch can be spelled with (double sharp/flat)
const maxAlter = 2

// PitchClass is a letter plus alteration without an octave, e.g. "F#" or "Bb"
type PitchClass struct {
	Letter byte
	Alter  int
}

func (pc PitchClass) String() string {
	return string(pc.Letter) + accidental(pc.Alter)
}

// Pitch is a spelled pitch in scientific notation (C4 = middle C)
type Pitch struct {
	Letter byte
	Alter  int
	Octave int
}

func (p Pitch) String() string {
	return string(p.Letter) + accidental(p.Alter) + strconv.Itoa(p.Octave)
}

// Class drops the octave
func (p Pitch) Class() PitchClass {
	return PitchClass{Letter: p.Letter, Alter: p.Alter}
}

// Semitone returns the MIDI note number of the pitch (C4 = 60)
func (p Pitch) Semitone() int {
	return (p.Octave+1)*12 + letterSemitones[letterIndex(p.Letter)] + p.Alter
}

// diatonic counts letter steps from C0, so every letter change moves it by one
func (p Pitch) diatonic() int {
	return p.Octave*7 + letterIndex(p.Letter)
}

// ParseKey parses a key name like "C", "F#" or "Bb".
// Only a single accidental is accepted.
func ParseKey(name string) (PitchClass, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 || len(name) > 2 {
		return PitchClass{}, fmt.Errorf("%w: %q", ErrInvalidKey, name)
	}

	letter := strings.ToUpper(name[:1])[0]
	if letterIndex(letter) < 0 {
		return PitchClass{}, fmt.Errorf("%w: invalid letter in %q", ErrInvalidKey, name)
	}

	alter := 0
	if len(name) == 2 {
		switch name[1] {
		case '#':
			alter = 1
		case 'b':
			alter = -1
		default:
			return PitchClass{}, fmt.Errorf("%w: invalid accidental in %q", ErrInvalidKey, name)
		}
	}

	return PitchClass{Letter: letter, Alter: alter}, nil
}

// ParsePitch parses a pitch name like "E1", "C4", "F#3", "Bb2" or "F##4".
// Format: <letter><accidentals?><octave>, octave may be negative.
func ParsePitch(name string) (Pitch, error) {
	if len(name) < 2 {
		return Pitch{}, fmt.Errorf("%w: too short: %q", ErrInvalidPitch, name)
	}

	letter := strings.ToUpper(name[:1])[0]
	if letterIndex(letter) < 0 {
		return Pitch{}, fmt.Errorf("%w: invalid letter in %q", ErrInvalidPitch, name)
	}

	idx := 1
	alter := 0
	for idx < len(name) && (name[idx] == '#' || name[idx] == 'b') {
		if name[idx] == '#' {
			alter++
		} else {
			alter--
		}
		idx++
	}
	if alter > maxAlter || alter < -maxAlter {
		return Pitch{}, fmt.Errorf("%w: too many accidentals in %q", ErrInvalidPitch, name)
	}
	if idx > 2 && (name[1] == '#') != (name[idx-1] == '#') {
		return Pitch{}, fmt.Errorf("%w: mixed accidentals in %q", ErrInvalidPitch, name)
	}

	octave, err := strconv.Atoi(name[idx:])
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: invalid octave in %q", ErrInvalidPitch, name)
	}

	return Pitch{Letter: letter, Alter: alter, Octave: octave}, nil
}

// spell builds the pitch on the given diatonic step that sounds at semitone.
// Returns false when that needs more than a double accidental.
func spell(diatonic, semitone int) (Pitch, bool) {
	idx := mod(diatonic, 7)
	octave := floorDiv(diatonic, 7)
	natural := (octave+1)*12 + letterSemitones[idx]

	alter := semitone - natural
	if alter > maxAlter || alter < -maxAlter {
		return Pitch{}, false
	}

	return Pitch{Letter: letters[idx], Alter: alter, Octave: octave}, true
}

func accidental(alter int) string {
	switch {
	case alter > 0:
		return strings.Repeat("#", alter)
	case alter < 0:
		return strings.Repeat("b", -alter)
	}
	return ""
}

func letterIndex(letter byte) int {
	return strings.IndexByte(letters, letter)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
