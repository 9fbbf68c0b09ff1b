package scales

import (
	"testing"

	"github.com/Conceptual-Machines/tonalflow-api/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFifths(t *testing.T) {
	tests := []struct {
		key  string
		mode Mode
		want int
	}{
		{"C", ModeMajor, 0},
		{"A", ModeMinor, 0},
		{"A", ModeHarmonicMinor, 0},
		{"G", ModeMajor, 1},
		{"E", ModeMelodicMinor, 1},
		{"F", ModeMajor, -1},
		{"Eb", ModeHarmonicMinor, -6},
		{"C#", ModeMajor, 7},
		{"Cb", ModeMajor, -7},
		{"Bb", ModeMinor, -5},
	}

	for _, tt := range tests {
		t.Run(tt.key+" "+string(tt.mode), func(t *testing.T) {
			got, err := KeyFifths(tt.key, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAvailableModes(t *testing.T) {
	minors := []Mode{ModeMinor, ModeHarmonicMinor, ModeMelodicMinor}

	tests := []struct {
		key  string
		want []Mode
	}{
		{"C", AllModes()},
		{"C#", AllModes()}, // seven sharps is still writable
		{"A#", minors},     // major would need ten sharps
		{"G#", minors},
		{"D#", minors},
		{"Db", []Mode{ModeMajor}}, // minor would need eight flats
		{"Gb", []Mode{ModeMajor}},
		{"Ab", AllModes()},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := AvailableModes(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAvailableModes_EveryKeyHasOne(t *testing.T) {
	for _, key := range AllKeys() {
		got, err := AvailableModes(key)
		require.NoError(t, err)
		assert.NotEmpty(t, got, key)
	}
}

func TestAvailableModes_InvalidKey(t *testing.T) {
	_, err := AvailableModes("X#")
	assert.ErrorIs(t, err, theory.ErrInvalidKey)
}

func TestTimeSignatureBeats(t *testing.T) {
	tests := []struct {
		pattern RhythmPattern
		octaves int
		want    int
	}{
		{RhythmLongOctave, 1, 4},
		{RhythmLongOctave, 3, 4},
		{RhythmSixteenths, 2, 4},
		{RhythmEighthTwoSixteenths, 1, 6},
		{RhythmEighthTwoSixteenths, 2, 5},
		{RhythmEighthTwoSixteenths, 3, 7},
	}

	for _, tt := range tests {
		got, err := TimeSignatureBeats(tt.pattern, tt.octaves)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s over %d octaves", tt.pattern, tt.octaves)
	}

	_, err := TimeSignatureBeats(RhythmEighthTwoSixteenths, 4)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = TimeSignatureBeats(RhythmPattern("waltz"), 1)
	assert.ErrorIs(t, err, ErrUnknownRhythm)
}

func TestMeasureDuration(t *testing.T) {
	assert.Equal(t, 16, MeasureDuration(4))
	assert.Equal(t, 28, MeasureDuration(7))
}
