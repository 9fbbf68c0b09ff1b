package scales

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Conceptual-Machines/tonalflow-api/internal/musicxml"
	"github.com/Conceptual-Machines/tonalflow-api/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Default(t *testing.T) {
	ex, err := Generate(DefaultOptions())
	require.NoError(t, err)

	require.Len(t, ex.Measures, 2)
	assert.Len(t, ex.Measures[0].Notes, 14)
	assert.Equal(t, 16, ex.Measures[0].Duration())
	assert.Equal(t, []string{"C4"}, noteNames(ex.Measures[1].Notes))
	assert.Equal(t, musicxml.Whole, ex.Measures[1].Notes[0].Duration)

	require.NotNil(t, ex.Measures[0].Attributes)
	assert.Equal(t, musicxml.Key{Fifths: 0, Mode: "major"}, ex.Measures[0].Attributes.Key)
	assert.Equal(t, musicxml.Time{Beats: 4, BeatType: 4}, ex.Measures[0].Attributes.Time)
	assert.Equal(t, musicxml.TrebleClef, ex.Measures[0].Attributes.Clef)
	assert.Nil(t, ex.Measures[1].Attributes)

	assert.False(t, ex.Measures[0].DoubleBar)
	assert.True(t, ex.Measures[1].DoubleBar)

	assert.Equal(t, Summary{
		Cadence:       CadenceExtend,
		Measures:      2,
		Notes:         15,
		KeyFifths:     0,
		TimeSignature: "4/4",
	}, ex.Summary)

	assert.True(t, strings.HasPrefix(ex.MusicXML, "<?xml"))
	assert.Contains(t, ex.MusicXML, "<fifths>0</fifths>")
	assert.Contains(t, ex.MusicXML, `<barline location="right">`)
}

func TestGenerate_Layouts(t *testing.T) {
	tests := []struct {
		rhythm    RhythmPattern
		octaves   int
		time      string
		measures  int
		cadence   Cadence
		overshoot bool
	}{
		{RhythmLongOctave, 1, "4/4", 2, CadenceExtend, false},
		{RhythmLongOctave, 2, "4/4", 3, CadenceExtend, false},
		{RhythmLongOctave, 3, "4/4", 4, CadenceExtend, false},
		{RhythmSixteenths, 1, "4/4", 2, CadenceFifth, false},
		{RhythmSixteenths, 2, "4/4", 3, CadenceTurn, false},
		{RhythmSixteenths, 3, "4/4", 4, CadenceTurn, true},
		{RhythmEighthTwoSixteenths, 1, "6/4", 2, CadenceFifth, true},
		{RhythmEighthTwoSixteenths, 2, "5/4", 3, CadenceFifth, false},
		{RhythmEighthTwoSixteenths, 3, "7/4", 3, CadenceExtend, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %d", tt.rhythm, tt.octaves), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Rhythm = tt.rhythm
			opts.Octaves = tt.octaves

			ex, err := Generate(opts)
			require.NoError(t, err)

			assert.Equal(t, tt.time, ex.Summary.TimeSignature)
			assert.Equal(t, tt.measures, ex.Summary.Measures)
			assert.Equal(t, tt.cadence, ex.Summary.Cadence)
			assert.Equal(t, tt.overshoot, ex.Summary.Overshoot)

			last := ex.Measures[len(ex.Measures)-1]
			assert.Equal(t, "C4", last.Notes[len(last.Notes)-1].Pitch.String())
		})
	}
}

func TestGenerate_OvershootReachesPastTheTop(t *testing.T) {
	opts := DefaultOptions()
	opts.Rhythm = RhythmSixteenths
	opts.Octaves = 3

	ex, err := Generate(opts)
	require.NoError(t, err)
	require.True(t, ex.Summary.Overshoot)

	highest := ex.Measures[0].Notes[0].Pitch
	for _, m := range ex.Measures {
		for _, n := range m.Notes {
			if n.Pitch.Semitone() > highest.Semitone() {
				highest = n.Pitch
			}
		}
	}
	assert.Equal(t, "D7", highest.String())
}

// Every combination a player can pick lays out into full measures with a
// single attributes block and a single closing barline.
func TestGenerate_AllCombinations(t *testing.T) {
	for _, key := range AllKeys() {
		available, err := AvailableModes(key)
		require.NoError(t, err)

		for _, mode := range available {
			for _, rhythm := range AllRhythmPatterns() {
				for octaves := MinOctaves; octaves <= MaxOctaves; octaves++ {
					for startOctave := MinStartOctave; startOctave <= MaxStartOctave; startOctave++ {
						opts := Options{
							Key:         key,
							Mode:        mode,
							Rhythm:      rhythm,
							SlurPattern: SlurTwoSlurTwo,
							Octaves:     octaves,
							StartOctave: startOctave,
						}
						checkExercise(t, opts)
					}
				}
			}
		}
	}
}

func checkExercise(t *testing.T, opts Options) {
	t.Helper()

	ex, err := Generate(opts)
	require.NoError(t, err, opts.String())

	beats, err := TimeSignatureBeats(opts.Rhythm, opts.Octaves)
	require.NoError(t, err)
	measureDuration := MeasureDuration(beats)

	assert.NotEqual(t, CadenceUnresolved, ex.Summary.Cadence, opts.String())

	for i, m := range ex.Measures {
		last := i == len(ex.Measures)-1
		assert.Equal(t, i == 0, m.Attributes != nil, "%s measure %d attributes", opts, i+1)
		assert.Equal(t, last, m.DoubleBar, "%s measure %d barline", opts, i+1)
		if !last {
			assert.Equal(t, measureDuration, m.Duration(), "%s measure %d", opts, i+1)
		}
		for _, n := range m.Notes {
			if n.Duration == musicxml.Whole {
				assert.Equal(t, musicxml.SlurNone, n.Slur, "%s whole note slurred", opts)
			}
		}
	}

	again, err := Generate(opts)
	require.NoError(t, err)
	assert.Equal(t, ex.MusicXML, again.MusicXML, opts.String())
}

func TestGenerate_AcceptsLooseSpellings(t *testing.T) {
	loose := Options{
		Key:         "eb",
		Mode:        "Harmonic_Minor",
		Rhythm:      "eighth-two-sixteenths",
		SlurPattern: "SLUR FOUR",
		Octaves:     2,
		StartOctave: 4,
	}
	canonical := Options{
		Key:         "Eb",
		Mode:        ModeHarmonicMinor,
		Rhythm:      RhythmEighthTwoSixteenths,
		SlurPattern: SlurFour,
		Octaves:     2,
		StartOctave: 4,
	}

	a, err := Generate(loose)
	require.NoError(t, err)
	b, err := Generate(canonical)
	require.NoError(t, err)

	assert.Equal(t, canonical, a.Options)
	assert.Equal(t, b.MusicXML, a.MusicXML)
	assert.Equal(t, -6, a.Summary.KeyFifths)
}

func TestGenerate_DoubleSharpsKeepTheirAlter(t *testing.T) {
	opts := DefaultOptions()
	opts.Key = "G#"
	opts.Mode = ModeHarmonicMinor

	xml, err := GenerateMusicXML(opts)
	require.NoError(t, err)
	assert.Contains(t, xml, "<alter>2</alter>")
}

func TestGenerate_InvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		want   error
	}{
		{"key", func(o *Options) { o.Key = "Z" }, theory.ErrInvalidKey},
		{"mode", func(o *Options) { o.Mode = "lydian" }, ErrUnknownMode},
		{"rhythm", func(o *Options) { o.Rhythm = "triplets" }, ErrUnknownRhythm},
		{"slur", func(o *Options) { o.SlurPattern = "slur five" }, ErrUnknownSlur},
		{"octaves", func(o *Options) { o.Octaves = 4 }, ErrInvalidRange},
		{"start octave", func(o *Options) { o.StartOctave = 5 }, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			_, err := Generate(opts)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
