package scales

import (
	"testing"

	"github.com/Conceptual-Machines/tonalflow-api/internal/musicxml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	none  = musicxml.SlurNone
	start = musicxml.SlurStart
	stop  = musicxml.SlurStop
)

func slurs(notes []musicxml.Note) []musicxml.SlurState {
	out := make([]musicxml.SlurState, len(notes))
	for i, n := range notes {
		out[i] = n.Slur
	}
	return out
}

func measureOf(t *testing.T, durs ...int) musicxml.Measure {
	t.Helper()
	var m musicxml.Measure
	for _, tp := range run(t, "C4", durs...) {
		m.Notes = append(m.Notes, musicxml.Note{Pitch: tp.Pitch, Duration: tp.Duration})
	}
	return m
}

func TestApplySlurs_Sixteenths(t *testing.T) {
	tests := []struct {
		pattern SlurPattern
		beat    []musicxml.SlurState
	}{
		{SlurTwoTongueTwo, []musicxml.SlurState{start, stop, none, none}},
		{TongueTwoSlurTwo, []musicxml.SlurState{none, none, start, stop}},
		{SlurTwoSlurTwo, []musicxml.SlurState{start, stop, start, stop}},
		{TongueOneSlurTwoTongueOne, []musicxml.SlurState{none, start, stop, none}},
		{SlurThreeTongueOne, []musicxml.SlurState{start, none, stop, none}},
		{TongueOneSlurThree, []musicxml.SlurState{none, start, none, stop}},
		{SlurFour, []musicxml.SlurState{start, none, none, stop}},
		{Tongued, []musicxml.SlurState{none, none, none, none}},
	}

	for _, tt := range tests {
		t.Run(string(tt.pattern), func(t *testing.T) {
			measures := []musicxml.Measure{measureOf(t, repeat(1, 8)...)}
			require.NoError(t, ApplySlurs(measures, tt.pattern))

			want := append(append([]musicxml.SlurState{}, tt.beat...), tt.beat...)
			assert.Equal(t, want, slurs(measures[0].Notes))
		})
	}
}

func TestApplySlurs_OffsetsFollowDurations(t *testing.T) {
	// eighth, sixteenth, sixteenth lands on offsets 0, 2, 3
	measures := []musicxml.Measure{measureOf(t, 2, 1, 1, 2, 1, 1)}
	require.NoError(t, ApplySlurs(measures, SlurTwoSlurTwo))

	assert.Equal(t, []musicxml.SlurState{start, start, stop, start, start, stop}, slurs(measures[0].Notes))
}

func TestApplySlurs_RestartsEachMeasure(t *testing.T) {
	// the first measure ends mid-beat so only a restart puts the second on offset 0
	measures := []musicxml.Measure{
		measureOf(t, 1, 1, 1),
		measureOf(t, 1, 1),
	}
	require.NoError(t, ApplySlurs(measures, SlurTwoTongueTwo))

	assert.Equal(t, []musicxml.SlurState{start, stop, none}, slurs(measures[0].Notes))
	assert.Equal(t, []musicxml.SlurState{start, stop}, slurs(measures[1].Notes))
}

func TestApplySlurs_SkipsWholeNotes(t *testing.T) {
	measures := []musicxml.Measure{measureOf(t, musicxml.Whole)}
	require.NoError(t, ApplySlurs(measures, SlurFour))

	assert.Equal(t, none, measures[0].Notes[0].Slur)
}

func TestApplySlurs_UnknownPattern(t *testing.T) {
	err := ApplySlurs(nil, SlurPattern("legato"))
	assert.ErrorIs(t, err, ErrUnknownSlur)
}
