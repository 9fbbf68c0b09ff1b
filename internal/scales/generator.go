package scales

import (
	"fmt"

	"github.com/Conceptual-Machines/tonalflow-api/internal/logger"
	"github.com/Conceptual-Machines/tonalflow-api/internal/musicxml"
)

// Summary describes the shape of a generated exercise
type Summary struct {
	Cadence       Cadence `json:"cadence"`
	Overshoot     bool    `json:"overshoot"`
	Measures      int     `json:"measures"`
	Notes         int     `json:"notes"`
	KeyFifths     int     `json:"key_fifths"`
	TimeSignature string  `json:"time_signature"`
}

// Exercise is one generated scale exercise
type Exercise struct {
	Options  Options
	Measures []musicxml.Measure
	MusicXML string
	Summary  Summary
}

// Generate runs the whole pipeline for opts: resolve pitches, apply the
// rhythm, group into measures with a cadence, mark slurs and serialize.
// The result depends only on opts.
func Generate(opts Options) (*Exercise, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts, err := opts.canonical()
	if err != nil {
		return nil, err
	}

	fifths, err := KeyFifths(opts.Key, opts.Mode)
	if err != nil {
		return nil, err
	}
	beats, err := TimeSignatureBeats(opts.Rhythm, opts.Octaves)
	if err != nil {
		return nil, err
	}
	if _, ok := slurRules[opts.SlurPattern]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSlur, string(opts.SlurPattern))
	}
	measureDuration := MeasureDuration(beats)

	measures, cadence, err := layout(opts, measureDuration, false)
	if err != nil {
		return nil, err
	}

	// Climbing one degree past the top can turn an awkward padded ending
	// into a clean cadence; keep it only when it does.
	overshoot := false
	if needsBetterEnding(cadence) {
		alt, altCadence, err := layout(opts, measureDuration, true)
		if err != nil {
			return nil, err
		}
		if !needsBetterEnding(altCadence) {
			measures, cadence, overshoot = alt, altCadence, true
		}
	}

	if len(measures) == 0 {
		return nil, fmt.Errorf("no measures generated for %s", opts)
	}

	if cadence == CadenceUnresolved {
		logger.Warn("Final measure matched no cadence rule, leaving it under-filled", logger.Fields{
			"options":          opts.String(),
			"measure_duration": measureDuration,
			"final_duration":   measures[len(measures)-1].Duration(),
		})
	}

	keyMode := "major"
	if opts.Mode.IsMinorFamily() {
		keyMode = "minor"
	}
	measures[0].Attributes = &musicxml.Attributes{
		Key:  musicxml.Key{Fifths: fifths, Mode: keyMode},
		Time: musicxml.Time{Beats: beats, BeatType: BeatType},
		Clef: musicxml.TrebleClef,
	}
	measures[len(measures)-1].DoubleBar = true

	if err := ApplySlurs(measures, opts.SlurPattern); err != nil {
		return nil, err
	}

	doc, err := musicxml.Serialize(measures)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize exercise: %w", err)
	}

	notes := 0
	for i := range measures {
		notes += len(measures[i].Notes)
	}

	summary := Summary{
		Cadence:       cadence,
		Overshoot:     overshoot,
		Measures:      len(measures),
		Notes:         notes,
		KeyFifths:     fifths,
		TimeSignature: fmt.Sprintf("%d/%d", beats, BeatType),
	}

	logger.Debug("Scale exercise generated", logger.Fields{
		"options":   opts.String(),
		"cadence":   string(cadence),
		"overshoot": overshoot,
		"measures":  summary.Measures,
		"notes":     notes,
	})

	return &Exercise{
		Options:  opts,
		Measures: measures,
		MusicXML: doc,
		Summary:  summary,
	}, nil
}

// GenerateMusicXML is Generate reduced to the document string
func GenerateMusicXML(opts Options) (string, error) {
	ex, err := Generate(opts)
	if err != nil {
		return "", err
	}
	return ex.MusicXML, nil
}

func layout(opts Options, measureDuration int, overshoot bool) ([]musicxml.Measure, Cadence, error) {
	pitches, err := ResolveScale(opts.Key, opts.Mode, opts.StartOctave, opts.Octaves, overshoot)
	if err != nil {
		return nil, "", err
	}
	timed, err := ApplyRhythm(pitches, opts.Rhythm)
	if err != nil {
		return nil, "", err
	}
	measures, cadence := BuildMeasures(timed, measureDuration, opts.Mode)
	return measures, cadence, nil
}

func needsBetterEnding(c Cadence) bool {
	return c == CadencePad || c == CadenceUnresolved
}
