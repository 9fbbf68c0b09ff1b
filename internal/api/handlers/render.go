package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Conceptual-Machines/tonalflow-api/internal/logger"
	"github.com/Conceptual-Machines/tonalflow-api/internal/metrics"
	"github.com/Conceptual-Machines/tonalflow-api/internal/presets"
	"github.com/Conceptual-Machines/tonalflow-api/internal/scales"
	"github.com/Conceptual-Machines/tonalflow-api/internal/theory"
	"github.com/gin-gonic/gin"
)

// ExerciseResponse is the JSON body returned for a rendered exercise
type ExerciseResponse struct {
	MusicXML     string         `json:"musicxml"`
	Options      scales.Options `json:"options"`
	Summary      scales.Summary `json:"summary"`
	ModeAdjusted bool           `json:"mode_adjusted"`
}

// renderer turns options into a response and records how it went
type renderer struct {
	sentryMetrics *metrics.SentryMetrics
	cloudWatch    *metrics.Client
}

func newRenderer(cw *metrics.Client) *renderer {
	return &renderer{
		sentryMetrics: metrics.NewSentryMetrics(),
		cloudWatch:    cw,
	}
}

func (r *renderer) render(c *gin.Context, opts scales.Options) {
	format := c.DefaultQuery("format", formatJSON)
	if format != formatJSON && format != formatXML {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be json or xml"})
		return
	}

	start := time.Now()

	normalized, adjusted, err := opts.Normalize()
	var ex *scales.Exercise
	if err == nil {
		ex, err = scales.Generate(normalized)
	}
	duration := time.Since(start)

	gen := metrics.Generation{
		Options: opts.String(),
		Rhythm:  string(opts.Rhythm),
	}
	if ex != nil {
		gen.Options = ex.Options.String()
		gen.Rhythm = string(ex.Options.Rhythm)
		gen.Cadence = string(ex.Summary.Cadence)
		gen.Measures = ex.Summary.Measures
		gen.Notes = ex.Summary.Notes
	}
	r.sentryMetrics.RecordGeneration(c.Request.Context(), gen, duration, err == nil)
	r.cloudWatch.RecordGeneration(gen.Rhythm, gen.Notes, duration, err == nil)

	if err != nil {
		respondError(c, "Scale generation failed", err)
		return
	}

	fields := logger.WithContext(c)
	fields["cadence"] = gen.Cadence
	fields["notes"] = gen.Notes
	if adjusted {
		fields["requested_mode"] = string(opts.Mode)
		fields["mode"] = string(normalized.Mode)
	}
	logger.LogScaleGeneration(c.Request.Context(), gen.Options, duration, fields)

	if format == formatXML {
		c.Data(http.StatusOK, musicXMLContentType, []byte(ex.MusicXML))
		return
	}

	c.JSON(http.StatusOK, ExerciseResponse{
		MusicXML:     ex.MusicXML,
		Options:      ex.Options,
		Summary:      ex.Summary,
		ModeAdjusted: adjusted,
	})
}

// isValidationError reports whether err was caused by the request contents
func isValidationError(err error) bool {
	for _, target := range []error{
		theory.ErrInvalidKey,
		scales.ErrUnknownMode,
		scales.ErrUnknownRhythm,
		scales.ErrUnknownSlur,
		scales.ErrInvalidRange,
		scales.ErrNoModeForKey,
		presets.ErrEmptyDSL,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondError sends 400 for bad input and 500 (captured by Sentry) otherwise
func respondError(c *gin.Context, msg string, err error) {
	if isValidationError(err) {
		logger.Warn(msg, logger.Fields{
			"request_id": c.GetString("request_id"),
			"error":      err.Error(),
		})
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Error(msg, err, logger.WithContext(c))
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":      "Internal server error",
		"request_id": c.GetString("request_id"),
	})
}
