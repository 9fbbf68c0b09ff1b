package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/tonalflow-api/internal/metrics"
	"github.com/Conceptual-Machines/tonalflow-api/internal/presets"
	"github.com/Conceptual-Machines/tonalflow-api/internal/scales"
	"github.com/gin-gonic/gin"
)

type ScalesHandler struct {
	parser   *presets.Parser
	renderer *renderer
}

func NewScalesHandler(parser *presets.Parser, cw *metrics.Client) *ScalesHandler {
	return &ScalesHandler{
		parser:   parser,
		renderer: newRenderer(cw),
	}
}

type rangeResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type OptionsResponse struct {
	Keys         []string               `json:"keys"`
	Modes        []scales.Mode          `json:"modes"`
	Rhythms      []scales.RhythmPattern `json:"rhythms"`
	SlurPatterns []scales.SlurPattern   `json:"slur_patterns"`
	Octaves      rangeResponse          `json:"octaves"`
	StartOctave  rangeResponse          `json:"start_octave"`
	Defaults     scales.Options         `json:"defaults"`
}

// Options lists every choice a player can make, in presentation order
func (h *ScalesHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, OptionsResponse{
		Keys:         scales.AllKeys(),
		Modes:        scales.AllModes(),
		Rhythms:      scales.AllRhythmPatterns(),
		SlurPatterns: scales.AllSlurPatterns(),
		Octaves:      rangeResponse{Min: scales.MinOctaves, Max: scales.MaxOctaves},
		StartOctave:  rangeResponse{Min: scales.MinStartOctave, Max: scales.MaxStartOctave},
		Defaults:     scales.DefaultOptions(),
	})
}

// Modes lists the modes that can be written for ?key=
func (h *ScalesHandler) Modes(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}

	modes, err := scales.AvailableModes(key)
	if err != nil {
		respondError(c, "Mode lookup failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":   key,
		"modes": modes,
	})
}

// MusicXML renders an exercise from JSON options. Missing fields take the
// default exercise's values.
func (h *ScalesHandler) MusicXML(c *gin.Context) {
	opts := scales.DefaultOptions()
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.renderer.render(c, opts)
}

type DSLRequest struct {
	DSL string `json:"dsl" binding:"required"`
}

// DSL renders the first scale() call of a DSL snippet
func (h *ScalesHandler) DSL(c *gin.Context) {
	var req DSLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.DSL) > maxDSLLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dsl is too long"})
		return
	}

	all, err := h.parser.Parse(c.Request.Context(), req.DSL)
	if err != nil {
		// anything the parser rejects is the client's input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.renderer.render(c, all[0])
}
