package handlers

import (
	"net/http"
	"strconv"

	"github.com/Conceptual-Machines/tonalflow-api/internal/metrics"
	"github.com/Conceptual-Machines/tonalflow-api/internal/presets"
	"github.com/gin-gonic/gin"
)

type PresetsHandler struct {
	catalog  *presets.Catalog
	renderer *renderer
}

func NewPresetsHandler(catalog *presets.Catalog, cw *metrics.Client) *PresetsHandler {
	return &PresetsHandler{
		catalog:  catalog,
		renderer: newRenderer(cw),
	}
}

func (h *PresetsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"presets": h.catalog.List(),
	})
}

// MusicXML renders one exercise of a preset, chosen by ?index= (default 0)
func (h *PresetsHandler) MusicXML(c *gin.Context) {
	name := c.Param("name")

	exercises, err := h.catalog.Options(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	index, err := strconv.Atoi(c.DefaultQuery("index", "0"))
	if err != nil || index < 0 || index >= len(exercises) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "index must be between 0 and " + strconv.Itoa(len(exercises)-1),
		})
		return
	}

	h.renderer.render(c, exercises[index])
}
