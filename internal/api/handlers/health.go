package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/tonalflow-api/internal/presets"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	catalog *presets.Catalog
}

func NewHealthHandler(catalog *presets.Catalog) *HealthHandler {
	return &HealthHandler{catalog: catalog}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"presets": h.catalog.Len(),
	})
}
