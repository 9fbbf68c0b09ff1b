package api

import (
	"github.com/Conceptual-Machines/tonalflow-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/tonalflow-api/internal/api/middleware"
	"github.com/Conceptual-Machines/tonalflow-api/internal/config"
	"github.com/Conceptual-Machines/tonalflow-api/internal/metrics"
	"github.com/Conceptual-Machines/tonalflow-api/internal/presets"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, parser *presets.Parser, catalog *presets.Catalog, cw *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(cw))

	// CORS middleware
	router.Use(apimiddleware.CORS(cfg.CORSAllowedOrigin))

	// Health check
	healthHandler := handlers.NewHealthHandler(catalog)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Auth is owned by the gateway in hosted mode
	auth := apimiddleware.NoAuth()
	if cfg.IsGatewayMode() {
		auth = apimiddleware.GatewayAuth()
	}

	v1 := router.Group("/api/v1")
	v1.Use(auth)
	{
		scalesHandler := handlers.NewScalesHandler(parser, cw)
		v1.GET("/scales/options", scalesHandler.Options)
		v1.GET("/scales/modes", scalesHandler.Modes)
		v1.POST("/scales/musicxml", scalesHandler.MusicXML)
		v1.POST("/scales/dsl", scalesHandler.DSL)

		presetsHandler := handlers.NewPresetsHandler(catalog, cw)
		v1.GET("/presets", presetsHandler.List)
		v1.GET("/presets/:name/musicxml", presetsHandler.MusicXML)
	}

	return router
}
