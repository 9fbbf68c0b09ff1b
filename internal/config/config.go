package config

import "os"

// Config holds the application configuration
// Note: This is a stateless configuration - exercises are generated per request
// and nothing is stored. User accounts are handled by the gateway in front of us.
type Config struct {
	// Environment
	Environment string
	Port        string

	// Exercise presets (optional TOML file, embedded catalog otherwise)
	PresetsFile string

	// Observability
	SentryDSN           string // Sentry DSN for error tracking
	CloudWatchNamespace string // CloudWatch namespace for API metrics

	// CORS
	CORSAllowedOrigin string

	// Auth mode
	// - "none": No auth (self-hosted, local dev)
	// - "gateway": Trust X-User-* headers from the gateway
	AuthMode string
}

func Load() *Config {
	return &Config{
		Environment:         getEnv("ENVIRONMENT", "development"),
		Port:                getEnv("PORT", "8080"),
		PresetsFile:         getEnv("PRESETS_FILE", ""),
		SentryDSN:           getEnv("SENTRY_DSN", ""),
		CloudWatchNamespace: getEnv("CLOUDWATCH_NAMESPACE", "TonalFlow/API"),
		CORSAllowedOrigin:   getEnv("CORS_ALLOWED_ORIGIN", "*"),
		AuthMode:            getEnv("AUTH_MODE", "none"), // Default to no auth for self-hosted
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// IsGatewayMode returns true if running behind the gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == "gateway"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
