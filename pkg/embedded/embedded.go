package embedded

import (
	_ "embed"
)

// Default exercise catalog, used when no PRESETS_FILE is configured
//
//go:embed data/presets.toml
var PresetsTOML []byte
