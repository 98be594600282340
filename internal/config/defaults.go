package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultYAML []byte

// Default returns the hard-coded settings, used when the embedded YAML
// cannot be decoded.
func Default() Settings {
	return Settings{
		TickRate: 20,
		Seed:     0,
		Audio: Audio{
			Enabled:       true,
			BaseVolume:    0.2,
			IntenseVolume: 0.5,
			TempoBPM:      132,
		},
		Controls: Controls{
			Mouse: true,
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultYAML
}
