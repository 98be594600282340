package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads settings.
// Search order: customPath -> ~/.dodge/config.yaml -> ./configs/dodge.yaml -> embedded default.
// Only a broken customPath is an error; unreadable fallbacks are skipped.
// Values missing from a file keep their defaults.
func Load(customPath string) (Settings, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "dodge.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes a settings file on top of the defaults. Files ending in
// .toml are TOML, everything else is YAML.
func loadFile(path string) (Settings, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodge", filename)
}

// Marshal renders settings as YAML.
func Marshal(s Settings) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
