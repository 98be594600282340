// Package config provides settings loading for the dodge program.
// Settings cover presentation only: gameplay constants and the difficulty
// curve are fixed in the game package.
package config

import (
	"errors"
	"fmt"
)

// Settings contains all user-tunable configuration.
type Settings struct {
	TickRate int      `yaml:"tick_rate" toml:"tick_rate"`
	Seed     int64    `yaml:"seed" toml:"seed"`
	Audio    Audio    `yaml:"audio" toml:"audio"`
	Controls Controls `yaml:"controls" toml:"controls"`
}

// Audio configures the background music.
type Audio struct {
	Enabled       bool    `yaml:"enabled" toml:"enabled"`
	BaseVolume    float64 `yaml:"base_volume" toml:"base_volume"`
	IntenseVolume float64 `yaml:"intense_volume" toml:"intense_volume"`
	TempoBPM      int     `yaml:"tempo_bpm" toml:"tempo_bpm"`
}

// Controls configures input handling.
type Controls struct {
	Mouse bool `yaml:"mouse" toml:"mouse"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid settings")

// Validate checks that the settings can drive the game.
func (s Settings) Validate() error {
	if s.TickRate <= 0 || s.TickRate > 240 {
		return fmt.Errorf("%w: tick_rate %d outside 1..240", ErrInvalid, s.TickRate)
	}
	if s.Audio.BaseVolume < 0 || s.Audio.BaseVolume > 1 {
		return fmt.Errorf("%w: audio.base_volume %.2f outside 0..1", ErrInvalid, s.Audio.BaseVolume)
	}
	if s.Audio.IntenseVolume < 0 || s.Audio.IntenseVolume > 1 {
		return fmt.Errorf("%w: audio.intense_volume %.2f outside 0..1", ErrInvalid, s.Audio.IntenseVolume)
	}
	if s.Audio.TempoBPM <= 0 {
		return fmt.Errorf("%w: audio.tempo_bpm must be positive", ErrInvalid)
	}
	return nil
}
