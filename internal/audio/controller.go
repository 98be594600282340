package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

// Controller owns the music and the speaker. Volume changes are accepted
// whether or not the speaker started, so callers never need to check.
type Controller struct {
	mu      sync.Mutex
	cfg     config.Audio
	music   *Music
	started bool
}

// NewController creates a controller at the base volume. Nothing plays
// until Start.
func NewController(cfg config.Audio) *Controller {
	return &Controller{
		cfg:   cfg,
		music: NewMusic(cfg.TempoBPM, cfg.BaseVolume),
	}
}

// Start opens the audio device and begins looping the music.
// An error means no device is available; the controller stays usable.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started || !c.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(c.music)
	c.started = true
	return nil
}

// Intensify raises the music to the intense volume.
func (c *Controller) Intensify() {
	c.music.SetGain(c.cfg.IntenseVolume)
}

// Calm returns the music to the base volume for a new run.
func (c *Controller) Calm() {
	c.music.SetGain(c.cfg.BaseVolume)
}

// Gain returns the current music gain.
func (c *Controller) Gain() float64 {
	return c.music.Gain()
}

// Close stops playback.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}
	speaker.Clear()
	c.started = false
}
