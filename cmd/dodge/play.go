package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/audio"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var flagNoAudio bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing Dodge the Falling Blocks.

Controls:
  Left/A, Right/D   - Move the paddle
  Mouse             - Paddle follows the pointer (controls.mouse)
  P/Esc             - Pause
  R                 - Retry (after game over)
  Q/Ctrl+C          - Quit

Power-ups:
  S  shield      - blocks no longer cost lives
  >  speed       - paddle moves faster
  2  multiplier  - double score for 5 ticks

Examples:
  dodge play
  dodge play --seed 42
  dodge play --no-audio`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable background music")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger("dodge")
	if err != nil {
		return err
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if flagNoAudio {
		settings.Audio.Enabled = false
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sound := audio.NewController(settings.Audio)
	if err := sound.Start(); err != nil {
		logger.Warn("playing without music", "error", err)
	}
	defer sound.Close()

	opts := tui.Options{
		Runtime: runtimeConfig(settings, width, height),
		Sound:   sound,
		Mouse:   settings.Controls.Mouse,
	}

	// The ledger only lives as long as this process.
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run ledger", "error", err)
	} else {
		defer store.Close()
		opts.Ledger = store
	}

	logger.Debug("starting", "tick_rate", settings.TickRate, "seed", settings.Seed, "size", [2]int{width, height})

	game := dodge.New()
	if err := tui.Run(game, opts); err != nil {
		return err
	}

	session := game.Session()
	logger.Info("thanks for playing", "runs", session.Runs, "high_score", session.HighScore)
	return nil
}
