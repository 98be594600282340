// dodge is a terminal arcade game: steer a paddle to dodge falling blocks
// and collect power-ups while the blocks speed up.
//
// Usage:
//
//	dodge play      - Play in the terminal
//	dodge sim       - Run headless simulated games and print a summary
//	dodge config    - Print the effective settings as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 20)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Settings file (.yaml or .toml)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge the Falling Blocks - a terminal arcade game",
	Long: `Dodge the Falling Blocks puts a paddle at the bottom of the field.
Blocks rain down faster every five seconds; touch one and you lose a life.
Power-ups grant a shield, extra speed or double score for a few ticks.

Available commands:
  play     - Play in the terminal
  sim      - Run headless simulated games
  config   - Print the effective settings

Examples:
  dodge play
  dodge play --seed 42 --fps 30
  dodge sim --runs 10
  dodge config --config ./dodge.toml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the stderr logger at the requested level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadSettings reads the settings file and applies flags the user set.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return settings, err
	}

	if cmd.Flags().Changed("fps") {
		settings.TickRate = flagFPS
	}
	if cmd.Flags().Changed("seed") {
		settings.Seed = flagSeed
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("config: %w", err)
	}
	return settings, nil
}

// runtimeConfig converts settings to the game's runtime config.
func runtimeConfig(s config.Settings, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.TickRate,
		Seed:     s.Seed,
	}
}
