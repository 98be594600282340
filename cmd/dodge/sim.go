package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/headless"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var (
	flagRuns     int
	flagMaxTicks int
	flagIdle     bool
	flagRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless simulated games",
	Long: `Play several games without a terminal and print the best runs.

By default an autopilot steers the paddle away from blocks overhead and runs
tick as fast as possible. Run i uses seed+i, so a fixed --seed gives the same
results every time.

Examples:
  dodge sim
  dodge sim --runs 20 --seed 7
  dodge sim --idle --max-ticks 2000
  dodge sim --runs 1 --realtime --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of games to simulate")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 12000, "Tick limit per game (0 = until game over)")
	simCmd.Flags().BoolVar(&flagIdle, "idle", false, "Never move the paddle")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at the tick rate")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger("dodge-sim")
	if err != nil {
		return err
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if flagRuns <= 0 {
		return fmt.Errorf("--runs must be positive")
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	baseSeed := settings.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	rc := runtimeConfig(settings, 80, 24)
	game := dodge.New()
	runner := &headless.Runner{
		Game:     game,
		Step:     rc.TickInterval(),
		MaxTicks: flagMaxTicks,
		Input:    headless.Autopilot,
		OnEvent: func(ev core.Event) {
			logger.Debug("event", "kind", ev.Kind, "detail", ev.Detail)
		},
	}
	if flagIdle {
		runner.Input = nil
	}
	if flagRealtime {
		runner.Interval = rc.TickInterval()
	}

	for i := range flagRuns {
		rc.Seed = baseSeed + int64(i)
		game.Reset(rc)

		sum, err := runner.Run(ctx)
		if err != nil {
			logger.Warn("simulation interrupted", "run", i+1, "error", err)
			break
		}

		if _, err := store.SaveRun(storage.RunRecord{
			GameID:    game.ID(),
			Score:     sum.Score,
			Ticks:     sum.Ticks,
			Duration:  sum.Elapsed,
			PeakSpeed: sum.BlockSpeed,
		}); err != nil {
			return err
		}
		logger.Info("run finished", "run", i+1, "seed", rc.Seed, "score", sum.Score,
			"ticks", sum.Ticks, "speed", sum.BlockSpeed, "game_over", sum.GameOver)
	}

	return printRuns(store, game.Title())
}

// printRuns writes the best runs and overall stats to stdout.
func printRuns(store *storage.Store, title string) error {
	runs, err := store.TopRuns(dodge.ID, 10)
	if err != nil {
		return err
	}
	stats, err := store.Stats(dodge.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Simulated runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs finished.")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "Rank", "Score", "Ticks", "Time", "Speed")
	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "----", "-----", "-----", "----", "-----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8d  %-10s  %d\n", i+1, r.Score, r.Ticks, r.Duration.Round(time.Millisecond), r.PeakSpeed)
	}

	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.1f\n", stats.Runs, stats.Best, stats.AvgScore)
	return nil
}
