// Package headless drives a dodge game without a terminal, for simulations
// and tests.
package headless

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

// DefaultStep is the simulated time per tick when Runner.Step is zero.
const DefaultStep = 50 * time.Millisecond

// InputFunc chooses the input for the next tick.
type InputFunc func(g *dodge.Game) core.InputFrame

// Runner ticks a game until it ends, a tick limit is hit, or the context is
// cancelled. A tick is never interrupted.
type Runner struct {
	Game     *dodge.Game
	Interval time.Duration // Wall-clock time between ticks; zero runs flat out
	Step     time.Duration // Simulated time per tick
	MaxTicks int           // Zero means no limit
	Input    InputFunc     // Nil sends no input
	OnEvent  func(core.Event)
}

// Summary describes where a run stopped.
type Summary struct {
	Score      int
	HighScore  int
	Lives      int
	Ticks      int
	Elapsed    time.Duration
	BlockSpeed int
	GameOver   bool
}

// Run drives the game from its current state. The caller resets the game
// beforehand. On cancellation the summary so far is returned with ctx.Err().
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	step := r.Step
	if step <= 0 {
		step = DefaultStep
	}

	var tick <-chan time.Time
	if r.Interval > 0 {
		ticker := time.NewTicker(r.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for n := 0; r.MaxTicks <= 0 || n < r.MaxTicks; n++ {
		if r.Game.State().GameOver {
			break
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return r.summary(), ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return r.summary(), err
		}

		in := core.NewInputFrame()
		if r.Input != nil {
			in = r.Input(r.Game)
		}

		res := r.Game.Tick(step, in)
		if r.OnEvent != nil {
			for _, ev := range res.Events {
				r.OnEvent(ev)
			}
		}
	}

	return r.summary(), nil
}

func (r *Runner) summary() Summary {
	st := r.Game.State()
	p := r.Game.Session().Progress()
	return Summary{
		Score:      st.Score,
		HighScore:  st.HighScore,
		Lives:      st.Lives,
		Ticks:      p.Ticks,
		Elapsed:    p.Elapsed,
		BlockSpeed: p.BlockSpeed,
		GameOver:   st.GameOver,
	}
}
