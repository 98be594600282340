// Package dodge implements the falling-blocks dodging game: a paddle at the
// bottom of a 400x400 field avoids obstacles and collects power-ups while the
// fall speed and spawn rate escalate over time.
//
// The package is a pure simulation. It performs no I/O, owns no timers and
// never logs; the platform layer schedules ticks and turns events into sound.
package dodge

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// ID is the game identifier used by the platform for run records.
const ID = "dodge"

// Game implements the dodge game loop on top of a Session.
type Game struct {
	session *Session
	rng     RNG
	runtime core.RuntimeConfig
	view    viewport // Layout of the last Render, used for pointer mapping
}

// New creates a game with an idle session. Call Reset before the first tick.
func New() *Game {
	return &Game{
		session: NewSession(),
		rng:     rand.New(rand.NewSource(1)),
		runtime: core.DefaultConfig(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge the Falling Blocks"
}

// Session exposes the run state and high score.
func (g *Game) Session() *Session {
	return g.session
}

// Reset starts a new run with the given runtime config. The session's high
// score is preserved.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.session.Reset()
}

// Move shifts the player one step. Safe to call between ticks; ignored once
// the run is over.
func (g *Game) Move(dir core.Direction) {
	if g.session.State.GameOver {
		return
	}
	g.session.State.Player.Move(dir)
}

// SetPlayerPosition centers the player on playfield x, clamped so the
// paddle stays inside [0, FieldW].
func (g *Game) SetPlayerPosition(x int) {
	if g.session.State.GameOver {
		return
	}
	g.session.State.Player.CenterOn(x)
}

// PointAt centers the player under a screen column of the last rendered frame.
func (g *Game) PointAt(col int) {
	if !g.view.valid() {
		return
	}
	g.SetPlayerPosition(g.view.worldX(col))
}

// TickResult is the observable outcome of one tick.
type TickResult struct {
	Score     int
	Lives     int
	HighScore int
	GameOver  bool
	Paused    bool
	Intensify bool // Music should get louder
	Entities  []EntityView
	Events    []core.Event
}

// Tick advances the simulation by one step of dt. Order within a tick:
// input, spawn, fall, collide, effects, score, multiplier expiry, cull,
// difficulty, game-over check. Once the run is over Tick changes nothing
// until Reset.
func (g *Game) Tick(dt time.Duration, in core.InputFrame) TickResult {
	st := &g.session.State
	if st.GameOver {
		return g.result(nil)
	}

	if in.Has(core.ActionPause) {
		st.Paused = !st.Paused
	}
	if st.Paused {
		return g.result(nil)
	}

	g.applyInput(in)
	st.Ticks++
	st.Elapsed += dt

	obstacle, powerUp := SpawnTick(g.rng, st.Difficulty.SpawnRate, st.PowerUpSpawnRate)
	if obstacle != nil {
		st.Entities.AddObstacle(*obstacle)
	}
	if powerUp != nil {
		st.Entities.AddPowerUp(*powerUp)
	}

	st.Entities.Fall(st.Difficulty.BlockSpeed)

	events := applyCollisions(st, DetectCollisions(st.Player.Box, &st.Entities))

	st.Score += st.Effects.ScoreIncrement()
	st.Effects.expireMultiplier()

	st.Entities.Cull(FieldH)

	esc := st.Difficulty.MaybeEscalate(st.Elapsed)
	if esc.Escalated {
		events = append(events, core.Event{Kind: core.EventEscalated})
	}
	if esc.Intensify {
		events = append(events, core.Event{Kind: core.EventIntensify})
	}

	if st.Lives == 0 {
		g.session.finish()
		events = append(events, core.Event{Kind: core.EventGameOver})
	}

	res := g.result(events)
	res.Intensify = esc.Intensify
	return res
}

// applyInput applies queued movement. An absolute pointer position is
// applied after key steps.
func (g *Game) applyInput(in core.InputFrame) {
	p := &g.session.State.Player
	if in.Has(core.ActionLeft) {
		p.Move(core.DirLeft)
	}
	if in.Has(core.ActionRight) {
		p.Move(core.DirRight)
	}
	if in.HasPointer {
		p.CenterOn(in.Pointer)
	}
}

func (g *Game) result(events []core.Event) TickResult {
	st := &g.session.State
	return TickResult{
		Score:     st.Score,
		Lives:     st.Lives,
		HighScore: g.session.HighScore,
		GameOver:  st.GameOver,
		Paused:    st.Paused,
		Entities:  g.Entities(),
		Events:    events,
	}
}

// Step advances the game by one tick at the runtime tick rate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := g.Tick(g.runtime.TickInterval(), in)
	return core.StepResult{State: g.State(), Events: res.Events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := &g.session.State
	return core.GameState{
		Score:     st.Score,
		HighScore: g.session.HighScore,
		Lives:     st.Lives,
		GameOver:  st.GameOver,
		Paused:    st.Paused,
	}
}
