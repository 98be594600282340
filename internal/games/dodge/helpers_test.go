package dodge

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

const testDT = 50 * time.Millisecond

// scriptedRNG replays fixed draws. When a script runs out, Float64 returns a
// value that never triggers a spawn and Intn returns 0.
type scriptedRNG struct {
	floats []float64
	ints   []int
}

func (r *scriptedRNG) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRNG) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		return n - 1
	}
	return v
}

// quietGame returns a reset game whose spawner never fires.
func quietGame() *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20, Seed: 1})
	g.rng = &scriptedRNG{}
	return g
}

// obstacleAbovePlayer returns an obstacle that overlaps the player after
// one fall at the initial block speed.
func obstacleAbovePlayer() Obstacle {
	return Obstacle{Box: core.NewRect(PlayerStartX+10, PlayerY-ObstacleH-InitialBlockSpeed+10, 20, ObstacleH)}
}

func powerUpOnPlayer(kind PowerUpKind) PowerUp {
	return PowerUp{Box: core.NewRect(PlayerStartX+10, PlayerY-InitialBlockSpeed, PowerUpSize, PowerUpSize), Kind: kind}
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}
