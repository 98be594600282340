package dodge

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

func TestInitialState(t *testing.T) {
	g := quietGame()
	st := g.session.State

	if st.Lives != 3 || st.Score != 0 || st.Difficulty.BlockSpeed != 5 {
		t.Errorf("unexpected start: lives=%d score=%d speed=%d", st.Lives, st.Score, st.Difficulty.BlockSpeed)
	}
	if st.Difficulty.SpawnRate != InitialSpawnRate || st.PowerUpSpawnRate != PowerUpSpawnRate {
		t.Errorf("unexpected rates: %f %f", st.Difficulty.SpawnRate, st.PowerUpSpawnRate)
	}
	if st.GameOver || st.Paused {
		t.Error("new run should be running")
	}
}

func TestObstacleHitCostsLife(t *testing.T) {
	g := quietGame()
	g.session.State.Entities.AddObstacle(obstacleAbovePlayer())

	res := g.Tick(testDT, noInput())

	if res.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", res.Lives)
	}
	if res.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.Score)
	}
	if n := len(g.session.State.Entities.Obstacles()); n != 0 {
		t.Errorf("hit obstacle should be removed, %d left", n)
	}
	if !(core.StepResult{Events: res.Events}).Has(core.EventObstacleHit) {
		t.Errorf("expected an ObstacleHit event, got %+v", res.Events)
	}
}

func TestOneObstacleHitPerTick(t *testing.T) {
	g := quietGame()
	g.session.State.Entities.AddObstacle(obstacleAbovePlayer())
	g.session.State.Entities.AddObstacle(obstacleAbovePlayer())

	g.Tick(testDT, noInput())
	if lives := g.session.State.Lives; lives != 2 {
		t.Fatalf("only one obstacle should be processed per tick, lives = %d", lives)
	}
	if n := len(g.session.State.Entities.Obstacles()); n != 1 {
		t.Fatalf("second obstacle should wait for the next tick, %d left", n)
	}

	g.Tick(testDT, noInput())
	if lives := g.session.State.Lives; lives != 1 {
		t.Errorf("second obstacle should hit on the next tick, lives = %d", lives)
	}
}

func TestShieldAbsorbsHits(t *testing.T) {
	g := quietGame()
	g.session.State.Entities.AddPowerUp(powerUpOnPlayer(PowerUpShield))
	g.Tick(testDT, noInput())

	if !g.session.State.Effects.Shield {
		t.Fatal("shield should be active after pickup")
	}

	for i := 0; i < 3; i++ {
		g.session.State.Entities.AddObstacle(obstacleAbovePlayer())
		res := g.Tick(testDT, noInput())
		if res.Lives != StartingLives {
			t.Fatalf("shielded hit %d cost a life: lives = %d", i, res.Lives)
		}
		if n := len(g.session.State.Entities.Obstacles()); n != 0 {
			t.Fatalf("shielded hit should still remove the obstacle, %d left", n)
		}
		if !(core.StepResult{Events: res.Events}).Has(core.EventShieldBlocked) {
			t.Errorf("expected ShieldBlocked event, got %+v", res.Events)
		}
	}
}

func TestSpeedBoost(t *testing.T) {
	g := quietGame()
	g.session.State.Entities.AddPowerUp(powerUpOnPlayer(PowerUpSpeed))
	g.Tick(testDT, noInput())

	if g.session.State.Player.Speed != BoostedSpeed {
		t.Fatalf("Speed = %d, expected %d", g.session.State.Player.Speed, BoostedSpeed)
	}

	before := g.session.State.Player.Box.X
	g.Move(core.DirLeft)
	if moved := before - g.session.State.Player.Box.X; moved != BoostedSpeed {
		t.Errorf("boosted move covered %d units, expected %d", moved, BoostedSpeed)
	}

	// No expiry: still boosted much later.
	for i := 0; i < 50; i++ {
		g.Tick(testDT, noInput())
	}
	if g.session.State.Player.Speed != BoostedSpeed {
		t.Error("speed boost should last until reset")
	}
}

func TestMultiplierDoublesFiveTicks(t *testing.T) {
	g := quietGame()
	g.session.State.Entities.AddPowerUp(powerUpOnPlayer(PowerUpMultiplier))

	expected := []int{2, 2, 2, 2, 2, 1, 1}
	prev := 0
	for i, inc := range expected {
		res := g.Tick(testDT, noInput())
		if got := res.Score - prev; got != inc {
			t.Errorf("tick %d: score increment = %d, expected %d", i, got, inc)
		}
		prev = res.Score
	}
	if g.session.State.Effects.MultiplierActive() {
		t.Error("multiplier should have expired")
	}
}

func TestMultiplierRearm(t *testing.T) {
	g := quietGame()
	g.session.State.Entities.AddPowerUp(powerUpOnPlayer(PowerUpMultiplier))
	g.Tick(testDT, noInput())
	g.Tick(testDT, noInput())

	if got := g.session.State.Effects.MultiplierTicks; got != MultiplierDuration-2 {
		t.Fatalf("MultiplierTicks = %d, expected %d", got, MultiplierDuration-2)
	}

	g.session.State.Entities.AddPowerUp(powerUpOnPlayer(PowerUpMultiplier))
	g.Tick(testDT, noInput())
	if got := g.session.State.Effects.MultiplierTicks; got != MultiplierDuration-1 {
		t.Errorf("re-pickup should re-arm to %d, then count down: got %d", MultiplierDuration, got)
	}
}

func TestGameOverAndHighScore(t *testing.T) {
	g := quietGame()
	g.session.HighScore = 100
	g.session.State.Lives = 1
	g.session.State.Score = 41
	g.session.State.Entities.AddObstacle(obstacleAbovePlayer())

	res := g.Tick(testDT, noInput())
	if !res.GameOver || res.Lives != 0 {
		t.Fatalf("expected game over, got %+v", res)
	}
	if res.HighScore != 100 {
		t.Errorf("lower score must not replace high score, got %d", res.HighScore)
	}
	if !(core.StepResult{Events: res.Events}).Has(core.EventGameOver) {
		t.Errorf("expected GameOver event, got %+v", res.Events)
	}

	frozen := g.session.State.Ticks
	for i := 0; i < 10; i++ {
		in := noInput()
		in.Set(core.ActionLeft)
		res = g.Tick(testDT, in)
	}
	if res.Score != 42 || g.session.State.Ticks != frozen {
		t.Errorf("ticks after game over changed state: score=%d ticks=%d", res.Score, g.session.State.Ticks)
	}
	if g.session.State.Player.Box.X != PlayerStartX {
		t.Error("input after game over should be ignored")
	}
}

func TestHighScoreRaisedByBetterRun(t *testing.T) {
	g := quietGame()
	g.session.HighScore = 10
	g.session.State.Lives = 1
	g.session.State.Score = 99
	g.session.State.Entities.AddObstacle(obstacleAbovePlayer())

	res := g.Tick(testDT, noInput())
	if res.HighScore != 100 {
		t.Errorf("HighScore = %d, expected final score 100", res.HighScore)
	}
	if g.session.Runs != 1 {
		t.Errorf("Runs = %d, expected 1", g.session.Runs)
	}
}

func TestResetPreservesHighScore(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20, Seed: 5}
	g := quietGame()
	g.session.State.Lives = 1
	g.session.State.Score = 250
	g.session.State.Difficulty = Difficulty{BlockSpeed: 12, SpawnRate: 0.19}
	g.session.State.Entities.AddObstacle(obstacleAbovePlayer())
	g.session.State.Effects.Shield = false
	g.Tick(testDT, noInput())

	high := g.session.HighScore
	g.Reset(cfg)
	st := g.session.State

	if st.Lives != 3 || st.Score != 0 || st.GameOver {
		t.Errorf("reset run: lives=%d score=%d over=%v", st.Lives, st.Score, st.GameOver)
	}
	if st.Difficulty.BlockSpeed != InitialBlockSpeed || st.Difficulty.SpawnRate != InitialSpawnRate {
		t.Errorf("difficulty not reset: %+v", st.Difficulty)
	}
	if st.Entities.Len() != 0 || st.Effects != (Effects{}) || st.Player.Speed != BaseSpeed {
		t.Error("entities and effects should be cleared")
	}
	if g.session.HighScore != high || high != 251 {
		t.Errorf("HighScore = %d, expected %d preserved", g.session.HighScore, high)
	}
}

func TestLivesNeverIncreaseOrGoNegative(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20, Seed: 7})

	prev := g.session.State.Lives
	for i := 0; i < 20000; i++ {
		in := noInput()
		if i%7 == 0 {
			in.Set(core.ActionLeft)
		}
		if i%11 == 0 {
			in.Set(core.ActionRight)
		}
		res := g.Tick(testDT, in)
		if res.Lives > prev || res.Lives < 0 {
			t.Fatalf("tick %d: lives went from %d to %d", i, prev, res.Lives)
		}
		box := g.session.State.Player.Box
		if box.X < 0 || box.Right() > FieldW {
			t.Fatalf("tick %d: player out of field %+v", i, box)
		}
		prev = res.Lives
		if res.GameOver {
			break
		}
	}
}

func TestOffscreenEntitiesAreCulled(t *testing.T) {
	g := quietGame()
	for i := 0; i < 5; i++ {
		g.session.State.Entities.AddObstacle(Obstacle{Box: core.NewRect(i*50, 0, 20, 20)})
	}

	for i := 0; i < FieldH/InitialBlockSpeed; i++ {
		g.Tick(testDT, noInput())
	}
	if n := g.session.State.Entities.Len(); n != 0 {
		t.Errorf("%d entities left after falling past the field", n)
	}
}

func TestPointerInput(t *testing.T) {
	g := quietGame()

	in := noInput()
	in.Set(core.ActionRight)
	in.SetPointer(1000)
	g.Tick(testDT, in)
	if g.session.State.Player.Box.Right() != FieldW {
		t.Errorf("pointer should clamp to the right wall, x_max = %d", g.session.State.Player.Box.Right())
	}

	g.SetPlayerPosition(-50)
	if g.session.State.Player.Box.X != 0 {
		t.Errorf("SetPlayerPosition should clamp to the left wall, x_min = %d", g.session.State.Player.Box.X)
	}
}

func TestGamePause(t *testing.T) {
	g := quietGame()

	pause := noInput()
	pause.Set(core.ActionPause)
	g.Tick(testDT, pause)
	if !g.session.State.Paused {
		t.Fatal("game should be paused")
	}

	for i := 0; i < 5; i++ {
		g.Tick(testDT, noInput())
	}
	if g.session.State.Ticks != 0 || g.session.State.Elapsed != 0 {
		t.Errorf("paused game advanced: ticks=%d elapsed=%v", g.session.State.Ticks, g.session.State.Elapsed)
	}

	g.Tick(testDT, pause)
	if g.session.State.Paused || g.session.State.Ticks != 1 {
		t.Errorf("unpause should resume on the same tick: paused=%v ticks=%d", g.session.State.Paused, g.session.State.Ticks)
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20, Seed: 12345}

	run := func() (int, int, int) {
		g := New()
		g.Reset(cfg)
		for i := 0; i < 3000; i++ {
			in := noInput()
			if i%9 < 3 {
				in.Set(core.ActionLeft)
			} else if i%9 > 5 {
				in.Set(core.ActionRight)
			}
			if g.Tick(testDT, in).GameOver {
				break
			}
		}
		st := g.session.State
		return st.Score, st.Ticks, st.Lives
	}

	s1, t1, l1 := run()
	s2, t2, l2 := run()
	if s1 != s2 || t1 != t2 || l1 != l2 {
		t.Errorf("runs diverged: (%d, %d, %d) vs (%d, %d, %d)", s1, t1, l1, s2, t2, l2)
	}
}

func TestStepUsesRuntimeTickRate(t *testing.T) {
	g := quietGame()
	res := g.Step(noInput())

	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}
	if g.session.State.Elapsed != testDT {
		t.Errorf("Elapsed = %v, expected %v at 20 ticks per second", g.session.State.Elapsed, testDT)
	}
}

func TestGameRender(t *testing.T) {
	g := quietGame()
	g.session.State.Entities.AddObstacle(Obstacle{Box: core.NewRect(0, 100, 30, 20)})
	g.session.State.Entities.AddPowerUp(PowerUp{Box: core.NewRect(385, 200, 15, 15), Kind: PowerUpMultiplier})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") || !strings.Contains(screen.Row(0), "Lives: 3") {
		t.Errorf("HUD missing: %q", screen.Row(0))
	}
	if screen.Get(0, 1) != '┌' || screen.Get(79, 23) != '┘' {
		t.Error("field border not drawn")
	}

	out := screen.String()
	for _, ch := range []rune{PlayerChar, BlockChar, PowerUpMultiplier.Glyph()} {
		if !strings.ContainsRune(out, ch) {
			t.Errorf("render is missing %q", ch)
		}
	}
}

func TestRenderGameOverPanel(t *testing.T) {
	g := quietGame()
	g.session.State.Lives = 1
	g.session.State.Entities.AddObstacle(obstacleAbovePlayer())
	g.Tick(testDT, noInput())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "High Score: 1") {
		t.Errorf("game over panel missing:\n%s", out)
	}
}

func TestPointAtMapsColumnsToField(t *testing.T) {
	g := quietGame()
	screen := core.NewScreen(82, 24) // 80 inner columns, 5 units each
	g.Render(screen)

	g.PointAt(41) // inner column 40 covers x 200..205
	if cx, _ := g.session.State.Player.Box.Center(); cx != 202 {
		t.Errorf("player center x = %d, expected 202", cx)
	}

	g.PointAt(0)
	if g.session.State.Player.Box.X != 0 {
		t.Errorf("pointing at the border should clamp to the left wall, x_min = %d", g.session.State.Player.Box.X)
	}
}
