package headless

import (
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

// lookahead is how far above the paddle the autopilot watches for blocks.
const lookahead = 120

// Autopilot steers away from the nearest block falling toward the paddle.
// Only blocks near the paddle column are considered.
func Autopilot(g *dodge.Game) core.InputFrame {
	in := core.NewInputFrame()
	player := g.Session().State.Player.Box

	danger := core.NewRect(player.X-dodge.BaseSpeed, player.Y-lookahead, player.W+2*dodge.BaseSpeed, lookahead+player.H)

	var threat *core.Rect
	for _, e := range g.Entities() {
		if e.Kind != dodge.EntityObstacle || !dodge.Overlaps(e.Box, danger) {
			continue
		}
		if threat == nil || e.Box.Bottom() > threat.Bottom() {
			box := e.Box
			threat = &box
		}
	}
	if threat == nil {
		return in
	}

	tx, _ := threat.Center()
	px, _ := player.Center()
	switch {
	case player.X == 0:
		in.Set(core.ActionRight)
	case player.Right() == dodge.FieldW:
		in.Set(core.ActionLeft)
	case tx >= px:
		in.Set(core.ActionLeft)
	default:
		in.Set(core.ActionRight)
	}
	return in
}
