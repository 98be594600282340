package dodge

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Visual characters for rendering
const (
	BlockChar  = '█'
	PlayerChar = '▀'
)

// viewport maps the playfield onto the screen cells inside the border.
type viewport struct {
	X, Y int // Top-left inner cell
	W, H int // Inner size in cells
}

func (v viewport) valid() bool {
	return v.W > 0 && v.H > 0
}

// cellRect scales a playfield rect to screen cells. Every visible entity
// covers at least one cell.
func (v viewport) cellRect(r core.Rect) core.Rect {
	x0 := r.X * v.W / FieldW
	x1 := ceilDiv(r.Right()*v.W, FieldW)
	y0 := r.Y * v.H / FieldH
	y1 := ceilDiv(r.Bottom()*v.H, FieldH)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(v.X+x0, v.Y+y0, x1-x0, y1-y0)
}

// worldX converts a screen column to the playfield x at that column's center.
func (v viewport) worldX(col int) int {
	return ((col-v.X)*FieldW + FieldW/2) / v.W
}

// fill draws a scaled rect, clipped to the inner area.
func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	cr := v.cellRect(r)
	for y := cr.Y; y < cr.Bottom(); y++ {
		if y < v.Y || y >= v.Y+v.H {
			continue
		}
		for x := cr.X; x < cr.Right(); x++ {
			if x < v.X || x >= v.X+v.W {
				continue
			}
			dst.SetCell(x, y, ch, c)
		}
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// layout computes the viewport for a screen: a HUD row on top, then the
// bordered field filling the rest.
func layout(dst *core.Screen) viewport {
	w, h := dst.Width(), dst.Height()
	if w < 12 || h < 6 {
		return viewport{}
	}
	return viewport{X: 1, Y: 2, W: w - 2, H: h - 3}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	v := layout(dst)
	g.view = v
	if !v.valid() {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	st := &g.session.State
	g.drawHUD(dst)
	dst.DrawBox(core.NewRect(v.X-1, v.Y-1, v.W+2, v.H+2))

	for _, o := range st.Entities.Obstacles() {
		v.fill(dst, o.Box, BlockChar, core.ColorRed)
	}
	for _, p := range st.Entities.PowerUps() {
		v.fill(dst, p.Box, p.Kind.Glyph(), p.Kind.Color())
	}

	playerColor := core.ColorBlue
	if st.Effects.Shield {
		playerColor = core.ColorBrightCyan
	}
	v.fill(dst, st.Player.Box, PlayerChar, playerColor)

	if st.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if st.GameOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  High Score: %d", st.Score, g.session.HighScore),
			"Press R to retry")
	}
}

// drawHUD renders score, active effects and lives on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	st := &g.session.State

	dst.DrawColorText(1, 0, fmt.Sprintf("Score: %d", st.Score), core.ColorWhite)

	lives := fmt.Sprintf("Lives: %d", st.Lives)
	dst.DrawColorText(dst.Width()-len(lives)-1, 0, lives, core.ColorWhite)

	var tags []string
	if st.Effects.Shield {
		tags = append(tags, "SHIELD")
	}
	if st.Effects.SpeedBoost {
		tags = append(tags, "SPEED")
	}
	if st.Effects.MultiplierActive() {
		tags = append(tags, fmt.Sprintf("x2:%d", st.Effects.MultiplierTicks))
	}
	if len(tags) > 0 {
		status := strings.Join(tags, " ")
		dst.DrawColorText((dst.Width()-len(status))/2, 0, status, core.ColorYellow)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := len(title)
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 4
	boxH := 3 + len(lines)*2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawColorText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len(l))/2, boxY+3+i*2, l)
	}
}
