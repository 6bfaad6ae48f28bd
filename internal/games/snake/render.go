package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	headRune = '@'
	bodyRune = 'o'
	foodRune = '*'
)

// Render draws the HUD, the play field and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.engine.Snapshot()
	g.renderHUD(dst, snap)

	if g.tooSmall {
		grid := g.opts.Settings.Grid
		g.renderOverlay(dst, core.ColorYellow,
			"Window too small",
			fmt.Sprintf("Need %dx%d, resize to continue", grid.Width+2, grid.Height+2+hudHeight),
		)
		return
	}

	field := g.fieldRect(dst)
	dst.DrawBox(field, core.ColorGray)

	cellAt := func(c Cell) (int, int) {
		return field.X + 1 + c.X, field.Y + 1 + c.Y
	}

	fx, fy := cellAt(snap.Food)
	dst.SetColor(fx, fy, foodRune, core.ColorBrightRed)

	// Tail first so the head wins if they share a cell.
	for i := len(snap.Body) - 1; i >= 0; i-- {
		x, y := cellAt(snap.Body[i])
		if !field.Contains(x, y) {
			continue
		}
		if i == 0 {
			dst.SetColor(x, y, headRune, core.ColorBrightGreen)
		} else {
			dst.SetColor(x, y, bodyRune, core.ColorGreen)
		}
	}

	if snap.Phase == PhaseGameOver {
		g.renderOverlay(dst, core.ColorBrightWhite,
			"GAME OVER",
			"Final Score: "+FormatScore(snap.Score),
			"Press SPACE or R to play again",
		)
	}
}

// fieldRect is the bordered play area, centered horizontally under the HUD.
func (g *Game) fieldRect(dst *core.Screen) core.Rect {
	grid := g.opts.Settings.Grid
	w, h := grid.Width+2, grid.Height+2
	x := core.Max((dst.Width()-w)/2, 0)
	return core.NewRect(x, hudHeight, w, h)
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Score: %s  High: %s  Length: %d",
		FormatScore(snap.Score), FormatScore(snap.HighScore), snap.Length)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderOverlay draws a centered box with one line per message.
func (g *Game) renderOverlay(dst *core.Screen, c core.Color, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = core.Max(maxLen, len(l))
	}
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(maxLen+4, len(lines)*2+1)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, l := range lines {
		y := box.Y + 1 + i*2
		x := box.X + (box.W-len(l))/2
		dst.DrawTextColor(core.Clamp(x, box.X+1, box.Right()-1), y, l, c)
	}
}
