package carrot

import (
	"fmt"
	"math"

	"github.com/vovakirdan/carrot-quest/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar  = '▀'
	ObstacleChar  = '●'
	FuseChar      = '*'
	ActorChar     = '█'
	EarChar       = '▲'
	FacingRightCh = '▶'
	FacingLeftCh  = '◀'
)

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(worldW, worldH float64, dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / worldW,
		sy: float64(dst.Height()) / worldH,
	}
}

// rect converts a world box to the cells it covers. Every visible box covers
// at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// row converts a world y to a screen row.
func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	w := g.world
	vp := newViewport(g.cfg.Viewport.Width, g.cfg.Viewport.Height, dst)

	// Platforms are drawn as a ledge at their landing line.
	for _, p := range w.Platforms {
		r := vp.rect(p.Box())
		dst.DrawHLine(r.X, vp.row(p.Box().CenterY()), r.W, PlatformChar, core.ColorGreen)
	}

	for _, o := range w.Obstacles {
		r := vp.rect(o.Box())
		dst.DrawRect(r, ObstacleChar, core.ColorBrightRed)
		dst.SetColor(r.X+r.W/2, r.Y-1, FuseChar, core.ColorYellow)
	}

	g.drawActor(dst, vp.rect(w.Actor.Box()))

	// Draw HUD
	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", w.Score), core.ColorBrightYellow)

	// Show difficulty level if progression is enabled
	if level, ok := w.DifficultyLevel(); ok {
		levelText := fmt.Sprintf(" Lvl: %d%% ", int(math.Round(level*100)))
		dst.DrawText(dst.Width()-len(levelText)-2, 0, levelText)
	}

	switch w.Phase() {
	case core.PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "P: resume  |  I: how to play  |  B: menu  |  Q: quit")
	case core.PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("%s  Score: %d  |  R: restart  |  B: menu", w.Reason, w.Score))
	}
}

// drawActor draws the rabbit body, ears on top and a facing marker.
func (g *Game) drawActor(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, ActorChar, core.ColorBrightWhite)
	if r.H > 1 {
		dst.SetColor(r.X, r.Y, EarChar, core.ColorWhite)
		dst.SetColor(r.Right()-1, r.Y, EarChar, core.ColorWhite)
	}

	eyeY := r.Y + r.H/2
	if g.world.Actor.Facing == FacingLeft {
		dst.SetColor(r.X, eyeY, FacingLeftCh, core.ColorOrange)
	} else {
		dst.SetColor(r.Right()-1, eyeY, FacingRightCh, core.ColorOrange)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle)
}
