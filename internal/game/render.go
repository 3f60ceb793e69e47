package game

import (
	"fmt"
	"math"

	"github.com/arcadeward/rocketrun/internal/core"
	"github.com/arcadeward/rocketrun/internal/geom"
	"github.com/arcadeward/rocketrun/internal/sim"
)

// One terminal cell covers this many world units. Cells are taller than
// they are wide, so the vertical scale is roughly double the horizontal
// one to keep world squares looking square.
const (
	cellWidth  = 10.0
	cellHeight = 20.0
)

// BoundsForScreen maps a terminal size to world bounds centered on the
// origin. An 80x30 terminal yields the reference world of (-400,-300) to
// (400,300).
func BoundsForScreen(cols, rows int) geom.Rect {
	w := float64(cols) * cellWidth
	h := float64(rows) * cellHeight
	return geom.Rect{Min: geom.V(-w/2, -h/2), Max: geom.V(w/2, h/2)}
}

// cellRect projects a world rectangle onto screen cells. The projection
// flips Y: world +Y is up, screen +Y is down.
func (g *Game) cellRect(r geom.Rect) core.Rect {
	x0 := int(math.Floor((r.Min.X - g.bounds.Min.X) / cellWidth))
	x1 := int(math.Ceil((r.Max.X - g.bounds.Min.X) / cellWidth))
	y0 := int(math.Floor((g.bounds.Max.Y - r.Max.Y) / cellHeight))
	y1 := int(math.Ceil((g.bounds.Max.Y - r.Min.Y) / cellHeight))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the whole frame: world entities, the player, the HUD line,
// and whatever phase banner applies.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.phase == core.PhaseLoading {
		g.drawLoading(dst)
		return
	}

	for _, e := range g.world.Entities() {
		g.drawEntity(dst, e)
	}

	if g.phase != core.PhaseDying {
		g.drawPlayer(dst)
	}

	g.drawHUD(dst)

	switch {
	case g.paused:
		drawBanner(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	case g.phase == core.PhaseReady:
		drawBanner(dst, "ROCKET RUN", "Space to launch  |  Tab for scores", core.ColorBrightCyan)
	case g.phase == core.PhaseDying:
		drawBanner(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R to retry", g.score), core.ColorBrightRed)
	}
}

// drawEntity picks the glyph and color for one world entity.
func (g *Game) drawEntity(dst *core.Screen, e sim.Entity) {
	r := g.cellRect(e.Rect())
	switch e.Kind {
	case sim.EntityBarrier:
		dst.DrawRect(r, '█', core.ColorGreen)
	case sim.EntityScoring:
		if e.Active {
			dst.DrawRect(r, '·', core.ColorGray)
		}
	case sim.EntityGravity:
		glyph := '↓'
		color := core.ColorOrange
		if e.Sign < 0 {
			glyph = '↑'
			color = core.ColorBrightCyan
		}
		if !e.Active {
			color = core.ColorGray
		}
		dst.DrawRect(r, glyph, color)
	case sim.EntityPiece:
		dst.DrawRect(r, '*', core.ColorBrightRed)
	}
}

// drawPlayer draws the rocket body over its collision rect with a nose
// cone on the leading edge.
func (g *Game) drawPlayer(dst *core.Screen) {
	r := g.cellRect(g.player.Rect())
	dst.DrawRect(r, '█', core.ColorBrightYellow)
	noseY := r.Y + r.H/2
	dst.SetCell(r.Right()-1, noseY, '▶', core.ColorBrightRed)
}

// drawHUD writes the status line along the top edge.
func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d   Best: %d   Tier: %s ", g.score, g.best, g.tierName)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	if g.settings.GravityMult < 0 {
		tag := " GRAVITY ↑ "
		dst.DrawTextColored(dst.Width()-len([]rune(tag))-1, 0, tag, core.ColorBrightCyan)
	}
}

// drawLoading reports a config failure in place of a playfield. Without an
// error the session simply has not been reset yet.
func (g *Game) drawLoading(dst *core.Screen) {
	if g.loadErr == nil {
		dst.DrawTextCentered(dst.Height()/2, "loading...", core.ColorGray)
		return
	}
	msg := g.loadErr.Error()
	if max := dst.Width() - 6; max > 0 && len(msg) > max {
		msg = msg[:max]
	}
	drawBanner(dst, "LEVEL CONFIG ERROR", msg, core.ColorBrightRed)
}

// drawBanner draws a centered message box over the playfield.
func drawBanner(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorWhite)
}
