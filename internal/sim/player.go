package sim

import (
	"github.com/arcadeward/rocketrun/internal/geom"
	"github.com/arcadeward/rocketrun/internal/level"
)

// playerExtents is the half-size of the player's collision box.
var playerExtents = geom.V(20, 28)

// Player is the rocket's dynamic body. It starts at the world center and
// falls under the current gravity until a jump re-targets its velocity.
type Player struct {
	Pos geom.Vec2
	Vel geom.Vec2
}

// NewPlayer returns a player at rest at the world center.
func NewPlayer() *Player {
	return &Player{}
}

// Jump sets the velocity to the jump vector for the current gravity, so
// the kick always pushes away from the pull.
func (p *Player) Jump(settings *level.Settings) {
	p.Vel = settings.JumpVector()
}

// Step integrates the body one frame under the given gravity.
func (p *Player) Step(dt float64, gravity geom.Vec2) {
	p.Vel = p.Vel.Add(gravity.Scale(dt))
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

// Rect returns the collision box.
func (p *Player) Rect() geom.Rect {
	return geom.FromCenter(p.Pos, playerExtents)
}

// Extents returns the half-size of the collision box.
func (p *Player) Extents() geom.Vec2 {
	return playerExtents
}

// InBounds reports whether the player's center is still inside the world.
// Leaving the world is lethal.
func (p *Player) InBounds(bounds geom.Rect) bool {
	return bounds.Contains(p.Pos)
}

// Reset moves the player back to the world center with no velocity.
func (p *Player) Reset() {
	p.Pos = geom.Vec2{}
	p.Vel = geom.Vec2{}
}
