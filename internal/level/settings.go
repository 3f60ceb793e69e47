// Package level provides the session physics settings and the swappable
// spawner tier configuration, loaded from YAML with embedded defaults.
package level

import (
	"time"

	"github.com/arcadeward/rocketrun/internal/geom"
)

// Settings holds the physics constants for a play session together with
// the current gravity multiplier. The base vectors never change after
// construction; only GravityMult is mutated, by the gravity-shift handler
// and by Reset.
type Settings struct {
	BaseJumpVelocity geom.Vec2
	BaseGravity      geom.Vec2
	GravityMult      float64
	ExplosionSpeed   float64
	DeathDelay       time.Duration
}

// DefaultSettings returns the physics constants used by every session.
func DefaultSettings() Settings {
	return Settings{
		BaseJumpVelocity: geom.V(0, 350),
		BaseGravity:      geom.V(0, -500),
		GravityMult:      1,
		ExplosionSpeed:   150,
		DeathDelay:       3 * time.Second,
	}
}

// JumpVector returns the velocity applied to the player on a jump,
// flipped along with gravity so a jump always pushes away from the pull.
func (s *Settings) JumpVector() geom.Vec2 {
	return s.BaseJumpVelocity.Scale(s.GravityMult)
}

// GravityVector returns the world gravity under the current multiplier.
func (s *Settings) GravityVector() geom.Vec2 {
	return s.BaseGravity.Scale(s.GravityMult)
}

// SetGravityMult sets the gravity multiplier to the sign of v.
// Zero is ignored so a malformed region cannot null out gravity.
func (s *Settings) SetGravityMult(v float64) {
	switch {
	case v > 0:
		s.GravityMult = 1
	case v < 0:
		s.GravityMult = -1
	}
}

// Reset restores the multiplier for a fresh run.
func (s *Settings) Reset() {
	s.GravityMult = 1
}
