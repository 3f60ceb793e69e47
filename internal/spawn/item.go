// Package spawn implements the weighted-random item spawner: a cadence
// timer that emits tunnels and gravity-shift regions as plain geometry
// descriptions for the world to materialize, plus the tier-swap state
// machine driven by score thresholds.
package spawn

import "github.com/arcadeward/rocketrun/internal/geom"

// Kind tags the variant carried by an Item.
type Kind int

const (
	// KindTunnel is a pair of barriers with a scoring gap between them.
	KindTunnel Kind = iota
	// KindGravity is a full-height region that flips gravity when entered.
	KindGravity
)

// String returns the kind name for logs and test output.
func (k Kind) String() string {
	switch k {
	case KindTunnel:
		return "tunnel"
	case KindGravity:
		return "gravity"
	default:
		return "unknown"
	}
}

// Placement describes one physical piece of a spawned item: where it sits,
// how big it is, how it moves, and when it may be culled. RemoveBeyond is
// the piece's own width; the world removes a piece once its center has
// passed the left edge by more than that.
type Placement struct {
	Center       geom.Vec2
	Extents      geom.Vec2
	Velocity     geom.Vec2
	RemoveBeyond float64
}

// Rect returns the axis-aligned bounds of the placement.
func (p Placement) Rect() geom.Rect {
	return geom.FromCenter(p.Center, p.Extents)
}

// Degenerate reports whether the placement has no area and must not be
// materialized as a collider.
func (p Placement) Degenerate() bool {
	return p.Extents.X <= 0 || p.Extents.Y <= 0
}

// Tunnel is two barriers and the scoring region between them. A barrier
// whose extent clamped to zero is degenerate and is skipped when the
// tunnel is materialized.
type Tunnel struct {
	Top     Placement
	Bottom  Placement
	Scoring Placement

	// ScoreDelta is awarded when the player crosses the scoring region.
	ScoreDelta int
}

// GravityRegion flips gravity to Sign when the player enters it.
type GravityRegion struct {
	Placement Placement
	Sign      float64
}

// Item is a tagged variant: exactly the field matching Kind is meaningful.
type Item struct {
	Kind    Kind
	Tunnel  Tunnel
	Gravity GravityRegion
}
