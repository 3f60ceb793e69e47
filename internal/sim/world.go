package sim

import (
	"math"
	"math/rand"

	"github.com/arcadeward/rocketrun/internal/geom"
	"github.com/arcadeward/rocketrun/internal/spawn"
)

// EntityKind identifies what an entity is.
type EntityKind int

const (
	// EntityBarrier is a solid tunnel piece; touching it kills the player.
	EntityBarrier EntityKind = iota
	// EntityScoring is the sensor gap between a tunnel's barriers.
	EntityScoring
	// EntityGravity is a gravity-shift sensor region.
	EntityGravity
	// EntityPiece is a fragment of the exploded player.
	EntityPiece
)

// retuneDuration is how long item velocities take to reach the new tier's
// velocity after a level change.
const retuneDuration = 0.5

// Entity is one object in the world. Spawned item pieces are kinematic
// (they keep their velocity and ignore gravity); death pieces are dynamic.
type Entity struct {
	ID      int
	Kind    EntityKind
	Pos     geom.Vec2
	Extents geom.Vec2
	Vel     geom.Vec2

	// TunnelID groups the pieces of one tunnel so a barrier hit can
	// retire its own scoring region. Zero means ungrouped.
	TunnelID int

	// RemoveBeyond is how far past the left edge the entity may travel
	// before it is culled. Zero disables culling.
	RemoveBeyond float64

	// Active marks a sensor that has not fired yet. Sensors fire at most
	// once; gravity regions stay visible after firing, scoring regions are
	// removed outright.
	Active bool

	Sign       float64 // gravity regions: the multiplier applied on entry
	ScoreDelta int     // scoring regions: points awarded on entry
	Dynamic    bool    // dynamic entities integrate gravity

	tween *velocityTween
}

// Rect returns the entity's world-space bounds.
func (e *Entity) Rect() geom.Rect {
	return geom.FromCenter(e.Pos, e.Extents)
}

// velocityTween linearly re-targets an entity's velocity over a fixed time.
type velocityTween struct {
	from, to geom.Vec2
	elapsed  float64
}

// World holds every live entity. All mutation happens inside the frame
// update; nothing here is safe for concurrent use.
type World struct {
	entities     []Entity
	nextID       int
	nextTunnelID int
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{nextID: 1, nextTunnelID: 1}
}

// Materialize expands spawner item descriptions into live entities.
// The three pieces of a tunnel share a tunnel ID; barriers whose extent
// clamped to zero are skipped.
func (w *World) Materialize(items []spawn.Item) {
	for _, it := range items {
		switch it.Kind {
		case spawn.KindTunnel:
			id := w.nextTunnelID
			w.nextTunnelID++
			for _, barrier := range []spawn.Placement{it.Tunnel.Top, it.Tunnel.Bottom} {
				if barrier.Degenerate() {
					continue
				}
				w.add(Entity{
					Kind:         EntityBarrier,
					Pos:          barrier.Center,
					Extents:      barrier.Extents,
					Vel:          barrier.Velocity,
					TunnelID:     id,
					RemoveBeyond: barrier.RemoveBeyond,
					Active:       true,
				})
			}
			if !it.Tunnel.Scoring.Degenerate() {
				w.add(Entity{
					Kind:         EntityScoring,
					Pos:          it.Tunnel.Scoring.Center,
					Extents:      it.Tunnel.Scoring.Extents,
					Vel:          it.Tunnel.Scoring.Velocity,
					TunnelID:     id,
					RemoveBeyond: it.Tunnel.Scoring.RemoveBeyond,
					Active:       true,
					ScoreDelta:   it.Tunnel.ScoreDelta,
				})
			}
		case spawn.KindGravity:
			p := it.Gravity.Placement
			w.add(Entity{
				Kind:         EntityGravity,
				Pos:          p.Center,
				Extents:      p.Extents,
				Vel:          p.Velocity,
				RemoveBeyond: p.RemoveBeyond,
				Active:       true,
				Sign:         it.Gravity.Sign,
			})
		}
	}
}

func (w *World) add(e Entity) {
	e.ID = w.nextID
	w.nextID++
	w.entities = append(w.entities, e)
}

// Explode scatters death pieces across the player's body, each inheriting
// the player velocity plus a random outward kick.
func (w *World) Explode(center, vel geom.Vec2, extents geom.Vec2, speed float64, rng *rand.Rand) {
	const pieceSize = 5.0
	for dx := -extents.X + pieceSize; dx < extents.X; dx += pieceSize * 2 {
		for dy := -extents.Y + pieceSize; dy < extents.Y; dy += pieceSize * 2 {
			dir := geom.FromAngle(rng.Float64() * 2 * math.Pi)
			w.add(Entity{
				Kind:    EntityPiece,
				Pos:     center.Add(geom.V(dx, dy)),
				Extents: geom.V(pieceSize/2, pieceSize/2),
				Vel:     vel.Add(dir.Scale(speed)),
				Dynamic: true,
				Active:  true,
			})
		}
	}
}

// Step advances velocity tweens and integrates positions. Dynamic entities
// accelerate under gravity first, then every entity moves by its velocity.
func (w *World) Step(dt float64, gravity geom.Vec2) {
	for i := range w.entities {
		e := &w.entities[i]
		if tw := e.tween; tw != nil {
			tw.elapsed += dt
			t := tw.elapsed / retuneDuration
			if t >= 1 {
				e.Vel = tw.to
				e.tween = nil
			} else {
				e.Vel = tw.from.Lerp(tw.to, t)
			}
		}
		if e.Dynamic {
			e.Vel = e.Vel.Add(gravity.Scale(dt))
		}
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	}
}

// RetuneVelocities starts a linear tween of every kinematic item toward the
// new item velocity. Dynamic pieces keep falling as they were.
func (w *World) RetuneVelocities(target geom.Vec2) {
	for i := range w.entities {
		e := &w.entities[i]
		if e.Dynamic {
			continue
		}
		e.tween = &velocityTween{from: e.Vel, to: target}
	}
}

// CullLeft removes entities that have moved past the left edge by more
// than their own removal width.
func (w *World) CullLeft(bounds geom.Rect) {
	kept := w.entities[:0]
	for _, e := range w.entities {
		if e.RemoveBeyond > 0 && e.Pos.X < bounds.Min.X-e.RemoveBeyond {
			continue
		}
		kept = append(kept, e)
	}
	w.entities = kept
}

// Clear removes every entity. Used on reset.
func (w *World) Clear() {
	w.entities = w.entities[:0]
}

// CollideScoring awards and removes every active scoring region the player
// overlaps. The returned delta is the sum; hit reports whether any fired.
func (w *World) CollideScoring(player geom.Rect) (delta int, hit bool) {
	kept := w.entities[:0]
	for _, e := range w.entities {
		if e.Kind == EntityScoring && e.Active && player.Intersects(e.Rect()) {
			delta += e.ScoreDelta
			hit = true
			continue // crossed regions are removed outright
		}
		kept = append(kept, e)
	}
	w.entities = kept
	return delta, hit
}

// CollideGravity fires every active gravity region the player overlaps,
// deactivating each so it cannot fire again. The last sign wins when
// regions overlap.
func (w *World) CollideGravity(player geom.Rect) (sign float64, hit bool) {
	for i := range w.entities {
		e := &w.entities[i]
		if e.Kind == EntityGravity && e.Active && player.Intersects(e.Rect()) {
			e.Active = false
			sign = e.Sign
			hit = true
		}
	}
	return sign, hit
}

// CollideBarrier reports whether the player overlaps any barrier, and
// retires the scoring regions paired with the barriers that were hit so a
// dead run cannot also score.
func (w *World) CollideBarrier(player geom.Rect) bool {
	hitTunnels := make(map[int]bool)
	hit := false
	for i := range w.entities {
		e := &w.entities[i]
		if e.Kind == EntityBarrier && player.Intersects(e.Rect()) {
			hit = true
			if e.TunnelID != 0 {
				hitTunnels[e.TunnelID] = true
			}
		}
	}
	if len(hitTunnels) == 0 {
		return hit
	}
	kept := w.entities[:0]
	for _, e := range w.entities {
		if e.Kind == EntityScoring && hitTunnels[e.TunnelID] {
			continue
		}
		kept = append(kept, e)
	}
	w.entities = kept
	return hit
}

// Entities returns the live entity slice for rendering and tests. The
// slice is owned by the world and valid until the next mutation.
func (w *World) Entities() []Entity {
	return w.entities
}

// Count returns the number of live entities of the given kind.
func (w *World) Count(kind EntityKind) int {
	n := 0
	for i := range w.entities {
		if w.entities[i].Kind == kind {
			n++
		}
	}
	return n
}
