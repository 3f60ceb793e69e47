package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/arcadeward/rocketrun/internal/geom"
	"github.com/arcadeward/rocketrun/internal/level"
	"github.com/arcadeward/rocketrun/internal/spawn"
)

var testBounds = geom.Rect{Min: geom.V(-400, -300), Max: geom.V(400, 300)}

func tunnelConfig() level.TunnelConfig {
	return level.TunnelConfig{
		CenterYRange:    [2]float64{-200, 200},
		GapHeightRange:  [2]float64{200, 300},
		ObstacleWidth:   96,
		ScoringGapWidth: 32,
	}
}

func tunnelItem(gapCenter, gapHeight float64) spawn.Item {
	return spawn.Item{
		Kind:   spawn.KindTunnel,
		Tunnel: spawn.BuildTunnelAt(gapCenter, gapHeight, tunnelConfig(), geom.V(-200, 0), 420, testBounds),
	}
}

func gravityItem(sign float64) spawn.Item {
	return spawn.Item{
		Kind:    spawn.KindGravity,
		Gravity: spawn.BuildGravityRegion(sign, level.GravityConfig{RegionWidth: 32}, geom.V(-200, 0), 420, testBounds),
	}
}

func TestMaterializeTunnelSharesGroup(t *testing.T) {
	w := NewWorld()
	w.Materialize([]spawn.Item{tunnelItem(0, 250)})

	if got := w.Count(EntityBarrier); got != 2 {
		t.Fatalf("barriers = %d, expected 2", got)
	}
	if got := w.Count(EntityScoring); got != 1 {
		t.Fatalf("scoring regions = %d, expected 1", got)
	}

	var group int
	for _, e := range w.Entities() {
		if group == 0 {
			group = e.TunnelID
		}
		if e.TunnelID != group {
			t.Errorf("entity %d has tunnel id %d, expected %d", e.ID, e.TunnelID, group)
		}
	}
	if group == 0 {
		t.Error("tunnel pieces have no group id")
	}
}

func TestMaterializeDistinctTunnelsGetDistinctGroups(t *testing.T) {
	w := NewWorld()
	w.Materialize([]spawn.Item{tunnelItem(0, 250), tunnelItem(100, 200)})

	groups := make(map[int]int)
	for _, e := range w.Entities() {
		groups[e.TunnelID]++
	}
	if len(groups) != 2 {
		t.Fatalf("tunnel groups = %d, expected 2", len(groups))
	}
	for id, n := range groups {
		if n != 3 {
			t.Errorf("group %d has %d pieces, expected 3", id, n)
		}
	}
}

func TestMaterializeSkipsDegenerateBarrier(t *testing.T) {
	w := NewWorld()
	// Gap overflows the ceiling, so the top barrier clamps away.
	w.Materialize([]spawn.Item{tunnelItem(200, 300)})

	if got := w.Count(EntityBarrier); got != 1 {
		t.Errorf("barriers = %d, expected 1 after the degenerate top was skipped", got)
	}
	if got := w.Count(EntityScoring); got != 1 {
		t.Errorf("scoring regions = %d, expected 1", got)
	}
}

func TestStepKinematicIgnoresGravity(t *testing.T) {
	w := NewWorld()
	w.Materialize([]spawn.Item{gravityItem(-1)})

	before := w.Entities()[0]
	w.Step(0.1, geom.V(0, -500))
	after := w.Entities()[0]

	if after.Vel != before.Vel {
		t.Errorf("kinematic velocity changed: %v -> %v", before.Vel, after.Vel)
	}
	if dx := after.Pos.X - before.Pos.X; math.Abs(dx+20) > 1e-9 {
		t.Errorf("moved %v on x, expected -20", dx)
	}
}

func TestStepDynamicFalls(t *testing.T) {
	w := NewWorld()
	w.Explode(geom.V(0, 0), geom.V(0, 0), geom.V(5, 5), 0, rand.New(rand.NewSource(1)))
	if w.Count(EntityPiece) == 0 {
		t.Fatal("no pieces spawned")
	}

	w.Step(0.1, geom.V(0, -500))
	p := w.Entities()[0]
	if math.Abs(p.Vel.Y+50) > 1e-9 {
		t.Errorf("piece velocity y = %v after 0.1s under -500 gravity, expected -50", p.Vel.Y)
	}
	if math.Abs(p.Pos.Y+5) > 1e-9 {
		t.Errorf("piece position y = %v, expected -5", p.Pos.Y)
	}
}

func TestExplodeScattersPieces(t *testing.T) {
	w := NewWorld()
	baseVel := geom.V(-50, 100)
	w.Explode(geom.V(10, 20), baseVel, geom.V(20, 28), 150, rand.New(rand.NewSource(4)))

	n := w.Count(EntityPiece)
	if n == 0 {
		t.Fatal("no pieces spawned")
	}
	for _, e := range w.Entities() {
		if !e.Dynamic {
			t.Errorf("piece %d is not dynamic", e.ID)
		}
		kick := e.Vel.Sub(baseVel)
		if math.Abs(kick.Len()-150) > 1e-6 {
			t.Errorf("piece %d kick = %v, expected length 150", e.ID, kick.Len())
		}
	}
}

func TestCullLeftUsesOwnWidth(t *testing.T) {
	w := NewWorld()
	w.Materialize([]spawn.Item{tunnelItem(0, 250)})

	// Drag everything just to the cull threshold for a 96-wide barrier.
	for i := range w.entities {
		w.entities[i].Pos.X = testBounds.Min.X - 96
	}
	w.CullLeft(testBounds)
	if got := w.Count(EntityBarrier); got != 2 {
		t.Fatalf("barriers = %d at the threshold, expected 2 kept", got)
	}
	// The narrower scoring region is already past its own threshold.
	if got := w.Count(EntityScoring); got != 0 {
		t.Errorf("scoring regions = %d, expected 0 culled at 32 past the edge", got)
	}

	for i := range w.entities {
		w.entities[i].Pos.X -= 1
	}
	w.CullLeft(testBounds)
	if got := len(w.Entities()); got != 0 {
		t.Errorf("entities = %d past the threshold, expected 0", got)
	}
}

func TestRetuneVelocitiesTweensLinearly(t *testing.T) {
	w := NewWorld()
	w.Materialize([]spawn.Item{gravityItem(-1)})
	w.Explode(geom.V(0, 0), geom.V(0, 0), geom.V(5, 5), 0, rand.New(rand.NewSource(2)))

	w.RetuneVelocities(geom.V(-300, 0))

	w.Step(0.25, geom.Vec2{})
	for _, e := range w.Entities() {
		switch e.Kind {
		case EntityGravity:
			if math.Abs(e.Vel.X+250) > 1e-9 {
				t.Errorf("kinematic velocity x = %v halfway through, expected -250", e.Vel.X)
			}
		case EntityPiece:
			if e.Vel.X != 0 {
				t.Errorf("dynamic piece velocity x = %v, expected untouched 0", e.Vel.X)
			}
		}
	}

	w.Step(0.25, geom.Vec2{})
	w.Step(0.25, geom.Vec2{})
	for _, e := range w.Entities() {
		if e.Kind == EntityGravity && math.Abs(e.Vel.X+300) > 1e-9 {
			t.Errorf("kinematic velocity x = %v after the tween, expected -300", e.Vel.X)
		}
	}
}

func TestCollideScoringFiresOnceAndRemoves(t *testing.T) {
	w := NewWorld()
	w.Materialize([]spawn.Item{tunnelItem(0, 250)})

	var region geom.Rect
	for _, e := range w.Entities() {
		if e.Kind == EntityScoring {
			region = e.Rect()
		}
	}

	delta, hit := w.CollideScoring(region)
	if !hit || delta != 1 {
		t.Fatalf("CollideScoring() = (%d, %v), expected (1, true)", delta, hit)
	}
	if got := w.Count(EntityScoring); got != 0 {
		t.Errorf("scoring regions = %d after crossing, expected 0", got)
	}

	delta, hit = w.CollideScoring(region)
	if hit || delta != 0 {
		t.Errorf("second CollideScoring() = (%d, %v), expected (0, false)", delta, hit)
	}
}

func TestCollideGravityFiresOnceAndStaysVisible(t *testing.T) {
	w := NewWorld()
	w.Materialize([]spawn.Item{gravityItem(-1)})
	region := w.Entities()[0].Rect()

	sign, hit := w.CollideGravity(region)
	if !hit || sign != -1 {
		t.Fatalf("CollideGravity() = (%v, %v), expected (-1, true)", sign, hit)
	}
	// The region keeps scrolling after firing; only the trigger is spent.
	if got := w.Count(EntityGravity); got != 1 {
		t.Errorf("gravity regions = %d after firing, expected 1", got)
	}

	if _, hit := w.CollideGravity(region); hit {
		t.Error("a spent gravity region fired again")
	}
}

func TestCollideBarrierRetiresPairedScoring(t *testing.T) {
	w := NewWorld()
	w.Materialize([]spawn.Item{tunnelItem(0, 250), tunnelItem(100, 200)})

	var first geom.Rect
	firstGroup := 0
	for _, e := range w.Entities() {
		if e.Kind == EntityBarrier {
			first = e.Rect()
			firstGroup = e.TunnelID
			break
		}
	}

	if !w.CollideBarrier(first) {
		t.Fatal("CollideBarrier() = false on an overlapping barrier")
	}
	for _, e := range w.Entities() {
		if e.Kind == EntityScoring && e.TunnelID == firstGroup {
			t.Error("the hit tunnel's scoring region survived")
		}
	}
	// The other tunnel is untouched.
	if got := w.Count(EntityScoring); got != 1 {
		t.Errorf("scoring regions = %d, expected the other tunnel's 1", got)
	}
	if got := w.Count(EntityBarrier); got != 4 {
		t.Errorf("barriers = %d, expected all 4 still present", got)
	}
}

func TestCollideBarrierMissReturnsFalse(t *testing.T) {
	w := NewWorld()
	w.Materialize([]spawn.Item{tunnelItem(0, 250)})

	far := geom.FromCenter(geom.V(-350, 0), geom.V(10, 10))
	if w.CollideBarrier(far) {
		t.Error("CollideBarrier() = true with no overlap")
	}
	if got := w.Count(EntityScoring); got != 1 {
		t.Errorf("scoring regions = %d after a miss, expected 1", got)
	}
}

func TestClearEmptiesWorld(t *testing.T) {
	w := NewWorld()
	w.Materialize([]spawn.Item{tunnelItem(0, 250), gravityItem(-1)})
	w.Explode(geom.V(0, 0), geom.V(0, 0), geom.V(20, 28), 150, rand.New(rand.NewSource(3)))

	w.Clear()
	if got := len(w.Entities()); got != 0 {
		t.Errorf("entities = %d after Clear, expected 0", got)
	}
}
