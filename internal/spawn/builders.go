package spawn

import (
	"math/rand"

	"github.com/arcadeward/rocketrun/internal/geom"
	"github.com/arcadeward/rocketrun/internal/level"
)

// BuildTunnel draws a gap center and height from the config ranges and
// returns the tunnel geometry for those draws.
func BuildTunnel(rng *rand.Rand, cfg level.TunnelConfig, vel geom.Vec2, spawnX float64, bounds geom.Rect) Tunnel {
	gapCenter := uniform(rng, cfg.CenterYRange)
	gapHeight := uniform(rng, cfg.GapHeightRange)
	return BuildTunnelAt(gapCenter, gapHeight, cfg, vel, spawnX, bounds)
}

// BuildTunnelAt computes tunnel geometry for a known gap center and height.
// The top barrier hangs from the world ceiling down to the gap, the bottom
// barrier rises from the floor, and the scoring region spans the space
// between them. Extents that come out negative (the gap overflows the world
// at an extreme center) are clamped to zero; the affected barrier is left
// degenerate rather than emitted with a negative size.
func BuildTunnelAt(gapCenter, gapHeight float64, cfg level.TunnelConfig, vel geom.Vec2, spawnX float64, bounds geom.Rect) Tunnel {
	topHeight := bounds.Max.Y - (gapCenter + gapHeight/2)
	bottomHeight := (gapCenter - gapHeight/2) - bounds.Min.Y
	if topHeight < 0 {
		topHeight = 0
	}
	if bottomHeight < 0 {
		bottomHeight = 0
	}

	// The scoring gap covers whatever the barriers leave open, which equals
	// gapHeight only when neither extent clamped.
	scoringHeight := bounds.Height() - topHeight - bottomHeight

	barrierX := spawnX + cfg.ObstacleWidth/2
	return Tunnel{
		Top: Placement{
			Center:       geom.V(barrierX, bounds.Max.Y-topHeight/2),
			Extents:      geom.V(cfg.ObstacleWidth/2, topHeight/2),
			Velocity:     vel,
			RemoveBeyond: cfg.ObstacleWidth,
		},
		Bottom: Placement{
			Center:       geom.V(barrierX, bounds.Min.Y+bottomHeight/2),
			Extents:      geom.V(cfg.ObstacleWidth/2, bottomHeight/2),
			Velocity:     vel,
			RemoveBeyond: cfg.ObstacleWidth,
		},
		Scoring: Placement{
			Center:       geom.V(spawnX+cfg.ObstacleWidth-cfg.ScoringGapWidth/2, gapCenter),
			Extents:      geom.V(cfg.ScoringGapWidth/2, scoringHeight/2),
			Velocity:     vel,
			RemoveBeyond: cfg.ScoringGapWidth,
		},
		ScoreDelta: 1,
	}
}

// BuildGravityRegion places a full-height region of the configured width at
// spawnX, tagged with the gravity sign it applies when entered.
func BuildGravityRegion(sign float64, cfg level.GravityConfig, vel geom.Vec2, spawnX float64, bounds geom.Rect) GravityRegion {
	return GravityRegion{
		Placement: Placement{
			Center:       geom.V(spawnX+cfg.RegionWidth/2, bounds.Center().Y),
			Extents:      geom.V(cfg.RegionWidth/2, bounds.Height()/2),
			Velocity:     vel,
			RemoveBeyond: cfg.RegionWidth,
		},
		Sign: sign,
	}
}

// uniform draws from [r[0], r[1]).
func uniform(rng *rand.Rand, r [2]float64) float64 {
	return r[0] + rng.Float64()*(r[1]-r[0])
}
