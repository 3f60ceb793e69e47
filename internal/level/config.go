package level

import (
	"fmt"

	"github.com/arcadeward/rocketrun/internal/geom"
)

// SpawnerConfig describes one difficulty tier: how fast items travel, how
// often they appear, and the relative weights and shapes of the item kinds.
// Tiers are plain values so the spawner can swap them wholesale.
type SpawnerConfig struct {
	ItemVelocity    geom.Vec2 `yaml:"item_velocity"`
	SecondsPerItem  float64   `yaml:"seconds_per_item"`
	StartOffsetSecs float64   `yaml:"start_offset_secs"`

	TunnelWeight  float64 `yaml:"tunnel_weight"`
	GravityWeight float64 `yaml:"gravity_weight"`

	// MinItemsBetweenGravity is the number of items that must spawn after a
	// gravity region before another becomes eligible.
	MinItemsBetweenGravity int `yaml:"min_items_between_gravity"`

	Tunnel  TunnelConfig  `yaml:"tunnel"`
	Gravity GravityConfig `yaml:"gravity"`

	// Advance, when present, queues the named tier once the score reaches
	// AtScore.
	Advance *AdvanceRule `yaml:"advance,omitempty"`
}

// TunnelConfig shapes a paired-barrier tunnel and its scoring gap.
type TunnelConfig struct {
	CenterYRange    [2]float64 `yaml:"center_y_range"`
	GapHeightRange  [2]float64 `yaml:"gap_height_range"`
	ObstacleWidth   float64    `yaml:"obstacle_width"`
	ScoringGapWidth float64    `yaml:"scoring_gap_width"`
}

// GravityConfig shapes a gravity-shift region.
type GravityConfig struct {
	RegionWidth float64 `yaml:"region_width"`
}

// AdvanceRule names the tier to queue when the score reaches AtScore.
type AdvanceRule struct {
	AtScore int    `yaml:"at_score"`
	Next    string `yaml:"next"`
}

// StartOffsetX returns the x position where new items begin. Items moving
// left spawn past the right edge so they enter the world already moving.
func (c SpawnerConfig) StartOffsetX(bounds geom.Rect) float64 {
	return bounds.Max.X - c.ItemVelocity.X*c.StartOffsetSecs
}

// Validate checks that the tier can produce sane geometry inside the given
// world bounds. Configs are validated once at load so the spawner and the
// builders never have to defend against degenerate values mid-game.
func (c SpawnerConfig) Validate(bounds geom.Rect) error {
	if !bounds.Valid() {
		return fmt.Errorf("level: world bounds %v have no area", bounds)
	}
	if c.SecondsPerItem <= 0 {
		return fmt.Errorf("level: seconds_per_item must be positive, got %v", c.SecondsPerItem)
	}
	if c.StartOffsetSecs < 0 {
		return fmt.Errorf("level: start_offset_secs must not be negative, got %v", c.StartOffsetSecs)
	}
	if c.TunnelWeight < 0 || c.GravityWeight < 0 {
		return fmt.Errorf("level: weights must not be negative, got tunnel=%v gravity=%v",
			c.TunnelWeight, c.GravityWeight)
	}
	if c.TunnelWeight+c.GravityWeight == 0 {
		return fmt.Errorf("level: at least one spawn weight must be positive")
	}
	if c.MinItemsBetweenGravity < 0 {
		return fmt.Errorf("level: min_items_between_gravity must not be negative, got %d",
			c.MinItemsBetweenGravity)
	}
	if err := c.Tunnel.validate(bounds); err != nil {
		return err
	}
	if c.Gravity.RegionWidth <= 0 {
		return fmt.Errorf("level: gravity region_width must be positive, got %v",
			c.Gravity.RegionWidth)
	}
	return nil
}

func (t TunnelConfig) validate(bounds geom.Rect) error {
	if t.ObstacleWidth <= 0 {
		return fmt.Errorf("level: obstacle_width must be positive, got %v", t.ObstacleWidth)
	}
	if t.ScoringGapWidth <= 0 {
		return fmt.Errorf("level: scoring_gap_width must be positive, got %v", t.ScoringGapWidth)
	}
	if t.CenterYRange[0] > t.CenterYRange[1] {
		return fmt.Errorf("level: center_y_range %v is inverted", t.CenterYRange)
	}
	if t.GapHeightRange[0] > t.GapHeightRange[1] {
		return fmt.Errorf("level: gap_height_range %v is inverted", t.GapHeightRange)
	}
	if t.GapHeightRange[0] <= 0 {
		return fmt.Errorf("level: gap_height_range %v allows non-positive gaps", t.GapHeightRange)
	}
	// The narrowest gap at the most central position must fit, otherwise the
	// tier can never produce a playable tunnel. Wider draws that overflow the
	// world at extreme centers are clamped by the builder instead.
	mid := geom.Clamp(0, t.CenterYRange[0], t.CenterYRange[1])
	if bounds.Max.Y-(mid+t.GapHeightRange[0]/2) < 0 ||
		(mid-t.GapHeightRange[0]/2)-bounds.Min.Y < 0 {
		return fmt.Errorf("level: minimum gap %v cannot fit world height %v",
			t.GapHeightRange[0], bounds.Height())
	}
	return nil
}
