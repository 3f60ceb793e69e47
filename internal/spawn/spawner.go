package spawn

import (
	"math/rand"

	"github.com/arcadeward/rocketrun/internal/geom"
	"github.com/arcadeward/rocketrun/internal/level"
)

// Stats tracks spawn counters used to gate gravity regions.
type Stats struct {
	// TotalSpawned counts every item fired since the last reset.
	TotalSpawned int
	// SinceLastGravity counts items fired since the last gravity region.
	SinceLastGravity int
}

// Reset zeroes the counters.
func (s *Stats) Reset() {
	s.TotalSpawned = 0
	s.SinceLastGravity = 0
}

// Spawner fires one item per cadence interval, drawn by weight from the
// kinds the active tier allows. A queued tier swap is consumed only after
// the firing item has been built, so a new cadence never retroactively
// affects the item that triggered the swap.
type Spawner struct {
	base    level.SpawnerConfig
	active  level.SpawnerConfig
	pending *level.SpawnerConfig
	stats   Stats

	// remaining is the time left in the current cadence interval.
	remaining float64

	rng *rand.Rand
}

// NewSpawner creates a spawner on the given base tier. The seed fixes the
// whole spawn sequence for a session.
func NewSpawner(seed int64, base level.SpawnerConfig) *Spawner {
	return &Spawner{
		base:      base,
		active:    base,
		remaining: base.SecondsPerItem,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// candidate pairs a spawnable kind with its relative weight.
type candidate struct {
	kind   Kind
	weight float64
}

// Tick advances the cadence timer by dt seconds and fires once per
// completed interval. Fired items are returned in order; changed reports
// whether a queued tier swap was consumed during this call.
func (s *Spawner) Tick(dt float64, settings *level.Settings, bounds geom.Rect) (items []Item, changed bool) {
	s.remaining -= dt
	for s.remaining <= 0 {
		items = append(items, s.fire(settings, bounds))

		// Consume a queued tier after the item is built. Swapping re-arms
		// the timer at the new cadence; otherwise the interval repeats.
		if s.pending != nil {
			s.active = *s.pending
			s.pending = nil
			s.remaining = s.active.SecondsPerItem
			changed = true
		} else {
			s.remaining += s.active.SecondsPerItem
		}
	}
	return items, changed
}

// fire picks and builds a single item under the active tier.
func (s *Spawner) fire(settings *level.Settings, bounds geom.Rect) Item {
	candidates := []candidate{{KindTunnel, s.active.TunnelWeight}}
	if s.stats.SinceLastGravity >= s.active.MinItemsBetweenGravity {
		candidates = append(candidates, candidate{KindGravity, s.active.GravityWeight})
	}

	s.stats.TotalSpawned++

	spawnX := s.active.StartOffsetX(bounds)
	switch s.pick(candidates) {
	case KindGravity:
		s.stats.SinceLastGravity = 0
		// A region always targets the opposite of the current pull, so
		// triggering it flips gravity.
		sign := -1.0
		if settings.GravityMult < 0 {
			sign = 1.0
		}
		return Item{
			Kind:    KindGravity,
			Gravity: BuildGravityRegion(sign, s.active.Gravity, s.active.ItemVelocity, spawnX, bounds),
		}
	default:
		s.stats.SinceLastGravity++
		return Item{
			Kind:   KindTunnel,
			Tunnel: BuildTunnel(s.rng, s.active.Tunnel, s.active.ItemVelocity, spawnX, bounds),
		}
	}
}

// pick draws one candidate with probability weight/total. If every included
// weight is zero the draw is uniform over the candidates.
func (s *Spawner) pick(candidates []candidate) Kind {
	total := 0.0
	for _, c := range candidates {
		total += c.weight
	}
	if total <= 0 {
		return candidates[s.rng.Intn(len(candidates))].kind
	}

	roll := s.rng.Float64() * total
	cum := 0.0
	for _, c := range candidates {
		cum += c.weight
		if roll < cum {
			return c.kind
		}
	}
	return candidates[len(candidates)-1].kind
}

// QueueConfig queues a tier to take effect after the next fired item.
// Queueing again before the swap overwrites the earlier queue.
func (s *Spawner) QueueConfig(cfg level.SpawnerConfig) {
	s.pending = &cfg
}

// Reset returns the spawner to the base tier, drops any queued swap,
// zeroes the stats, and re-arms the timer.
func (s *Spawner) Reset() {
	s.active = s.base
	s.pending = nil
	s.stats.Reset()
	s.remaining = s.active.SecondsPerItem
}

// Active returns the tier currently in effect.
func (s *Spawner) Active() level.SpawnerConfig {
	return s.active
}

// HasPending reports whether a tier swap is queued.
func (s *Spawner) HasPending() bool {
	return s.pending != nil
}

// Stats returns the current spawn counters.
func (s *Spawner) Stats() Stats {
	return s.stats
}
