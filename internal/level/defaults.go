package level

import (
	"embed"
	"sort"
	"strings"

	"github.com/arcadeward/rocketrun/internal/geom"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// defaultTierYAML maps tier name to its embedded YAML source.
var defaultTierYAML = loadEmbeddedTiers()

func loadEmbeddedTiers() map[string][]byte {
	entries, err := defaultsFS.ReadDir("defaults")
	if err != nil {
		return nil
	}
	tiers := make(map[string][]byte, len(entries))
	for _, e := range entries {
		data, err := defaultsFS.ReadFile("defaults/" + e.Name())
		if err != nil {
			continue
		}
		tiers[strings.TrimSuffix(e.Name(), ".yaml")] = data
	}
	return tiers
}

// DefaultTierYAML returns the embedded YAML for a tier, or nil if the tier
// has no embedded default. Used by the levels subcommand to write editable
// starting points.
func DefaultTierYAML(name string) []byte {
	return defaultTierYAML[name]
}

// DefaultTierNames returns the names of the embedded tiers in sorted order.
func DefaultTierNames() []string {
	names := make([]string, 0, len(defaultTierYAML))
	for name := range defaultTierYAML {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultBaseConfig returns the starting tier used when no files override
// the embedded defaults. The values match the embedded base.yaml.
func DefaultBaseConfig() SpawnerConfig {
	return SpawnerConfig{
		ItemVelocity:           geom.V(-200, 0),
		SecondsPerItem:         2.0,
		StartOffsetSecs:        0.1,
		TunnelWeight:           0.8,
		GravityWeight:          0.2,
		MinItemsBetweenGravity: 3,
		Tunnel: TunnelConfig{
			CenterYRange:    [2]float64{-200, 200},
			GapHeightRange:  [2]float64{200, 300},
			ObstacleWidth:   96,
			ScoringGapWidth: 32,
		},
		Gravity: GravityConfig{
			RegionWidth: 32,
		},
		Advance: &AdvanceRule{AtScore: 2, Next: "fast"},
	}
}

// DefaultFastConfig returns the second tier queued once the base tier's
// advance threshold is reached. The values match the embedded fast.yaml.
func DefaultFastConfig() SpawnerConfig {
	cfg := DefaultBaseConfig()
	cfg.ItemVelocity = geom.V(-300, 0)
	cfg.SecondsPerItem = 1.4
	cfg.Advance = nil
	return cfg
}
