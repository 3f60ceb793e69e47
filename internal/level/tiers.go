package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arcadeward/rocketrun/internal/geom"
)

// TierSet holds the named difficulty tiers for a session. A set always
// contains the tier named "base"; advance rules may chain further tiers.
type TierSet struct {
	tiers   map[string]SpawnerConfig
	sources map[string]string
}

// BaseTier is the tier every session starts on and returns to after a reset.
const BaseTier = "base"

// NewTierSet builds a set from in-memory tiers.
func NewTierSet(tiers map[string]SpawnerConfig) *TierSet {
	ts := &TierSet{
		tiers:   make(map[string]SpawnerConfig, len(tiers)),
		sources: make(map[string]string, len(tiers)),
	}
	for name, cfg := range tiers {
		ts.put(name, cfg, "memory")
	}
	return ts
}

// LoadTiers loads tier files named <tier>.yaml.
// Search order per tier: customDir -> ~/.rocketrun/levels -> ./levels ->
// embedded defaults. A file found earlier shadows the same tier name from
// later sources; embedded defaults guarantee base and fast always exist.
func LoadTiers(customDir string) (*TierSet, error) {
	ts := &TierSet{
		tiers:   make(map[string]SpawnerConfig),
		sources: make(map[string]string),
	}

	// Start from embedded defaults so the set is complete even with no
	// files on disk.
	for name, data := range defaultTierYAML {
		cfg, err := parseTier(data)
		if err != nil {
			return nil, fmt.Errorf("level: embedded tier %s: %w", name, err)
		}
		ts.put(name, cfg, "embedded")
	}

	// Overlay disk sources from lowest to highest precedence.
	dirs := []string{"levels"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".rocketrun", "levels"))
	}
	if customDir != "" {
		dirs = append(dirs, customDir)
	}
	for _, dir := range dirs {
		if err := ts.loadDir(dir, dir == customDir); err != nil {
			return nil, err
		}
	}
	return ts, nil
}

// loadDir reads every *.yaml in dir into the set. Missing directories are
// skipped unless the directory was explicitly requested.
func (ts *TierSet) loadDir(dir string, explicit bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if explicit {
			return fmt.Errorf("level: cannot read tier directory %s: %w", dir, err)
		}
		return nil
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("level: cannot read tier file %s: %w", path, err)
		}
		cfg, err := parseTier(data)
		if err != nil {
			return fmt.Errorf("level: cannot parse tier file %s: %w", path, err)
		}
		name := strings.TrimSuffix(e.Name(), ".yaml")
		ts.put(name, cfg, path)
	}
	return nil
}

func (ts *TierSet) put(name string, cfg SpawnerConfig, source string) {
	ts.tiers[name] = cfg
	ts.sources[name] = source
}

func parseTier(data []byte) (SpawnerConfig, error) {
	var cfg SpawnerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Get returns the named tier.
func (ts *TierSet) Get(name string) (SpawnerConfig, error) {
	cfg, ok := ts.tiers[name]
	if !ok {
		return cfg, fmt.Errorf("level: unknown tier %q", name)
	}
	return cfg, nil
}

// Names returns the tier names in sorted order.
func (ts *TierSet) Names() []string {
	names := make([]string, 0, len(ts.tiers))
	for name := range ts.tiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source reports where the named tier was loaded from.
func (ts *TierSet) Source(name string) string {
	return ts.sources[name]
}

// Validate checks every tier against the world bounds and verifies that the
// set contains base and that advance rules reference existing tiers.
// A failing tier is a fatal load error; the game must not start on it.
func (ts *TierSet) Validate(bounds geom.Rect) error {
	if _, ok := ts.tiers[BaseTier]; !ok {
		return fmt.Errorf("level: tier set has no %q tier", BaseTier)
	}
	for _, name := range ts.Names() {
		cfg := ts.tiers[name]
		if err := cfg.Validate(bounds); err != nil {
			return fmt.Errorf("level: tier %s: %w", name, err)
		}
		if cfg.Advance != nil {
			if _, ok := ts.tiers[cfg.Advance.Next]; !ok {
				return fmt.Errorf("level: tier %s advances to unknown tier %q",
					name, cfg.Advance.Next)
			}
			if cfg.Advance.AtScore <= 0 {
				return fmt.Errorf("level: tier %s advance at_score must be positive, got %d",
					name, cfg.Advance.AtScore)
			}
		}
	}
	return nil
}
