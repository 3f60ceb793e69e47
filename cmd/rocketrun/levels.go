package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arcadeward/rocketrun/internal/level"
)

var flagLevelsFrom string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List level tiers",
	Long: `Show the level tiers the game would load, including custom overrides.

Subcommands:
  list         - List tiers (same as bare 'levels')
  show [tier]  - Print one tier's effective config as YAML
  init [dir]   - Write the built-in tiers into a directory for editing

Examples:
  rocketrun levels
  rocketrun levels --levels ./my-levels
  rocketrun levels show base
  rocketrun levels init ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List level tiers",
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show [tier]",
	Short: "Print a tier's effective config as YAML",
	Args:  cobra.MaximumNArgs(1),
	Run:   runLevelsShow,
}

var levelsInitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write the built-in tiers into a directory for editing",
	Args:  cobra.MaximumNArgs(1),
	Run:   runLevelsInit,
}

func init() {
	levelsCmd.PersistentFlags().StringVar(&flagLevelsFrom, "levels", "", "Directory with custom tier YAML files")
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsShowCmd)
	levelsCmd.AddCommand(levelsInitCmd)
}

func runLevels(cmd *cobra.Command, args []string) {
	tiers, err := level.LoadTiers(flagLevelsFrom)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level tiers: %v\n", err)
		os.Exit(1)
	}

	names := tiers.Names()

	fmt.Println("Available tiers:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	maxSourceLen := 6
	for _, name := range names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
		if len(tiers.Source(name)) > maxSourceLen {
			maxSourceLen = len(tiers.Source(name))
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxNameLen, "Name", maxSourceLen, "Source", "Advance")
	fmt.Printf("  %-*s  %-*s  %s\n", maxNameLen, "----", maxSourceLen, "------", "-------")

	// Print tiers
	for _, name := range names {
		cfg, getErr := tiers.Get(name)
		if getErr != nil {
			continue
		}
		advance := "-"
		if cfg.Advance != nil {
			advance = fmt.Sprintf("%s at score %d", cfg.Advance.Next, cfg.Advance.AtScore)
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxNameLen, name, maxSourceLen, tiers.Source(name), advance)
	}

	fmt.Println()
	fmt.Println("Run 'rocketrun play --tier <name>' to start on a tier.")
}

func runLevelsShow(cmd *cobra.Command, args []string) {
	name := level.BaseTier
	if len(args) > 0 {
		name = args[0]
	}

	tiers, err := level.LoadTiers(flagLevelsFrom)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level tiers: %v\n", err)
		os.Exit(1)
	}

	cfg, err := tiers.Get(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown tier %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'rocketrun levels' to see available tiers.")
		os.Exit(1)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding tier: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# %s (%s)\n", name, tiers.Source(name))
	fmt.Print(string(data))
}

func runLevelsInit(cmd *cobra.Command, args []string) {
	// Bare init scaffolds ./levels, which LoadTiers picks up automatically.
	dir := "levels"
	if len(args) > 0 {
		dir = args[0]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}

	for _, name := range level.DefaultTierNames() {
		path := filepath.Join(dir, name+".yaml")
		if _, statErr := os.Stat(path); statErr == nil {
			fmt.Printf("  skipped %s (already exists)\n", path)
			continue
		}
		if err := os.WriteFile(path, level.DefaultTierYAML(name), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("  wrote %s\n", path)
	}

	fmt.Println()
	fmt.Printf("Edit the files, then play with: rocketrun play --levels %s\n", dir)
}
