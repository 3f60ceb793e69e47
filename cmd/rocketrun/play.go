package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadeward/rocketrun/internal/core"
	"github.com/arcadeward/rocketrun/internal/game"
	"github.com/arcadeward/rocketrun/internal/level"
	"github.com/arcadeward/rocketrun/internal/platform/tui"
	"github.com/arcadeward/rocketrun/internal/storage"
)

var (
	flagLevelsDir string
	flagTier      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Rocket Run",
	Long: `Start a run in the current terminal.

Controls:
  Space/W/Up - Fire thruster
  P          - Pause
  R          - Restart run
  Tab        - High scores (between runs)
  Q/Ctrl+C   - Quit

Level tiers:
  Runs start on the base tier. Crossing a tier's score threshold queues
  the next tier; the swap lands together with the next obstacle. Use
  --tier to start higher up the ladder, --levels to load your own tier
  YAML files (see 'rocketrun levels init').

Examples:
  rocketrun play
  rocketrun play --tier fast
  rocketrun play --levels ./my-levels
  rocketrun play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory with custom tier YAML files")
	playCmd.Flags().StringVar(&flagTier, "tier", "", "Tier to start on (default: base)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for world bounds
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Load and validate tiers before touching the terminal
	tiers, err := level.LoadTiers(flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level tiers: %v\n", err)
		os.Exit(1)
	}
	if err := tiers.Validate(game.BoundsForScreen(width, height)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid level tiers: %v\n", err)
		os.Exit(1)
	}
	if flagTier != "" {
		if _, tierErr := tiers.Get(flagTier); tierErr != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown tier %q\n", flagTier)
			fmt.Fprintln(os.Stderr, "Run 'rocketrun levels' to see available tiers.")
			os.Exit(1)
		}
	}

	g := game.New(tiers, level.DefaultSettings(), flagTier)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(g, store, cfg, localPlayer())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// localPlayer resolves the name scores are recorded under.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
