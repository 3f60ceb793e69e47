// rocketrun is a side-scrolling terminal game: steer a rocket through
// tunnel gaps, ride gravity flips, and chase the tier ladder.
//
// Usage:
//
//	rocketrun play             - Play in the current terminal
//	rocketrun serve            - Start SSH server for remote play
//	rocketrun scores           - Show high scores
//	rocketrun levels           - Inspect and scaffold level tiers
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.rocketrun/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rocketrun",
	Short: "Rocket Run - dodge tunnels and gravity flips in your terminal",
	Long: `Rocket Run is a terminal side-scroller. Fire the thruster to climb,
let gravity pull you down, and thread the rocket through the gaps.
Gravity regions flip your world upside down; survive long enough and
the level tiers speed up.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - Inspect and scaffold level tiers

Examples:
  rocketrun play
  rocketrun play --tier fast
  rocketrun serve --ssh :2222
  rocketrun scores
  rocketrun levels init ./my-levels`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rocketrun/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
