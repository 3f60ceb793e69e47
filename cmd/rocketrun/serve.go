package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arcadeward/rocketrun/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagServeLevels string
	flagServeTier   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Rocket Run SSH server",
	Long: `Start an SSH server that lets users connect and play over the network.

Each SSH connection gets its own run, sized to its terminal. Scores are
stored per-server under the SSH username, so all users share the same
leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.rocketrun/host_key

Examples:
  rocketrun serve                           # Listen on :23234 with auto-generated key
  rocketrun serve --ssh :2222               # Listen on port 2222
  rocketrun serve --host-key ./my_host_key  # Use specific host key
  rocketrun serve --levels ./my-levels      # Serve custom tiers

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.rocketrun/scores.db", "Path to scores database")
	serveCmd.Flags().StringVar(&flagServeLevels, "levels", "", "Directory with custom tier YAML files")
	serveCmd.Flags().StringVar(&flagServeTier, "tier", "", "Tier every session starts on (default: base)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		LevelsDir:   flagServeLevels,
		StartTier:   flagServeTier,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Rocket Run SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
