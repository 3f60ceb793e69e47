// Package core provides the contract between the game simulation and the
// platform layer: the Game interface, input abstraction, and the screen
// buffer games render into. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Phase is the coarse state of a run.
type Phase int

const (
	// PhaseLoading is the pre-Reset zero value; the game has no config yet.
	PhaseLoading Phase = iota
	// PhaseReady waits for the first jump to start the run.
	PhaseReady
	// PhasePlaying is the live run.
	PhasePlaying
	// PhaseDying plays the death sequence before the next reset.
	PhaseDying
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhaseReady:
		return "Ready"
	case PhasePlaying:
		return "Playing"
	case PhaseDying:
		return "Dying"
	default:
		return "Unknown"
	}
}

// Game is the interface the platform drives. The implementation contains
// pure logic; the platform handles input mapping, timing, and display.
type Game interface {
	// ID returns a unique identifier used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state. Called once at start and
	// again when restarting. The RuntimeConfig provides screen dimensions
	// and the RNG seed.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick. Input is abstracted
	// to platform-level actions (Jump, Pause, ...).
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *Screen)

	// State returns the current game state (score, phase, paused).
	State() GameState
}
