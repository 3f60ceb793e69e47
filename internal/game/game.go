// Package game implements Rocket Run: the run phase machine and the
// per-tick orchestration that ties the spawner, the world, and the player
// together. The platform drives it through the core.Game interface; all
// logic here is pure and deterministic for a fixed seed.
package game

import (
	"math/rand"

	"github.com/arcadeward/rocketrun/internal/core"
	"github.com/arcadeward/rocketrun/internal/geom"
	"github.com/arcadeward/rocketrun/internal/level"
	"github.com/arcadeward/rocketrun/internal/sim"
	"github.com/arcadeward/rocketrun/internal/spawn"
)

// GameID keys score storage and CLI lookups; GameTitle is the display name.
const (
	GameID    = "rocketrun"
	GameTitle = "Rocket Run"
)

// Game is one Rocket Run session. The zero value is not usable; construct
// with New and initialize with Reset before stepping.
type Game struct {
	tiers     *level.TierSet
	startTier string
	base      level.Settings

	cfg    core.RuntimeConfig
	dt     float64
	bounds geom.Rect

	settings level.Settings
	spawner  *spawn.Spawner
	world    *sim.World
	player   *sim.Player
	events   sim.EventQueue
	rng      *rand.Rand

	phase     core.Phase
	score     int
	best      int
	paused    bool
	deathLeft float64

	// tierName names the active tier for the HUD; pendingTier is the name
	// queued by the advance rule, promoted when the spawner consumes it.
	tierName    string
	pendingTier string
	advanced    bool

	restartReq bool
	loadErr    error
}

// New creates a session on the given tier set. startTier is the tier the
// session begins on and returns to after every reset; empty means base.
// The settings are the session's physics constants.
func New(tiers *level.TierSet, settings level.Settings, startTier string) *Game {
	if startTier == "" {
		startTier = level.BaseTier
	}
	return &Game{
		tiers:     tiers,
		startTier: startTier,
		base:      settings,
	}
}

// ID returns the identifier used for CLI commands and score storage.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return GameTitle
}

// Reset starts a fresh session: world bounds from the screen size, tiers
// re-validated against them, spawner re-seeded. If the tiers cannot produce
// playable geometry at this size the game stays in Loading and renders the
// error instead of ever entering a run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	g.cfg = cfg
	g.dt = 1.0 / float64(cfg.TickRate)
	g.bounds = BoundsForScreen(cfg.ScreenW, cfg.ScreenH)

	g.loadErr = nil
	if err := g.tiers.Validate(g.bounds); err != nil {
		g.loadErr = err
		g.phase = core.PhaseLoading
		return
	}
	start, err := g.tiers.Get(g.startTier)
	if err != nil {
		g.loadErr = err
		g.phase = core.PhaseLoading
		return
	}

	g.settings = g.base
	g.spawner = spawn.NewSpawner(cfg.Seed, start)
	g.world = sim.NewWorld()
	g.player = sim.NewPlayer()
	g.events = sim.EventQueue{}
	// Death effects draw from their own stream so an explosion never
	// disturbs the spawn sequence.
	g.rng = rand.New(rand.NewSource(cfg.Seed + 1))

	g.score = 0
	g.paused = false
	g.deathLeft = 0
	g.tierName = g.startTier
	g.pendingTier = ""
	g.advanced = false
	g.restartReq = false
	g.phase = core.PhaseReady
}

// Step advances the session by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == core.PhaseLoading {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.phase == core.PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.restartReq = true
	}

	switch g.phase {
	case core.PhaseReady:
		g.restartReq = false
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.phase = core.PhasePlaying
			g.player.Jump(&g.settings)
			g.playFrame(in)
		}
	case core.PhasePlaying:
		g.playFrame(in)
	case core.PhaseDying:
		g.dieFrame()
	}

	return core.StepResult{State: g.State()}
}

// playFrame runs one Playing tick in a fixed order: input, player physics,
// spawner, world integration, collision queries, event drain, cull. The
// drain runs after everything has moved so every reaction sees the frame's
// final positions.
func (g *Game) playFrame(in core.InputFrame) {
	if in.Has(core.ActionJump) {
		g.player.Jump(&g.settings)
	}

	gravity := g.settings.GravityVector()
	g.player.Step(g.dt, gravity)

	items, changed := g.spawner.Tick(g.dt, &g.settings, g.bounds)
	g.world.Materialize(items)
	g.world.Step(g.dt, gravity)

	pr := g.player.Rect()
	if delta, hit := g.world.CollideScoring(pr); hit {
		g.events.Push(sim.Event{Kind: sim.EventScored, Delta: delta})
	}
	if sign, hit := g.world.CollideGravity(pr); hit {
		g.events.Push(sim.Event{Kind: sim.EventGravityShift, Sign: sign})
	}
	if g.world.CollideBarrier(pr) {
		g.events.Push(sim.Event{Kind: sim.EventBarrierHit})
	}
	if !g.player.InBounds(g.bounds) {
		g.events.Push(sim.Event{Kind: sim.EventOutOfBounds})
	}
	if changed {
		g.events.Push(sim.Event{Kind: sim.EventLevelChanged})
	}
	if g.restartReq {
		g.events.Push(sim.Event{Kind: sim.EventResetRequested})
		g.restartReq = false
	}

	g.applyEvents()
	g.world.CullLeft(g.bounds)
}

// dieFrame lets the debris fly while the death timer runs down, then asks
// for the reset that returns the session to Ready.
func (g *Game) dieFrame() {
	g.world.Step(g.dt, g.settings.GravityVector())

	g.deathLeft -= g.dt
	if g.deathLeft <= 0 || g.restartReq {
		g.events.Push(sim.Event{Kind: sim.EventResetRequested})
		g.restartReq = false
	}

	g.applyEvents()
	g.world.CullLeft(g.bounds)
}

// applyEvents drains the frame's notifications. Push order keeps resets
// last so a reset in the same frame as a score or a hit wins.
func (g *Game) applyEvents() {
	for _, ev := range g.events.Drain() {
		switch ev.Kind {
		case sim.EventScored:
			g.addScore(ev.Delta)
		case sim.EventGravityShift:
			g.settings.SetGravityMult(ev.Sign)
		case sim.EventBarrierHit, sim.EventOutOfBounds:
			g.enterDying()
		case sim.EventLevelChanged:
			g.onLevelChanged()
		case sim.EventResetRequested:
			g.resetRun()
		}
	}
}

// addScore applies a score delta and queues the next tier once the active
// tier's advance threshold is crossed. The queue fires at most once per
// tier activation; the spawner swaps it in after its next item.
func (g *Game) addScore(delta int) {
	g.score += delta
	if g.score > g.best {
		g.best = g.score
	}

	adv := g.spawner.Active().Advance
	if adv == nil || g.advanced || g.score < adv.AtScore {
		return
	}
	next, err := g.tiers.Get(adv.Next)
	if err != nil {
		return
	}
	g.spawner.QueueConfig(next)
	g.pendingTier = adv.Next
	g.advanced = true
}

// onLevelChanged reacts to the spawner consuming a queued tier: in-flight
// items re-tune toward the new velocity and the HUD name is promoted.
func (g *Game) onLevelChanged() {
	g.world.RetuneVelocities(g.spawner.Active().ItemVelocity)
	if g.pendingTier != "" {
		g.tierName = g.pendingTier
		g.pendingTier = ""
	}
	g.advanced = false
}

// enterDying blows the player apart and starts the death timer. A second
// lethal event in the same frame is ignored.
func (g *Game) enterDying() {
	if g.phase == core.PhaseDying {
		return
	}
	g.phase = core.PhaseDying
	g.deathLeft = g.settings.DeathDelay.Seconds()
	g.world.Explode(g.player.Pos, g.player.Vel, g.player.Extents(), g.settings.ExplosionSpeed, g.rng)
}

// resetRun returns the session to Ready: base tier, zeroed stats and score,
// empty world, recentered player, gravity restored. Any pending tier swap
// is dropped.
func (g *Game) resetRun() {
	g.spawner.Reset()
	g.world.Clear()
	g.player.Reset()
	g.settings.Reset()
	g.score = 0
	g.deathLeft = 0
	g.tierName = g.startTier
	g.pendingTier = ""
	g.advanced = false
	g.paused = false
	g.phase = core.PhaseReady
}

// State reports the current score and phase. GameOver is true while the
// death sequence plays.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Phase:    g.phase,
		GameOver: g.phase == core.PhaseDying,
		Paused:   g.paused,
	}
}

// TierName returns the name of the tier currently in effect.
func (g *Game) TierName() string {
	return g.tierName
}

// Best returns the highest score reached this session.
func (g *Game) Best() int {
	return g.best
}

var _ core.Game = (*Game)(nil)
