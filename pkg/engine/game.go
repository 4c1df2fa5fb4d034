// pkg/engine/game.go
package engine

import (
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-slingshot/pkg/config"
	"github.com/opd-ai/go-slingshot/pkg/economy"
	"github.com/opd-ai/go-slingshot/pkg/entity"
	"github.com/opd-ai/go-slingshot/pkg/event"
	"github.com/opd-ai/go-slingshot/pkg/physics"
	"github.com/opd-ai/go-slingshot/pkg/world"
)

// Mode is the game-mode state machine position
type Mode int

const (
	ModeIdle Mode = iota
	ModeFlying
	ModeEnded
)

// String returns a human-readable mode name
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeFlying:
		return "flying"
	case ModeEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// End-of-flight reasons
const (
	ReasonLanded    = "landed"
	ReasonCrashed   = "crashed"
	ReasonLostSpace = "lost_space"
)

// Outcome records how the last flight ended
type Outcome struct {
	Success      bool
	Reason       string
	CoinsAwarded int
}

// Game holds the full simulation and game state for one session. All
// mutation happens on a single logical thread: the fixed-step tick path,
// with UI-originated actions (launch, pause, retry, purchase) arriving
// strictly between ticks. Coins and upgrade levels persist across level
// attempts; everything else is rebuilt per attempt.
type Game struct {
	Config   *config.GameConfig
	Bus      *event.Bus
	World    *world.World
	Upgrades *economy.Upgrades

	Mode            Mode
	Paused          bool
	Level           int
	Coins           int
	ClosestApproach float64
	LastOutcome     *Outcome

	// Input signals, fed by an external input layer.
	Aim        physics.Vector2D
	thrustHeld bool

	// Previous flight's rocket path, kept for one attempt.
	GhostTrail []physics.Vector2D

	arena       world.Arena
	rng         *rand.Rand
	accumulator float64
	tick        uint64
}

// NewGame creates a game on level 1 in IDLE mode with a freshly built
// world. The rng drives level generation; seed it for deterministic tests.
func NewGame(cfg *config.GameConfig, arena world.Arena, rng *rand.Rand) *Game {
	g := &Game{
		Config:   cfg,
		Bus:      event.NewEventBus(),
		Upgrades: economy.NewUpgrades(cfg.Upgrades),
		Level:    1,
		arena:    arena,
		rng:      rng,
	}
	g.startAttempt()
	return g
}

// startAttempt rebuilds the world for the current level and resets
// per-attempt state. The previous attempt's bodies are discarded wholesale.
func (g *Game) startAttempt() {
	g.World = world.Build(g.Config.Level(g.Level), g.arena, g.rng)
	g.Mode = ModeIdle
	g.Paused = false
	g.ClosestApproach = math.Inf(1)
	g.thrustHeld = false
	g.accumulator = 0
}

// Scale returns the current resolution scale factor
func (g *Game) Scale() float64 {
	return g.arena.Scale()
}

// Arena returns the current arena dimensions
func (g *Game) Arena() world.Arena {
	return g.arena
}

// Resize installs new arena dimensions from the external resize handler.
// Outside of a flight the level is rebuilt to the new scale immediately;
// mid-flight only the escape boundary changes.
func (g *Game) Resize(arena world.Arena) {
	g.arena = arena
	if g.Mode == ModeFlying {
		g.World.Arena = arena
		return
	}
	g.startAttempt()
}

// SetAim updates the continuous aim-point coordinate in world space
func (g *Game) SetAim(p physics.Vector2D) {
	g.Aim = p
}

// SetThrust engages or releases the thrust signal. It only has an effect
// while a flight is live and fuel remains.
func (g *Game) SetThrust(on bool) {
	g.thrustHeld = on
}

// Launch attempts to start a flight toward the current aim point.
// Valid only in IDLE mode with a launch body present. The rocket spawns at
// the launch body's surface offset along the aim direction and inherits
// the platform's orbital velocity.
func (g *Game) Launch() bool {
	if g.Mode != ModeIdle {
		return false
	}
	launch := g.World.FindByType(entity.LaunchPoint)
	if launch == nil {
		return false
	}

	scale := g.Scale()
	velocity, _ := ComputeLaunch(g.Aim, launch,
		g.Upgrades.LaunchForceMin(scale),
		g.Upgrades.LaunchForceMax(scale),
		g.Config.Physics.MaxAimDistance*scale)

	rocketRadius := rocketRadius * scale
	dir := g.Aim.Sub(launch.Position).Normalize()
	if dir == (physics.Vector2D{}) {
		dir = physics.Vector2D{X: 1}
	}
	position := launch.Position.Add(dir.Scale(launch.Radius + rocketRadius))

	rocket := entity.NewRocket(position, velocity, g.Upgrades.MaxFuel(), rocketRadius)
	g.World.Rocket = rocket
	g.Mode = ModeFlying
	g.ClosestApproach = math.Inf(1)

	g.Bus.Publish(event.NewLaunchEvent(g, position, velocity, rocket.Fuel))
	return true
}

// Pause freezes the simulation while flying. Ticks are not consumed and
// the accumulator does not advance, so resuming never causes a time jump.
func (g *Game) Pause() {
	if g.Mode != ModeFlying || g.Paused {
		return
	}
	g.Paused = true
	g.Bus.Publish(&event.BaseEvent{EventType: event.GamePaused, Source: g})
}

// Resume unfreezes a paused flight
func (g *Game) Resume() {
	if !g.Paused {
		return
	}
	g.Paused = false
	g.accumulator = 0
	g.Bus.Publish(&event.BaseEvent{EventType: event.GameResumed, Source: g})
}

// Retry restarts the current level after a finished flight. The ghost
// trail from the last flight is kept for this one attempt.
func (g *Game) Retry() bool {
	if g.Mode != ModeEnded {
		return false
	}
	g.startAttempt()
	return true
}

// NextLevel advances to the next level after a finished flight, wrapping
// past the last level. The ghost trail is cleared.
func (g *Game) NextLevel() bool {
	if g.Mode != ModeEnded {
		return false
	}
	g.Level++
	if g.Level > len(g.Config.Levels) {
		g.Level = 1
	}
	g.GhostTrail = nil
	g.startAttempt()
	g.Bus.Publish(event.NewLevelEvent(g, g.Level))
	return true
}

// SetLevel jumps to a specific level from the selector. Ignored while a
// flight is live.
func (g *Game) SetLevel(level int) bool {
	if g.Mode == ModeFlying || level < 1 || level > len(g.Config.Levels) {
		return false
	}
	g.Level = level
	g.GhostTrail = nil
	g.startAttempt()
	g.Bus.Publish(event.NewLevelEvent(g, g.Level))
	return true
}

// Purchase attempts to buy the next level of an upgrade track. An
// unaffordable or maxed purchase is rejected silently with no state change.
func (g *Game) Purchase(track *economy.Track) bool {
	coins, ok := track.Purchase(g.Coins)
	if !ok {
		return false
	}
	delta := coins - g.Coins
	g.Coins = coins
	g.Bus.Publish(event.NewUpgradeEvent(g, track.Name, track.Level, track.Cost))
	g.Bus.Publish(event.NewCoinsEvent(g, g.Coins, delta))
	return true
}

// endFlight finishes the current flight: awards coins, captures the ghost
// trail, destroys the rocket and moves to ENDED.
func (g *Game) endFlight(success bool, reason string) {
	rocket := g.World.Rocket
	if rocket == nil {
		return
	}

	award := g.flightReward(success, reason)
	g.Coins += award
	g.GhostTrail = rocket.Trail.Points()
	g.LastOutcome = &Outcome{Success: success, Reason: reason, CoinsAwarded: award}

	if reason == ReasonCrashed {
		g.Bus.Publish(event.NewEffectEvent(g, event.EffectExplosion, rocket.Position, explosionColor))
	}

	g.World.Rocket = nil
	g.Mode = ModeEnded
	g.Paused = false
	g.thrustHeld = false

	g.Bus.Publish(event.NewFlightEndEvent(g, success, reason, award))
	if award != 0 {
		g.Bus.Publish(event.NewCoinsEvent(g, g.Coins, award))
	}
}

// flightReward computes the coin award for a finished flight: the fixed
// landing reward on success, a closest-approach distance score on a
// lost-in-space failure, and nothing at all for a crash.
func (g *Game) flightReward(success bool, reason string) int {
	if success {
		return g.Config.Rules.LandingReward
	}
	if reason == ReasonCrashed {
		return 0
	}
	if math.IsInf(g.ClosestApproach, 1) {
		return 0
	}
	score := g.Config.Rules.DistanceScoreCap - int(math.Floor(g.ClosestApproach/2))
	if score < 0 {
		score = 0
	}
	return score
}

// Tick returns the number of physics steps consumed so far
func (g *Game) Tick() uint64 {
	return g.tick
}
