// pkg/engine/snapshot.go
package engine

import (
	"math"

	"github.com/opd-ai/go-slingshot/pkg/economy"
	"github.com/opd-ai/go-slingshot/pkg/entity"
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// Snapshot is the read-only view of the game an external renderer and UI
// layer consume. The core never issues drawing calls; everything a frame
// needs is here.
type Snapshot struct {
	Tick            uint64
	Mode            Mode
	Paused          bool
	Level           int
	LevelName       string
	Coins           int
	ClosestApproach float64 // +Inf before the first measurement
	Bodies          []BodyState
	Rocket          *RocketState
	GhostTrail      []physics.Vector2D
	Prediction      []physics.Vector2D
	Upgrades        []UpgradeState
	LastOutcome     *Outcome
}

// BodyState is a renderable view of one non-rocket body
type BodyState struct {
	ID       entity.ID
	Type     entity.BodyType
	Position physics.Vector2D
	Radius   float64
	Trail    []physics.Vector2D
	Outline  []physics.Vector2D
}

// RocketState is a renderable view of the live rocket
type RocketState struct {
	Position    physics.Vector2D
	Velocity    physics.Vector2D
	Heading     float64
	FuelPercent float64 // [0,100], ready for direct display
	Thrusting   bool
	Trail       []physics.Vector2D
}

// UpgradeState is a per-track UI readout
type UpgradeState struct {
	Name       string
	Level      int
	MaxLevel   int
	Cost       int
	Affordable bool
	Maxed      bool
}

// Snapshot builds the current render snapshot. The prediction is included
// only in IDLE mode, matching when the guidance line is drawn.
func (g *Game) Snapshot() *Snapshot {
	s := &Snapshot{
		Tick:            g.tick,
		Mode:            g.Mode,
		Paused:          g.Paused,
		Level:           g.Level,
		LevelName:       g.Config.Level(g.Level).Name,
		Coins:           g.Coins,
		ClosestApproach: g.ClosestApproach,
		Bodies:          g.bodyStates(),
		GhostTrail:      append([]physics.Vector2D(nil), g.GhostTrail...),
		Prediction:      g.PredictTrajectory(),
		Upgrades:        g.upgradeStates(),
		LastOutcome:     g.LastOutcome,
	}
	if rocket := g.World.Rocket; rocket != nil {
		s.Rocket = &RocketState{
			Position:    rocket.Position,
			Velocity:    rocket.Velocity,
			Heading:     rocket.Heading,
			FuelPercent: rocket.FuelPercent(),
			Thrusting:   rocket.Thrusting,
			Trail:       rocket.Trail.Points(),
		}
	}
	return s
}

// bodyStates copies every body into its renderable form
func (g *Game) bodyStates() []BodyState {
	states := make([]BodyState, 0, len(g.World.Bodies))
	for _, b := range g.World.Bodies {
		state := BodyState{
			ID:       b.ID,
			Type:     b.Type,
			Position: b.Position,
			Radius:   b.Radius,
			Outline:  b.Outline,
		}
		if b.Trail != nil {
			state.Trail = b.Trail.Points()
		}
		states = append(states, state)
	}
	return states
}

// upgradeStates builds the per-track store readouts
func (g *Game) upgradeStates() []UpgradeState {
	tracks := []*economy.Track{g.Upgrades.Fuel, g.Upgrades.Thrust, g.Upgrades.Launch}
	states := make([]UpgradeState, len(tracks))
	for i, track := range tracks {
		states[i] = UpgradeState{
			Name:       track.Name,
			Level:      track.Level,
			MaxLevel:   track.MaxLevel,
			Cost:       track.Cost,
			Affordable: !track.Maxed() && g.Coins >= track.Cost,
			Maxed:      track.Maxed(),
		}
	}
	return states
}

// ClosestApproachReadout returns the closest-approach distance for the UI,
// or zero before any measurement exists.
func (g *Game) ClosestApproachReadout() float64 {
	if math.IsInf(g.ClosestApproach, 1) {
		return 0
	}
	return g.ClosestApproach
}
