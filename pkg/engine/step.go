// pkg/engine/step.go
package engine

import (
	"github.com/opd-ai/go-slingshot/pkg/entity"
	"github.com/opd-ai/go-slingshot/pkg/event"
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

const (
	rocketRadius   = 5 // pre-scale
	exhaustColor   = "#FFD55A"
	explosionColor = "#FF6B35"
)

// Advance feeds wall-clock time into the fixed-step accumulator and drains
// it in whole physics steps, at most MaxStepsPerFrame per call. Excess
// backlog beyond the cap is discarded rather than replayed, so a stalled
// frame never causes a catch-up storm. While paused, time is not consumed
// at all. Returns the number of steps executed.
func (g *Game) Advance(dt float64) int {
	if g.Paused {
		return 0
	}
	if dt > g.Config.Rules.MaxFrameDelta {
		dt = g.Config.Rules.MaxFrameDelta
	}
	g.accumulator += dt

	step := g.Config.Rules.StepSeconds
	steps := 0
	for g.accumulator >= step && steps < g.Config.Rules.MaxStepsPerFrame {
		g.Step()
		g.accumulator -= step
		steps++
	}
	if g.accumulator >= step {
		g.accumulator = 0
	}
	return steps
}

// Step runs exactly one fixed physics tick: rocket forces, integration and
// collision when a flight is live, then every body's own motion mode, then
// the escape-boundary check.
func (g *Game) Step() {
	if g.Mode == ModeFlying && g.World.Rocket != nil {
		g.stepRocket()
	}

	g.World.AdvanceBodies()

	if g.Mode == ModeFlying && g.World.Rocket != nil {
		g.checkBoundary()
	}
	g.tick++
}

// stepRocket applies thrust and gravity to the rocket, integrates once,
// and resolves collisions and closest-approach tracking.
func (g *Game) stepRocket() {
	rocket := g.World.Rocket
	phys := g.Config.Physics
	scale := g.Scale()

	rocket.Age++

	// Thrust: unit vector from rocket toward the aim point, scaled by the
	// upgrade-derived thrust power, burning fuel at a fixed rate.
	rocket.Thrusting = false
	if g.thrustHeld && rocket.Fuel > 0 {
		dir := g.Aim.Sub(rocket.Position).Normalize()
		if dir != (physics.Vector2D{}) {
			rocket.ApplyForce(dir.Scale(g.Upgrades.ThrustPower(scale)))
			rocket.BurnFuel(phys.FuelBurnPerTick)
			rocket.Thrusting = true
			if g.tick%uint64(phys.ExhaustEvery) == 0 {
				g.Bus.Publish(event.NewEffectEvent(g, event.EffectExhaust, rocket.Position, exhaustColor))
			}
		}
	}

	// Gravity from every non-rocket body. The distance is clamped to a
	// floor before the inverse-square law so contact never produces an
	// explosive force.
	for _, b := range g.World.Bodies {
		delta := b.Position.Sub(rocket.Position)
		distance := physics.ClampMin(delta.Length(), phys.MinGravityDistance)
		magnitude := phys.GravityBase * scale * b.Mass / (distance * distance)
		if b.Type == entity.Star {
			magnitude *= phys.StarGravityMult
		}
		rocket.ApplyForce(delta.Normalize().Scale(magnitude))
	}

	// One integration after all forces for the tick are in.
	rocket.AdvanceMotion(nil)
	rocket.UpdateHeading(g.Aim)

	if g.resolveCollisions(rocket) {
		return
	}

	// Closest approach to the destination: a monotonic minimum used for
	// partial scoring on failure.
	if target := g.World.FindByType(entity.TargetPoint); target != nil {
		if d := rocket.Position.Distance(target.Position); d < g.ClosestApproach {
			g.ClosestApproach = d
		}
	}
}

// resolveCollisions tests the rocket against every body and dispatches by
// body type. Returns true if the flight ended this tick; processing
// short-circuits on the first terminal collision.
func (g *Game) resolveCollisions(rocket *entity.Rocket) bool {
	padding := g.Config.Physics.CollisionPadding * g.Scale()
	for _, b := range g.World.Bodies {
		if !b.Collider().HitsPoint(rocket.Position, padding) {
			continue
		}
		switch b.Type {
		case entity.TargetPoint:
			g.endFlight(true, ReasonLanded)
			return true
		case entity.LaunchPoint:
			// Grace period: the rocket may overlap its own pad while
			// leaving it. Afterwards the pad is as hard as anything else.
			if rocket.Age <= g.Config.Physics.GraceTicks {
				continue
			}
			g.endFlight(false, ReasonCrashed)
			return true
		default:
			g.endFlight(false, ReasonCrashed)
			return true
		}
	}
	return false
}

// checkBoundary ends the flight if the rocket drifted past the escape
// radius. Checked after body motion updates, independent of collisions.
func (g *Game) checkBoundary() {
	rocket := g.World.Rocket
	if rocket.Position.Distance(g.arena.Center()) > g.arena.EscapeRadius() {
		g.endFlight(false, ReasonLostSpace)
	}
}
