// pkg/engine/predict.go
package engine

import (
	"github.com/opd-ai/go-slingshot/pkg/entity"
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// PredictTrajectory forward-simulates the launch the current aim point
// would produce and returns the positions the rocket would pass through.
// It runs only in IDLE mode, once per rendered frame, and never touches
// the real simulation state.
//
// The prediction deliberately approximates: only the star's gravity is
// simulated, with its own tunable multiplier, over a fixed small number of
// steps. Guidance, not truth.
func (g *Game) PredictTrajectory() []physics.Vector2D {
	if g.Mode != ModeIdle {
		return nil
	}
	launch := g.World.FindByType(entity.LaunchPoint)
	star := g.World.FindByType(entity.Star)
	if launch == nil || star == nil {
		return nil
	}

	phys := g.Config.Physics
	scale := g.Scale()

	velocity, _ := ComputeLaunch(g.Aim, launch,
		g.Upgrades.LaunchForceMin(scale),
		g.Upgrades.LaunchForceMax(scale),
		phys.MaxAimDistance*scale)

	dir := g.Aim.Sub(launch.Position).Normalize()
	position := launch.Position.Add(dir.Scale(launch.Radius + rocketRadius*scale))

	points := make([]physics.Vector2D, 0, phys.PredictionSteps)
	for i := 0; i < phys.PredictionSteps; i++ {
		delta := star.Position.Sub(position)
		distance := physics.ClampMin(delta.Length(), phys.MinGravityDistance)
		magnitude := phys.GravityBase * scale * star.Mass * phys.PredictionGravityMult /
			(distance * distance)
		velocity = velocity.Add(delta.Normalize().Scale(magnitude))
		position = position.Add(velocity)
		points = append(points, position)
	}
	return points
}
