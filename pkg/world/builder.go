// pkg/world/builder.go
package world

import (
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-slingshot/pkg/config"
	"github.com/opd-ai/go-slingshot/pkg/entity"
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// Orbit layout constants, pre-scale. The builder multiplies every length
// and radius by the arena scale factor.
const (
	starRadius = 60
	starMass   = 2500

	launchOrbitRadius = 200
	launchBodyRadius  = 20
	launchBodyMass    = 300
	launchOrbitSpeed  = 0.003

	moonOrbitRadius = 45
	moonRadius      = 8
	moonMass        = 40
	moonOrbitSpeed  = 0.02

	targetOrbitRadius = 350
	targetBodyRadius  = 22
	targetBodyMass    = 300
	targetOrbitSpeed  = 0.002

	ringedOrbitRadius = 480
	ringedBodyRadius  = 26
	ringedBodyMass    = 350
	ringedOrbitSpeed  = 0.0015

	RingObstacleCount    = 12
	ringObstacleRadius   = 4
	ringObstacleMass     = 5
	ringOrbitMinRadius   = 40
	ringOrbitSpreadRange = 20

	asteroidMass          = 20
	asteroidOrbitMinSpeed = 0.002
	asteroidOrbitMaxSpeed = 0.008

	// Spawn clearance around the launch pad so an asteroid never starts
	// on top of the rocket's launch position.
	asteroidPadClearance = 40
	asteroidPlaceTries   = 16
)

// Build constructs the complete body set for one level attempt. The
// structure is deterministic given the rng: star at the arena center, the
// launch body orbiting it, a moon around the launch body, the destination
// phase-offset by pi on a wider orbit, a ringed planet with ring debris
// further out, and the level's asteroid field scattered in the annulus
// between the launch and destination orbits, clear of the pad's spawn
// position.
//
// Build returns a brand new world every call; the previous level attempt's
// bodies are discarded wholesale, never merged.
func Build(level config.LevelConfig, arena Arena, rng *rand.Rand) *World {
	w := NewWorld(arena)
	scale := arena.Scale()
	center := arena.Center()

	star := &entity.Body{
		ID:       entity.GenerateID(),
		Type:     entity.Star,
		Position: center,
		Mass:     starMass,
		Radius:   starRadius * scale,
		Motion:   &entity.Static{},
	}
	w.Add(star)

	launchAngle := rng.Float64() * 2 * math.Pi
	launch := orbitingBody(entity.LaunchPoint, center, launchAngle,
		launchOrbitRadius*scale, launchOrbitSpeed, launchBodyRadius*scale, launchBodyMass)
	w.Add(launch)

	moon := &entity.Body{
		ID:     entity.GenerateID(),
		Type:   entity.Moon,
		Mass:   moonMass,
		Radius: moonRadius * scale,
		Motion: &entity.ParentOrbit{
			Parent:       launch.ID,
			Radius:       moonOrbitRadius * scale,
			Angle:        rng.Float64() * 2 * math.Pi,
			AngularSpeed: moonOrbitSpeed,
		},
		Trail: entity.NewTrail(entity.BodyTrailCapacity, entity.TrailSampleEvery),
	}
	moon.Position = launch.Position.Add(physics.FromAngle(
		moon.Motion.(*entity.ParentOrbit).Angle, moonOrbitRadius*scale))
	w.Add(moon)

	// Opposite side of the star so the destination is never trivially
	// adjacent to the launch pad.
	target := orbitingBody(entity.TargetPoint, center, launchAngle+math.Pi,
		targetOrbitRadius*scale, targetOrbitSpeed, targetBodyRadius*scale, targetBodyMass)
	w.Add(target)

	ringed := orbitingBody(entity.RingedPlanet, center, rng.Float64()*2*math.Pi,
		ringedOrbitRadius*scale, ringedOrbitSpeed, ringedBodyRadius*scale, ringedBodyMass)
	w.Add(ringed)

	for i := 0; i < RingObstacleCount; i++ {
		fragment := &entity.Body{
			ID:     entity.GenerateID(),
			Type:   entity.Obstacle,
			Mass:   ringObstacleMass,
			Radius: ringObstacleRadius * scale,
			Motion: &entity.ParentOrbit{
				Parent:       ringed.ID,
				Radius:       (ringOrbitMinRadius + rng.Float64()*ringOrbitSpreadRange) * scale,
				Angle:        rng.Float64() * 2 * math.Pi,
				AngularSpeed: randomDirection(rng) * (0.01 + rng.Float64()*0.02),
			},
			Outline: entity.NewOutline(rng, ringObstacleRadius*scale),
		}
		po := fragment.Motion.(*entity.ParentOrbit)
		fragment.Position = ringed.Position.Add(physics.FromAngle(po.Angle, po.Radius))
		w.Add(fragment)
	}

	for i := 0; i < level.AsteroidCount; i++ {
		size := level.AsteroidMinSize +
			rng.Float64()*(level.AsteroidMaxSize-level.AsteroidMinSize)
		speed := randomDirection(rng) *
			(asteroidOrbitMinSpeed + rng.Float64()*(asteroidOrbitMaxSpeed-asteroidOrbitMinSpeed))
		clearance := (size + launchBodyRadius + asteroidPadClearance) * scale

		// Resample until the spawn position clears the launch pad. The
		// attempt cap keeps pathological configs from looping forever;
		// the final draw is kept as-is.
		var asteroid *entity.Body
		for try := 0; try < asteroidPlaceTries; try++ {
			orbit := (launchOrbitRadius + rng.Float64()*(targetOrbitRadius-launchOrbitRadius)) * scale
			asteroid = orbitingBody(entity.Obstacle, center, rng.Float64()*2*math.Pi,
				orbit, speed, size*scale, asteroidMass)
			if asteroid.Position.Distance(launch.Position) >= clearance {
				break
			}
		}
		asteroid.Trail = nil
		asteroid.Outline = entity.NewOutline(rng, size*scale)
		w.Add(asteroid)
	}

	return w
}

// orbitingBody constructs a body on a fixed circular orbit, positioned at
// its starting angle with the matching tangential velocity.
func orbitingBody(t entity.BodyType, center physics.Vector2D, angle, orbitRadius, angularSpeed, radius, mass float64) *entity.Body {
	b := &entity.Body{
		ID:       entity.GenerateID(),
		Type:     t,
		Position: center.Add(physics.FromAngle(angle, orbitRadius)),
		Mass:     mass,
		Radius:   radius,
		Motion: &entity.FixedOrbit{
			Center:       center,
			Radius:       orbitRadius,
			Angle:        angle,
			AngularSpeed: angularSpeed,
		},
		Trail: entity.NewTrail(entity.BodyTrailCapacity, entity.TrailSampleEvery),
	}
	b.Velocity = physics.Vector2D{
		X: -math.Sin(angle),
		Y: math.Cos(angle),
	}.Scale(orbitRadius * angularSpeed)
	return b
}

func randomDirection(rng *rand.Rand) float64 {
	if rng.IntN(2) == 0 {
		return 1
	}
	return -1
}
