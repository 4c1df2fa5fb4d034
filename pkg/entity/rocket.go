// pkg/entity/rocket.go
package entity

import (
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// Rocket is the single free-falling, player-controlled body. It is the only
// entity destroyed before end of level: every attempt constructs a fresh one.
type Rocket struct {
	Body
	Fuel      float64
	MaxFuel   float64
	Age       int // ticks since launch, drives the launch-pad grace period
	Heading   float64
	Thrusting bool
}

// NewRocket creates a rocket at the given position with the given initial
// velocity and a full tank.
func NewRocket(position, velocity physics.Vector2D, maxFuel, radius float64) *Rocket {
	return &Rocket{
		Body: Body{
			ID:       GenerateID(),
			Type:     RocketBody,
			Position: position,
			Velocity: velocity,
			Mass:     1,
			Radius:   radius,
			Motion:   &Free{},
			Trail:    NewTrail(RocketTrailCapacity, TrailSampleEvery),
		},
		Fuel:    maxFuel,
		MaxFuel: maxFuel,
		Heading: velocity.Angle(),
	}
}

// BurnFuel consumes fuel at the given per-tick rate, flooring at zero.
// Returns false if the tank was already empty.
func (r *Rocket) BurnFuel(rate float64) bool {
	if r.Fuel <= 0 {
		r.Fuel = 0
		return false
	}
	r.Fuel -= rate
	if r.Fuel < 0 {
		r.Fuel = 0
	}
	return true
}

// FuelPercent returns remaining fuel in [0,100] for the fuel bar readout
func (r *Rocket) FuelPercent() float64 {
	if r.MaxFuel <= 0 {
		return 0
	}
	return r.Fuel / r.MaxFuel * 100
}

// UpdateHeading points the rocket at the aim point while thrusting, or
// along its velocity otherwise.
func (r *Rocket) UpdateHeading(aim physics.Vector2D) {
	if r.Thrusting {
		r.Heading = aim.Sub(r.Position).Angle()
		return
	}
	if r.Velocity.LengthSquared() > 0 {
		r.Heading = r.Velocity.Angle()
	}
}
