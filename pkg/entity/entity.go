// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

var nextID ID = 1

// GenerateID returns a new unique entity ID
func GenerateID() ID {
	id := nextID
	nextID++
	return id
}

// BodyType determines a body's role in the simulation: its default motion
// mode, its collision outcome against the rocket, and its visual role.
type BodyType int

const (
	Star BodyType = iota
	LaunchPoint
	TargetPoint
	Moon
	RingedPlanet
	Obstacle
	RocketBody
)

// String returns a human-readable name for the body type
func (t BodyType) String() string {
	switch t {
	case Star:
		return "star"
	case LaunchPoint:
		return "launch_point"
	case TargetPoint:
		return "target_point"
	case Moon:
		return "moon"
	case RingedPlanet:
		return "ringed_planet"
	case Obstacle:
		return "obstacle"
	case RocketBody:
		return "rocket"
	default:
		return "unknown"
	}
}

// Body is the universal entity for every physical object in the arena.
// A body's type never changes after construction, and exactly one motion
// mode is active at a time.
type Body struct {
	ID           ID
	Type         BodyType
	Position     physics.Vector2D
	Velocity     physics.Vector2D
	Acceleration physics.Vector2D
	Mass         float64
	Radius       float64
	Motion       Motion
	Trail        *Trail
	Outline      []physics.Vector2D
}

// GetID returns the body's unique identifier
func (b *Body) GetID() ID {
	return b.ID
}

// GetPosition returns the body's position
func (b *Body) GetPosition() physics.Vector2D {
	return b.Position
}

// Collider returns the body's collision shape
func (b *Body) Collider() physics.Circle {
	return physics.Circle{
		Center: b.Position,
		Radius: b.Radius,
	}
}

// ApplyForce accumulates a force on the body for the current tick.
// Multiple forces combine linearly before a single velocity update.
func (b *Body) ApplyForce(force physics.Vector2D) {
	if b.Mass <= 0 {
		return
	}
	b.Acceleration = b.Acceleration.Add(force.Scale(1 / b.Mass))
}

// Integrate applies the accumulated acceleration once and clears it.
// Semi-implicit Euler at a fixed step: stable and deterministic.
func (b *Body) Integrate() {
	b.Velocity = b.Velocity.Add(b.Acceleration)
	b.Position = b.Position.Add(b.Velocity)
	b.Acceleration = physics.Vector2D{}
}

// RecordTrail samples the body's position into its trail, if it has one
func (b *Body) RecordTrail() {
	if b.Trail != nil {
		b.Trail.Record(b.Position)
	}
}
