// pkg/entity/motion.go
package entity

import (
	"math"

	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// Motion is the tagged motion mode of a body. Exactly one mode is active
// per body; the variants are exhaustive and mutually exclusive.
type Motion interface {
	motionMode()
}

// Free integrates under accumulated acceleration each step.
// Only the rocket uses this mode.
type Free struct{}

// FixedOrbit computes position and velocity analytically each step from an
// angle around a fixed center. No numerical drift.
type FixedOrbit struct {
	Center       physics.Vector2D
	Radius       float64
	Angle        float64
	AngularSpeed float64
}

// ParentOrbit is a FixedOrbit whose center tracks a moving parent body.
// The parent is referenced by ID and resolved through the world's lookup,
// never by shared pointer, so rebuilt levels cannot dangle.
type ParentOrbit struct {
	Parent       ID
	Radius       float64
	Angle        float64
	AngularSpeed float64
}

// Oscillate displaces the body sinusoidally from a vertical baseline.
// Unused by the default level set, reserved for future level types.
type Oscillate struct {
	Baseline  physics.Vector2D
	Speed     float64
	Amplitude float64
	Phase     float64
}

// Static never moves (the star).
type Static struct{}

func (*Free) motionMode()        {}
func (*FixedOrbit) motionMode()  {}
func (*ParentOrbit) motionMode() {}
func (*Oscillate) motionMode()   {}
func (*Static) motionMode()      {}

// orbitVelocity is the tangential velocity of circular motion:
// v = r*omega along the unit tangent (-sin a, cos a).
func orbitVelocity(angle, radius, angularSpeed float64) physics.Vector2D {
	return physics.Vector2D{
		X: -math.Sin(angle),
		Y: math.Cos(angle),
	}.Scale(radius * angularSpeed)
}

// AdvanceMotion moves the body one tick according to its motion mode.
// lookup resolves parent references for ParentOrbit bodies; a missing
// parent leaves the body where it is for the tick.
func (b *Body) AdvanceMotion(lookup func(ID) *Body) {
	switch m := b.Motion.(type) {
	case *Free:
		b.Integrate()
	case *FixedOrbit:
		m.Angle += m.AngularSpeed
		b.Position = m.Center.Add(physics.FromAngle(m.Angle, m.Radius))
		b.Velocity = orbitVelocity(m.Angle, m.Radius, m.AngularSpeed)
	case *ParentOrbit:
		parent := lookup(m.Parent)
		if parent == nil {
			return
		}
		m.Angle += m.AngularSpeed
		b.Position = parent.Position.Add(physics.FromAngle(m.Angle, m.Radius))
		// A child in a moving frame carries its parent's velocity, so
		// gravity and collision math against the rocket stay consistent.
		b.Velocity = orbitVelocity(m.Angle, m.Radius, m.AngularSpeed).Add(parent.Velocity)
	case *Oscillate:
		m.Phase += m.Speed
		b.Position = physics.Vector2D{
			X: m.Baseline.X,
			Y: m.Baseline.Y + math.Sin(m.Phase)*m.Amplitude,
		}
		b.Velocity = physics.Vector2D{
			Y: math.Cos(m.Phase) * m.Amplitude * m.Speed,
		}
	case *Static:
		// never moves
	}
	b.RecordTrail()
}
