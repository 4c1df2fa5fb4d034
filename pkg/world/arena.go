// pkg/world/arena.go
package world

import (
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// Reference arena dimension the game's constants were tuned against.
const referenceSize = 800

// Arena is the rectangular simulated viewport. Its dimensions determine
// the uniform scale factor applied to size- and speed-dependent constants,
// and the escape boundary for the rocket.
type Arena struct {
	Width  float64
	Height float64
}

// Center returns the arena center, where the star sits
func (a Arena) Center() physics.Vector2D {
	return physics.Vector2D{X: a.Width / 2, Y: a.Height / 2}
}

// Scale returns the resolution-independence factor, derived from the
// smaller arena dimension and clamped to [0.6, 1.2].
func (a Arena) Scale() float64 {
	min := a.Width
	if a.Height < min {
		min = a.Height
	}
	return physics.Clamp(min/referenceSize, 0.6, 1.2)
}

// EscapeRadius is the distance from the arena center beyond which the
// rocket counts as lost in space: twice the larger screen dimension.
func (a Arena) EscapeRadius() float64 {
	max := a.Width
	if a.Height > max {
		max = a.Height
	}
	return 2 * max
}
