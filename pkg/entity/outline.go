// pkg/entity/outline.go
package entity

import (
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// Obstacle outline jitter bounds. Outlines are rendering-only; collision
// always uses the body's circular collider.
const (
	outlineMinVertices = 6
	outlineMaxVertices = 9
	outlineMinJitter   = 0.7
	outlineMaxJitter   = 1.3
)

// NewOutline generates a fixed randomized polygon for an obstacle body:
// 6 to 9 vertices at radii jittered between 0.7x and 1.3x the body radius,
// as offsets from the body center. Generated once at creation.
func NewOutline(rng *rand.Rand, radius float64) []physics.Vector2D {
	n := outlineMinVertices + rng.IntN(outlineMaxVertices-outlineMinVertices+1)
	outline := make([]physics.Vector2D, n)
	for i := range outline {
		angle := float64(i) / float64(n) * 2 * math.Pi
		jitter := outlineMinJitter + rng.Float64()*(outlineMaxJitter-outlineMinJitter)
		outline[i] = physics.FromAngle(angle, radius*jitter)
	}
	return outline
}
