// pkg/engine/launch.go
package engine

import (
	"github.com/opd-ai/go-slingshot/pkg/entity"
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// ComputeLaunch converts an aim point into a launch velocity and the power
// ratio the aim distance maps to. The aim distance is capped at
// maxAimDistance and interpolates the impulse between minForce and
// maxForce; the result inherits the launch body's current orbital velocity,
// which is what makes the initial trajectory correct from a moving pad.
// Used identically by the trajectory predictor and the actual launch.
func ComputeLaunch(aim physics.Vector2D, launch *entity.Body, minForce, maxForce, maxAimDistance float64) (physics.Vector2D, float64) {
	offset := aim.Sub(launch.Position)
	dir := offset.Normalize()

	distance := offset.Length()
	if distance > maxAimDistance {
		distance = maxAimDistance
	}
	ratio := 0.0
	if maxAimDistance > 0 {
		ratio = distance / maxAimDistance
	}

	force := physics.Lerp(minForce, maxForce, ratio)
	return dir.Scale(force).Add(launch.Velocity), ratio
}
