// pkg/engine/launch_test.go
package engine

import (
	"math"
	"testing"

	"github.com/opd-ai/go-slingshot/pkg/entity"
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

func launchPad(velocity physics.Vector2D) *entity.Body {
	return &entity.Body{
		Type:     entity.LaunchPoint,
		Position: physics.Vector2D{},
		Velocity: velocity,
		Radius:   20,
	}
}

func TestComputeLaunch_InheritsPlatformVelocity(t *testing.T) {
	// Pad moving at (2,0), aim impulse of exactly 3 along +X: the rocket
	// must leave at (5,0), not (3,0).
	pad := launchPad(physics.Vector2D{X: 2})
	aim := physics.Vector2D{X: 250}

	velocity, ratio := ComputeLaunch(aim, pad, 3, 3, 250)

	want := physics.Vector2D{X: 5}
	if math.Abs(velocity.X-want.X) > 1e-9 || math.Abs(velocity.Y) > 1e-9 {
		t.Errorf("velocity = %+v, expected %+v", velocity, want)
	}
	if ratio != 1 {
		t.Errorf("ratio = %v, expected 1", ratio)
	}
}

func TestComputeLaunch_PowerRatio(t *testing.T) {
	tests := []struct {
		name      string
		aim       physics.Vector2D
		wantRatio float64
		wantSpeed float64
	}{
		{name: "at_pad_min_power", aim: physics.Vector2D{}, wantRatio: 0, wantSpeed: 0},
		{name: "half_distance", aim: physics.Vector2D{X: 125}, wantRatio: 0.5, wantSpeed: 3},
		{name: "full_distance", aim: physics.Vector2D{Y: 250}, wantRatio: 1, wantSpeed: 5},
		{name: "beyond_max_capped", aim: physics.Vector2D{X: 3000}, wantRatio: 1, wantSpeed: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pad := launchPad(physics.Vector2D{})
			velocity, ratio := ComputeLaunch(tt.aim, pad, 1, 5, 250)

			if math.Abs(ratio-tt.wantRatio) > 1e-9 {
				t.Errorf("ratio = %v, expected %v", ratio, tt.wantRatio)
			}
			if tt.wantSpeed == 0 {
				// Degenerate aim at the pad itself: no direction, so the
				// impulse vanishes and only pad velocity remains.
				if velocity != (physics.Vector2D{}) {
					t.Errorf("velocity = %+v, expected zero", velocity)
				}
				return
			}
			if math.Abs(velocity.Length()-tt.wantSpeed) > 1e-9 {
				t.Errorf("speed = %v, expected %v", velocity.Length(), tt.wantSpeed)
			}
		})
	}
}

func TestComputeLaunch_DirectionFollowsAim(t *testing.T) {
	pad := launchPad(physics.Vector2D{})
	aim := physics.Vector2D{X: 30, Y: 40}

	velocity, _ := ComputeLaunch(aim, pad, 2, 2, 250)

	// Impulse of 2 along the 3-4-5 direction.
	if math.Abs(velocity.X-1.2) > 1e-9 || math.Abs(velocity.Y-1.6) > 1e-9 {
		t.Errorf("velocity = %+v, expected (1.2, 1.6)", velocity)
	}
}
