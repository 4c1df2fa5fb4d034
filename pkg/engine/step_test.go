// pkg/engine/step_test.go
package engine

import (
	"math"
	"testing"

	"github.com/opd-ai/go-slingshot/pkg/entity"
	"github.com/opd-ai/go-slingshot/pkg/event"
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

func TestAdvance_FixedStepAccumulator(t *testing.T) {
	tests := []struct {
		name     string
		deltas   []float64
		expected []int
	}{
		{
			name:     "one_frame_one_step",
			deltas:   []float64{1.0 / 60.0},
			expected: []int{1},
		},
		{
			name:     "half_steps_accumulate",
			deltas:   []float64{1.0 / 120.0, 1.0 / 120.0},
			expected: []int{0, 1},
		},
		{
			name:     "long_frame_capped_at_max_steps",
			deltas:   []float64{10.0},
			expected: []int{5},
		},
		{
			name:     "backlog_discarded_not_replayed",
			deltas:   []float64{10.0, 0.0},
			expected: []int{5, 0},
		},
		{
			name:     "two_normal_frames",
			deltas:   []float64{1.0 / 60.0, 1.0 / 60.0},
			expected: []int{1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame()
			for i, dt := range tt.deltas {
				if steps := g.Advance(dt); steps != tt.expected[i] {
					t.Errorf("Advance(%v) call %d = %d steps, expected %d",
						dt, i, steps, tt.expected[i])
				}
			}
		})
	}
}

func TestAdvance_TickCounterTracksSteps(t *testing.T) {
	g := newTestGame()
	total := 0
	for i := 0; i < 20; i++ {
		total += g.Advance(1.0 / 60.0)
	}
	if g.Tick() != uint64(total) {
		t.Errorf("tick = %d, expected %d", g.Tick(), total)
	}
}

func TestStepRocket_ThrustBurnsFuelMonotonically(t *testing.T) {
	g := newTestGame()
	rocket := placeRocket(g, physics.Vector2D{X: 100, Y: 100})
	g.SetAim(physics.Vector2D{X: 700, Y: 100})
	g.SetThrust(true)

	prev := rocket.Fuel
	burned := false
	for i := 0; i < 300 && g.Mode == ModeFlying; i++ {
		g.Step()
		if rocket.Fuel > prev {
			t.Fatalf("fuel increased at tick %d: %v -> %v", i, prev, rocket.Fuel)
		}
		if rocket.Fuel < prev {
			burned = true
		}
		if rocket.Fuel < 0 {
			t.Fatalf("fuel went negative: %v", rocket.Fuel)
		}
		prev = rocket.Fuel
	}
	if !burned {
		t.Error("thrust never consumed fuel")
	}
}

func TestStepRocket_EmptyTankIgnoresThrust(t *testing.T) {
	g := newTestGame()
	rocket := placeRocket(g, physics.Vector2D{X: 100, Y: 100})
	rocket.Fuel = 0
	g.SetAim(physics.Vector2D{X: 700, Y: 100})
	g.SetThrust(true)

	g.Step()

	if rocket.Thrusting {
		t.Error("rocket thrusting on an empty tank")
	}
	if rocket.Fuel != 0 {
		t.Errorf("fuel = %v, expected 0", rocket.Fuel)
	}
}

func TestStepRocket_ThrustAcceleratesTowardAim(t *testing.T) {
	g := newTestGame()
	// Far from every body but inside the escape boundary, so gravity is a
	// rounding error next to thrust.
	rocket := placeRocket(g, physics.Vector2D{X: 1900, Y: 400})
	g.SetAim(physics.Vector2D{X: 3000, Y: 400})

	g.SetThrust(false)
	g.Step()
	coastVX := rocket.Velocity.X

	g.SetThrust(true)
	g.Step()

	gained := rocket.Velocity.X - coastVX
	expected := g.Upgrades.ThrustPower(g.Scale())
	// One tick of thrust minus one more tick of (tiny) gravity.
	if math.Abs(gained-expected) > expected*0.1 {
		t.Errorf("thrust gained %v velocity, expected about %v", gained, expected)
	}
}

func TestStepRocket_GravityPullsTowardStar(t *testing.T) {
	g := newTestGame()
	star := g.World.FindByType(entity.Star)
	rocket := placeRocket(g, star.Position.Add(physics.Vector2D{X: 150}))

	g.Step()

	if rocket.Velocity.X >= 0 {
		t.Errorf("velocity.X = %v, expected pull toward the star (negative)", rocket.Velocity.X)
	}
}

func TestStepRocket_GravityClampNeverExplodes(t *testing.T) {
	g := newTestGame()
	moon := g.World.FindByType(entity.Moon)
	// Dead center of a body: the raw inverse square would be infinite.
	rocket := placeRocket(g, moon.Position)
	rocket.Age = 0

	g.Step()

	if !rocket.Velocity.IsFinite() {
		t.Fatalf("velocity non-finite after zero-distance gravity: %v", rocket.Velocity)
	}
	// Force floored at the minimum distance, for every body at once.
	if rocket.Velocity.Length() > 100 {
		t.Errorf("clamped gravity produced runaway velocity %v", rocket.Velocity.Length())
	}
}

func TestStepRocket_ClosestApproachIsMonotonic(t *testing.T) {
	g := newTestGame()
	target := g.World.FindByType(entity.TargetPoint)
	// Drifting straight past the destination at a safe offset.
	rocket := placeRocket(g, target.Position.Add(physics.Vector2D{X: -200, Y: 60}))
	rocket.Velocity = physics.Vector2D{X: 8}

	prev := g.ClosestApproach
	for i := 0; i < 60 && g.Mode == ModeFlying; i++ {
		g.Step()
		if g.ClosestApproach > prev {
			t.Fatalf("closest approach grew at tick %d: %v -> %v", i, prev, g.ClosestApproach)
		}
		prev = g.ClosestApproach
	}
	if math.IsInf(g.ClosestApproach, 1) {
		t.Error("closest approach never recorded")
	}
}

func TestStepRocket_ExhaustEventsWhileThrusting(t *testing.T) {
	g := newTestGame()
	placeRocket(g, physics.Vector2D{X: 1900, Y: 400})
	g.SetAim(physics.Vector2D{X: 3000, Y: 400})
	g.SetThrust(true)

	exhaust := 0
	g.Bus.Subscribe(event.EffectRequested, func(e event.Event) {
		if e.(*event.EffectEvent).Kind == event.EffectExhaust {
			exhaust++
		}
	})

	for i := 0; i < 30; i++ {
		g.Step()
	}

	// One request every few ticks, not one per tick.
	if exhaust == 0 {
		t.Fatal("no exhaust events while thrusting")
	}
	if exhaust >= 30 {
		t.Errorf("exhaust every tick (%d events), expected throttled emission", exhaust)
	}
}

func TestStep_BodiesKeepMovingAfterFlightEnds(t *testing.T) {
	g := newTestGame()
	g.Mode = ModeEnded
	launch := g.World.FindByType(entity.LaunchPoint)
	before := launch.Position

	for i := 0; i < 10; i++ {
		g.Step()
	}

	if launch.Position == before {
		t.Error("orbiting body frozen outside of a flight")
	}
}
