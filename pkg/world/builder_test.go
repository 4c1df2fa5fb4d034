// pkg/world/builder_test.go
package world

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/opd-ai/go-slingshot/pkg/config"
	"github.com/opd-ai/go-slingshot/pkg/entity"
)

func testArena() Arena {
	return Arena{Width: 800, Height: 800}
}

func testLevel(asteroids int) config.LevelConfig {
	return config.LevelConfig{
		ID:              1,
		Name:            "test",
		AsteroidCount:   asteroids,
		AsteroidMinSize: 6,
		AsteroidMaxSize: 12,
	}
}

func TestBuild_BodyCensus(t *testing.T) {
	tests := []struct {
		name      string
		asteroids int
	}{
		{name: "no_asteroids", asteroids: 0},
		{name: "three_asteroids", asteroids: 3},
		{name: "sixteen_asteroids", asteroids: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(7, 7))
			w := Build(testLevel(tt.asteroids), testArena(), rng)

			// 5 fixed bodies + 12 ring obstacles + the asteroid field.
			want := 5 + RingObstacleCount + tt.asteroids
			if len(w.Bodies) != want {
				t.Fatalf("built %d bodies, expected %d", len(w.Bodies), want)
			}

			counts := make(map[entity.BodyType]int)
			for _, b := range w.Bodies {
				counts[b.Type]++
			}
			if counts[entity.Star] != 1 || counts[entity.LaunchPoint] != 1 ||
				counts[entity.TargetPoint] != 1 || counts[entity.Moon] != 1 ||
				counts[entity.RingedPlanet] != 1 {
				t.Errorf("fixed body census wrong: %v", counts)
			}
			if counts[entity.Obstacle] != RingObstacleCount+tt.asteroids {
				t.Errorf("obstacle count = %d, expected %d",
					counts[entity.Obstacle], RingObstacleCount+tt.asteroids)
			}
			if w.Rocket != nil {
				t.Error("fresh world should have no rocket")
			}
		})
	}
}

func TestBuild_DeterministicGivenSeed(t *testing.T) {
	a := Build(testLevel(5), testArena(), rand.New(rand.NewPCG(3, 9)))
	b := Build(testLevel(5), testArena(), rand.New(rand.NewPCG(3, 9)))

	if len(a.Bodies) != len(b.Bodies) {
		t.Fatalf("body counts differ: %d vs %d", len(a.Bodies), len(b.Bodies))
	}
	for i := range a.Bodies {
		if a.Bodies[i].Position != b.Bodies[i].Position {
			t.Errorf("body %d position differs: %v vs %v",
				i, a.Bodies[i].Position, b.Bodies[i].Position)
		}
		if a.Bodies[i].Radius != b.Bodies[i].Radius {
			t.Errorf("body %d radius differs", i)
		}
	}
}

func TestBuild_RebuildDiscardsPriorBodies(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	first := Build(testLevel(8), testArena(), rng)
	second := Build(testLevel(8), testArena(), rng)

	want := 5 + RingObstacleCount + 8
	if len(second.Bodies) != want {
		t.Fatalf("rebuild produced %d bodies, expected %d", len(second.Bodies), want)
	}
	// No body instance survives a rebuild.
	firstIDs := make(map[entity.ID]bool)
	for _, b := range first.Bodies {
		firstIDs[b.ID] = true
	}
	for _, b := range second.Bodies {
		if firstIDs[b.ID] {
			t.Fatalf("body %d leaked from previous build", b.ID)
		}
	}
}

func TestBuild_DestinationOppositeLaunch(t *testing.T) {
	w := Build(testLevel(0), testArena(), rand.New(rand.NewPCG(5, 5)))
	center := testArena().Center()

	launch := w.FindByType(entity.LaunchPoint)
	target := w.FindByType(entity.TargetPoint)
	if launch == nil || target == nil {
		t.Fatal("missing launch or target body")
	}

	launchAngle := launch.Position.Sub(center).Angle()
	targetAngle := target.Position.Sub(center).Angle()
	// cos(delta) is -1 exactly when the bodies sit half an orbit apart,
	// with no wrap-around cases to special-case.
	if c := math.Cos(targetAngle - launchAngle); math.Abs(c+1) > 1e-9 {
		t.Errorf("target not phase-offset by pi: launch %v, target %v", launchAngle, targetAngle)
	}
}

func TestBuild_AsteroidsClearLaunchPad(t *testing.T) {
	scale := testArena().Scale()

	for seed := uint64(0); seed < 20; seed++ {
		w := Build(testLevel(16), testArena(), rand.New(rand.NewPCG(seed, seed)))
		launch := w.FindByType(entity.LaunchPoint)

		for _, b := range w.Bodies {
			if b.Type != entity.Obstacle {
				continue
			}
			if _, ok := b.Motion.(*entity.FixedOrbit); !ok {
				continue // ring debris orbits the ringed planet, not the star
			}
			minDist := b.Radius + (launchBodyRadius+asteroidPadClearance)*scale
			if d := b.Position.Distance(launch.Position); d < minDist {
				t.Errorf("seed %d: asteroid spawned %v from the launch pad, want at least %v",
					seed, d, minDist)
			}
		}
	}
}

func TestBuild_AsteroidSizesWithinLevelBounds(t *testing.T) {
	lvl := testLevel(20)
	w := Build(lvl, testArena(), rand.New(rand.NewPCG(11, 4)))
	scale := testArena().Scale()

	asteroids := 0
	for _, b := range w.Bodies {
		if b.Type != entity.Obstacle || b.Outline == nil {
			continue
		}
		// Ring fragments share the obstacle type; identify asteroids by
		// their star-centered orbit.
		orbit, ok := b.Motion.(*entity.FixedOrbit)
		if !ok {
			continue
		}
		asteroids++
		if b.Radius < lvl.AsteroidMinSize*scale-1e-9 || b.Radius > lvl.AsteroidMaxSize*scale+1e-9 {
			t.Errorf("asteroid radius %v outside [%v,%v]",
				b.Radius, lvl.AsteroidMinSize*scale, lvl.AsteroidMaxSize*scale)
		}
		if orbit.Radius < launchOrbitRadius*scale || orbit.Radius > targetOrbitRadius*scale {
			t.Errorf("asteroid orbit %v outside launch/target annulus", orbit.Radius)
		}
	}
	if asteroids != 20 {
		t.Errorf("identified %d asteroids, expected 20", asteroids)
	}
}

func TestWorld_AdvanceBodies_MoonTracksLaunchBody(t *testing.T) {
	w := Build(testLevel(0), testArena(), rand.New(rand.NewPCG(2, 8)))
	moon := w.FindByType(entity.Moon)
	launch := w.FindByType(entity.LaunchPoint)
	scale := testArena().Scale()

	for i := 0; i < 2000; i++ {
		w.AdvanceBodies()
		d := moon.Position.Distance(launch.Position)
		if math.Abs(d-moonOrbitRadius*scale) > 1e-6 {
			t.Fatalf("tick %d: moon distance %v, expected %v", i, d, moonOrbitRadius*scale)
		}
	}
}

func TestArena_Scale(t *testing.T) {
	tests := []struct {
		name     string
		arena    Arena
		expected float64
	}{
		{name: "reference", arena: Arena{Width: 800, Height: 800}, expected: 1.0},
		{name: "small_clamped", arena: Arena{Width: 320, Height: 240}, expected: 0.6},
		{name: "large_clamped", arena: Arena{Width: 2560, Height: 1440}, expected: 1.2},
		{name: "landscape", arena: Arena{Width: 1200, Height: 640}, expected: 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.arena.Scale(); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Scale() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestArena_EscapeRadius(t *testing.T) {
	a := Arena{Width: 800, Height: 600}
	if got := a.EscapeRadius(); got != 1600 {
		t.Errorf("EscapeRadius() = %v, expected 1600", got)
	}
}
