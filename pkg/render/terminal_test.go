package render

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/opd-ai/go-slingshot/pkg/config"
	"github.com/opd-ai/go-slingshot/pkg/engine"
	"github.com/opd-ai/go-slingshot/pkg/entity"
	"github.com/opd-ai/go-slingshot/pkg/physics"
	"github.com/opd-ai/go-slingshot/pkg/world"
)

func TestNewTerminalRenderer_AllocatesBuffer(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		scale  float64
	}{
		{name: "small", width: 10, height: 5, scale: 1.0},
		{name: "standard", width: 80, height: 24, scale: 10.0},
		{name: "wide", width: 120, height: 40, scale: 5.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewTerminalRenderer(tt.width, tt.height, tt.scale)

			if r.width != tt.width || r.height != tt.height {
				t.Errorf("dimensions %dx%d, expected %dx%d",
					r.width, r.height, tt.width, tt.height)
			}
			if len(r.buffer) != tt.height {
				t.Fatalf("buffer height %d, expected %d", len(r.buffer), tt.height)
			}
			for y := range r.buffer {
				if len(r.buffer[y]) != tt.width {
					t.Fatalf("row %d width %d, expected %d", y, len(r.buffer[y]), tt.width)
				}
			}
		})
	}
}

func TestWorldToScreen_CenterMapsToMiddle(t *testing.T) {
	r := NewTerminalRenderer(80, 24, 10.0)
	r.SetCenter(physics.Vector2D{X: 400, Y: 300})

	x, y := r.worldToScreen(physics.Vector2D{X: 400, Y: 300})
	if x != 40 || y != 12 {
		t.Errorf("center mapped to (%d,%d), expected (40,12)", x, y)
	}
}

func TestPlot_ClipsOutOfBounds(t *testing.T) {
	r := NewTerminalRenderer(10, 10, 1.0)
	r.clear()

	// Far outside the view on every side; none of these may panic or land.
	for _, pos := range []physics.Vector2D{
		{X: -1000, Y: 0},
		{X: 1000, Y: 0},
		{X: 0, Y: -1000},
		{X: 0, Y: 1000},
	} {
		r.plot(pos, '#')
	}

	for y := range r.buffer {
		for x := range r.buffer[y] {
			if r.buffer[y][x] == '#' {
				t.Fatalf("out-of-bounds plot landed at (%d,%d)", x, y)
			}
		}
	}
}

func TestGlyphFor_EveryBodyType(t *testing.T) {
	tests := []struct {
		bodyType entity.BodyType
		expected rune
	}{
		{entity.Star, '@'},
		{entity.LaunchPoint, 'L'},
		{entity.TargetPoint, 'X'},
		{entity.Moon, 'o'},
		{entity.RingedPlanet, 'O'},
		{entity.Obstacle, '#'},
	}

	for _, tt := range tests {
		if got := glyphFor(tt.bodyType); got != tt.expected {
			t.Errorf("glyphFor(%v) = %q, expected %q", tt.bodyType, got, tt.expected)
		}
	}
}

func TestStatusLine_ShowsModeAndCoins(t *testing.T) {
	r := NewTerminalRenderer(80, 24, 10.0)

	snap := &engine.Snapshot{
		Level:     2,
		LevelName: "Twin Moons",
		Mode:      engine.ModeIdle,
		Coins:     130,
	}

	line := r.statusLine(snap)
	for _, want := range []string{"L2", "Twin Moons", "idle", "coins 130"} {
		if !strings.Contains(line, want) {
			t.Errorf("status line %q missing %q", line, want)
		}
	}
}

func TestStatusLine_FuelAndPause(t *testing.T) {
	r := NewTerminalRenderer(80, 24, 10.0)

	snap := &engine.Snapshot{
		Level:     1,
		LevelName: "First Orbit",
		Mode:      engine.ModeFlying,
		Paused:    true,
		Rocket:    &engine.RocketState{FuelPercent: 50},
	}

	line := r.statusLine(snap)
	if !strings.Contains(line, "(paused)") {
		t.Errorf("status line %q missing pause marker", line)
	}
	if !strings.Contains(line, "fuel  50%") {
		t.Errorf("status line %q missing fuel readout", line)
	}
}

func TestStatusLine_FuelPercentFromLiveGame(t *testing.T) {
	cfg := config.DefaultConfig()
	g := engine.NewGame(cfg, world.Arena{Width: 800, Height: 800}, rand.New(rand.NewPCG(7, 7)))
	g.SetAim(g.Arena().Center())
	if !g.Launch() {
		t.Fatal("launch rejected")
	}

	r := NewTerminalRenderer(80, 24, 10.0)
	line := r.statusLine(g.Snapshot())
	if !strings.Contains(line, "fuel 100%") {
		t.Errorf("status line %q should report a full tank as 100%%", line)
	}
}

func TestStatusLine_OutcomeBanner(t *testing.T) {
	tests := []struct {
		name    string
		outcome *engine.Outcome
		want    string
	}{
		{
			name:    "landed",
			outcome: &engine.Outcome{Success: true, Reason: engine.ReasonLanded, CoinsAwarded: 100},
			want:    "landed! +100",
		},
		{
			name:    "crashed",
			outcome: &engine.Outcome{Reason: engine.ReasonCrashed},
			want:    "crashed +0",
		},
		{
			name:    "lost",
			outcome: &engine.Outcome{Reason: engine.ReasonLostSpace, CoinsAwarded: 30},
			want:    "lost_space +30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewTerminalRenderer(80, 24, 10.0)
			snap := &engine.Snapshot{
				Level:       1,
				LevelName:   "First Orbit",
				Mode:        engine.ModeEnded,
				LastOutcome: tt.outcome,
			}
			if line := r.statusLine(snap); !strings.Contains(line, tt.want) {
				t.Errorf("status line %q missing %q", line, tt.want)
			}
		})
	}
}

func TestFrame_PlotsBodiesAndRocket(t *testing.T) {
	r := NewTerminalRenderer(40, 20, 10.0)
	r.SetCenter(physics.Vector2D{X: 0, Y: 0})

	snap := &engine.Snapshot{
		Mode:      engine.ModeFlying,
		LevelName: "First Orbit",
		Bodies: []engine.BodyState{
			{Type: entity.Star, Position: physics.Vector2D{X: 0, Y: 0}},
			{Type: entity.TargetPoint, Position: physics.Vector2D{X: 100, Y: 0}},
		},
		Rocket: &engine.RocketState{Position: physics.Vector2D{X: -100, Y: 0}},
	}

	r.Frame(snap, nil)

	if !bufferContains(r, '@') {
		t.Error("star glyph not plotted")
	}
	if !bufferContains(r, 'X') {
		t.Error("destination glyph not plotted")
	}
	if !bufferContains(r, '^') {
		t.Error("rocket glyph not plotted")
	}
}

func bufferContains(r *TerminalRenderer, glyph rune) bool {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			if r.buffer[y][x] == glyph {
				return true
			}
		}
	}
	return false
}
