package render

import (
	"fmt"
	"strings"

	"github.com/opd-ai/go-slingshot/pkg/effects"
	"github.com/opd-ai/go-slingshot/pkg/engine"
	"github.com/opd-ai/go-slingshot/pkg/entity"
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// TerminalRenderer provides a simple ASCII-based rendering for terminals
type TerminalRenderer struct {
	width     int
	height    int
	buffer    [][]rune
	scale     float64
	centerPos physics.Vector2D
}

// NewTerminalRenderer creates a new terminal renderer with the specified
// dimensions. scale is world units per character cell.
func NewTerminalRenderer(width, height int, scale float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		width:  width,
		height: height,
		buffer: buffer,
		scale:  scale,
	}
}

// SetCenter sets the world position mapped to the middle of the view
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.centerPos = pos
}

// worldToScreen converts world coordinates to buffer coordinates.
// Terminal cells are roughly twice as tall as wide, so Y is compressed.
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := int((pos.X-r.centerPos.X)/r.scale + float64(r.width)/2)
	screenY := int((pos.Y-r.centerPos.Y)/(r.scale*2) + float64(r.height)/2)
	return screenX, screenY
}

// plot writes a glyph into the buffer, dropping anything out of bounds
func (r *TerminalRenderer) plot(pos physics.Vector2D, glyph rune) {
	x, y := r.worldToScreen(pos)
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = glyph
	}
}

// clear blanks the frame buffer
func (r *TerminalRenderer) clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// Frame implements Renderer
func (r *TerminalRenderer) Frame(snap *engine.Snapshot, field *effects.Field) {
	r.clear()

	// Faint layers first so solid bodies draw over them.
	for _, p := range snap.GhostTrail {
		r.plot(p, ',')
	}
	for _, p := range snap.Prediction {
		r.plot(p, '+')
	}
	if field != nil {
		for _, p := range field.Particles() {
			r.plot(p.Position, '\'')
		}
	}

	for _, b := range snap.Bodies {
		for _, p := range b.Trail {
			r.plot(p, '.')
		}
	}
	for _, b := range snap.Bodies {
		r.plot(b.Position, glyphFor(b.Type))
	}

	if rocket := snap.Rocket; rocket != nil {
		for _, p := range rocket.Trail {
			r.plot(p, '.')
		}
		glyph := '^'
		if rocket.Thrusting {
			glyph = 'A'
		}
		r.plot(rocket.Position, glyph)
	}

	r.present(snap)
}

// glyphFor maps a body type to its display character
func glyphFor(t entity.BodyType) rune {
	switch t {
	case entity.Star:
		return '@'
	case entity.LaunchPoint:
		return 'L'
	case entity.TargetPoint:
		return 'X'
	case entity.Moon:
		return 'o'
	case entity.RingedPlanet:
		return 'O'
	case entity.Obstacle:
		return '#'
	default:
		return '?'
	}
}

// present writes the buffer and status line to the terminal
func (r *TerminalRenderer) present(snap *engine.Snapshot) {
	// Clear terminal
	fmt.Print("\033[H\033[2J")

	fmt.Println("+" + strings.Repeat("-", r.width) + "+")
	for y := range r.buffer {
		fmt.Println("|" + string(r.buffer[y]) + "|")
	}
	fmt.Println("+" + strings.Repeat("-", r.width) + "+")
	fmt.Println(r.statusLine(snap))
}

// statusLine builds the one-line HUD under the playfield
func (r *TerminalRenderer) statusLine(snap *engine.Snapshot) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "L%d %s | %s", snap.Level, snap.LevelName, snap.Mode)
	if snap.Paused {
		sb.WriteString(" (paused)")
	}
	fmt.Fprintf(&sb, " | coins %d", snap.Coins)

	if rocket := snap.Rocket; rocket != nil {
		fmt.Fprintf(&sb, " | fuel %3.0f%%", rocket.FuelPercent)
	}

	if snap.Mode == engine.ModeEnded && snap.LastOutcome != nil {
		outcome := snap.LastOutcome
		if outcome.Success {
			fmt.Fprintf(&sb, " | landed! +%d", outcome.CoinsAwarded)
		} else {
			fmt.Fprintf(&sb, " | %s +%d", outcome.Reason, outcome.CoinsAwarded)
		}
	}
	return sb.String()
}
