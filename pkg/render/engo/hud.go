// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-slingshot/pkg/engine"
)

// HUDSystem draws the overlay: fuel bar, coins, level, the upgrade store
// and the end-of-flight banner. HUD entities are rebuilt every frame from
// the latest snapshot.
type HUDSystem struct {
	renderSystem *common.RenderSystem

	// HUD entities live for one frame
	hudEntities []*renderEntity

	// Latest game state
	snapshot *engine.Snapshot

	// Font for text rendering
	font *common.Font

	// Colors
	hudColor     color.Color
	goodColor    color.Color
	badColor     color.Color
	mutedColor   color.Color
	barBackColor color.Color
}

// NewHUDSystem creates a new HUD system
func NewHUDSystem(renderSystem *common.RenderSystem) *HUDSystem {
	return &HUDSystem{
		renderSystem: renderSystem,
		hudColor:     color.RGBA{235, 235, 245, 255},
		goodColor:    color.RGBA{120, 255, 140, 255},
		badColor:     color.RGBA{255, 107, 53, 255},
		mutedColor:   color.RGBA{140, 140, 150, 255},
		barBackColor: color.RGBA{0, 0, 0, 140},
	}
}

// Add satisfies the ecs.System interface
func (hud *HUDSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for HUD system
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {
	// Not used for HUD system
}

// UpdateSnapshot installs the game state the next frame draws from
func (hud *HUDSystem) UpdateSnapshot(snap *engine.Snapshot) {
	hud.snapshot = snap
}

// Update rebuilds the HUD entities from the current snapshot
func (hud *HUDSystem) Update(dt float32) {
	hud.clearHUDEntities()

	snap := hud.snapshot
	if snap == nil {
		return
	}

	hud.renderTopBar(snap)
	hud.renderFuelBar(snap)
	hud.renderStore(snap)
	hud.renderBanner(snap)
}

// clearHUDEntities removes the previous frame's HUD entities
func (hud *HUDSystem) clearHUDEntities() {
	for _, re := range hud.hudEntities {
		hud.renderSystem.Remove(re.basic)
	}
	hud.hudEntities = hud.hudEntities[:0]
}

// renderTopBar draws level, coins and the pause marker
func (hud *HUDSystem) renderTopBar(snap *engine.Snapshot) {
	text := fmt.Sprintf("L%d  %s    coins %d", snap.Level, snap.LevelName, snap.Coins)
	if snap.Paused {
		text += "    PAUSED"
	}
	hud.renderText(text, 10, 10, hud.hudColor)
}

// renderFuelBar draws the fuel gauge while a rocket is live
func (hud *HUDSystem) renderFuelBar(snap *engine.Snapshot) {
	rocket := snap.Rocket
	if rocket == nil {
		return
	}

	const barWidth, barHeight = 160, 12
	x := float32(10)
	y := float32(34)

	hud.renderRect(x, y, barWidth, barHeight, hud.barBackColor)

	fill := float32(rocket.FuelPercent/100) * barWidth
	fillColor := hud.goodColor
	if rocket.FuelPercent < 25 {
		fillColor = hud.badColor
	}
	hud.renderRect(x, y, fill, barHeight, fillColor)
	hud.renderRectOutline(x, y, barWidth, barHeight, hud.hudColor)
}

// renderStore draws the three upgrade tracks with cost and key hint
func (hud *HUDSystem) renderStore(snap *engine.Snapshot) {
	y := float32(engo.GameHeight()) - 70

	for i, u := range snap.Upgrades {
		var line string
		var lineColor color.Color
		switch {
		case u.Maxed:
			line = fmt.Sprintf("[%d] %s Lv%d MAX", i+1, u.Name, u.Level)
			lineColor = hud.mutedColor
		case u.Affordable:
			line = fmt.Sprintf("[%d] %s Lv%d  -> %d coins", i+1, u.Name, u.Level, u.Cost)
			lineColor = hud.goodColor
		default:
			line = fmt.Sprintf("[%d] %s Lv%d  -> %d coins", i+1, u.Name, u.Level, u.Cost)
			lineColor = hud.mutedColor
		}
		hud.renderText(line, 10, y+float32(i)*18, lineColor)
	}
}

// renderBanner draws the end-of-flight result and the action prompt
func (hud *HUDSystem) renderBanner(snap *engine.Snapshot) {
	centerX := float32(engo.GameWidth()) / 2

	switch snap.Mode {
	case engine.ModeIdle:
		hud.renderText("click to launch", centerX-60, 40, hud.mutedColor)
	case engine.ModeEnded:
		outcome := snap.LastOutcome
		if outcome == nil {
			return
		}
		var text string
		var textColor color.Color
		if outcome.Success {
			text = fmt.Sprintf("LANDED  +%d coins", outcome.CoinsAwarded)
			textColor = hud.goodColor
		} else {
			text = fmt.Sprintf("%s  +%d coins", outcome.Reason, outcome.CoinsAwarded)
			textColor = hud.badColor
		}
		hud.renderText(text, centerX-80, 40, textColor)
		hud.renderText("R retry / N next level", centerX-80, 60, hud.mutedColor)
	}
}

// renderText renders text at the specified position
func (hud *HUDSystem) renderText(text string, x, y float32, textColor color.Color) {
	re := &renderEntity{basic: ecs.NewBasic()}
	re.render = common.RenderComponent{
		Drawable: common.Text{
			Font: hud.font,
			Text: text,
		},
		Color: textColor,
	}
	re.render.SetZIndex(100)
	re.space = common.SpaceComponent{
		Position: engo.Point{X: x, Y: y},
		Width:    float32(len(text) * 8),
		Height:   16,
	}

	hud.renderSystem.Add(&re.basic, &re.render, &re.space)
	hud.hudEntities = append(hud.hudEntities, re)
}

// renderRect renders a filled rectangle
func (hud *HUDSystem) renderRect(x, y, width, height float32, rectColor color.Color) {
	re := &renderEntity{basic: ecs.NewBasic()}
	re.render = common.RenderComponent{
		Drawable: common.Rectangle{
			BorderWidth: 0,
			BorderColor: color.Transparent,
		},
		Color: rectColor,
	}
	re.render.SetZIndex(99)
	re.space = common.SpaceComponent{
		Position: engo.Point{X: x, Y: y},
		Width:    width,
		Height:   height,
	}

	hud.renderSystem.Add(&re.basic, &re.render, &re.space)
	hud.hudEntities = append(hud.hudEntities, re)
}

// renderRectOutline renders a rectangle outline
func (hud *HUDSystem) renderRectOutline(x, y, width, height float32, outlineColor color.Color) {
	re := &renderEntity{basic: ecs.NewBasic()}
	re.render = common.RenderComponent{
		Drawable: common.Rectangle{
			BorderWidth: 2,
			BorderColor: outlineColor,
		},
		Color: color.Transparent,
	}
	re.render.SetZIndex(100)
	re.space = common.SpaceComponent{
		Position: engo.Point{X: x, Y: y},
		Width:    width,
		Height:   height,
	}

	hud.renderSystem.Add(&re.basic, &re.render, &re.space)
	hud.hudEntities = append(hud.hudEntities, re)
}

// SetFont sets the font used for HUD text rendering
func (hud *HUDSystem) SetFont(font *common.Font) {
	hud.font = font
}
