// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-slingshot/pkg/effects"
	"github.com/opd-ai/go-slingshot/pkg/engine"
	"github.com/opd-ai/go-slingshot/pkg/entity"
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// Dot pool capacities. Trails, ghost, prediction and particles share the
// same pooled dot entities frame to frame.
const (
	maxTrailDots    = 400
	maxParticleDots = 256
)

// renderEntity ties an ECS id to the components the render system draws,
// so the sync pass can mutate them in place.
type renderEntity struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// EngoRenderer mirrors a game snapshot into Engo render entities. Bodies
// keep a persistent entity per ID; trails, prediction points and particles
// are drawn from fixed dot pools.
type EngoRenderer struct {
	world        *ecs.World
	renderSystem *common.RenderSystem

	// Entity management
	bodyEntities map[entity.ID]*renderEntity
	rocket       *renderEntity

	dotPool   []*renderEntity
	dotsInUse int

	// Asset management
	assets *AssetManager
}

// NewEngoRenderer creates a new Engo-based renderer
func NewEngoRenderer(world *ecs.World) *EngoRenderer {
	return &EngoRenderer{
		world:        world,
		bodyEntities: make(map[entity.ID]*renderEntity),
		assets:       NewAssetManager(),
	}
}

// Initialize sets up the renderer's systems and loads assets
func (r *EngoRenderer) Initialize() error {
	for _, system := range r.world.Systems() {
		if rs, ok := system.(*common.RenderSystem); ok {
			r.renderSystem = rs
		}
	}
	if r.renderSystem == nil {
		r.renderSystem = &common.RenderSystem{}
		r.world.AddSystem(r.renderSystem)
	}

	return r.assets.LoadAssets()
}

// Sync mirrors one snapshot into the render entities. Call once per frame
// after the simulation has advanced.
func (r *EngoRenderer) Sync(snap *engine.Snapshot, field *effects.Field, camera *CameraSystem) {
	r.resetDots()

	seen := make(map[entity.ID]bool, len(snap.Bodies))
	for i := range snap.Bodies {
		body := &snap.Bodies[i]
		seen[body.ID] = true
		r.syncBody(body, camera)
		r.drawTrail(body.Trail, color.RGBA{90, 90, 110, 120}, camera)
	}
	r.removeStaleBodies(seen)

	r.drawTrail(snap.GhostTrail, color.RGBA{80, 80, 80, 90}, camera)
	r.drawTrail(snap.Prediction, color.RGBA{240, 240, 200, 200}, camera)

	r.syncRocket(snap.Rocket, camera)

	if field != nil {
		r.drawParticles(field, camera)
	}
}

// syncBody creates or updates the entity for one body
func (r *EngoRenderer) syncBody(body *engine.BodyState, camera *CameraSystem) {
	re := r.getOrCreateBodyEntity(body)

	pos := camera.WorldToScreen(body.Position)
	size := body.Radius * 2 * float64(camera.GetZoom())
	re.space.Position = engo.Point{
		X: float32(pos.X - size/2),
		Y: float32(pos.Y - size/2),
	}
	re.space.Width = float32(size)
	re.space.Height = float32(size)
}

// syncRocket creates, updates or hides the rocket entity
func (r *EngoRenderer) syncRocket(state *engine.RocketState, camera *CameraSystem) {
	if state == nil {
		if r.rocket != nil {
			r.rocket.render.Hidden = true
		}
		return
	}

	if r.rocket == nil {
		re := &renderEntity{basic: ecs.NewBasic()}
		re.render = common.RenderComponent{
			Drawable: r.assets.GetRocketSprite(),
			Color:    color.RGBA{235, 235, 245, 255},
		}
		re.render.SetZIndex(10)
		r.renderSystem.Add(&re.basic, &re.render, &re.space)
		r.rocket = re
	}

	re := r.rocket
	re.render.Hidden = false
	if state.Thrusting {
		re.render.Color = color.RGBA{255, 213, 90, 255}
	} else {
		re.render.Color = color.RGBA{235, 235, 245, 255}
	}

	pos := camera.WorldToScreen(state.Position)
	size := 16 * float64(camera.GetZoom())
	re.space.Position = engo.Point{
		X: float32(pos.X - size/2),
		Y: float32(pos.Y - size/2),
	}
	re.space.Width = float32(size)
	re.space.Height = float32(size)
	// Sprite art points up; heading zero points right.
	re.space.Rotation = float32(state.Heading*180/3.141592653589793) + 90
}

// drawTrail draws a point list from the dot pool
func (r *EngoRenderer) drawTrail(points []physics.Vector2D, tint color.RGBA, camera *CameraSystem) {
	for _, p := range points {
		dot := r.nextDot()
		if dot == nil {
			return
		}
		pos := camera.WorldToScreen(p)
		dot.render.Color = tint
		dot.space.Position = engo.Point{X: float32(pos.X - 2), Y: float32(pos.Y - 2)}
	}
}

// drawParticles draws the live particles, faded by remaining life
func (r *EngoRenderer) drawParticles(field *effects.Field, camera *CameraSystem) {
	for _, p := range field.Particles() {
		dot := r.nextDot()
		if dot == nil {
			return
		}
		tint := parseHexColor(p.Color)
		tint.A = uint8(255 * p.LifeFraction())
		pos := camera.WorldToScreen(p.Position)
		dot.render.Color = tint
		dot.space.Position = engo.Point{X: float32(pos.X - 2), Y: float32(pos.Y - 2)}
	}
}

// getOrCreateBodyEntity gets an existing body entity or creates a new one
func (r *EngoRenderer) getOrCreateBodyEntity(body *engine.BodyState) *renderEntity {
	if re, exists := r.bodyEntities[body.ID]; exists {
		return re
	}

	re := &renderEntity{basic: ecs.NewBasic()}
	re.render = common.RenderComponent{
		Drawable: r.assets.GetBodySprite(body.Type),
		Color:    bodyColor(body.Type),
	}
	re.space = common.SpaceComponent{
		Width:  float32(body.Radius * 2),
		Height: float32(body.Radius * 2),
	}

	r.renderSystem.Add(&re.basic, &re.render, &re.space)
	r.bodyEntities[body.ID] = re
	return re
}

// removeStaleBodies drops entities whose body left the snapshot, which
// happens when the level is rebuilt.
func (r *EngoRenderer) removeStaleBodies(seen map[entity.ID]bool) {
	for id, re := range r.bodyEntities {
		if !seen[id] {
			r.renderSystem.Remove(re.basic)
			delete(r.bodyEntities, id)
		}
	}
}

// nextDot takes the next pooled dot, growing the pool up to its cap. A nil
// return means the pool is exhausted for this frame.
func (r *EngoRenderer) nextDot() *renderEntity {
	if r.dotsInUse < len(r.dotPool) {
		dot := r.dotPool[r.dotsInUse]
		r.dotsInUse++
		dot.render.Hidden = false
		return dot
	}
	if len(r.dotPool) >= maxTrailDots+maxParticleDots {
		return nil
	}

	dot := &renderEntity{basic: ecs.NewBasic()}
	dot.render = common.RenderComponent{Drawable: r.assets.GetDotSprite()}
	dot.space = common.SpaceComponent{Width: 4, Height: 4}
	r.renderSystem.Add(&dot.basic, &dot.render, &dot.space)

	r.dotPool = append(r.dotPool, dot)
	r.dotsInUse++
	return dot
}

// resetDots hides every pooled dot ahead of a new frame
func (r *EngoRenderer) resetDots() {
	for i := 0; i < r.dotsInUse; i++ {
		r.dotPool[i].render.Hidden = true
	}
	r.dotsInUse = 0
}

// bodyColor returns the tint for a body type
func bodyColor(bodyType entity.BodyType) color.RGBA {
	switch bodyType {
	case entity.Star:
		return color.RGBA{255, 200, 64, 255}
	case entity.LaunchPoint:
		return color.RGBA{100, 200, 255, 255}
	case entity.TargetPoint:
		return color.RGBA{120, 255, 140, 255}
	case entity.Moon:
		return color.RGBA{200, 200, 210, 255}
	case entity.RingedPlanet:
		return color.RGBA{220, 160, 110, 255}
	case entity.Obstacle:
		return color.RGBA{150, 140, 130, 255}
	default:
		return color.RGBA{255, 255, 255, 255}
	}
}

// parseHexColor parses a "#RRGGBB" string, falling back to white
func parseHexColor(s string) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{255, 255, 255, 255}
	}
	hex := func(c byte) uint8 {
		switch {
		case c >= '0' && c <= '9':
			return c - '0'
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10
		default:
			return 0
		}
	}
	return color.RGBA{
		R: hex(s[1])<<4 | hex(s[2]),
		G: hex(s[3])<<4 | hex(s[4]),
		B: hex(s[5])<<4 | hex(s[6]),
		A: 255,
	}
}
