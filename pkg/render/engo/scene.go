// pkg/render/engo/scene.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-slingshot/pkg/effects"
	"github.com/opd-ai/go-slingshot/pkg/engine"
)

// GameScene is the single Engo scene: it owns the local game, the effects
// field and the render pipeline.
type GameScene struct {
	world *ecs.World

	game  *engine.Game
	field *effects.Field

	// Rendering components
	renderer *EngoRenderer
	camera   *CameraSystem
	input    *InputSystem
	hud      *HUDSystem
}

// NewGameScene creates a new game scene around an existing game
func NewGameScene(game *engine.Game, field *effects.Field) *GameScene {
	return &GameScene{
		game:  game,
		field: field,
		world: &ecs.World{},
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	// All sprites are generated procedurally in Setup.
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	scene.world = &ecs.World{}

	renderSystem := &common.RenderSystem{}
	scene.world.AddSystem(renderSystem)
	scene.world.AddSystem(&common.MouseSystem{})

	scene.renderer = NewEngoRenderer(scene.world)
	if err := scene.renderer.Initialize(); err != nil {
		panic("Failed to initialize renderer: " + err.Error())
	}

	scene.camera = NewCameraSystem()
	scene.world.AddSystem(scene.camera)

	scene.input = NewInputSystem(scene.game, scene.camera)
	scene.world.AddSystem(scene.input)

	scene.hud = NewHUDSystem(renderSystem)
	scene.world.AddSystem(scene.hud)

	// The simulation system runs last each frame, after input and camera.
	scene.world.AddSystem(&simulationSystem{scene: scene})

	SetupInputBindings()
	SetupCameraControls()

	// Start the camera at the arena center.
	scene.camera.SetTarget(scene.game.Arena().Center())
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	engo.Exit()
}

// simulationSystem advances the game by wall-clock time and mirrors the
// resulting snapshot into the render entities, once per frame.
type simulationSystem struct {
	scene *GameScene
}

// Remove satisfies the ecs.System interface
func (s *simulationSystem) Remove(basic ecs.BasicEntity) {
	// No entities of its own
}

// Update drives one frame of simulation and rendering
func (s *simulationSystem) Update(dt float32) {
	scene := s.scene
	game := scene.game

	game.Advance(float64(dt))
	scene.field.Update()

	// Follow the rocket in flight; settle back on the arena otherwise.
	if game.Mode == engine.ModeFlying && game.World.Rocket != nil {
		scene.camera.SetTarget(game.World.Rocket.Position)
	} else {
		scene.camera.SetTarget(game.Arena().Center())
	}
	scene.camera.SetShake(scene.field.ShakeMagnitude())

	snap := game.Snapshot()
	scene.renderer.Sync(snap, scene.field, scene.camera)
	scene.hud.UpdateSnapshot(snap)
}
