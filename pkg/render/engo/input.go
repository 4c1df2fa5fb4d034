// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-slingshot/pkg/economy"
	"github.com/opd-ai/go-slingshot/pkg/engine"
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// InputSystem translates mouse and keyboard state into game actions. The
// mouse continuously feeds the aim point; holding the button after launch
// thrusts toward the cursor.
type InputSystem struct {
	game   *engine.Game
	camera *CameraSystem

	// Mouse state
	mouseDown bool
}

// NewInputSystem creates a new input system
func NewInputSystem(game *engine.Game, camera *CameraSystem) *InputSystem {
	return &InputSystem{
		game:   game,
		camera: camera,
	}
}

// Add satisfies the ecs.System interface
func (is *InputSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for input system
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {
	// Not used for input system
}

// Update processes input and applies it to the game
func (is *InputSystem) Update(dt float32) {
	is.handleMouse()
	is.handleKeys()
}

// handleMouse feeds the aim point, and drives launch and thrust from the
// left button: press in IDLE launches, holding during flight thrusts.
func (is *InputSystem) handleMouse() {
	mouse := engo.Input.Mouse

	world := is.camera.ScreenToWorld(physics.Vector2D{
		X: float64(mouse.X),
		Y: float64(mouse.Y),
	})
	is.game.SetAim(world)

	justPressed := false
	if mouse.Action == engo.Press && mouse.Button == engo.MouseButtonLeft {
		if !is.mouseDown {
			justPressed = true
		}
		is.mouseDown = true
	}
	if mouse.Action == engo.Release && mouse.Button == engo.MouseButtonLeft {
		is.mouseDown = false
	}

	if justPressed && is.game.Mode == engine.ModeIdle {
		is.game.Launch()
	}
	is.game.SetThrust(is.mouseDown && is.game.Mode == engine.ModeFlying)
}

// handleKeys processes the game-control keys
func (is *InputSystem) handleKeys() {
	if engo.Input.Button("pause").JustPressed() {
		if is.game.Paused {
			is.game.Resume()
		} else {
			is.game.Pause()
		}
	}

	if engo.Input.Button("retry").JustPressed() {
		is.game.Retry()
	}
	if engo.Input.Button("nextLevel").JustPressed() {
		is.game.NextLevel()
	}

	// Upgrade store, one key per track.
	purchases := []struct {
		button string
		track  *economy.Track
	}{
		{"buyFuel", is.game.Upgrades.Fuel},
		{"buyThrust", is.game.Upgrades.Thrust},
		{"buyLaunch", is.game.Upgrades.Launch},
	}
	for _, p := range purchases {
		if engo.Input.Button(p.button).JustPressed() {
			is.game.Purchase(p.track)
		}
	}
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton("pause", engo.KeyP, engo.KeySpace)
	engo.Input.RegisterButton("retry", engo.KeyR)
	engo.Input.RegisterButton("nextLevel", engo.KeyN)

	engo.Input.RegisterButton("buyFuel", engo.KeyOne)
	engo.Input.RegisterButton("buyThrust", engo.KeyTwo)
	engo.Input.RegisterButton("buyLaunch", engo.KeyThree)
}
