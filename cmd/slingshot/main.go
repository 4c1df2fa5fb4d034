// cmd/slingshot/main.go
package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-slingshot/pkg/config"
	"github.com/opd-ai/go-slingshot/pkg/effects"
	"github.com/opd-ai/go-slingshot/pkg/engine"
	"github.com/opd-ai/go-slingshot/pkg/entity"
	"github.com/opd-ai/go-slingshot/pkg/event"
	"github.com/opd-ai/go-slingshot/pkg/logging"
	"github.com/opd-ai/go-slingshot/pkg/render"
	engorender "github.com/opd-ai/go-slingshot/pkg/render/engo"
	"github.com/opd-ai/go-slingshot/pkg/world"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	renderer := flag.String("renderer", "engo", "Renderer type: 'engo', 'terminal' or 'headless'")
	width := flag.Int("width", 1024, "Window width")
	height := flag.Int("height", 768, "Window height")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (Engo only)")
	level := flag.Int("level", 1, "Starting level")
	seed := flag.Uint64("seed", 0, "World generation seed (0 uses the clock)")
	flag.Parse()

	// Create default configuration file if requested
	if *createDefault {
		defaultConfig := config.DefaultConfig()
		if err := config.SaveConfig(defaultConfig, *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	// Load configuration
	var gameConfig *config.GameConfig

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", *configPath,
		)
		gameConfig = config.DefaultConfig()
	} else {
		var err error
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(*seed, *seed^0x9E3779B97F4A7C15))

	arena := world.Arena{Width: float64(*width), Height: float64(*height)}
	game := engine.NewGame(gameConfig, arena, rng)
	if *level > 1 {
		game.SetLevel(*level)
	}

	field := effects.NewField(512, rng)
	field.Attach(game.Bus)

	// Log flight results the way the rest of the process logs.
	game.Bus.Subscribe(event.FlightEnded, func(e event.Event) {
		end := e.(*event.FlightEndEvent)
		logger.Info(ctx, "Flight ended",
			"success", end.Success,
			"reason", end.Reason,
			"coins_awarded", end.CoinsAwarded,
		)
	})

	logger.Info(ctx, "Starting game",
		"renderer", *renderer,
		"level", game.Level,
		"seed", *seed,
	)

	switch *renderer {
	case "terminal":
		runFixedLoop(game, field, render.NewTerminalRenderer(100, 30, arena.Width/100))
	case "headless":
		runFixedLoop(game, field, render.NewNullRenderer())
	case "engo":
		fallthrough
	default:
		runEngo(game, field, *width, *height, *fullscreen)
	}
}

// runEngo starts the graphical front end
func runEngo(game *engine.Game, field *effects.Field, width, height int, fullscreen bool) {
	scene := engorender.NewGameScene(game, field)

	opts := engo.RunOptions{
		Title:      "Slingshot",
		Width:      width,
		Height:     height,
		Fullscreen: fullscreen,
		VSync:      true,
	}

	engo.Run(opts, scene)
}

// runFixedLoop drives the game at a fixed frame rate without a window. It
// plays an attract-mode loop: each attempt launches at the destination's
// current bearing, then retries or advances when the flight ends.
func runFixedLoop(game *engine.Game, field *effects.Field, renderer render.Renderer) {
	const frameRate = 30

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	if tr, ok := renderer.(*render.TerminalRenderer); ok {
		tr.SetCenter(game.Arena().Center())
	}

	endedFrames := 0
	for {
		select {
		case <-sigChan:
			return
		case <-ticker.C:
		}

		switch game.Mode {
		case engine.ModeIdle:
			aimAtTarget(game)
			game.Launch()
		case engine.ModeEnded:
			// Linger on the result for a moment, then go again.
			endedFrames++
			if endedFrames > frameRate*2 {
				endedFrames = 0
				if game.LastOutcome != nil && game.LastOutcome.Success {
					game.NextLevel()
				} else {
					game.Retry()
				}
			}
		}

		game.Advance(1.0 / frameRate)
		field.Update()
		renderer.Frame(game.Snapshot(), field)
	}
}

// aimAtTarget points the aim at the destination with a mid-power offset
func aimAtTarget(game *engine.Game) {
	launch := game.World.FindByType(entity.LaunchPoint)
	target := game.World.FindByType(entity.TargetPoint)
	if launch == nil || target == nil {
		return
	}
	dir := target.Position.Sub(launch.Position).Normalize()
	reach := game.Config.Physics.MaxAimDistance * game.Scale() * 0.7
	game.SetAim(launch.Position.Add(dir.Scale(reach)))
}

