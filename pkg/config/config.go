// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// GameConfig contains the full configuration for a slingshot game.
// Every constant the two gameplay tuning passes disagreed on lives here
// rather than in code.
type GameConfig struct {
	Physics  PhysicsConfig `json:"physics"`
	Rules    GameRules     `json:"gameRules"`
	Levels   []LevelConfig `json:"levels"`
	Upgrades UpgradeTable  `json:"upgrades"`
}

// PhysicsConfig contains the simulation tuning constants
type PhysicsConfig struct {
	GravityBase           float64 `json:"gravityBase"`           // inverse-square base coefficient
	StarGravityMult       float64 `json:"starGravityMult"`       // balance knob for the star only
	PredictionGravityMult float64 `json:"predictionGravityMult"` // used by the trajectory predictor
	MinGravityDistance    float64 `json:"minGravityDistance"`    // clamp floor, prevents force blowup at contact
	CollisionPadding      float64 `json:"collisionPadding"`      // extra hit distance, pre-scale
	FuelBurnPerTick       float64 `json:"fuelBurnPerTick"`
	GraceTicks            int     `json:"graceTicks"` // launch-pad collision grace period
	PredictionSteps       int     `json:"predictionSteps"`
	MaxAimDistance        float64 `json:"maxAimDistance"` // pre-scale, caps launch power input
	ExhaustEvery          int     `json:"exhaustEvery"`   // ticks between thrust exhaust particles
}

// GameRules contains scoring and loop pacing rules
type GameRules struct {
	LandingReward    int     `json:"landingReward"`
	DistanceScoreCap int     `json:"distanceScoreCap"`
	StepSeconds      float64 `json:"stepSeconds"`      // fixed physics step
	MaxFrameDelta    float64 `json:"maxFrameDelta"`    // wall-clock clamp per frame
	MaxStepsPerFrame int     `json:"maxStepsPerFrame"` // spiral-of-death cap
}

// LevelConfig describes one level's asteroid field
type LevelConfig struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	AsteroidCount   int     `json:"asteroidCount"`
	AsteroidMinSize float64 `json:"asteroidMinSize"`
	AsteroidMaxSize float64 `json:"asteroidMaxSize"`
}

// UpgradeConfig describes one upgrade track's cost curve
type UpgradeConfig struct {
	Name           string  `json:"name"`
	BaseCost       int     `json:"baseCost"`
	CostMultiplier float64 `json:"costMultiplier"`
	MaxLevel       int     `json:"maxLevel"`
}

// UpgradeTable holds the three upgrade tracks
type UpgradeTable struct {
	Fuel   UpgradeConfig `json:"fuel"`
	Thrust UpgradeConfig `json:"thrust"`
	Launch UpgradeConfig `json:"launch"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for values the engine cannot work with
func (c *GameConfig) Validate() error {
	if c.Physics.GravityBase <= 0 {
		return fmt.Errorf("gravityBase must be positive, got %v", c.Physics.GravityBase)
	}
	if c.Physics.MinGravityDistance <= 0 {
		return fmt.Errorf("minGravityDistance must be positive, got %v", c.Physics.MinGravityDistance)
	}
	if c.Physics.FuelBurnPerTick <= 0 {
		return fmt.Errorf("fuelBurnPerTick must be positive, got %v", c.Physics.FuelBurnPerTick)
	}
	if c.Physics.ExhaustEvery < 1 {
		return fmt.Errorf("exhaustEvery must be at least 1, got %d", c.Physics.ExhaustEvery)
	}
	if c.Rules.StepSeconds <= 0 {
		return fmt.Errorf("stepSeconds must be positive, got %v", c.Rules.StepSeconds)
	}
	if c.Rules.MaxFrameDelta <= 0 {
		return fmt.Errorf("maxFrameDelta must be positive, got %v", c.Rules.MaxFrameDelta)
	}
	if c.Rules.MaxStepsPerFrame < 1 {
		return fmt.Errorf("maxStepsPerFrame must be at least 1, got %d", c.Rules.MaxStepsPerFrame)
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("at least one level must be defined")
	}
	for _, lvl := range c.Levels {
		if lvl.AsteroidMinSize > lvl.AsteroidMaxSize {
			return fmt.Errorf("level %d: asteroidMinSize %v exceeds asteroidMaxSize %v",
				lvl.ID, lvl.AsteroidMinSize, lvl.AsteroidMaxSize)
		}
	}
	for _, track := range []UpgradeConfig{c.Upgrades.Fuel, c.Upgrades.Thrust, c.Upgrades.Launch} {
		if track.CostMultiplier <= 1 {
			return fmt.Errorf("upgrade %q: costMultiplier must exceed 1, got %v",
				track.Name, track.CostMultiplier)
		}
		if track.MaxLevel < 1 {
			return fmt.Errorf("upgrade %q: maxLevel must be at least 1, got %d",
				track.Name, track.MaxLevel)
		}
	}
	return nil
}

// Level returns the level definition for a 1-based level number, wrapping
// past the end of the table.
func (c *GameConfig) Level(n int) LevelConfig {
	if len(c.Levels) == 0 {
		return LevelConfig{}
	}
	idx := (n - 1) % len(c.Levels)
	if idx < 0 {
		idx = 0
	}
	return c.Levels[idx]
}

// DefaultConfig returns the built-in game configuration. It is used as the
// fallback whenever an external config file is missing or unreadable.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Physics: PhysicsConfig{
			GravityBase:           0.28,
			StarGravityMult:       1.5,
			PredictionGravityMult: 1.5,
			MinGravityDistance:    20,
			CollisionPadding:      4,
			FuelBurnPerTick:       0.5,
			GraceTicks:            100,
			PredictionSteps:       15,
			MaxAimDistance:        250,
			ExhaustEvery:          3,
		},
		Rules: GameRules{
			LandingReward:    100,
			DistanceScoreCap: 50,
			StepSeconds:      1.0 / 60.0,
			MaxFrameDelta:    0.25,
			MaxStepsPerFrame: 5,
		},
		Levels: []LevelConfig{
			{ID: 1, Name: "First Hop", AsteroidCount: 3, AsteroidMinSize: 6, AsteroidMaxSize: 12},
			{ID: 2, Name: "Debris Field", AsteroidCount: 5, AsteroidMinSize: 6, AsteroidMaxSize: 14},
			{ID: 3, Name: "Gravel Run", AsteroidCount: 8, AsteroidMinSize: 8, AsteroidMaxSize: 16},
			{ID: 4, Name: "Rock Garden", AsteroidCount: 12, AsteroidMinSize: 8, AsteroidMaxSize: 18},
			{ID: 5, Name: "The Gauntlet", AsteroidCount: 16, AsteroidMinSize: 10, AsteroidMaxSize: 20},
		},
		Upgrades: UpgradeTable{
			Fuel:   UpgradeConfig{Name: "Fuel Capacity", BaseCost: 50, CostMultiplier: 1.6, MaxLevel: 8},
			Thrust: UpgradeConfig{Name: "Thruster Power", BaseCost: 75, CostMultiplier: 1.7, MaxLevel: 8},
			Launch: UpgradeConfig{Name: "Launch Power", BaseCost: 100, CostMultiplier: 1.8, MaxLevel: 6},
		},
	}
}
