// pkg/economy/upgrades.go
package economy

import (
	"math"

	"github.com/opd-ai/go-slingshot/pkg/config"
)

// Track is one upgrade line with a leveled cost curve. Levels are 1-based;
// Cost is always the price of the next purchase.
type Track struct {
	Name           string
	Level          int
	Cost           int
	CostMultiplier float64
	MaxLevel       int
}

// NewTrack creates a track at level 1 from its configuration
func NewTrack(cfg config.UpgradeConfig) *Track {
	return &Track{
		Name:           cfg.Name,
		Level:          1,
		Cost:           cfg.BaseCost,
		CostMultiplier: cfg.CostMultiplier,
		MaxLevel:       cfg.MaxLevel,
	}
}

// Maxed reports whether the track has reached its level cap
func (t *Track) Maxed() bool {
	return t.Level >= t.MaxLevel
}

// Purchase attempts to buy the next level with the given coin balance.
// It returns the new balance and whether the purchase happened. A rejected
// purchase (maxed out or unaffordable) changes nothing: same balance, same
// level, same cost.
func (t *Track) Purchase(coins int) (int, bool) {
	if t.Maxed() || coins < t.Cost {
		return coins, false
	}
	coins -= t.Cost
	t.Level++
	t.Cost = int(math.Floor(float64(t.Cost) * t.CostMultiplier))
	return coins, true
}

// Upgrades holds the three session-persistent upgrade tracks. Derived
// stats are pure functions of the current levels, never stored.
type Upgrades struct {
	Fuel   *Track
	Thrust *Track
	Launch *Track
}

// NewUpgrades creates all tracks at level 1 from the config table
func NewUpgrades(table config.UpgradeTable) *Upgrades {
	return &Upgrades{
		Fuel:   NewTrack(table.Fuel),
		Thrust: NewTrack(table.Thrust),
		Launch: NewTrack(table.Launch),
	}
}

// MaxFuel returns the rocket's tank capacity at the current fuel level
func (u *Upgrades) MaxFuel() float64 {
	return 100 + 30*float64(u.Fuel.Level-1)
}

// ThrustPower returns the per-tick thrust force magnitude
func (u *Upgrades) ThrustPower(scale float64) float64 {
	return scale * (0.1 + 0.025*float64(u.Thrust.Level-1))
}

// LaunchForceMin returns the launch impulse at zero aim distance
func (u *Upgrades) LaunchForceMin(scale float64) float64 {
	return 1.5 * scale
}

// LaunchForceMax returns the launch impulse at full aim distance
func (u *Upgrades) LaunchForceMax(scale float64) float64 {
	return scale * (5 + float64(u.Launch.Level-1))
}
