// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// Type represents the type of event
type Type string

// Event types the engine publishes. The presentation and effects layers
// subscribe to these; the engine never calls them directly.
const (
	RocketLaunched   Type = "rocket_launched"
	FlightEnded      Type = "flight_ended"
	EffectRequested  Type = "effect_requested"
	CoinsChanged     Type = "coins_changed"
	UpgradePurchased Type = "upgrade_purchased"
	LevelChanged     Type = "level_changed"
	GamePaused       Type = "game_paused"
	GameResumed      Type = "game_resumed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// LaunchEvent announces a new flight
type LaunchEvent struct {
	BaseEvent
	Position physics.Vector2D
	Velocity physics.Vector2D
	Fuel     float64
}

// NewLaunchEvent creates a rocket launch event
func NewLaunchEvent(source interface{}, position, velocity physics.Vector2D, fuel float64) *LaunchEvent {
	return &LaunchEvent{
		BaseEvent: BaseEvent{EventType: RocketLaunched, Source: source},
		Position:  position,
		Velocity:  velocity,
		Fuel:      fuel,
	}
}

// FlightEndEvent carries the outcome of a finished flight
type FlightEndEvent struct {
	BaseEvent
	Success      bool
	Reason       string // "landed", "crashed" or "lost_space"
	CoinsAwarded int
}

// NewFlightEndEvent creates a flight-ended event
func NewFlightEndEvent(source interface{}, success bool, reason string, coins int) *FlightEndEvent {
	return &FlightEndEvent{
		BaseEvent:    BaseEvent{EventType: FlightEnded, Source: source},
		Success:      success,
		Reason:       reason,
		CoinsAwarded: coins,
	}
}

// EffectKind distinguishes visual effect requests
type EffectKind int

const (
	EffectExhaust EffectKind = iota
	EffectExplosion
)

// EffectEvent asks the effects layer to spawn a visual at a position.
// The engine emits these instead of touching the particle system.
type EffectEvent struct {
	BaseEvent
	Kind     EffectKind
	Position physics.Vector2D
	Color    string
}

// NewEffectEvent creates an effect spawn request
func NewEffectEvent(source interface{}, kind EffectKind, position physics.Vector2D, color string) *EffectEvent {
	return &EffectEvent{
		BaseEvent: BaseEvent{EventType: EffectRequested, Source: source},
		Kind:      kind,
		Position:  position,
		Color:     color,
	}
}

// CoinsEvent reports the player's new coin total
type CoinsEvent struct {
	BaseEvent
	Total int
	Delta int
}

// NewCoinsEvent creates a coin total change event
func NewCoinsEvent(source interface{}, total, delta int) *CoinsEvent {
	return &CoinsEvent{
		BaseEvent: BaseEvent{EventType: CoinsChanged, Source: source},
		Total:     total,
		Delta:     delta,
	}
}

// UpgradeEvent reports a successful upgrade purchase
type UpgradeEvent struct {
	BaseEvent
	Track    string
	NewLevel int
	NextCost int
}

// NewUpgradeEvent creates an upgrade purchase event
func NewUpgradeEvent(source interface{}, track string, newLevel, nextCost int) *UpgradeEvent {
	return &UpgradeEvent{
		BaseEvent: BaseEvent{EventType: UpgradePurchased, Source: source},
		Track:     track,
		NewLevel:  newLevel,
		NextCost:  nextCost,
	}
}

// LevelEvent reports a level change
type LevelEvent struct {
	BaseEvent
	Level int
}

// NewLevelEvent creates a level change event
func NewLevelEvent(source interface{}, level int) *LevelEvent {
	return &LevelEvent{
		BaseEvent: BaseEvent{EventType: LevelChanged, Source: source},
		Level:     level,
	}
}
