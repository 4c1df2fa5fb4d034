// pkg/effects/particles.go

// Package effects is the peripheral visual-effect generator: pooled
// particles for thrust exhaust and explosions, plus screen shake. It is
// driven entirely by engine events and has no influence on the simulation.
package effects

import (
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-slingshot/pkg/event"
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

const (
	exhaustParticles   = 3
	explosionParticles = 24
	exhaustLife        = 30
	explosionLife      = 60
	explosionShake     = 12
	shakeDecay         = 0.9
)

// Particle is one pooled visual particle
type Particle struct {
	Position  physics.Vector2D
	Velocity  physics.Vector2D
	Color     string
	Life      int
	MaxLife   int
	poolIndex int
}

// LifeFraction returns remaining life in [0,1] for fade-out rendering
func (p *Particle) LifeFraction() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Field manages a fixed-capacity particle pool with swap-and-pop reuse,
// and the screen-shake magnitude.
type Field struct {
	pool        []*Particle
	activeCount int
	maxSize     int
	rng         *rand.Rand
	shake       float64
}

// NewField creates a particle field with at most maxSize live particles
func NewField(maxSize int, rng *rand.Rand) *Field {
	f := &Field{
		pool:    make([]*Particle, maxSize),
		maxSize: maxSize,
		rng:     rng,
	}
	for i := range f.pool {
		f.pool[i] = &Particle{poolIndex: i}
	}
	return f
}

// Attach subscribes the field to the engine's effect requests
func (f *Field) Attach(bus *event.Bus) {
	bus.Subscribe(event.EffectRequested, func(e event.Event) {
		req, ok := e.(*event.EffectEvent)
		if !ok {
			return
		}
		switch req.Kind {
		case event.EffectExhaust:
			f.SpawnExhaust(req.Position, req.Color)
		case event.EffectExplosion:
			f.SpawnExplosion(req.Position, req.Color)
		}
	})
}

// SpawnExhaust emits a small puff of slow particles at a position
func (f *Field) SpawnExhaust(pos physics.Vector2D, color string) {
	for i := 0; i < exhaustParticles; i++ {
		f.spawn(pos, color, exhaustLife, 0.5)
	}
}

// SpawnExplosion emits a burst of fast particles and kicks the screen shake
func (f *Field) SpawnExplosion(pos physics.Vector2D, color string) {
	for i := 0; i < explosionParticles; i++ {
		f.spawn(pos, color, explosionLife, 2.5)
	}
	f.shake = explosionShake
}

func (f *Field) spawn(pos physics.Vector2D, color string, life int, speed float64) {
	p := f.acquire()
	if p == nil {
		return
	}
	angle := f.rng.Float64() * 2 * math.Pi
	p.Position = pos
	p.Velocity = physics.FromAngle(angle, speed*(0.3+f.rng.Float64()))
	p.Color = color
	p.Life = life
	p.MaxLife = life
}

// acquire returns the next free particle, or nil when the pool is full.
// Exhausting the pool drops effects, never simulation state.
func (f *Field) acquire() *Particle {
	if f.activeCount >= f.maxSize {
		return nil
	}
	p := f.pool[f.activeCount]
	p.poolIndex = f.activeCount
	f.activeCount++
	return p
}

// release returns a particle to the pool using swap-and-pop
func (f *Field) release(index int) {
	if index < 0 || index >= f.activeCount {
		return
	}
	last := f.activeCount - 1
	if index != last {
		f.pool[index], f.pool[last] = f.pool[last], f.pool[index]
		f.pool[index].poolIndex = index
		f.pool[last].poolIndex = last
	}
	f.activeCount--
}

// Update advances every live particle one frame and decays the shake
func (f *Field) Update() {
	for i := f.activeCount - 1; i >= 0; i-- {
		p := f.pool[i]
		p.Position = p.Position.Add(p.Velocity)
		p.Life--
		if p.Life <= 0 {
			f.release(i)
		}
	}
	f.shake *= shakeDecay
	if f.shake < 0.1 {
		f.shake = 0
	}
}

// ActiveCount returns the number of live particles
func (f *Field) ActiveCount() int {
	return f.activeCount
}

// Particles returns a snapshot of the live particles for rendering
func (f *Field) Particles() []Particle {
	out := make([]Particle, f.activeCount)
	for i := 0; i < f.activeCount; i++ {
		out[i] = *f.pool[i]
	}
	return out
}

// ShakeMagnitude returns the current screen-shake displacement
func (f *Field) ShakeMagnitude() float64 {
	return f.shake
}

// Clear drops all live particles and resets the shake
func (f *Field) Clear() {
	f.activeCount = 0
	f.shake = 0
}
