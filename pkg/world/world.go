// pkg/world/world.go
package world

import (
	"github.com/opd-ai/go-slingshot/pkg/entity"
)

// World owns every body for the current level attempt, plus at most one
// rocket. Bodies are kept in a slice so iteration order is stable; the
// ID index exists for orbital parent lookups. The world exclusively owns
// its bodies: a rebuild discards everything.
type World struct {
	Arena  Arena
	Bodies []*entity.Body
	Rocket *entity.Rocket

	byID map[entity.ID]*entity.Body
}

// NewWorld creates an empty world for the given arena
func NewWorld(arena Arena) *World {
	return &World{
		Arena: arena,
		byID:  make(map[entity.ID]*entity.Body),
	}
}

// Add appends a body to the world and indexes it by ID
func (w *World) Add(b *entity.Body) {
	w.Bodies = append(w.Bodies, b)
	w.byID[b.ID] = b
}

// Lookup resolves a body by ID, or nil if it does not exist
func (w *World) Lookup(id entity.ID) *entity.Body {
	return w.byID[id]
}

// FindByType returns the first body of the given type, or nil.
// Callers treat nil as "not yet initialized" and skip the tick's work.
func (w *World) FindByType(t entity.BodyType) *entity.Body {
	for _, b := range w.Bodies {
		if b.Type == t {
			return b
		}
	}
	return nil
}

// AdvanceBodies moves every non-rocket body one tick through its motion
// mode. Orbits are computed analytically, so there is no drift to correct.
func (w *World) AdvanceBodies() {
	for _, b := range w.Bodies {
		b.AdvanceMotion(w.Lookup)
	}
}
