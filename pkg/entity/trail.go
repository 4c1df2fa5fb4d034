// pkg/entity/trail.go
package entity

import (
	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// Default trail capacities per body role. The rocket keeps a longer
// history than orbiting bodies.
const (
	RocketTrailCapacity = 120
	BodyTrailCapacity   = 40
	TrailSampleEvery    = 5
)

// Trail is a bounded ring of recent positions, sampled every Nth call to
// Record. Oldest points are dropped when capacity is exceeded.
type Trail struct {
	points   []physics.Vector2D
	capacity int
	every    int
	counter  int
}

// NewTrail creates a trail holding at most capacity points, sampling one
// position out of every `every` recordings.
func NewTrail(capacity, every int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	if every < 1 {
		every = 1
	}
	return &Trail{
		points:   make([]physics.Vector2D, 0, capacity),
		capacity: capacity,
		every:    every,
	}
}

// Record offers a position to the trail. Only every Nth offer is kept.
func (t *Trail) Record(pos physics.Vector2D) {
	t.counter++
	if t.counter%t.every != 0 {
		return
	}
	t.points = append(t.points, pos)
	if len(t.points) > t.capacity {
		t.points = t.points[1:]
	}
}

// Len returns the number of stored points
func (t *Trail) Len() int {
	return len(t.points)
}

// Points returns a copy of the stored points, oldest first
func (t *Trail) Points() []physics.Vector2D {
	out := make([]physics.Vector2D, len(t.points))
	copy(out, t.points)
	return out
}
