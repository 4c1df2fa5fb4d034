// pkg/physics/collision.go
package physics

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// HitsPoint reports whether a point lies inside the circle grown by the
// given padding. The rocket is treated as a point against every body's
// circle, so its own radius never enters the test.
func (c Circle) HitsPoint(p Vector2D, padding float64) bool {
	return c.Center.Distance(p) < c.Radius+padding
}
