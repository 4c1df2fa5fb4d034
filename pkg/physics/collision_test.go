// pkg/physics/collision_test.go
package physics

import "testing"

func TestCircle_HitsPoint(t *testing.T) {
	c := Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5}

	tests := []struct {
		name     string
		point    Vector2D
		padding  float64
		expected bool
	}{
		{
			name:     "inside",
			point:    Vector2D{X: 3, Y: 0},
			expected: true,
		},
		{
			name:     "on_rim_is_not_hit",
			point:    Vector2D{X: 5, Y: 0},
			expected: false,
		},
		{
			name:     "outside",
			point:    Vector2D{X: 9, Y: 0},
			expected: false,
		},
		{
			name:     "outside_reached_by_padding",
			point:    Vector2D{X: 9, Y: 0},
			padding:  5,
			expected: true,
		},
		{
			name:     "padding_boundary_excluded",
			point:    Vector2D{X: 9, Y: 0},
			padding:  4,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.HitsPoint(tt.point, tt.padding); got != tt.expected {
				t.Errorf("HitsPoint() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
