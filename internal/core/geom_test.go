package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"non-overlapping vertical", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single cell overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestVec2Rotated(t *testing.T) {
	v := V(1, 0).Rotated(math.Pi / 2)
	if !near(v.X, 0) || !near(v.Y, 1) {
		t.Errorf("Rotated(π/2) = %+v, expected (0, 1)", v)
	}

	// Rotating a speed vector matches FromAngle scaled by the speed
	speed := 200.0
	angle := 0.7
	a := V(speed, 0).Rotated(angle)
	b := FromAngle(angle).Scale(speed)
	if !near(a.X, b.X) || !near(a.Y, b.Y) {
		t.Errorf("Rotated = %+v, FromAngle*speed = %+v", a, b)
	}
}

func TestVec2Normalized(t *testing.T) {
	n := V(3, 4).Normalized()
	if !near(n.Len(), 1) {
		t.Errorf("Normalized length = %f, expected 1", n.Len())
	}
	if z := (Vec2{}).Normalized(); z != (Vec2{}) {
		t.Errorf("zero vector should stay zero, got %+v", z)
	}
}

func TestVec2Clamp(t *testing.T) {
	got := V(-5, 50).Clamp(V(0, 0), V(10, 20))
	if got != V(0, 20) {
		t.Errorf("Clamp = %+v, expected (0, 20)", got)
	}
}

func TestLerp(t *testing.T) {
	got := Lerp(V(0, 0), V(10, 20), 0.25)
	if !near(got.X, 2.5) || !near(got.Y, 5) {
		t.Errorf("Lerp = %+v, expected (2.5, 5)", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := ClampF(15.5, 0, 10); got != 10 {
		t.Errorf("ClampF(15.5, 0, 10) = %f, expected 10", got)
	}
}
