package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestIsConvexVertex(t *testing.T) {
	tests := []struct {
		name            string
		prev, cur, next mgl64.Vec2
		orientation     float64
		want            bool
	}{
		{"ccw left turn", mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{1, 1}, 1, true},
		{"ccw right turn", mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{1, -1}, 1, false},
		{"cw right turn", mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{1, -1}, -1, true},
		{"cw left turn", mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{1, 1}, -1, false},
		{"collinear counts as convex", mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{2, 0}, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsConvexVertex(tt.prev, tt.cur, tt.next, tt.orientation)
			if got != tt.want {
				t.Errorf("IsConvexVertex() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointInTriangle(t *testing.T) {
	a := mgl64.Vec2{0, 0}
	b := mgl64.Vec2{4, 0}
	c := mgl64.Vec2{0, 4}

	tests := []struct {
		name string
		p    mgl64.Vec2
		want bool
	}{
		{"interior", mgl64.Vec2{1, 1}, true},
		{"outside", mgl64.Vec2{3, 3}, false},
		{"far outside", mgl64.Vec2{-5, -5}, false},
		{"on edge", mgl64.Vec2{2, 0}, true},
		{"on vertex", mgl64.Vec2{0, 0}, true},
		{"on hypotenuse", mgl64.Vec2{2, 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInTriangle(tt.p, a, b, c); got != tt.want {
				t.Errorf("PointInTriangle(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPointInTriangleDegenerate(t *testing.T) {
	// A zero-area triangle contains nothing, even its own vertices.
	a := mgl64.Vec2{0, 0}
	b := mgl64.Vec2{1, 1}
	c := mgl64.Vec2{2, 2}
	if PointInTriangle(mgl64.Vec2{1, 1}, a, b, c) {
		t.Error("degenerate triangle should contain no points")
	}
}

func TestCross2(t *testing.T) {
	if got := Cross2(mgl64.Vec2{1, 0}, mgl64.Vec2{0, 1}); got != 1 {
		t.Errorf("Cross2(x, y) = %v, want 1", got)
	}
	if got := Cross2(mgl64.Vec2{0, 1}, mgl64.Vec2{1, 0}); got != -1 {
		t.Errorf("Cross2(y, x) = %v, want -1", got)
	}
}
