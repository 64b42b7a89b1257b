package geom

import (
	"math"
	"testing"
)

func TestInRange(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec
		r    float64
		want bool
	}{
		{"inside", V(0, 0), V(30, 40), 60, true},
		{"on boundary", V(0, 0), V(30, 40), 50, true},
		{"outside", V(0, 0), V(30, 40), 49.9, false},
		{"same point zero radius", V(5, 5), V(5, 5), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InRange(tt.a, tt.b, tt.r); got != tt.want {
				t.Errorf("InRange(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.r, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	if !r.Intersects(Rect{X: 5, Y: 5, W: 10, H: 10}) {
		t.Error("overlapping rects should intersect")
	}
	if r.Intersects(Rect{X: 10, Y: 0, W: 10, H: 10}) {
		t.Error("rects sharing an edge should not intersect")
	}
	if r.Intersects(Rect{X: 20, Y: 20, W: 1, H: 1}) {
		t.Error("distant rects should not intersect")
	}
}

func TestRectContains(t *testing.T) {
	zone := Rect{X: 0, Y: 0, W: 64, H: 64}
	if !zone.Contains(Rect{X: 0, Y: 0, W: 32, H: 32}) {
		t.Error("rect on the corner should be contained")
	}
	if zone.Contains(Rect{X: 40, Y: 40, W: 32, H: 32}) {
		t.Error("rect sticking out should not be contained")
	}
}

func TestRectHelpers(t *testing.T) {
	r := RectCentered(V(10, 10), V(4, 6))
	if r.TopLeft() != V(8, 7) {
		t.Errorf("TopLeft = %v, want (8, 7)", r.TopLeft())
	}
	if r.Center() != V(10, 10) {
		t.Errorf("Center = %v, want (10, 10)", r.Center())
	}
	moved := r.MovedTo(V(0, 0))
	if moved.BottomRight() != V(4, 6) {
		t.Errorf("BottomRight = %v, want (4, 6)", moved.BottomRight())
	}
}

func TestDirectionDeg(t *testing.T) {
	const eps = 1e-9
	down := DirectionDeg(0)
	if math.Abs(down.X) > eps || math.Abs(down.Y-1) > eps {
		t.Errorf("0 degrees should point down, got %v", down)
	}
	right := DirectionDeg(90)
	if math.Abs(right.X-1) > eps || math.Abs(right.Y) > eps {
		t.Errorf("90 degrees should point right, got %v", right)
	}
	if got := AngleDeg(V(1, 0)); math.Abs(got-90) > eps {
		t.Errorf("AngleDeg(right) = %v, want 90", got)
	}
}
