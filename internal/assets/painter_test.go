package assets

import (
	"image/color"
	"math"
	"testing"

	"laser-defense/internal/vfx/vfxtest"
	"laser-defense/pkg/geom"
)

func TestEveryDefaultAnimationHasPainter(t *testing.T) {
	for _, name := range DefaultRegistry().Names() {
		if !HasPainter(name) {
			t.Errorf("sprite %q has no painter", name)
		}
	}
}

func TestPaintSpriteRotatesClockwise(t *testing.T) {
	dst := geom.Rect{W: 100, H: 100}
	s := &vfxtest.RecordingSurface{}
	PaintSprite(s, SpriteTurretBlue, 1, dst, 0, 1)
	if !near(s.Calls[0].Pos, geom.V(42, 5)) {
		t.Fatalf("barrel corner at %v, want (42, 5)", s.Calls[0].Pos)
	}

	s.Reset()
	PaintSprite(s, SpriteTurretBlue, 1, dst, 90, 1)
	if !near(s.Calls[0].Pos, geom.V(95, 42)) {
		t.Errorf("rotated barrel corner at %v, want (95, 42)", s.Calls[0].Pos)
	}
}

func near(a, b geom.Vec) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestPaintSpriteAlphaAndFallback(t *testing.T) {
	s := &vfxtest.RecordingSurface{}
	PaintSprite(s, SpriteEnemy, 0, geom.Rect{W: 32, H: 32}, 0, 0.5)
	for _, c := range s.Calls {
		if n, ok := c.Color.(color.NRGBA); !ok || n.A > 128 {
			t.Fatalf("half-transparent sprite drew %v", c.Color)
		}
	}

	s.Reset()
	PaintSprite(s, "no_such_sprite", 0, geom.Rect{X: 10, Y: 20, W: 8, H: 8}, 0, 1)
	if len(s.Calls) != 1 || s.Calls[0].Op != "polygon" || s.Calls[0].Color != (color.NRGBA{255, 0, 255, 255}) {
		t.Errorf("fallback drew %+v", s.Calls)
	}
}
