package system

import (
	"image/color"
	"testing"

	"laser-defense/internal/assets"
	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
	"laser-defense/internal/vfx/vfxtest"
	"laser-defense/pkg/geom"
)

func TestDamageColor(t *testing.T) {
	tests := []struct {
		amount, max float64
		want        color.RGBA
	}{
		{0, 10, color.RGBA{255, 255, 0, 255}},
		{5, 10, color.RGBA{255, 127, 0, 255}},
		{10, 10, color.RGBA{255, 0, 0, 255}},
		{40, 10, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := DamageColor(tt.amount, tt.max); got != tt.want {
			t.Errorf("DamageColor(%v, %v) = %v, want %v", tt.amount, tt.max, got, tt.want)
		}
	}
}

func TestVisualEffectsForKillAndFlush(t *testing.T) {
	w := newTestWorld()
	owner := w.NewEntity()
	fx := NewVisualEffectSystem(w, owner)

	e := w.CreateEnemy(0, []geom.Vec{{X: 40, Y: 60}, {X: 400, Y: 60}}, 50, 5)
	outcomes := ApplyDamage(w, e, 25)
	if entity.Count(outcomes, entity.Killed) != 1 || entity.Count(outcomes, entity.DamageFlushed) != 1 {
		t.Fatalf("unexpected outcomes %v", outcomes)
	}
	fx.Apply(outcomes)
	if got := w.VFX.Count(owner); got != 2 {
		t.Fatalf("map owner holds %d effects, want 2", got)
	}

	w.VFX.Update(0.01)
	s := &vfxtest.RecordingSurface{}
	w.VFX.Render(owner, s)
	texts := s.Texts()
	if len(texts) != 1 || texts[0] != "10.0" {
		t.Errorf("damage texts = %v, want [10.0]", texts)
	}
	if n := len(s.Sprites(assets.SpriteExplosion)); n != 1 {
		t.Errorf("explosion drawn %d times, want 1", n)
	}
}

func TestRenderSystemDrawsLayers(t *testing.T) {
	w := newTestWorld()
	level := &defs.LevelDefinition{
		Size:  geom.V(640, 480),
		Paths: [][]geom.Vec{{{X: 0, Y: 100}, {X: 300, Y: 100}, {X: 300, Y: 400}}},
		Zones: []geom.Rect{{X: 10, Y: 10, W: 100, H: 50}},
	}
	r := NewRenderSystem(w, level, w.NewEntity(), w.NewEntity())

	w.CreateEnemy(1, level.Paths[0], 50, 5)
	dead := w.CreateEnemy(1, level.Paths[0], 50, 5)
	ApplyDamage(w, dead, 1000)
	bullets := w.CreateTurret(tower(t, "TOWER_BLUE"), geom.V(200, 200))
	w.Turrets[bullets].Overlay = true

	s := &vfxtest.RecordingSurface{}
	r.Draw(s, nil)
	if s.Count("rect") != 2 {
		t.Errorf("drew %d rects, want background and one zone", s.Count("rect"))
	}
	if s.Count("line") != 2 {
		t.Errorf("drew %d path segments, want 2", s.Count("line"))
	}
	enemies := s.Sprites(assets.SpriteEnemy)
	if len(enemies) != 1 || enemies[0].Frame != 1 {
		t.Errorf("enemy sprites = %+v, want one frame-1 sprite", enemies)
	}
	if n := len(s.Sprites("turret_blue")); n != 2 {
		t.Errorf("turret drawn with %d sprites, want base and barrel", n)
	}
	if s.Count("circle") != 1 {
		t.Errorf("selected turret should draw its range once, got %d circles", s.Count("circle"))
	}
}
