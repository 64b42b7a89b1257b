package entity

import (
	"testing"

	"laser-defense/pkg/geom"
)

func TestPreviewTurretCollision(t *testing.T) {
	w := newTestWorld(t)
	def := tower(t, "TOWER_BLUE")
	zones := []geom.Rect{{X: 0, Y: 0, W: 200, H: 200}}
	w.CreateTurret(def, geom.V(100, 100))

	tests := []struct {
		name    string
		coins   int
		center  geom.Vec
		blocked bool
	}{
		{"valid", 100, geom.V(40, 40), false},
		{"too poor", 10, geom.V(40, 40), true},
		{"outside zone", 100, geom.V(400, 400), true},
		{"over turret", 100, geom.V(110, 110), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPreviewTurret(def)
			p.MoveTo(tt.center)
			if got := p.Check(tt.coins, zones, w.TurretRects()); got != tt.blocked {
				t.Errorf("Check() = %v, want %v", got, tt.blocked)
			}
		})
	}
}

func TestPreviewTurretPlace(t *testing.T) {
	w := newTestWorld(t)
	p := NewPreviewTurret(tower(t, "TOWER_BLUE"))
	zones := []geom.Rect{{X: 0, Y: 0, W: 200, H: 200}}

	p.MoveTo(geom.V(40, 40))
	p.Check(100, zones, w.TurretRects())
	placed := p.Place(w)
	if placed == 0 || w.TurretCount() != 1 {
		t.Fatal("valid preview should place a turret")
	}
	if got := w.Positions[placed].TopLeft; got != geom.V(24, 24) {
		t.Errorf("turret placed at %v, want (24, 24)", got)
	}

	p.Check(100, zones, w.TurretRects())
	if p.Place(w) != 0 || w.TurretCount() != 1 {
		t.Error("preview over a placed turret must not build")
	}
}
