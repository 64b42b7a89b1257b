// internal/entity/preview.go
package entity

import (
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/types"
	"laser-defense/internal/vfx"
	"laser-defense/pkg/geom"
)

// PreviewTurret призрак турели под курсором. Ничего не строит, пока не вызван Place.
type PreviewTurret struct {
	Def       defs.TowerDefinition
	rect      geom.Rect
	colliding bool
}

// NewPreviewTurret создает призрак для турели def.
func NewPreviewTurret(def defs.TowerDefinition) *PreviewTurret {
	return &PreviewTurret{
		Def:  def,
		rect: geom.Rect{W: config.TurretSize, H: config.TurretSize},
	}
}

// MoveTo ставит центр призрака в точку p (координаты карты).
func (p *PreviewTurret) MoveTo(center geom.Vec) {
	p.rect = p.rect.CenteredOn(center)
}

// Check пересчитывает коллизию: турель недоступна, если не хватает монет,
// призрак не касается ни одной зоны застройки или задевает занятое место.
func (p *PreviewTurret) Check(coins int, zones, occupied []geom.Rect) bool {
	p.colliding = p.blocked(coins, zones, occupied)
	return p.colliding
}

func (p *PreviewTurret) blocked(coins int, zones, occupied []geom.Rect) bool {
	if coins < p.Def.Cost {
		return true
	}
	inZone := false
	for _, z := range zones {
		if p.rect.Intersects(z) {
			inZone = true
			break
		}
	}
	if !inZone {
		return true
	}
	for _, r := range occupied {
		if p.rect.Intersects(r) {
			return true
		}
	}
	return false
}

// Place строит турель на месте призрака, если он не сталкивается.
// Возвращает ноль, если место занято или недоступно.
func (p *PreviewTurret) Place(w *World) types.EntityID {
	if p.colliding {
		return 0
	}
	return w.CreateTurret(p.Def, p.rect.TopLeft())
}

// Render рисует радиус (красный при коллизии) и полупрозрачную турель.
func (p *PreviewTurret) Render(s vfx.Surface) {
	overlay := config.OverlayValid
	if p.colliding {
		overlay = config.OverlayCollide
	}
	s.FillCircle(p.rect.Center(), p.Def.Range, overlay)
	s.DrawSprite(p.Def.Visuals.Sprite, 0, p.rect, 0, 0.7)
}

func (p *PreviewTurret) Rect() geom.Rect { return p.rect }
func (p *PreviewTurret) Colliding() bool { return p.colliding }
