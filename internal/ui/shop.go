// internal/ui/shop.go
package ui

import (
	"strconv"

	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/vfx"
	"laser-defense/pkg/geom"
)

// ShopSlot - ячейка магазина с одной турелью
type ShopSlot struct {
	Def  defs.TowerDefinition
	Rect geom.Rect
}

// Shop - ряд ячеек с турелями для постройки
type Shop struct {
	Slots []ShopSlot
}

// NewShop раскладывает турели в ряд вправо от topLeft.
func NewShop(topLeft geom.Vec, towers []defs.TowerDefinition) *Shop {
	shop := &Shop{}
	for i, def := range towers {
		pos := topLeft.Add(geom.V(float64(i)*(config.ShopSlotSize+4), 0))
		shop.Slots = append(shop.Slots, ShopSlot{Def: def, Rect: geom.RectAt(pos, geom.V(config.ShopSlotSize, config.ShopSlotSize))})
	}
	return shop
}

// Width возвращает ширину всего ряда.
func (s *Shop) Width() float64 {
	if len(s.Slots) == 0 {
		return 0
	}
	return s.Slots[len(s.Slots)-1].Rect.Right() - s.Slots[0].Rect.X
}

// TowerAt возвращает идентификатор турели под курсором.
func (s *Shop) TowerAt(mouse geom.Vec) (string, bool) {
	for _, slot := range s.Slots {
		if slot.Rect.ContainsPoint(mouse) {
			return slot.Def.ID, true
		}
	}
	return "", false
}

// Draw рисует ячейки; недоступные по цене подписаны предупреждающим цветом.
func (s *Shop) Draw(surface vfx.Surface, coins int, selected string) {
	for _, slot := range s.Slots {
		surface.FillRect(slot.Rect, config.HUDColor)
		icon := geom.RectCentered(slot.Rect.Center().Sub(geom.V(0, 4)), geom.V(config.TurretSize*0.75, config.TurretSize*0.75))
		surface.DrawSprite(slot.Def.Visuals.Sprite, 0, icon, 0, 1)
		surface.DrawSprite(slot.Def.Visuals.Sprite, 1, icon, 0, 1)

		cost := strconv.Itoa(slot.Def.Cost)
		clr := config.TextLightColor
		if coins < slot.Def.Cost {
			clr = config.TextWarnColor
		}
		size := vfx.MeasureText(cost)
		surface.DrawText(cost, geom.V(slot.Rect.Center().X-size.X/2, slot.Rect.Bottom()-size.Y), clr)

		if slot.Def.ID == selected {
			surface.StrokeRect(slot.Rect, 2, config.SelectedColor)
		}
	}
}
