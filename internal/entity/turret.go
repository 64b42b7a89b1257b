// internal/entity/turret.go
package entity

import (
	"laser-defense/internal/component"
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/types"
	"laser-defense/pkg/geom"
)

// CreateTurret строит турель по описанию def с левым верхним углом в topLeft.
// Таймер стартует полным, поэтому первый выстрел происходит сразу.
func (w *World) CreateTurret(def defs.TowerDefinition, topLeft geom.Vec) types.EntityID {
	id := w.NewEntity()
	w.Positions[id] = &component.Position{TopLeft: topLeft, Size: geom.V(config.TurretSize, config.TurretSize)}
	t := &component.Turret{
		Def:      def,
		AimMode:  def.AimMode,
		Range:    def.Range,
		FireRate: def.FireRate,
		Level:    def.Level,
	}
	t.Timer = t.Interval()
	w.Turrets[id] = t
	w.turretOrder = append(w.turretOrder, id)
	return id
}

// TurretIDs возвращает турели в порядке постройки.
func (w *World) TurretIDs() []types.EntityID {
	return append([]types.EntityID(nil), w.turretOrder...)
}

// TurretCount возвращает число построенных турелей.
func (w *World) TurretCount() int {
	return len(w.turretOrder)
}

// TurretRects возвращает занятые турелями прямоугольники.
func (w *World) TurretRects() []geom.Rect {
	rects := make([]geom.Rect, 0, len(w.turretOrder))
	for _, id := range w.turretOrder {
		rects = append(rects, w.Positions[id].Rect())
	}
	return rects
}

// TurretAt ищет турель, накрывающую точку p. Ноль, если такой нет.
func (w *World) TurretAt(p geom.Vec) types.EntityID {
	for _, id := range w.turretOrder {
		if w.Positions[id].Rect().ContainsPoint(p) {
			return id
		}
	}
	return 0
}

// RemoveTurret убирает турель вместе с ее снарядами.
func (w *World) RemoveTurret(id types.EntityID) {
	t, ok := w.Turrets[id]
	if !ok {
		return
	}
	for _, p := range t.Projectiles {
		w.RemoveEntity(p)
	}
	w.RemoveEntity(id)
}
