// internal/entity/world.go
package entity

import (
	"laser-defense/internal/assets"
	"laser-defense/internal/component"
	"laser-defense/internal/config"
	"laser-defense/internal/types"
	"laser-defense/internal/utils"
	"laser-defense/internal/vfx"
)

// World хранит компоненты сущностей по идентификатору. Порядок появления
// врагов и постройки турелей хранится отдельно: от него зависят выбор цели
// и порядок выстрелов.
type World struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Enemies     map[types.EntityID]*component.Enemy
	Turrets     map[types.EntityID]*component.Turret
	Projectiles map[types.EntityID]*component.Projectile
	Bullets     map[types.EntityID]*component.Bullet
	Beams       map[types.EntityID]*component.Beam

	enemyOrder  []types.EntityID
	turretOrder []types.EntityID

	Assets *assets.Registry
	Tuning config.Tuning
	VFX    *vfx.Manager
	Rng    utils.Random
}

// NewWorld создает пустой мир. Идентификаторы начинаются с 1.
func NewWorld(registry *assets.Registry, tuning config.Tuning, fx *vfx.Manager, rng utils.Random) *World {
	w := &World{
		NextID: 1,
		Assets: registry,
		Tuning: tuning,
		VFX:    fx,
		Rng:    rng,
	}
	w.Reset()
	return w
}

// NewEntity выдает новый уникальный идентификатор.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности. Повторный вызов ничего не делает.
func (w *World) RemoveEntity(id types.EntityID) {
	delete(w.Positions, id)
	delete(w.Velocities, id)
	delete(w.Paths, id)
	delete(w.Healths, id)
	delete(w.Enemies, id)
	delete(w.Turrets, id)
	delete(w.Projectiles, id)
	delete(w.Bullets, id)
	delete(w.Beams, id)
	w.enemyOrder = without(w.enemyOrder, id)
	w.turretOrder = without(w.turretOrder, id)
}

// Reset очищает мир, сохраняя счетчик идентификаторов.
func (w *World) Reset() {
	w.Positions = make(map[types.EntityID]*component.Position)
	w.Velocities = make(map[types.EntityID]*component.Velocity)
	w.Paths = make(map[types.EntityID]*component.Path)
	w.Healths = make(map[types.EntityID]*component.Health)
	w.Enemies = make(map[types.EntityID]*component.Enemy)
	w.Turrets = make(map[types.EntityID]*component.Turret)
	w.Projectiles = make(map[types.EntityID]*component.Projectile)
	w.Bullets = make(map[types.EntityID]*component.Bullet)
	w.Beams = make(map[types.EntityID]*component.Beam)
	w.enemyOrder = nil
	w.turretOrder = nil
}

func without(ids []types.EntityID, id types.EntityID) []types.EntityID {
	for i, other := range ids {
		if other == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
