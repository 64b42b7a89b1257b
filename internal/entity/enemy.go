// internal/entity/enemy.go
package entity

import (
	"laser-defense/internal/component"
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/types"
	"laser-defense/pkg/geom"
)

// CreateEnemy ставит врага уровня tier в начало пути. Координаты пути
// задают левый верхний угол врага.
func (w *World) CreateEnemy(tier int, path []geom.Vec, speed, flushThreshold float64) types.EntityID {
	stats := defs.TierStats(tier)
	id := w.NewEntity()

	pos := &component.Position{Size: geom.V(config.EnemySize, config.EnemySize)}
	if len(path) > 0 {
		pos.TopLeft = path[0]
	}
	w.Positions[id] = pos
	w.Velocities[id] = &component.Velocity{Speed: speed}
	w.Paths[id] = &component.Path{Points: path}
	w.Healths[id] = &component.Health{
		Max:       stats.Health,
		Value:     stats.Health,
		Threshold: flushThreshold,
	}
	w.Enemies[id] = &component.Enemy{Tier: stats.Tier}
	w.enemyOrder = append(w.enemyOrder, id)
	return id
}

// EnemyIDs возвращает врагов в порядке появления. Копия безопасна для обхода
// с удалениями.
func (w *World) EnemyIDs() []types.EntityID {
	return append([]types.EntityID(nil), w.enemyOrder...)
}

// EnemyCount возвращает число врагов, включая еще не убранных мертвых.
func (w *World) EnemyCount() int {
	return len(w.enemyOrder)
}

// IsAlive сообщает, что враг id существует, не убит и не дошел до конца пути.
func (w *World) IsAlive(id types.EntityID) bool {
	enemy, ok := w.Enemies[id]
	if !ok || enemy.ReachedEnd {
		return false
	}
	health, ok := w.Healths[id]
	return ok && !health.Killed
}

// HasEnemies сообщает, есть ли живые враги.
func (w *World) HasEnemies() bool {
	for _, id := range w.enemyOrder {
		if w.IsAlive(id) {
			return true
		}
	}
	return false
}

// EnemyStats возвращает параметры уровня врага.
func (w *World) EnemyStats(id types.EntityID) defs.EnemyTier {
	if enemy, ok := w.Enemies[id]; ok {
		return defs.TierStats(enemy.Tier)
	}
	return defs.TierStats(0)
}

// PruneDead убирает умерших и прошедших врагов и возвращает, сколько убрано.
func (w *World) PruneDead() int {
	removed := 0
	for _, id := range w.EnemyIDs() {
		if !w.IsAlive(id) {
			w.RemoveEntity(id)
			removed++
		}
	}
	return removed
}
