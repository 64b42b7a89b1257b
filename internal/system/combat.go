// internal/system/combat.go
package system

import (
	"fmt"
	"math"

	"laser-defense/internal/component"
	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
	"laser-defense/internal/types"
)

// CombatSystem управляет стрельбой турелей и полетом их снарядов
type CombatSystem struct {
	world       *entity.World
	projectiles *ProjectileSystem
}

func NewCombatSystem(world *entity.World) *CombatSystem {
	return &CombatSystem{world: world, projectiles: NewProjectileSystem(world)}
}

// Update обходит турели в порядке постройки. Каждая копит таймер и выпускает
// по снаряду на каждый полный интервал, пока есть живые враги; без врагов
// таймер ограничивается одним интервалом. Затем летят снаряды турели, и ствол
// поворачивается к цели последнего из них.
func (s *CombatSystem) Update(deltaTime float64) []entity.Outcome {
	var outcomes []entity.Outcome
	for _, id := range s.world.TurretIDs() {
		t, ok := s.world.Turrets[id]
		if !ok {
			continue
		}
		interval := t.Interval()
		t.Timer += deltaTime
		for s.world.HasEnemies() && t.Timer >= interval {
			s.fire(id, t)
			t.Timer -= interval
		}
		if t.Timer > interval {
			t.Timer = interval
		}

		for _, p := range t.Projectiles {
			outcomes = append(outcomes, s.projectiles.Update(p, deltaTime)...)
		}
		newest := s.newestTarget(t)
		s.projectiles.Prune(t)
		s.aim(id, t, newest)
	}
	return outcomes
}

func (s *CombatSystem) fire(id types.EntityID, t *component.Turret) {
	switch t.Def.Projectile {
	case defs.ProjectileBullet:
		p := s.world.CreateBullet(id)
		s.projectiles.retarget(p, s.world.Bullets[p].Rect.TopLeft())
	case defs.ProjectileBeam:
		p := s.world.CreateBeam(id)
		s.projectiles.retarget(p, s.world.Projectiles[p].Origin)
	default:
		panic(fmt.Sprintf("system: turret %s has unknown projectile kind %q", t.Def.ID, t.Def.Projectile))
	}
}

func (s *CombatSystem) newestTarget(t *component.Turret) types.EntityID {
	if len(t.Projectiles) == 0 {
		return 0
	}
	if p, ok := s.world.Projectiles[t.Projectiles[len(t.Projectiles)-1]]; ok {
		return p.TargetID
	}
	return 0
}

func (s *CombatSystem) aim(id types.EntityID, t *component.Turret, target types.EntityID) {
	pos, ok := s.world.Positions[target]
	if target == 0 || !ok {
		return
	}
	d := pos.Center().Sub(s.world.Positions[id].Center())
	// 0° смотрит вверх, угол растет по часовой стрелке
	t.Rotation = math.Atan2(d.X, -d.Y) * 180 / math.Pi
}

// ProjectileCount возвращает число снарядов всех турелей.
func (s *CombatSystem) ProjectileCount() int {
	return s.world.ProjectileCount()
}
