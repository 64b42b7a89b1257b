// internal/system/projectile.go
package system

import (
	"math"
	"slices"

	"laser-defense/internal/assets"
	"laser-defense/internal/component"
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
	"laser-defense/internal/types"
	"laser-defense/internal/vfx"
	"laser-defense/pkg/geom"
)

// ProjectileSystem управляет полетом пуль и лучей и нанесением урона
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

// Update продвигает снаряд id и возвращает результаты нанесенного урона.
func (s *ProjectileSystem) Update(id types.EntityID, deltaTime float64) []entity.Outcome {
	proj, ok := s.world.Projectiles[id]
	if !ok || proj.Removed {
		return nil
	}
	switch proj.Kind {
	case defs.ProjectileBullet:
		return s.updateBullet(id, proj, s.world.Bullets[id], deltaTime)
	case defs.ProjectileBeam:
		return s.updateBeam(id, proj, s.world.Beams[id], deltaTime)
	}
	return nil
}

// Prune убирает из мира и из списка турели снаряды, помеченные удаленными.
func (s *ProjectileSystem) Prune(t *component.Turret) {
	kept := t.Projectiles[:0]
	for _, id := range t.Projectiles {
		if proj, ok := s.world.Projectiles[id]; ok && !proj.Removed {
			kept = append(kept, id)
			continue
		}
		s.world.RemoveEntity(id)
	}
	clear(t.Projectiles[len(kept):])
	t.Projectiles = kept
}

// retarget выбирает снаряду новую цель режимом и дальностью турели.
// Если кандидатов нет, снаряд удаляет себя сразу.
func (s *ProjectileSystem) retarget(id types.EntityID, from geom.Vec) bool {
	proj := s.world.Projectiles[id]
	owner, ok := s.world.Turrets[proj.OwnerID]
	if ok {
		proj.TargetID = SelectTarget(s.world, owner.AimMode, proj.Origin, from, owner.Range, s.world.Rng)
	} else {
		proj.TargetID = 0
	}
	if proj.TargetID == 0 {
		proj.Removed = true
		return false
	}
	return true
}

// targetLost сообщает, что цель умерла или вышла из радиуса турели.
func (s *ProjectileSystem) targetLost(proj *component.Projectile) bool {
	owner, ok := s.world.Turrets[proj.OwnerID]
	if !ok || !s.world.IsAlive(proj.TargetID) {
		return true
	}
	return !geom.InRange(s.world.Positions[proj.TargetID].Center(), proj.Origin, owner.Range)
}

// updateBullet ведет пулю к цели. Шаг нормирован по манхэттенскому
// расстоянию. После попадания пуля перескакивает на новую цель, пока
// не исчерпает прыжки; затем ждет окончания эффекта попадания.
func (s *ProjectileSystem) updateBullet(id types.EntityID, proj *component.Projectile, b *component.Bullet, dt float64) []entity.Outcome {
	if proj.Pending {
		if s.world.VFX.Count(id) == 0 {
			proj.Removed = true
		}
		return nil
	}

	var outcomes []entity.Outcome
	if b.Impact {
		outcomes = s.hitTarget(id, proj, b)
		b.Jumps++
		if b.Jumps >= b.MaxJumps {
			proj.Pending = true
			return outcomes
		}
		b.Impact = false
		if !s.retarget(id, b.Rect.TopLeft()) {
			return outcomes
		}
	}

	if s.targetLost(proj) && !s.retarget(id, b.Rect.TopLeft()) {
		return outcomes
	}

	target := s.world.Positions[proj.TargetID]
	delta := target.Center().Sub(b.Rect.Center())
	total := math.Abs(delta.X) + math.Abs(delta.Y)
	if total != 0 {
		b.Rect = b.Rect.MovedTo(b.Rect.TopLeft().Add(delta.Scale(b.Speed * dt / total)))
	} else {
		b.Rect = b.Rect.CenteredOn(target.Center())
	}

	if target.Rect().Intersects(b.Rect) {
		b.Impact = true
	}

	away := b.Rect.Center().Sub(target.Center())
	b.Frame = bulletFrame(geom.AngleDeg(away) + 180)
	return outcomes
}

// hitTarget наносит урон цели пули и оставляет эффект попадания.
func (s *ProjectileSystem) hitTarget(id types.EntityID, proj *component.Projectile, b *component.Bullet) []entity.Outcome {
	at := b.Rect.TopLeft()
	if pos, ok := s.world.Positions[proj.TargetID]; ok {
		at = pos.TopLeft
	}
	anim := s.world.Assets.MustAnimation(assets.SpriteImpact)
	bounds := geom.RectAt(at.Add(geom.V(8, 8)), geom.V(config.ImpactSize, config.ImpactSize))
	s.world.VFX.AddEffect(id, vfx.NewSpriteSequenceEffect(assets.SpriteImpact, anim.Frames(), s.world.Tuning.Bullet.ImpactDuration, bounds), false)

	outcomes := ApplyDamage(s.world, proj.TargetID, b.Damage)
	return append(outcomes, UnbufferDamage(s.world, proj.TargetID, false)...)
}

// bulletFrame выбирает кадр спрайта по направлению полета (градусы 0..360).
func bulletFrame(degree float64) int {
	switch {
	case degree < 22.5 || (degree >= 157.5 && degree < 202.5) || degree >= 337.5:
		return 0
	case degree < 62.5 || (degree >= 202.5 && degree < 247.5):
		return 3
	case degree < 112.5 || (degree >= 247.5 && degree < 292.5):
		return 2
	default:
		return 1
	}
}

// updateBeam перенацеливает луч каждый шаг. Урон кадра начисляется
// непрерывно всем врагам, которых пересекает отрезок луча; в кадре без урона
// добирается остаток выстрела.
func (s *ProjectileSystem) updateBeam(id types.EntityID, proj *component.Projectile, b *component.Beam, dt float64) []entity.Outcome {
	if proj.Pending {
		b.Shoot.Finish()
		if s.world.VFX.Count(id) == 0 {
			proj.Removed = true
		}
		return nil
	}

	if !s.retarget(id, proj.Origin) {
		return s.release(b, nil)
	}

	b.Timer += dt
	frame, ok := b.Anim.FrameAt(b.Timer)
	if !ok {
		proj.Pending = true
		return s.release(b, nil)
	}
	b.Frame = frame

	d := s.world.Positions[proj.TargetID].Center().Sub(proj.Origin)
	if d.Y == 0 {
		d.Y = 0.01
	}
	b.Angle = geom.AngleDeg(d)
	b.Shoot.Aim(b.Angle)
	s.world.VFX.Transform(id, proj.Origin, geom.Vec{})

	a, c := geom.BeamSegment(proj.Origin, b.Angle, b.Length)
	var outcomes []entity.Outcome
	if frac := b.Anim.DamageFraction(frame); frac != 0 {
		amount := b.DamagePerShot * frac / b.Anim.Durations[frame] * dt
		b.Dealt += amount
		outcomes = s.sweep(b, a, c, amount)
	} else if b.Dealt != 0 {
		outcomes = s.sweep(b, a, c, b.DamagePerShot-b.Dealt)
		b.Dealt = 0
	} else if len(b.Damaged) > 0 {
		outcomes = s.release(b, nil)
	}
	return outcomes
}

// sweep наносит amount всем врагам на отрезке a-c. Враги, которых луч
// перестал касаться, получают сброс буфера урона.
func (s *ProjectileSystem) sweep(b *component.Beam, a, c geom.Vec, amount float64) []entity.Outcome {
	var outcomes []entity.Outcome
	touched := make([]types.EntityID, 0, len(b.Damaged))
	for _, id := range s.world.EnemyIDs() {
		if !s.world.IsAlive(id) || !geom.RectIntersectsSegment(s.world.Positions[id].Rect(), a, c) {
			continue
		}
		outcomes = append(outcomes, ApplyDamage(s.world, id, amount)...)
		touched = append(touched, id)
	}
	return s.release(b, touched, outcomes...)
}

// release сбрасывает буфер урона врагам из Damaged, которых нет в keep.
func (s *ProjectileSystem) release(b *component.Beam, keep []types.EntityID, outcomes ...entity.Outcome) []entity.Outcome {
	for _, id := range b.Damaged {
		if !slices.Contains(keep, id) {
			outcomes = append(outcomes, UnbufferDamage(s.world, id, false)...)
		}
	}
	b.Damaged = keep
	return outcomes
}
