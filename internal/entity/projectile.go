// internal/entity/projectile.go
package entity

import (
	"laser-defense/internal/assets"
	"laser-defense/internal/component"
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/types"
	"laser-defense/internal/vfx"
	"laser-defense/pkg/geom"
)

// createProjectile регистрирует снаряд в списке турели owner. Цель снаряду
// выбирает система боя.
func (w *World) createProjectile(owner types.EntityID, kind defs.ProjectileKind) (types.EntityID, *component.Turret) {
	t := w.Turrets[owner]
	id := w.NewEntity()
	w.Projectiles[id] = &component.Projectile{
		Kind:    kind,
		OwnerID: owner,
		Origin:  w.Positions[owner].Center(),
	}
	t.Projectiles = append(t.Projectiles, id)
	return id, t
}

// CreateBullet создает пулю в центре турели owner.
func (w *World) CreateBullet(owner types.EntityID) types.EntityID {
	id, _ := w.createProjectile(owner, defs.ProjectileBullet)
	tuning := w.Tuning.Bullet
	w.Bullets[id] = &component.Bullet{
		Rect:     geom.RectCentered(w.Projectiles[id].Origin, geom.V(config.BulletSize, config.BulletSize)),
		Speed:    tuning.Speed,
		Damage:   tuning.Damage,
		MaxJumps: tuning.MaxJumps,
	}
	return id
}

// CreateBeam создает луч из центра турели owner. Искры у основания живут
// вдвое дольше анимации луча.
func (w *World) CreateBeam(owner types.EntityID) types.EntityID {
	id, t := w.createProjectile(owner, defs.ProjectileBeam)
	anim := w.Assets.MustAnimation(assets.SpriteBeam)
	beam := &component.Beam{
		Anim:          anim,
		Length:        t.Range,
		DamagePerShot: w.Tuning.Beam.DamagePerShot,
		Shoot:         vfx.NewBeamShootEffect(anim.TotalDuration()*2, w.Rng),
	}
	w.Beams[id] = beam
	w.VFX.AddEffect(id, beam.Shoot, false)
	w.VFX.Transform(id, w.Projectiles[id].Origin, geom.Vec{})
	return id
}

// ProjectileCount возвращает число снарядов всех турелей.
func (w *World) ProjectileCount() int {
	return len(w.Projectiles)
}
