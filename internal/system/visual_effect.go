// internal/system/visual_effect.go
package system

import (
	"fmt"
	"image/color"

	"laser-defense/internal/assets"
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
	"laser-defense/internal/types"
	"laser-defense/internal/vfx"
	"laser-defense/pkg/geom"
)

// VisualEffectSystem превращает итоги боя во всплывающие числа урона и взрывы.
// Эффекты вешаются на владельца карты, чтобы пережить убранных врагов.
type VisualEffectSystem struct {
	world *entity.World
	owner types.EntityID
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World, mapOwner types.EntityID) *VisualEffectSystem {
	return &VisualEffectSystem{world: world, owner: mapOwner}
}

// Apply добавляет эффекты для убийств и сброшенного урона.
func (s *VisualEffectSystem) Apply(outcomes []entity.Outcome) {
	for _, o := range outcomes {
		switch o.Kind {
		case entity.Killed:
			s.explode(o.Position)
		case entity.DamageFlushed:
			s.damageText(o.Position, o.Amount, defs.TierStats(o.Tier).Health)
		}
	}
}

func (s *VisualEffectSystem) explode(at geom.Vec) {
	bounds := geom.RectAt(at, geom.V(config.ExplodeSize, config.ExplodeSize))
	s.world.VFX.AddEffect(s.owner, vfx.NewSpriteSequenceEffect(assets.SpriteExplosion, 5, config.KillEffectDuration, bounds), false)
}

func (s *VisualEffectSystem) damageText(at geom.Vec, amount, maxHealth float64) {
	data := vfx.DefaultTextParticleData(fmt.Sprintf("%.1f", amount))
	data.Position = at
	data.InitialColor = DamageColor(amount, maxHealth)
	data.FinalColor = data.InitialColor
	data.InitialSpeed = config.DamageTextSpeed
	data.FinalSpeed = config.DamageTextSpeed
	s.world.VFX.AddEffect(s.owner, vfx.NewTextParticleEffect(data, s.world.Rng), false)
}

// DamageColor от желтого к красному по мере того, как урон приближается
// к максимальному здоровью.
func DamageColor(amount, maxHealth float64) color.RGBA {
	share := 1.0
	if maxHealth > 0 {
		share = min(1, amount/maxHealth)
	}
	return color.RGBA{255, uint8(255 * (1 - share)), 0, 255}
}
