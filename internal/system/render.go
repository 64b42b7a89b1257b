// internal/system/render.go
package system

import (
	"image/color"

	"laser-defense/internal/assets"
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
	"laser-defense/internal/types"
	"laser-defense/internal/vfx"
	"laser-defense/pkg/geom"
)

// RenderSystem рисует карту и сущности
type RenderSystem struct {
	world    *entity.World
	level    *defs.LevelDefinition
	backdrop types.EntityID // эффекты под сущностями
	owner    types.EntityID // эффекты поверх сущностей
}

func NewRenderSystem(world *entity.World, level *defs.LevelDefinition, backdrop, mapOwner types.EntityID) *RenderSystem {
	return &RenderSystem{world: world, level: level, backdrop: backdrop, owner: mapOwner}
}

// Draw рисует фон, пути, зоны, врагов, турели, призрак и эффекты карты.
// preview может быть nil.
func (s *RenderSystem) Draw(surface vfx.Surface, preview *entity.PreviewTurret) {
	surface.FillRect(geom.RectAt(geom.Vec{}, s.level.Size), config.BackgroundColor)

	// Пути: координаты задают левый верхний угол клетки врага
	half := geom.V(config.EnemySize/2, config.EnemySize/2)
	for _, path := range s.level.Paths {
		for i := 1; i < len(path); i++ {
			surface.StrokeLine(path[i-1].Add(half), path[i].Add(half), config.EnemySize, config.PathColor)
		}
	}
	for _, z := range s.level.Zones {
		surface.FillRect(z, config.ZoneColor)
	}

	s.world.VFX.Render(s.backdrop, surface)

	for _, id := range s.world.EnemyIDs() {
		if s.world.IsAlive(id) {
			// кадр спрайта соответствует уровню
			surface.DrawSprite(assets.SpriteEnemy, s.world.Enemies[id].Tier, s.world.Positions[id].Rect(), 0, 1)
		}
	}
	for _, id := range s.world.TurretIDs() {
		s.drawTurret(surface, id)
	}
	if preview != nil {
		preview.Render(surface)
	}
	s.world.VFX.Render(s.owner, surface)
}

var beamColor = color.RGBA{255, 64, 64, 230}

// beamWidth относительная толщина луча по кадрам анимации.
var beamWidth = []float64{0.5, 1, 0.75, 1, 0.5}

// drawTurret рисует основание, ствол, радиус выбранной турели и ее снаряды.
func (s *RenderSystem) drawTurret(surface vfx.Surface, id types.EntityID) {
	t := s.world.Turrets[id]
	rect := s.world.Positions[id].Rect()
	if t.Overlay {
		surface.FillCircle(rect.Center(), t.Range, config.OverlayInfo)
		surface.StrokeRect(rect, 2, config.SelectedColor)
	}
	sprite := t.Def.Visuals.Sprite
	surface.DrawSprite(sprite, 0, rect, 0, 1)
	surface.DrawSprite(sprite, 1, rect, t.Rotation, 1)

	for _, pid := range t.Projectiles {
		s.world.VFX.Render(pid, surface)
		proj, ok := s.world.Projectiles[pid]
		if !ok || proj.Pending {
			continue
		}
		if b, ok := s.world.Bullets[pid]; ok {
			surface.DrawSprite(assets.SpriteBullet, b.Frame, b.Rect, 0, 1)
		}
		if b, ok := s.world.Beams[pid]; ok && proj.TargetID != 0 {
			a, c := geom.BeamSegment(proj.Origin, b.Angle, b.Length)
			width := b.Anim.FrameSize.X * beamWidth[min(b.Frame, len(beamWidth)-1)]
			surface.StrokeLine(a, c, width, beamColor)
		}
	}
}
