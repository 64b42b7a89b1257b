// internal/component/projectile.go
package component

import (
	"laser-defense/internal/defs"
	"laser-defense/internal/types"
	"laser-defense/pkg/geom"
)

// Projectile - общая часть снарядов. Режим прицеливания и дальность
// читаются у турели-владельца при каждом перенацеливании.
type Projectile struct {
	Kind     defs.ProjectileKind
	OwnerID  types.EntityID
	Origin   geom.Vec       // центр турели в момент выстрела
	TargetID types.EntityID // 0 - цели нет
	// Pending - урон нанесен, снаряд ждет окончания своих эффектов.
	Pending bool
	Removed bool
}

// Bullet - самонаводящаяся пуля, способная перескакивать между целями.
type Bullet struct {
	Rect     geom.Rect
	Speed    float64
	Damage   float64
	Jumps    int
	MaxJumps int
	Impact   bool // пересекла цель, урон на следующем шаге
	Frame    int
}
