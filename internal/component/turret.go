// internal/component/turret.go
package component

import (
	"laser-defense/internal/defs"
	"laser-defense/internal/types"
)

// Turret - башня: прицеливание, таймер стрельбы и поворот ствола.
type Turret struct {
	Def      defs.TowerDefinition
	AimMode  defs.AimMode
	Range    float64
	FireRate float64
	Level    int
	// Timer - время с последнего выстрела, не больше одного интервала.
	Timer float64
	// Rotation - угол ствола в градусах, 0 смотрит вверх, растет по часовой стрелке.
	Rotation float64
	// Overlay включает отрисовку радиуса (выбранная турель).
	Overlay bool
	// Projectiles - снаряды турели в порядке выстрелов.
	Projectiles []types.EntityID
}

// Interval возвращает время между выстрелами.
func (t *Turret) Interval() float64 {
	return 1 / t.FireRate
}
